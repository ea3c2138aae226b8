package hero

import "fmt"

var _ Hero = (*Mage)(nil)

// Mage deals its spell damage.
type Mage struct {
	base
	spellDamage int
}

func NewMage(stats Stats) *Mage {
	return &Mage{base: newBase(stats), spellDamage: stats.Power}
}

func (h *Mage) SpellDamage() int {
	return h.spellDamage
}

func (h *Mage) Variant() Variant {
	return MageVariant
}

func (h *Mage) BaseDamage() int {
	return h.spellDamage
}

func (h *Mage) Characteristics() string {
	return fmt.Sprintf("Mage Hero: %s (%s), Speed: %d, Health: %d, Spell Damage: %d",
		h.name, h.attribute, h.moveSpeed, h.health, h.spellDamage)
}

func (h *Mage) Attack(arena *Arena, target Hero) error {
	return strike(arena, h, target)
}

func (h *Mage) TakeDamage(arena *Arena, amount int) error {
	return h.takeDamage(arena, h, amount)
}
