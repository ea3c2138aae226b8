package hero

import "fmt"

var _ Hero = (*Melee)(nil)

// Melee deals its melee damage.
type Melee struct {
	base
	meleeDamage int
}

func NewMelee(stats Stats) *Melee {
	return &Melee{base: newBase(stats), meleeDamage: stats.Power}
}

func (h *Melee) MeleeDamage() int {
	return h.meleeDamage
}

func (h *Melee) Variant() Variant {
	return MeleeVariant
}

func (h *Melee) BaseDamage() int {
	return h.meleeDamage
}

func (h *Melee) Characteristics() string {
	return fmt.Sprintf("Melee Hero: %s (%s), Speed: %d, Health: %d, Melee Damage: %d",
		h.name, h.attribute, h.moveSpeed, h.health, h.meleeDamage)
}

func (h *Melee) Attack(arena *Arena, target Hero) error {
	return strike(arena, h, target)
}

func (h *Melee) TakeDamage(arena *Arena, amount int) error {
	return h.takeDamage(arena, h, amount)
}
