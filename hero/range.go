package hero

import "fmt"

var _ Hero = (*Range)(nil)

// RangeDivisor converts attack range into base damage.
const RangeDivisor = 10

// Range deals a tenth of its attack range.
type Range struct {
	base
	attackRange int
}

func NewRange(stats Stats) *Range {
	return &Range{base: newBase(stats), attackRange: stats.Power}
}

func (h *Range) AttackRange() int {
	return h.attackRange
}

func (h *Range) Variant() Variant {
	return RangeVariant
}

func (h *Range) BaseDamage() int {
	return h.attackRange / RangeDivisor
}

func (h *Range) Characteristics() string {
	return fmt.Sprintf("Range Hero: %s (%s), Speed: %d, Health: %d, Attack Range: %d",
		h.name, h.attribute, h.moveSpeed, h.health, h.attackRange)
}

func (h *Range) Attack(arena *Arena, target Hero) error {
	return strike(arena, h, target)
}

func (h *Range) TakeDamage(arena *Arena, amount int) error {
	return h.takeDamage(arena, h, amount)
}
