// Package hero models the three hero archetypes that fight in a skirmish.
//
// Every archetype shares the Hero capability set and differs only in how it
// computes the base damage of an attack:
//
//	Mage   spell damage
//	Melee  melee damage
//	Range  attack range / 10
//
// Damage is applied through an Arena, which owns the random source and the
// event bus the narration is published on.
package hero

import "fmt"

// Hero is the capability set shared by all archetypes.
type Hero interface {
	Name() string
	Attribute() Attribute
	MoveSpeed() int
	Health() int
	Variant() Variant

	// BaseDamage is the unmodified damage of one attack.
	BaseDamage() int

	// Characteristics returns a one line summary of the hero.
	Characteristics() string

	// Attack strikes target with BaseDamage.
	Attack(arena *Arena, target Hero) error

	// TakeDamage applies amount, scaled by a random modifier in [0.75, 1.25], to the health.
	TakeDamage(arena *Arena, amount int) error

	// IsAlive reports whether health is above zero.
	IsAlive() bool
}

// Attribute is the primary attribute of a hero. It is cosmetic.
type Attribute int

const (
	Strength Attribute = iota
	Agility
	Intelligence
)

func (a Attribute) String() string {
	switch a {
	case Strength:
		return "Strength"
	case Agility:
		return "Agility"
	case Intelligence:
		return "Intelligence"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// Variant is the archetype of a hero.
type Variant int

const (
	MageVariant Variant = iota
	MeleeVariant
	RangeVariant
)

func (v Variant) String() string {
	switch v {
	case MageVariant:
		return "Mage"
	case MeleeVariant:
		return "Melee"
	case RangeVariant:
		return "Range"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Action is the verb phrase used when a hero of this variant attacks.
func (v Variant) Action() string {
	switch v {
	case MageVariant:
		return "casts a spell on"
	case MeleeVariant:
		return "strikes"
	case RangeVariant:
		return "shoots"
	default:
		return "attacks"
	}
}

// Stats are the literal parameters a hero is created from.
// Power is the variant stat: spell damage, melee damage or attack range.
type Stats struct {
	Name      string
	Attribute Attribute
	MoveSpeed int
	Health    int
	Power     int
}
