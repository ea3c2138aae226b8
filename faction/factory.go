package faction

import "github.com/go-leo/skirmish/hero"

// Factory creates the heroes of one faction.
type Factory interface {
	Faction() Faction

	CreateMage(stats hero.Stats) (*hero.Mage, error)

	CreateMelee(stats hero.Stats) (*hero.Melee, error)

	CreateRange(stats hero.Stats) (*hero.Range, error)
}

var (
	_ Factory = RadiantFactory{}
	_ Factory = DireFactory{}
)

// RadiantFactory creates Radiant heroes.
type RadiantFactory struct{}

func (RadiantFactory) Faction() Faction {
	return Radiant
}

func (RadiantFactory) CreateMage(stats hero.Stats) (*hero.Mage, error) {
	if err := Validate(hero.MageVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewMage(stats), nil
}

func (RadiantFactory) CreateMelee(stats hero.Stats) (*hero.Melee, error) {
	if err := Validate(hero.MeleeVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewMelee(stats), nil
}

func (RadiantFactory) CreateRange(stats hero.Stats) (*hero.Range, error) {
	if err := Validate(hero.RangeVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewRange(stats), nil
}

// DireFactory creates Dire heroes.
type DireFactory struct{}

func (DireFactory) Faction() Faction {
	return Dire
}

func (DireFactory) CreateMage(stats hero.Stats) (*hero.Mage, error) {
	if err := Validate(hero.MageVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewMage(stats), nil
}

func (DireFactory) CreateMelee(stats hero.Stats) (*hero.Melee, error) {
	if err := Validate(hero.MeleeVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewMelee(stats), nil
}

func (DireFactory) CreateRange(stats hero.Stats) (*hero.Range, error) {
	if err := Validate(hero.RangeVariant, stats); err != nil {
		return nil, err
	}
	return hero.NewRange(stats), nil
}
