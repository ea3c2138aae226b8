package faction

import "github.com/go-leo/skirmish/hero"

// Tuning adjusts the stats of a hero before its factory creates it.
// It lets one faction diverge from the other without touching call sites.
type Tuning func(v hero.Variant, stats hero.Stats) hero.Stats

// Decorate wraps f so that every hero it creates is tuned first.
func (t Tuning) Decorate(f Factory) Factory {
	return &tunedFactory{factory: f, tune: t}
}

// Tune decorates f with all tunings, the first tuning sees the stats first.
func Tune(f Factory, tunings ...Tuning) Factory {
	for i := len(tunings) - 1; i >= 0; i-- {
		f = tunings[i].Decorate(f)
	}
	return f
}

// Bonus adds health to every hero of variant v.
func Bonus(v hero.Variant, health int) Tuning {
	return func(variant hero.Variant, stats hero.Stats) hero.Stats {
		if variant == v {
			stats.Health += health
		}
		return stats
	}
}

type tunedFactory struct {
	factory Factory
	tune    Tuning
}

func (f *tunedFactory) Faction() Faction {
	return f.factory.Faction()
}

func (f *tunedFactory) CreateMage(stats hero.Stats) (*hero.Mage, error) {
	return f.factory.CreateMage(f.tune(hero.MageVariant, stats))
}

func (f *tunedFactory) CreateMelee(stats hero.Stats) (*hero.Melee, error) {
	return f.factory.CreateMelee(f.tune(hero.MeleeVariant, stats))
}

func (f *tunedFactory) CreateRange(stats hero.Stats) (*hero.Range, error) {
	return f.factory.CreateRange(f.tune(hero.RangeVariant, stats))
}
