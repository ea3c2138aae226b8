// Package roster holds the live heroes of one faction during a battle.
package roster

import (
	"fmt"

	"github.com/go-leo/skirmish/faction"
	"github.com/go-leo/skirmish/hero"
	"golang.org/x/exp/slices"
)

// Roster is an ordered collection of the heroes of one faction.
// A hero removed from a roster is gone for good.
type Roster struct {
	faction faction.Faction
	heroes  []hero.Hero
}

func New(f faction.Faction, heroes ...hero.Hero) *Roster {
	return &Roster{faction: f, heroes: slices.Clone(heroes)}
}

func (r *Roster) Faction() faction.Faction {
	return r.faction
}

func (r *Roster) Len() int {
	return len(r.heroes)
}

func (r *Roster) Empty() bool {
	return len(r.heroes) == 0
}

// At returns the i-th hero. It panics when i is out of range.
func (r *Roster) At(i int) hero.Hero {
	return r.heroes[i]
}

// Heroes returns a copy of the heroes, in roster order.
func (r *Roster) Heroes() []hero.Hero {
	return slices.Clone(r.heroes)
}

func (r *Roster) Add(heroes ...hero.Hero) {
	r.heroes = append(r.heroes, heroes...)
}

// Pick draws a uniformly random hero. It panics on an empty roster.
func (r *Roster) Pick(arena *hero.Arena) (int, hero.Hero) {
	if r.Empty() {
		panic(fmt.Sprintf("roster: pick from empty %s roster", r.faction))
	}
	i := arena.Roll(len(r.heroes))
	return i, r.heroes[i]
}

// RemoveAt removes and returns the i-th hero. It panics when i is out of range.
func (r *Roster) RemoveAt(i int) hero.Hero {
	h := r.heroes[i]
	r.heroes = slices.Delete(r.heroes, i, i+1)
	return h
}

// Remove removes h and reports whether it was on the roster.
func (r *Roster) Remove(h hero.Hero) bool {
	i := slices.Index(r.heroes, h)
	if i < 0 {
		return false
	}
	r.RemoveAt(i)
	return true
}

// Alive returns the number of heroes whose health is above zero.
func (r *Roster) Alive() int {
	n := 0
	for _, h := range r.heroes {
		if h.IsAlive() {
			n++
		}
	}
	return n
}
