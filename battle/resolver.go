// Package battle resolves a skirmish between a Radiant and a Dire roster.
//
// Each round pairs one random hero of each side. The Radiant hero attacks
// first; a lethal first strike ends the round before the Dire hero can
// answer. So a round removes at most one hero and the battle ends as soon
// as one roster is empty.
package battle

import (
	"context"

	"github.com/go-leo/skirmish/hero"
	"github.com/go-leo/skirmish/roster"
)

// Resolver runs battles in an arena.
type Resolver struct {
	arena  *hero.Arena
	rounds int
}

func NewResolver(arena *hero.Arena) *Resolver {
	return &Resolver{arena: arena}
}

// Rounds returns the number of rounds resolved since the last Fight started.
func (r *Resolver) Rounds() int {
	return r.rounds
}

// Fight resolves rounds until one roster is empty and returns the outcome.
// Both rosters are modified in place. The context is checked between rounds.
func (r *Resolver) Fight(ctx context.Context, radiant, dire *roster.Roster) (Outcome, error) {
	r.rounds = 0
	if err := r.arena.Emit(Started{Radiant: radiant.Len(), Dire: dire.Len()}); err != nil {
		return InProgress, err
	}
	outcome := Status(radiant, dire)
	for outcome == InProgress {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		if _, err := r.Round(radiant, dire); err != nil {
			return outcome, err
		}
		outcome = Status(radiant, dire)
	}
	if err := r.arena.Emit(Finished{Outcome: outcome, Rounds: r.rounds}); err != nil {
		return outcome, err
	}
	return outcome, nil
}

// Round resolves one exchange. It panics if either roster is empty.
func (r *Resolver) Round(radiant, dire *roster.Roster) (Round, error) {
	rIdx, a := radiant.Pick(r.arena)
	dIdx, b := dire.Pick(r.arena)
	r.rounds++
	round := Round{Number: r.rounds, Radiant: a, Dire: b}

	if err := a.Attack(r.arena, b); err != nil {
		return round, err
	}
	if !b.IsAlive() {
		dire.RemoveAt(dIdx)
		round.Fallen = b
		return round, r.arena.Emit(round)
	}

	if err := b.Attack(r.arena, a); err != nil {
		return round, err
	}
	if !a.IsAlive() {
		radiant.RemoveAt(rIdx)
		round.Fallen = a
	}
	return round, r.arena.Emit(round)
}
