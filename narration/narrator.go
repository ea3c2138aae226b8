// Package narration turns combat events into text and records.
package narration

import (
	"fmt"
	"io"

	"github.com/go-leo/skirmish/battle"
	"github.com/go-leo/skirmish/event"
	"github.com/go-leo/skirmish/hero"
	"github.com/go-leo/skirmish/roster"
)

var _ event.Listener = (*Narrator)(nil)

// Narrator writes the battle as human readable lines.
type Narrator struct {
	w io.Writer
}

func NewNarrator(w io.Writer) *Narrator {
	return &Narrator{w: w}
}

// Attach registers the narrator for every event it narrates.
func (n *Narrator) Attach(bus event.Bus) error {
	for _, body := range []any{battle.Started{}, hero.Attacked{}, hero.Damaged{}, battle.Finished{}} {
		if err := bus.On(body, n); err != nil {
			return err
		}
	}
	return nil
}

// Rosters writes one characteristics line per hero, team by team.
func (n *Narrator) Rosters(rosters ...*roster.Roster) error {
	for i, r := range rosters {
		if i > 0 {
			if _, err := fmt.Fprintln(n.w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(n.w, "%s Team:\n", r.Faction()); err != nil {
			return err
		}
		for _, h := range r.Heroes() {
			if _, err := fmt.Fprintln(n.w, h.Characteristics()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (n *Narrator) Handle(e event.Event) error {
	var err error
	switch body := e.Body().(type) {
	case battle.Started:
		_, err = fmt.Fprint(n.w, "\nBattle begins!\n")
	case hero.Attacked:
		_, err = fmt.Fprintf(n.w, "%s %s the enemy!\n", body.Attacker.Name(), body.Attacker.Variant().Action())
	case hero.Damaged:
		if body.Fallen() {
			_, err = fmt.Fprintf(n.w, "%s has fallen!\n\n", body.Hero.Name())
		} else {
			_, err = fmt.Fprintf(n.w, "%s remaining health: %d\n\n", body.Hero.Name(), body.Remaining)
		}
	case battle.Finished:
		if winner, ok := body.Outcome.Winner(); ok {
			_, err = fmt.Fprintf(n.w, "%s wins the game!\nGG\n", winner)
		}
	}
	return err
}
