package battle

import (
	"fmt"

	"github.com/go-leo/skirmish/faction"
	"github.com/go-leo/skirmish/roster"
)

// Outcome is the state of a battle.
type Outcome int

const (
	InProgress Outcome = iota
	RadiantWins
	DireWins
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case RadiantWins:
		return "Radiant wins"
	case DireWins:
		return "Dire wins"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Winner returns the winning faction, ok is false while the battle is in progress.
func (o Outcome) Winner() (f faction.Faction, ok bool) {
	switch o {
	case RadiantWins:
		return faction.Radiant, true
	case DireWins:
		return faction.Dire, true
	default:
		return 0, false
	}
}

// Status derives the outcome from the rosters. An empty Radiant roster is
// checked first, so Dire wins if both are empty.
func Status(radiant, dire *roster.Roster) Outcome {
	switch {
	case radiant.Empty():
		return DireWins
	case dire.Empty():
		return RadiantWins
	default:
		return InProgress
	}
}
