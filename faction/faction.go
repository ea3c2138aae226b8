package faction

import "fmt"

// Faction is one of the two opposing sides.
type Faction int

const (
	Radiant Faction = iota
	Dire
)

func (f Faction) String() string {
	switch f {
	case Radiant:
		return "Radiant"
	case Dire:
		return "Dire"
	default:
		return fmt.Sprintf("Faction(%d)", int(f))
	}
}

// Opponent returns the side f fights against.
func (f Faction) Opponent() Faction {
	if f == Radiant {
		return Dire
	}
	return Radiant
}
