package faction

import "fmt"

// Maker The factory of faction factories.
type Maker struct{}

func (Maker) MakeFactory(f Faction) Factory {
	switch f {
	case Radiant:
		return RadiantFactory{}
	case Dire:
		return DireFactory{}
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownFaction, f))
	}
}
