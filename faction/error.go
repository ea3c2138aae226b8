package faction

import "errors"

var (
	// ErrInvalidStats the stats can not produce a hero able to fight
	ErrInvalidStats = errors.New("invalid hero stats")

	// ErrUnknownFaction faction is neither Radiant nor Dire
	ErrUnknownFaction = errors.New("faction not supported")
)
