package battle

import "github.com/go-leo/skirmish/hero"

// Started is published before the first round.
type Started struct {
	Radiant int
	Dire    int
}

// Round is the result of one exchange, it is published after the exchange.
// Fallen is nil when nobody died.
type Round struct {
	Number  int
	Radiant hero.Hero
	Dire    hero.Hero
	Fallen  hero.Hero
}

// Finished is published once a roster is empty.
type Finished struct {
	Outcome Outcome
	Rounds  int
}
