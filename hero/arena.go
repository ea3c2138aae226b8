package hero

import (
	"math"
	"math/rand"

	"github.com/go-leo/gox/mathx/randx"
	"github.com/go-leo/skirmish/event"
)

// ModifierSpread is the largest percent the random damage modifier moves damage by, either way.
const ModifierSpread = 25

// MaxStat bounds health and power so that scaling damage by the modifier cannot overflow an int.
const MaxStat = math.MaxInt / (100 + ModifierSpread)

// Dice draws uniform integers in [0, n). *rand.Rand satisfies it.
type Dice interface {
	Intn(n int) int
}

// Arena is the environment heroes fight in: the single random source of a
// battle and the bus the combat events are published on.
type Arena struct {
	dice Dice
	bus  event.Bus
	seq  uint64
}

type options struct {
	Dice Dice
	Bus  event.Bus
}

type Option func(o *options)

// WithDice replaces the random source.
func WithDice(dice Dice) Option {
	return func(o *options) {
		o.Dice = dice
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.Dice = rand.New(rand.NewSource(seed))
	}
}

// WithBus publishes combat events on bus.
func WithBus(bus event.Bus) Option {
	return func(o *options) {
		o.Bus = bus
	}
}

func NewArena(opts ...Option) *Arena {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Dice == nil {
		o.Dice = randxDice{}
	}
	if o.Bus == nil {
		o.Bus = event.NewBus()
	}
	return &Arena{dice: o.Dice, bus: o.Bus}
}

// Roll draws a uniform integer in [0, n). n must be positive.
func (a *Arena) Roll(n int) int {
	if n <= 0 {
		panic("hero: roll on an empty range")
	}
	return a.dice.Intn(n)
}

// Modifier draws the damage percent in [-ModifierSpread, +ModifierSpread].
func (a *Arena) Modifier() int {
	return a.Roll(2*ModifierSpread+1) - ModifierSpread
}

func (a *Arena) Bus() event.Bus {
	return a.bus
}

// Emit publishes body as the next event of the arena.
func (a *Arena) Emit(body any) error {
	a.seq++
	return a.bus.Emit(event.NewEvent(body, a.seq))
}

// randxDice draws from the process wide source of randx.
type randxDice struct{}

func (randxDice) Intn(n int) int {
	return int(randx.Int63n(int64(n)))
}
