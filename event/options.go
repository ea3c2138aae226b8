package event

import (
	"sync"
	"sync/atomic"
)

type option struct {
	// MaxBackoff bounds the number of yields between two failed swaps of a listener list.
	MaxBackoff int
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.MaxBackoff <= 0 {
		o.MaxBackoff = 16
	}
	return o
}

type Option func(*option)

func MaxBackoff(n int) Option {
	return func(o *option) {
		o.MaxBackoff = n
	}
}

func NewBus(opts ...Option) Bus {
	return &bus{
		listenerMap:     sync.Map{},
		onceListenerMap: sync.Map{},
		inShutdown:      atomic.Bool{},
		options:         newOption(opts...),
	}
}
