package event

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/go-leo/gox/slicex"
	"golang.org/x/exp/slices"
)

type Bus interface {
	// On adds a Listener for events whose body has the same type as body.
	On(body any, lis Listener) error

	// Prepend adds the Listener to the beginning of the listeners.
	Prepend(body any, lis Listener) error

	// Once adds a one-time Listener, it is removed after the first delivery.
	Once(body any, lis Listener) error

	// Emit synchronously calls each of the listeners registered for the type of the Event body,
	// in the order they were registered. One-time listeners are called last.
	Emit(e Event) error

	// Off removes the specified Listener from the listeners.
	Off(body any, lis Listener) error

	// OffAll removes all listeners for the type of body.
	OffAll(body any) error

	// Close stops the bus, every later call returns ErrBusClosed.
	Close() error
}

var _ Bus = (*bus)(nil)

type bus struct {
	listenerMap     sync.Map
	onceListenerMap sync.Map
	inShutdown      atomic.Bool
	options         *option
}

func (b *bus) On(body any, lis Listener) error {
	if err := b.check(body, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, reflect.TypeOf(body), lis, b.appendListener)
	return nil
}

func (b *bus) Prepend(body any, lis Listener) error {
	if err := b.check(body, lis); err != nil {
		return err
	}
	b.spin(&b.listenerMap, reflect.TypeOf(body), lis, b.prependListener)
	return nil
}

func (b *bus) Once(body any, lis Listener) error {
	if err := b.check(body, lis); err != nil {
		return err
	}
	onceLis := &onceListener{Listener: lis}
	b.spin(&b.onceListenerMap, reflect.TypeOf(body), onceLis, b.appendListener)
	return nil
}

func (b *bus) Emit(e Event) error {
	if e == nil || e.Body() == nil {
		return ErrBodyNil
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	eventType := e.Type()
	var errs []error
	if value, ok := b.listenerMap.Load(eventType); ok {
		for _, listener := range *(value.(*[]Listener)) {
			errs = append(errs, listener.Handle(e))
		}
	}
	if value, ok := b.onceListenerMap.Load(eventType); ok {
		for _, listener := range *(value.(*[]Listener)) {
			errs = append(errs, listener.Handle(e))
			b.spin(&b.onceListenerMap, eventType, listener, b.offListener)
		}
	}
	return errors.Join(errs...)
}

func (b *bus) Off(body any, lis Listener) error {
	if err := b.check(body, lis); err != nil {
		return err
	}
	eventType := reflect.TypeOf(body)
	b.spin(&b.listenerMap, eventType, lis, b.offListener)
	b.spin(&b.onceListenerMap, eventType, lis, b.offOnceListener)
	return nil
}

func (b *bus) OffAll(body any) error {
	if body == nil {
		return ErrBodyNil
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	eventType := reflect.TypeOf(body)
	b.listenerMap.Delete(eventType)
	b.onceListenerMap.Delete(eventType)
	return nil
}

func (b *bus) Close() error {
	if b.inShutdown.CompareAndSwap(false, true) {
		return nil
	}
	return ErrBusClosed
}

func (b *bus) shuttingDown() bool {
	return b.inShutdown.Load()
}

func (b *bus) check(body any, lis Listener) error {
	if body == nil {
		return ErrBodyNil
	}
	if lis == nil {
		return ErrListenerNil
	}
	if !reflect.TypeOf(lis).Comparable() {
		return ErrListenerIncomparable
	}
	if b.shuttingDown() {
		return ErrBusClosed
	}
	return nil
}

func (*bus) loadAndOn(listenerMap *sync.Map, eventType reflect.Type, lis Listener, pendFunc func([]Listener, ...Listener) []Listener) (any, any, bool) {
	oldVal, loaded := listenerMap.LoadOrStore(eventType, &[]Listener{lis})
	if !loaded {
		return oldVal, nil, false
	}
	newListeners := pendFunc(*(oldVal.(*[]Listener)), lis)
	return oldVal, &newListeners, true
}

func (b *bus) appendListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		return append(listeners[:len(listeners):len(listeners)], listener...)
	}
	return b.loadAndOn(listenerMap, eventType, lis, pendFunc)
}

func (b *bus) prependListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	pendFunc := func(listeners []Listener, listener ...Listener) []Listener {
		return slices.Insert(slices.Clip(listeners), 0, listener...)
	}
	return b.loadAndOn(listenerMap, eventType, lis, pendFunc)
}

func (*bus) loadAndOff(listenerMap *sync.Map, eventType reflect.Type, lis Listener, indexesFunc func([]Listener, Listener) []int) (any, any, bool) {
	oldVal, ok := listenerMap.Load(eventType)
	if !ok {
		return oldVal, nil, false
	}
	oldPtr := oldVal.(*[]Listener)
	if len(*oldPtr) == 0 {
		return oldVal, nil, false
	}
	indexes := indexesFunc(*oldPtr, lis)
	if len(indexes) <= 0 {
		return oldVal, nil, false
	}
	newListeners := slicex.DeleteAll(*oldPtr, indexes...)
	return oldVal, &newListeners, true
}

func (b *bus) offListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		return slicex.Indexes(listeners, lis)
	}
	return b.loadAndOff(listenerMap, eventType, lis, indexesFunc)
}

// offOnceListener removes the one-time wrappers around lis.
func (b *bus) offOnceListener(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool) {
	indexesFunc := func(listeners []Listener, lis Listener) []int {
		return slicex.IndexesFunc(listeners, func(onceLis Listener) bool {
			return onceLis.(*onceListener).Listener == lis
		})
	}
	return b.loadAndOff(listenerMap, eventType, lis, indexesFunc)
}

func (b *bus) spin(listenerMap *sync.Map, eventType reflect.Type, lis Listener, load func(listenerMap *sync.Map, eventType reflect.Type, lis Listener) (any, any, bool)) {
	oldVal, newVal, ok := load(listenerMap, eventType, lis)
	if !ok {
		return
	}
	backoff := 1
	for !listenerMap.CompareAndSwap(eventType, oldVal, newVal) {
		// Leverage the exponential backoff algorithm, see https://en.wikipedia.org/wiki/Exponential_backoff.
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < b.options.MaxBackoff {
			backoff <<= 1
		}
		oldVal, newVal, ok = load(listenerMap, eventType, lis)
		if !ok {
			return
		}
	}
}
