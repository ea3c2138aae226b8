package event

import "sync"

// Listener is Event listener interface.
// Implementations must be comparable (usually a pointer) so they can be removed again.
type Listener interface {
	// Handle handles Event logic.
	Handle(e Event) error
}

type onceListener struct {
	Listener Listener
	Once     sync.Once
}

func (listener *onceListener) Handle(e Event) error {
	var err error
	listener.Once.Do(func() {
		err = listener.Listener.Handle(e)
	})
	return err
}
