package event

import "errors"

var (
	// ErrBodyNil event body is nil
	ErrBodyNil = errors.New("event body is nil")

	// ErrListenerNil Listener arg is nil
	ErrListenerNil = errors.New("listener is nil")

	// ErrListenerIncomparable Listener can not be compared, so it could never be removed by Off
	ErrListenerIncomparable = errors.New("listener is incomparable")

	// ErrBusClosed bus is closed
	ErrBusClosed = errors.New("bus is closed")
)
