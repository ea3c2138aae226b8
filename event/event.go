package event

import (
	"reflect"
	"time"
)

// Event is something that happened during a skirmish.
// Listeners are registered for the type of the body, so every body type is its own topic.
type Event interface {

	// When return the time of the event.
	When() time.Time

	// ID return the id of the event.
	ID() uint64

	// Body return the body of the event.
	Body() any

	// Type return the body's reflect.Type of the event.
	Type() reflect.Type
}

type event struct {
	body       any
	id         uint64
	occurredOn time.Time
}

func (e *event) ID() uint64 {
	return e.id
}

func (e *event) When() time.Time {
	return e.occurredOn
}

func (e *event) Body() any {
	return e.body
}

func (e *event) Type() reflect.Type {
	return reflect.TypeOf(e.body)
}

// NewEvent wraps body into an Event numbered id.
func NewEvent(body any, id uint64) Event {
	return &event{body: body, id: id, occurredOn: time.Now()}
}
