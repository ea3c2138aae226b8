package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hit struct {
	Damage int
}

type heal struct {
	Amount int
}

type recorder struct {
	name  string
	calls *[]string
	err   error
}

func (r *recorder) Handle(e Event) error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestBus_EmitInRegistrationOrder(t *testing.T) {
	var calls []string
	b := NewBus()
	first := &recorder{name: "first", calls: &calls}
	second := &recorder{name: "second", calls: &calls}
	head := &recorder{name: "head", calls: &calls}

	require.NoError(t, b.On(hit{}, first))
	require.NoError(t, b.On(hit{}, second))
	require.NoError(t, b.Prepend(hit{}, head))

	require.NoError(t, b.Emit(NewEvent(hit{Damage: 3}, 1)))
	assert.Equal(t, []string{"head", "first", "second"}, calls)

	calls = nil
	require.NoError(t, b.Prepend(hit{}, &recorder{name: "top", calls: &calls}))
	require.NoError(t, b.Emit(NewEvent(hit{Damage: 3}, 2)))
	assert.Equal(t, []string{"top", "head", "first", "second"}, calls)
}

func TestBus_TopicIsBodyType(t *testing.T) {
	var calls []string
	b := NewBus()
	require.NoError(t, b.On(hit{}, &recorder{name: "hit", calls: &calls}))

	require.NoError(t, b.Emit(NewEvent(heal{Amount: 1}, 1)))
	assert.Empty(t, calls)
}

func TestBus_Once(t *testing.T) {
	var calls []string
	b := NewBus()
	require.NoError(t, b.Once(hit{}, &recorder{name: "once", calls: &calls}))
	require.NoError(t, b.On(hit{}, &recorder{name: "always", calls: &calls}))

	require.NoError(t, b.Emit(NewEvent(hit{}, 1)))
	require.NoError(t, b.Emit(NewEvent(hit{}, 2)))
	assert.Equal(t, []string{"always", "once", "always"}, calls)
}

func TestBus_Off(t *testing.T) {
	var calls []string
	b := NewBus()
	lis := &recorder{name: "off", calls: &calls}
	once := &recorder{name: "once", calls: &calls}
	require.NoError(t, b.On(hit{}, lis))
	require.NoError(t, b.Once(hit{}, once))

	require.NoError(t, b.Off(hit{}, lis))
	require.NoError(t, b.Off(hit{}, once))
	require.NoError(t, b.Emit(NewEvent(hit{}, 1)))
	assert.Empty(t, calls)

	require.NoError(t, b.On(hit{}, lis))
	require.NoError(t, b.OffAll(hit{}))
	require.NoError(t, b.Emit(NewEvent(hit{}, 2)))
	assert.Empty(t, calls)
}

func TestBus_JoinsListenerErrors(t *testing.T) {
	var calls []string
	errA := errors.New("a")
	errB := errors.New("b")
	b := NewBus()
	require.NoError(t, b.On(hit{}, &recorder{name: "a", calls: &calls, err: errA}))
	require.NoError(t, b.On(hit{}, &recorder{name: "b", calls: &calls, err: errB}))

	err := b.Emit(NewEvent(hit{}, 1))
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"a", "b"}, calls)
}

type funcListener func(Event) error

func (f funcListener) Handle(e Event) error { return f(e) }

func TestBus_Check(t *testing.T) {
	b := NewBus()
	assert.ErrorIs(t, b.On(nil, &recorder{}), ErrBodyNil)
	assert.ErrorIs(t, b.On(hit{}, nil), ErrListenerNil)
	assert.ErrorIs(t, b.On(hit{}, funcListener(func(Event) error { return nil })), ErrListenerIncomparable)
	assert.ErrorIs(t, b.Emit(nil), ErrBodyNil)
	assert.ErrorIs(t, b.Emit(NewEvent(nil, 1)), ErrBodyNil)
}

func TestBus_Close(t *testing.T) {
	var calls []string
	b := NewBus(MaxBackoff(4))
	require.NoError(t, b.On(hit{}, &recorder{name: "x", calls: &calls}))

	require.NoError(t, b.Close())
	assert.ErrorIs(t, b.Close(), ErrBusClosed)
	assert.ErrorIs(t, b.Emit(NewEvent(hit{}, 1)), ErrBusClosed)
	assert.ErrorIs(t, b.On(hit{}, &recorder{}), ErrBusClosed)
	assert.Empty(t, calls)
}
