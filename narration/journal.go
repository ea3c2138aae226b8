package narration

import (
	"time"

	"github.com/go-leo/skirmish/battle"
	"github.com/go-leo/skirmish/event"
	"github.com/go-leo/skirmish/hero"
	jsoniter "github.com/json-iterator/go"
)

var _ event.Listener = (*Journal)(nil)

// Entry is the record of one event.
type Entry struct {
	ID        uint64    `json:"id"`
	When      time.Time `json:"when"`
	Kind      string    `json:"kind"`
	Hero      string    `json:"hero,omitempty"`
	Target    string    `json:"target,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Modifier  int       `json:"modifier,omitempty"`
	Dealt     int       `json:"dealt,omitempty"`
	Remaining *int      `json:"remaining,omitempty"`
	Round     int       `json:"round,omitempty"`
	Radiant   int       `json:"radiant,omitempty"`
	Dire      int       `json:"dire,omitempty"`
	Outcome   string    `json:"outcome,omitempty"`
}

// Journal records every combat event it receives, in order.
type Journal struct {
	entries []Entry
}

func NewJournal() *Journal {
	return &Journal{}
}

// Attach registers the journal for every combat event.
func (j *Journal) Attach(bus event.Bus) error {
	for _, body := range []any{battle.Started{}, hero.Attacked{}, hero.Damaged{}, battle.Round{}, battle.Finished{}} {
		if err := bus.On(body, j); err != nil {
			return err
		}
	}
	return nil
}

func (j *Journal) Handle(e event.Event) error {
	entry := Entry{ID: e.ID(), When: e.When()}
	switch body := e.Body().(type) {
	case battle.Started:
		entry.Kind = "started"
		entry.Radiant = body.Radiant
		entry.Dire = body.Dire
	case hero.Attacked:
		entry.Kind = "attacked"
		entry.Hero = body.Attacker.Name()
		entry.Target = body.Target.Name()
	case hero.Damaged:
		entry.Kind = "damaged"
		if body.Fallen() {
			entry.Kind = "fallen"
		}
		remaining := body.Remaining
		entry.Hero = body.Hero.Name()
		entry.Amount = body.Amount
		entry.Modifier = body.Modifier
		entry.Dealt = body.Dealt
		entry.Remaining = &remaining
	case battle.Round:
		entry.Kind = "round"
		entry.Round = body.Number
		if body.Fallen != nil {
			entry.Hero = body.Fallen.Name()
		}
	case battle.Finished:
		entry.Kind = "finished"
		entry.Round = body.Rounds
		entry.Outcome = body.Outcome.String()
	default:
		entry.Kind = e.Type().String()
	}
	j.entries = append(j.entries, entry)
	return nil
}

// Entries returns a copy of the recorded entries.
func (j *Journal) Entries() []Entry {
	return append([]Entry(nil), j.entries...)
}

// MarshalJSON encodes the journal as an array of entries.
func (j *Journal) MarshalJSON() ([]byte, error) {
	if j.entries == nil {
		return []byte("[]"), nil
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(j.entries)
}
