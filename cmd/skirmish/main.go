package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-leo/skirmish/battle"
	"github.com/go-leo/skirmish/event"
	"github.com/go-leo/skirmish/faction"
	"github.com/go-leo/skirmish/hero"
	"github.com/go-leo/skirmish/narration"
	"github.com/go-leo/skirmish/roster"
)

func main() {
	log.SetPrefix("[SKIRMISH] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	journal, err := run(ctx, os.Stdout)
	if err != nil {
		if record, jerr := journal.MarshalJSON(); jerr == nil {
			log.Printf("journal: %s", record)
		}
		log.Fatalf("skirmish failed: %v", err)
	}
}

// run assembles both teams, prints them and narrates the battle to w.
// The journal holds every event published before run returned.
func run(ctx context.Context, w io.Writer, opts ...hero.Option) (*narration.Journal, error) {
	journal := narration.NewJournal()
	maker := faction.Maker{}
	radiant, err := roster.NewBuilder(maker.MakeFactory(faction.Radiant)).
		Mage(hero.Stats{Name: "Invoker", Attribute: hero.Intelligence, MoveSpeed: 310, Health: 80, Power: 60}).
		Melee(hero.Stats{Name: "Phantom Assassin", Attribute: hero.Agility, MoveSpeed: 290, Health: 10, Power: 50}).
		Build(ctx)
	if err != nil {
		return journal, err
	}
	dire, err := roster.NewBuilder(maker.MakeFactory(faction.Dire)).
		Mage(hero.Stats{Name: "Zeus", Attribute: hero.Intelligence, MoveSpeed: 305, Health: 110, Power: 40}).
		Range(hero.Stats{Name: "Drow Ranger", Attribute: hero.Agility, MoveSpeed: 310, Health: 80, Power: 550}).
		Build(ctx)
	if err != nil {
		return journal, err
	}

	bus := event.NewBus()
	defer func() { _ = bus.Close() }()
	narrator := narration.NewNarrator(w)
	if err := narrator.Attach(bus); err != nil {
		return journal, err
	}
	if err := journal.Attach(bus); err != nil {
		return journal, err
	}
	if err := narrator.Rosters(radiant, dire); err != nil {
		return journal, err
	}

	arena := hero.NewArena(append(opts, hero.WithBus(bus))...)
	_, err = battle.NewResolver(arena).Fight(ctx, radiant, dire)
	return journal, err
}
