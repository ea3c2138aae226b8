package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-leo/skirmish/faction"
	"github.com/go-leo/skirmish/hero"
)

// Builder assembles a Roster from the heroes a faction factory creates.
// Creation errors are collected and reported together by Build.
type Builder struct {
	factory faction.Factory
	heroes  []hero.Hero
	errs    []error
}

func NewBuilder(factory faction.Factory) *Builder {
	return &Builder{factory: factory}
}

func (b *Builder) Mage(stats hero.Stats) *Builder {
	h, err := b.factory.CreateMage(stats)
	return b.add(h, err)
}

func (b *Builder) Melee(stats hero.Stats) *Builder {
	h, err := b.factory.CreateMelee(stats)
	return b.add(h, err)
}

func (b *Builder) Range(stats hero.Stats) *Builder {
	h, err := b.factory.CreateRange(stats)
	return b.add(h, err)
}

// add keeps h unless err is set, in which case h is a typed nil.
func (b *Builder) add(h hero.Hero, err error) *Builder {
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.heroes = append(b.heroes, h)
	return b
}

func (b *Builder) Build(ctx context.Context) (*Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("build %s roster: %w", b.factory.Faction(), errors.Join(b.errs...))
	}
	return New(b.factory.Faction(), b.heroes...), nil
}
