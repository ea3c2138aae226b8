package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-leo/skirmish/hero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const teams = `Radiant Team:
Mage Hero: Invoker (Intelligence), Speed: 310, Health: 80, Spell Damage: 60
Melee Hero: Phantom Assassin (Agility), Speed: 290, Health: 10, Melee Damage: 50

Dire Team:
Mage Hero: Zeus (Intelligence), Speed: 305, Health: 110, Spell Damage: 40
Range Hero: Drow Ranger (Agility), Speed: 310, Health: 80, Attack Range: 550

Battle begins!
`

func TestRun(t *testing.T) {
	var out bytes.Buffer
	journal, err := run(context.Background(), &out)
	require.NoError(t, err)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, teams), text)
	assert.True(t, strings.HasSuffix(text, " wins the game!\nGG\n"), text)
	assert.Contains(t, text, "has fallen!")

	entries := journal.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "started", entries[0].Kind)
	last := entries[len(entries)-1]
	assert.Equal(t, "finished", last.Kind)
	assert.Contains(t, text, last.Outcome+" the game!")
}

func TestRun_Seeded(t *testing.T) {
	var first, second bytes.Buffer
	firstJournal, err := run(context.Background(), &first, hero.WithSeed(2024))
	require.NoError(t, err)
	secondJournal, err := run(context.Background(), &second, hero.WithSeed(2024))
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
	assert.Len(t, secondJournal.Entries(), len(firstJournal.Entries()))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	journal, err := run(ctx, &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, journal.Entries())
}
