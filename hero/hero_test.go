package hero

import (
	"testing"

	"github.com/go-leo/skirmish/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadedDice replays its faces in order and then repeats the last one.
type loadedDice struct {
	faces []int
	rolls int
}

func (d *loadedDice) Intn(n int) int {
	face := d.faces[len(d.faces)-1]
	if d.rolls < len(d.faces) {
		face = d.faces[d.rolls]
	}
	d.rolls++
	return face % n
}

type collector struct {
	bodies []any
}

func (c *collector) Handle(e event.Event) error {
	c.bodies = append(c.bodies, e.Body())
	return nil
}

func newCollectingArena(t *testing.T, opts ...Option) (*Arena, *collector) {
	c := &collector{}
	bus := event.NewBus()
	require.NoError(t, bus.On(Attacked{}, c))
	require.NoError(t, bus.On(Damaged{}, c))
	return NewArena(append([]Option{WithBus(bus)}, opts...)...), c
}

func TestCharacteristics(t *testing.T) {
	mage := NewMage(Stats{Name: "Invoker", Attribute: Intelligence, MoveSpeed: 310, Health: 80, Power: 60})
	melee := NewMelee(Stats{Name: "Sven", Attribute: Strength, MoveSpeed: 295, Health: 120, Power: 55})
	ranged := NewRange(Stats{Name: "Sniper", Attribute: Agility, MoveSpeed: 300, Health: 80, Power: 550})

	assert.Equal(t, "Mage Hero: Invoker (Intelligence), Speed: 310, Health: 80, Spell Damage: 60", mage.Characteristics())
	assert.Equal(t, "Melee Hero: Sven (Strength), Speed: 295, Health: 120, Melee Damage: 55", melee.Characteristics())
	assert.Equal(t, "Range Hero: Sniper (Agility), Speed: 300, Health: 80, Attack Range: 550", ranged.Characteristics())

	assert.Equal(t, MageVariant, mage.Variant())
	assert.Equal(t, MeleeVariant, melee.Variant())
	assert.Equal(t, RangeVariant, ranged.Variant())
	assert.Equal(t, "Attribute(9)", Attribute(9).String())
}

func TestBaseDamage(t *testing.T) {
	assert.Equal(t, 60, NewMage(Stats{Power: 60}).BaseDamage())
	assert.Equal(t, 50, NewMelee(Stats{Power: 50}).BaseDamage())
	assert.Equal(t, 55, NewRange(Stats{Power: 550}).BaseDamage())
	assert.Equal(t, 55, NewRange(Stats{Power: 559}).BaseDamage())
}

func TestRangeAttackUsesDerivedDamage(t *testing.T) {
	// face 25 is a zero percent modifier
	arena, _ := newCollectingArena(t, WithDice(&loadedDice{faces: []int{25}}))
	drow := NewRange(Stats{Name: "Drow Ranger", Attribute: Agility, MoveSpeed: 310, Health: 80, Power: 550})
	target := NewMelee(Stats{Name: "Axe", Health: 600, Power: 1})

	require.NoError(t, drow.Attack(arena, target))
	assert.Equal(t, 600-55, target.Health())
}

func TestIsAlive(t *testing.T) {
	for _, health := range []int{-10, -1, 0, 1, 80} {
		h := NewMelee(Stats{Health: health})
		assert.Equal(t, health > 0, h.IsAlive(), "health %d", health)
	}
}

func TestTakeDamage_ModifierBounds(t *testing.T) {
	cases := []struct {
		face  int
		dealt int
	}{
		{face: 0, dealt: 45},
		{face: 25, dealt: 60},
		{face: 50, dealt: 75},
		{face: 32, dealt: 64},
	}
	for _, c := range cases {
		arena := NewArena(WithDice(&loadedDice{faces: []int{c.face}}))
		h := NewMage(Stats{Health: 100})
		require.NoError(t, h.TakeDamage(arena, 60))
		assert.Equal(t, 100-c.dealt, h.Health(), "face %d", c.face)
	}
}

func TestTakeDamage_Range(t *testing.T) {
	arena := NewArena(WithSeed(7))
	for _, amount := range []int{0, 1, 3, 10, 33, 55, 60, 101} {
		for i := 0; i < 200; i++ {
			h := NewMelee(Stats{Health: 1000})
			require.NoError(t, h.TakeDamage(arena, amount))
			lost := 1000 - h.Health()
			assert.GreaterOrEqual(t, lost, amount*75/100)
			assert.LessOrEqual(t, lost, amount*125/100)
			assert.Equal(t, h.Health() > 0, h.IsAlive())
		}
	}
}

func TestTakeDamage_StrongestBlowDoesNotOverflow(t *testing.T) {
	for _, face := range []int{0, 50} {
		arena := NewArena(WithDice(&loadedDice{faces: []int{face}}))
		h := NewMelee(Stats{Health: MaxStat})
		require.NoError(t, h.TakeDamage(arena, MaxStat))
		lost := MaxStat - h.Health()
		assert.Equal(t, MaxStat*(75+face)/100, lost, "face %d", face)
		assert.Greater(t, lost, 0)
	}
}

func TestMageAttack_NonLethal(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		arena, c := newCollectingArena(t, WithSeed(seed))
		invoker := NewMage(Stats{Name: "Invoker", Attribute: Intelligence, MoveSpeed: 310, Health: 80, Power: 60})
		target := NewMage(Stats{Name: "Zeus", Attribute: Intelligence, MoveSpeed: 305, Health: 80, Power: 40})

		require.NoError(t, invoker.Attack(arena, target))
		assert.GreaterOrEqual(t, target.Health(), 5)
		assert.LessOrEqual(t, target.Health(), 35)
		assert.True(t, target.IsAlive())

		require.Len(t, c.bodies, 2)
		attacked, ok := c.bodies[0].(Attacked)
		require.True(t, ok)
		assert.Same(t, invoker, attacked.Attacker)
		damaged, ok := c.bodies[1].(Damaged)
		require.True(t, ok)
		assert.Same(t, target, damaged.Hero)
		assert.Equal(t, 60, damaged.Amount)
		assert.Equal(t, target.Health(), damaged.Remaining)
		assert.False(t, damaged.Fallen())
	}
}

func TestTakeDamage_Lethal(t *testing.T) {
	arena, c := newCollectingArena(t, WithDice(&loadedDice{faces: []int{50}}))
	pa := NewMelee(Stats{Name: "Phantom Assassin", Attribute: Agility, MoveSpeed: 290, Health: 10, Power: 50})

	require.NoError(t, pa.TakeDamage(arena, 40))
	assert.Equal(t, -40, pa.Health())
	assert.False(t, pa.IsAlive())
	require.Len(t, c.bodies, 1)
	assert.True(t, c.bodies[0].(Damaged).Fallen())
}

func TestArena(t *testing.T) {
	arena := NewArena()
	assert.NotNil(t, arena.Bus())
	for i := 0; i < 100; i++ {
		m := arena.Modifier()
		assert.GreaterOrEqual(t, m, -ModifierSpread)
		assert.LessOrEqual(t, m, ModifierSpread)
	}
	assert.Panics(t, func() { arena.Roll(0) })
}

func TestVariantAction(t *testing.T) {
	assert.Equal(t, "casts a spell on", MageVariant.Action())
	assert.Equal(t, "strikes", MeleeVariant.Action())
	assert.Equal(t, "shoots", RangeVariant.Action())
	assert.Equal(t, "Range", RangeVariant.String())
}
