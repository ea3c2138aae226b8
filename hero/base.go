package hero

// base holds the state every archetype shares.
type base struct {
	name      string
	attribute Attribute
	moveSpeed int
	health    int
}

func newBase(stats Stats) base {
	return base{
		name:      stats.Name,
		attribute: stats.Attribute,
		moveSpeed: stats.MoveSpeed,
		health:    stats.Health,
	}
}

func (h *base) Name() string {
	return h.name
}

func (h *base) Attribute() Attribute {
	return h.attribute
}

func (h *base) MoveSpeed() int {
	return h.moveSpeed
}

func (h *base) Health() int {
	return h.health
}

func (h *base) IsAlive() bool {
	return h.health > 0
}

// takeDamage is shared by the archetypes. self is the outer hero so that
// listeners receive the archetype rather than the embedded base.
func (h *base) takeDamage(arena *Arena, self Hero, amount int) error {
	percent := arena.Modifier()
	dealt := amount * (100 + percent) / 100
	h.health -= dealt
	return arena.Emit(Damaged{
		Hero:      self,
		Amount:    amount,
		Modifier:  percent,
		Dealt:     dealt,
		Remaining: h.health,
	})
}

// strike publishes the attack and hands the base damage to the target.
func strike(arena *Arena, attacker Hero, target Hero) error {
	if err := arena.Emit(Attacked{Attacker: attacker, Target: target}); err != nil {
		return err
	}
	return target.TakeDamage(arena, attacker.BaseDamage())
}
