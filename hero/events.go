package hero

// Attacked is published when Attacker starts an attack on Target.
type Attacked struct {
	Attacker Hero
	Target   Hero
}

// Damaged is published after Hero lost Dealt health.
// Modifier is the random percent applied to Amount, Remaining may be negative.
type Damaged struct {
	Hero      Hero
	Amount    int
	Modifier  int
	Dealt     int
	Remaining int
}

// Fallen reports whether the damage was lethal.
func (d Damaged) Fallen() bool {
	return d.Remaining <= 0
}
