package faction

import (
	"fmt"
	"strings"

	"github.com/go-leo/skirmish/hero"
	"github.com/go-leo/skirmish/specification"
)

type rule struct {
	reason string
	spec   specification.Specification[hero.Stats]
}

func attributeIs(a hero.Attribute) specification.Specification[hero.Stats] {
	return specification.New(func(s hero.Stats) bool { return s.Attribute == a })
}

var (
	nameGiven = specification.New(func(s hero.Stats) bool {
		return strings.TrimSpace(s.Name) != ""
	})
	attributeKnown = specification.Disjunction(
		attributeIs(hero.Strength),
		attributeIs(hero.Agility),
		attributeIs(hero.Intelligence),
	)
	healthPositive = specification.New(func(s hero.Stats) bool {
		return s.Health > 0
	})
	speedNegative = specification.New(func(s hero.Stats) bool {
		return s.MoveSpeed < 0
	})
	powerPositive = specification.New(func(s hero.Stats) bool {
		return s.Power > 0
	})
	withinBounds = specification.New(func(s hero.Stats) bool {
		return s.Health <= hero.MaxStat && s.Power <= hero.MaxStat
	})
	// a range below the divisor would deal no damage at all
	rangeReaches = specification.New(func(s hero.Stats) bool {
		return s.Power >= hero.RangeDivisor
	})
)

func rules(v hero.Variant) []rule {
	rs := []rule{
		{reason: "name is empty", spec: nameGiven},
		{reason: "attribute is unknown", spec: attributeKnown},
		{reason: "health must be positive", spec: healthPositive},
		{reason: "move speed is negative", spec: speedNegative.Not()},
		{reason: fmt.Sprintf("health or power above %d", hero.MaxStat), spec: withinBounds},
	}
	if v == hero.RangeVariant {
		return append(rs, rule{reason: fmt.Sprintf("attack range below %d", hero.RangeDivisor), spec: powerPositive.And(rangeReaches)})
	}
	return append(rs, rule{reason: "damage must be positive", spec: powerPositive})
}

// Valid returns the specification the stats of a v hero must satisfy.
func Valid(v hero.Variant) specification.Specification[hero.Stats] {
	rs := rules(v)
	specs := make([]specification.Specification[hero.Stats], 0, len(rs))
	for _, r := range rs {
		specs = append(specs, r.spec)
	}
	return specification.Conjunction(specs...)
}

// Validate returns an error wrapping ErrInvalidStats naming every broken rule.
func Validate(v hero.Variant, stats hero.Stats) error {
	if Valid(v).IsSatisfiedBy(stats) {
		return nil
	}
	var reasons []string
	for _, r := range rules(v) {
		if !r.spec.IsSatisfiedBy(stats) {
			reasons = append(reasons, r.reason)
		}
	}
	return fmt.Errorf("%w: %s %q: %s", ErrInvalidStats, v, stats.Name, strings.Join(reasons, ", "))
}
