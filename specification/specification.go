package specification

// Specification interface.
// Use New to create specifications from a predicate, the combinators build on top of them.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]
}

type predicate[T any] struct {
	fn func(t T) bool
}

func (spec *predicate[T]) IsSatisfiedBy(t T) bool {
	return spec.fn(t)
}

func (spec *predicate[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *predicate[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *predicate[T]) Not() Specification[T] {
	return Not[T](spec)
}

func New[T any](fn func(t T) bool) Specification[T] {
	return &predicate[T]{fn: fn}
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return left.IsSatisfiedBy(t) && right.IsSatisfiedBy(t)
	})
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return left.IsSatisfiedBy(t) || right.IsSatisfiedBy(t)
	})
}

func Not[T any](spec Specification[T]) Specification[T] {
	return New(func(t T) bool {
		return !spec.IsSatisfiedBy(t)
	})
}

// Conjunction is satisfied when every spec is, an empty conjunction always is.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(t) {
				return false
			}
		}
		return true
	})
}

// Disjunction is satisfied when any spec is, an empty disjunction never is.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New(func(t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(t) {
				return true
			}
		}
		return false
	})
}
