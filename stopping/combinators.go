package stopping

import "github.com/sells-group/winnow/estimator"

// All stops iff every child predicate wants to stop. An All of a single
// predicate is equivalent to that predicate.
type All[T any] struct {
	predicates []Predicate[T]
}

// NewAll builds a conjunction of predicates, flattening nested Alls so the
// composition stays a shallow tree.
func NewAll[T any](predicates ...Predicate[T]) All[T] {
	out := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if nested, ok := p.(All[T]); ok {
			out = append(out, nested.predicates...)
			continue
		}
		out = append(out, p)
	}
	return All[T]{predicates: out}
}

func (a All[T]) ShouldStop(state State[T], est estimator.Estimator[T]) bool {
	for _, p := range a.predicates {
		if !p.ShouldStop(state, est) {
			return false
		}
	}
	return true
}

func (a All[T]) Children() []Predicate[T] {
	return a.predicates
}

// Any stops iff at least one child predicate wants to stop. An Any of a
// single predicate is equivalent to that predicate.
type Any[T any] struct {
	predicates []Predicate[T]
}

// NewAny builds a disjunction of predicates, flattening nested Anys so the
// composition stays a shallow tree.
func NewAny[T any](predicates ...Predicate[T]) Any[T] {
	out := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if nested, ok := p.(Any[T]); ok {
			out = append(out, nested.predicates...)
			continue
		}
		out = append(out, p)
	}
	return Any[T]{predicates: out}
}

func (a Any[T]) ShouldStop(state State[T], est estimator.Estimator[T]) bool {
	for _, p := range a.predicates {
		if p.ShouldStop(state, est) {
			return true
		}
	}
	return false
}

func (a Any[T]) Children() []Predicate[T] {
	return a.predicates
}
