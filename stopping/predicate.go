package stopping

import "github.com/sells-group/winnow/estimator"

// Predicate decides, given a question's current state and its estimator,
// whether sampling should stop.
type Predicate[T any] interface {
	ShouldStop(state State[T], est estimator.Estimator[T]) bool
}

// children is implemented by combinators so the composition can be walked
// without the engine needing to know about All/Any concretely.
type children[T any] interface {
	Children() []Predicate[T]
}

// thresholder is implemented by primitives that carry a confidence
// threshold, so archetype classification can extract it by walking the
// composition.
type thresholder interface {
	threshold() float64
}

// queryBounder is implemented by primitives that carry a query budget.
type queryBounder interface {
	queryBound() int
}

// Threshold walks p's composition and returns the maximum confidence
// threshold carried by any ConfidenceReached node, or ok=false if none
// exists anywhere in the tree.
func Threshold[T any](p Predicate[T]) (threshold float64, ok bool) {
	found := false
	var max float64
	walk(p, func(leaf Predicate[T]) {
		if t, isThreshold := leaf.(thresholder); isThreshold {
			v := t.threshold()
			if !found || v > max {
				max = v
				found = true
			}
		}
	})
	return max, found
}

// QueryBound walks p's composition and returns the maximum MaxQueries
// bound carried by any node, or ok=false if none exists.
func QueryBound[T any](p Predicate[T]) (bound int, ok bool) {
	found := false
	var max int
	walk(p, func(leaf Predicate[T]) {
		if q, isBound := leaf.(queryBounder); isBound {
			v := q.queryBound()
			if !found || v > max {
				max = v
				found = true
			}
		}
	})
	return max, found
}

// walk visits every leaf predicate in p's composition in post-order,
// recursing into combinators via the children interface.
func walk[T any](p Predicate[T], visit func(Predicate[T])) {
	if c, ok := p.(children[T]); ok {
		for _, child := range c.Children() {
			walk(child, visit)
		}
		return
	}
	visit(p)
}
