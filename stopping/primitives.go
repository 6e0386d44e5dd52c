package stopping

import "github.com/sells-group/winnow/estimator"

// MinSamples stops once at least N successful samples have been collected.
type MinSamples[T any] struct {
	N int
}

func (p MinSamples[T]) ShouldStop(state State[T], _ estimator.Estimator[T]) bool {
	return len(state.Samples) >= p.N
}

// MaxQueries stops once the total query count (samples, declines, and
// parse failures combined) reaches N. This bounds pathological loops even
// when the oracle never produces a usable sample.
type MaxQueries[T any] struct {
	N int
}

func (p MaxQueries[T]) ShouldStop(state State[T], _ estimator.Estimator[T]) bool {
	return state.QueryCount() >= p.N
}

func (p MaxQueries[T]) queryBound() int {
	return p.N
}

// ConfidenceReached stops once at least two samples exist and the
// estimator's raw confidence in its own estimate meets or exceeds Theta.
// This is always evaluated against raw confidence, never the decline-
// penalised confidence applied at finalisation.
type ConfidenceReached[T any] struct {
	Theta float64
}

func (p ConfidenceReached[T]) ShouldStop(state State[T], est estimator.Estimator[T]) bool {
	if len(state.Samples) < 2 {
		return false
	}
	estimate := est.Estimate(state.Samples)
	return est.Confidence(state.Samples, estimate) >= p.Theta
}

func (p ConfidenceReached[T]) threshold() float64 {
	return p.Theta
}

// ConsecutiveDeclines stops once the current decline streak reaches N.
type ConsecutiveDeclines[T any] struct {
	N int
}

func (p ConsecutiveDeclines[T]) ShouldStop(state State[T], _ estimator.Estimator[T]) bool {
	return state.ConsecutiveDeclines >= p.N
}

// UnanimousAgreement stops once at least K samples exist and all of them
// are equal.
type UnanimousAgreement[T comparable] struct {
	K int
}

func (p UnanimousAgreement[T]) ShouldStop(state State[T], _ estimator.Estimator[T]) bool {
	if len(state.Samples) < p.K {
		return false
	}
	first := state.Samples[0]
	for _, s := range state.Samples[1:] {
		if s != first {
			return false
		}
	}
	return true
}
