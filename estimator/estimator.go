// Package estimator computes point estimates and confidence scores from
// multisets of typed samples collected by the sampling engine.
package estimator

// Estimator is polymorphic over the sample value type T. Both operations
// must be pure: deterministic and free of side effects.
type Estimator[T any] interface {
	// Estimate computes a point estimate from samples. Called only with
	// at least one sample.
	Estimate(samples []T) T

	// Confidence scores the estimate against the samples it was derived
	// from, in [0,1]. May be called with any non-empty sample slice.
	Confidence(samples []T, estimate T) float64
}
