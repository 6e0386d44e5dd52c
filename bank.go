package winnow

import "math/rand/v2"

// anyQuestion is the type-erased capability surface the engine drives.
// Question[T] implements it for any T; because its methods are unexported,
// only types defined in this package can satisfy it, which is exactly
// Question[T] itself — external callers build questions only through
// NewQuestion.
type anyQuestion interface {
	ID() string
	Prompt() string
	isComplete() bool
	applyResponse(response string) sampleOutcome
	snapshot() Snapshot
	finalize() Estimate
}

// Bank is a finite ordered collection of questions with pairwise distinct
// identifiers.
type Bank struct {
	questions []anyQuestion
	index     map[string]int
}

// NewBank builds a bank from one or more questions. Rejects an empty
// question list or duplicate ids eagerly.
func NewBank(questions ...anyQuestion) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	index := make(map[string]int, len(questions))
	for i, q := range questions {
		if _, exists := index[q.ID()]; exists {
			return nil, ErrDuplicateID
		}
		index[q.ID()] = i
	}

	return &Bank{questions: questions, index: index}, nil
}

// IDs returns the bank's question ids in bank order.
func (b *Bank) IDs() []string {
	ids := make([]string, len(b.questions))
	for i, q := range b.questions {
		ids[i] = q.ID()
	}
	return ids
}

// selectNext returns a uniformly random incomplete question, or nil if
// every question's stopping predicate has fired. excluded questions (those
// already claimed by an in-flight call) are skipped.
func (b *Bank) selectNext(rng *rand.Rand, excluded map[string]bool) anyQuestion {
	candidates := make([]anyQuestion, 0, len(b.questions))
	for _, q := range b.questions {
		if excluded[q.ID()] {
			continue
		}
		if q.isComplete() {
			continue
		}
		candidates = append(candidates, q)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.IntN(len(candidates))]
}

// allComplete reports whether every question's stopping predicate has
// fired.
func (b *Bank) allComplete() bool {
	for _, q := range b.questions {
		if !q.isComplete() {
			return false
		}
	}
	return true
}
