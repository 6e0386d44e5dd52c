package winnow

import (
	"sync"

	"github.com/sells-group/winnow/estimator"
	"github.com/sells-group/winnow/parser"
	"github.com/sells-group/winnow/stopping"
)

// Question bundles an id, prompt, and the parser/estimator/stopping triple
// that together define how it is sampled and finalised. Immutable once
// constructed via NewQuestion, aside from the sampling state the engine
// mutates internally during Collect.
type Question[T any] struct {
	id       string
	prompt   string
	parser   parser.Parser[T]
	estimator estimator.Estimator[T]
	stopping  stopping.Predicate[T]

	mu    sync.Mutex
	state stopping.State[T]
}

// NewQuestion constructs a question. Returns ErrEmptyID if id is empty.
func NewQuestion[T any](id, prompt string, p parser.Parser[T], est estimator.Estimator[T], stop stopping.Predicate[T]) (*Question[T], error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return &Question[T]{
		id:        id,
		prompt:    prompt,
		parser:    p,
		estimator: est,
		stopping:  stop,
	}, nil
}

// ID returns the question's identifier.
func (q *Question[T]) ID() string {
	return q.id
}

// Prompt returns the question's prompt string.
func (q *Question[T]) Prompt() string {
	return q.prompt
}

func (q *Question[T]) isComplete() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.stopping.ShouldStop(q.state, q.estimator)
}

// sampleOutcome tags what applying one oracle response did to a question's
// state, for logging.
type sampleOutcome string

const (
	outcomeSampled sampleOutcome = "sample"
	outcomeDeclined sampleOutcome = "decline"
	outcomeFailed   sampleOutcome = "parse_failure"
)

// applyResponse parses a raw oracle response and updates the question's
// state per the transition rules: a success appends the sample and resets
// the decline streak; a decline increments both the decline count and the
// streak; a parse failure increments the failure count and resets the
// streak.
func (q *Question[T]) applyResponse(response string) sampleOutcome {
	result := q.parser.Parse(response)

	q.mu.Lock()
	defer q.mu.Unlock()

	switch result.Outcome {
	case parser.OutcomeValue:
		q.state.Samples = append(q.state.Samples, result.Value)
		q.state.ConsecutiveDeclines = 0
		return outcomeSampled
	case parser.OutcomeDecline:
		q.state.DeclineCount++
		q.state.ConsecutiveDeclines++
		return outcomeDeclined
	default:
		q.state.ParseFailureCount++
		q.state.ConsecutiveDeclines = 0
		return outcomeFailed
	}
}

func (q *Question[T]) snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	samples := make([]any, len(q.state.Samples))
	for i, s := range q.state.Samples {
		samples[i] = s
	}
	return Snapshot{
		Samples:             samples,
		DeclineCount:        q.state.DeclineCount,
		ParseFailureCount:   q.state.ParseFailureCount,
		ConsecutiveDeclines: q.state.ConsecutiveDeclines,
	}
}

func (q *Question[T]) finalize() Estimate {
	q.mu.Lock()
	state := q.state
	q.mu.Unlock()

	if len(state.Samples) == 0 {
		return Estimate{
			Value:             nil,
			Confidence:        0,
			Archetype:         InsufficientData,
			SampleCount:       0,
			DeclineCount:      state.DeclineCount,
			ParseFailureCount: state.ParseFailureCount,
			Samples:           nil,
		}
	}

	value := q.estimator.Estimate(state.Samples)
	raw := q.estimator.Confidence(state.Samples, value)

	penalty := 1 - float64(state.DeclineCount)/float64(state.DeclineCount+len(state.Samples))
	finalConfidence := raw * penalty

	archetype := classify(finalConfidence, state.QueryCount(), q.stopping)

	samples := make([]any, len(state.Samples))
	for i, s := range state.Samples {
		samples[i] = s
	}

	return Estimate{
		Value:             value,
		Confidence:        finalConfidence,
		Archetype:         archetype,
		SampleCount:       len(state.Samples),
		DeclineCount:      state.DeclineCount,
		ParseFailureCount: state.ParseFailureCount,
		Samples:           samples,
	}
}

// classify applies the archetype classification rule: the confidence
// threshold is the maximum ConfidenceReached theta found by walking the
// stopping composition (default 0.80 if none), and, when the composition
// also carries a MaxQueries bound, an outcome that met the threshold while
// still under 75% of that bound is CONFIDENT rather than ACCEPTABLE.
func classify[T any](finalConfidence float64, queryCount int, stop stopping.Predicate[T]) Archetype {
	theta, ok := stopping.Threshold[T](stop)
	if !ok {
		theta = defaultThreshold
	}

	if finalConfidence < theta {
		return Uncertain
	}

	bound, hasBound := stopping.QueryBound[T](stop)
	if hasBound && float64(queryCount) < wellInsideBudgetFraction*float64(bound) {
		return Confident
	}
	return Acceptable
}
