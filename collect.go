package winnow

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Collect run.
type Options struct {
	// Concurrency is the maximum number of in-flight oracle calls. Must be
	// at least 1. Default: 1.
	Concurrency int
	// Rand is the pseudo-random source driving question selection. A nil
	// value uses a freshly seeded generator.
	Rand *rand.Rand
	// Progress, if set, is invoked synchronously after each state update
	// with a snapshot of every question's current state.
	Progress ProgressFunc
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return o
}

// Collect drives the sampling loop over every question in bank: while an
// incomplete question remains, it queries the oracle, parses the response,
// applies the resulting state transition, and reports progress. It
// returns one estimate per question, keyed by question id.
//
// Up to Options.Concurrency oracle calls may be in flight at once; a
// question never has more than one outstanding call. Context cancellation
// aborts the loop at the next suspension point and is returned without
// finalising any estimate.
func Collect(ctx context.Context, bank *Bank, oracle OracleFunc, opts Options) (map[string]Estimate, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if opts.Concurrency < 0 {
		return nil, ErrInvalidConcurrency
	}
	opts = opts.withDefaults()

	sched := &scheduler{
		bank:     bank,
		oracle:   oracle,
		rng:      opts.Rand,
		progress: opts.Progress,
		excluded: make(map[string]bool),
	}
	sched.cond = sync.NewCond(&sched.mu)

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < opts.Concurrency; i++ {
		group.Go(func() error {
			return sched.run(groupCtx)
		})
	}

	// Bridge ctx cancellation into the scheduler's condition variable:
	// sync.Cond.Wait has no native context support, so a waiting worker
	// would otherwise block past cancellation until another worker's
	// completion happens to wake it.
	done := make(chan struct{})
	go func() {
		select {
		case <-groupCtx.Done():
			sched.mu.Lock()
			sched.cancelled = true
			sched.cond.Broadcast()
			sched.mu.Unlock()
		case <-done:
		}
	}()

	err := group.Wait()
	close(done)

	if err != nil {
		return nil, err
	}

	estimates := make(map[string]Estimate, len(bank.questions))
	for _, q := range bank.questions {
		estimates[q.ID()] = q.finalize()
	}
	return estimates, nil
}

// scheduler coordinates concurrent workers pulling questions off a shared
// bank: at most one in-flight call per question, up to the configured
// concurrency limit across all questions.
type scheduler struct {
	bank     *Bank
	oracle   OracleFunc
	rng      *rand.Rand
	progress ProgressFunc

	mu        sync.Mutex
	cond      *sync.Cond
	excluded  map[string]bool
	cancelled bool
}

func (s *scheduler) run(ctx context.Context) error {
	cond := s.cond

	for {
		s.mu.Lock()
		if s.cancelled {
			s.mu.Unlock()
			return ctx.Err()
		}

		q := s.bank.selectNext(s.rng, s.excluded)
		if q == nil {
			if s.bank.allComplete() {
				s.mu.Unlock()
				return nil
			}
			// Every remaining incomplete question is claimed by another
			// worker; wait for a slot to free or for cancellation.
			cond.Wait()
			s.mu.Unlock()
			continue
		}
		s.excluded[q.ID()] = true
		s.mu.Unlock()

		response, err := s.oracle(ctx, q.Prompt())
		if err != nil {
			s.mu.Lock()
			delete(s.excluded, q.ID())
			cond.Broadcast()
			s.mu.Unlock()
			return eris.Wrapf(err, "winnow: oracle call for question %q", q.ID())
		}

		outcome := q.applyResponse(response)

		s.mu.Lock()
		delete(s.excluded, q.ID())
		cond.Broadcast()
		s.mu.Unlock()

		logSample(q.ID(), outcome)

		if s.progress != nil {
			s.progress(s.snapshotAll())
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (s *scheduler) snapshotAll() map[string]Snapshot {
	snapshots := make(map[string]Snapshot, len(s.bank.questions))
	for _, q := range s.bank.questions {
		snapshots[q.ID()] = q.snapshot()
	}
	return snapshots
}

func logSample(questionID string, outcome sampleOutcome) {
	zap.L().Debug("sample",
		zap.String("question_id", questionID),
		zap.String("outcome", string(outcome)),
	)
}
