// Package oracle wraps the Anthropic client as a winnow.OracleFunc, adding
// rate limiting, retry with backoff, circuit breaking, and per-call
// correlation ids and cost logging.
package oracle

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/winnow"
	"github.com/sells-group/winnow/internal/resilience"
	"github.com/sells-group/winnow/pkg/anthropic"
)

// Config controls the resilience policy wrapped around the raw Anthropic
// client.
type Config struct {
	Model             string
	MaxTokens         int64
	Temperature       *float64
	RequestsPerSecond float64
	Burst             int
	MaxAttempts       int
	CircuitThreshold  int
}

// Oracle adapts an anthropic.Client into a winnow.OracleFunc.
type Oracle struct {
	client  anthropic.Client
	cfg     Config
	limiter *rate.Limiter
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
}

// New builds an Oracle. A zero MaxAttempts or CircuitThreshold falls back
// to resilience's own defaults; a zero RequestsPerSecond disables rate
// limiting, and a zero Burst is treated as 1.
func New(client anthropic.Client, cfg Config) *Oracle {
	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	retryCfg := resilience.FromRetryConfig(cfg.MaxAttempts, 0, 0, 0, 0)
	retryCfg.OnRetry = resilience.RetryLogger("anthropic", "create_message")

	breakerCfg := resilience.FromCircuitConfig(cfg.CircuitThreshold, 0)

	return &Oracle{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
		breaker: resilience.NewCircuitBreaker(breakerCfg),
		retry:   retryCfg,
	}
}

// Query implements winnow.OracleFunc: it rate-limits, retries transient
// failures, and trips a circuit breaker on sustained failure, returning the
// text of the first "text" content block in the response ("" if none).
func (o *Oracle) Query(ctx context.Context, prompt string) (string, error) {
	correlationID := uuid.New().String()

	if err := o.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "oracle: rate limiter")
	}

	resp, err := resilience.ExecuteVal(ctx, o.breaker, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return resilience.DoVal(ctx, o.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
			return o.client.CreateMessage(ctx, o.buildRequest(prompt))
		})
	})
	if err != nil {
		zap.L().Warn("oracle call failed",
			zap.String("correlation_id", correlationID),
			zap.Error(err),
		)
		return "", eris.Wrapf(err, "oracle: query %s", correlationID)
	}

	resp.Usage.LogCost(o.cfg.Model, "sample")
	zap.L().Debug("oracle call succeeded",
		zap.String("correlation_id", correlationID),
		zap.String("message_id", resp.ID),
	)

	return responseText(resp), nil
}

// Func adapts Query to winnow.OracleFunc.
func (o *Oracle) Func() winnow.OracleFunc {
	return o.Query
}

func (o *Oracle) buildRequest(prompt string) anthropic.MessageRequest {
	return anthropic.MessageRequest{
		Model:       o.cfg.Model,
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: prompt},
		},
	}
}

func responseText(resp *anthropic.MessageResponse) string {
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}
