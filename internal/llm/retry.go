package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retrier re-runs transient failures with exponential backoff. The learner
// is sitting at the prompt while this spins, so the budget is small: the
// default config gives up after three attempts inside a few seconds.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a provider with the retry policy.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	regenerated := false

	for attempt := range r.cfg.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &regenerated) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// retryable classifies an error. A malformed reply earns exactly one
// regeneration; regenerated tracks whether that retry was already spent.
func retryable(err error, regenerated *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// MaxTokens is a configuration problem, not a transient one.
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *regenerated {
			return false
		}
		*regenerated = true
		return true
	}

	// Rate limits, outages and anything else (raw network errors) are
	// treated as transient.
	return true
}

// wait computes the backoff before the next attempt. Rate-limit responses
// that carry a Retry-After win over the exponential schedule.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	d = math.Min(d, float64(r.cfg.MaxWait))
	// ±20% jitter.
	d *= 1 + 0.2*(2*rand.Float64()-1)
	return time.Duration(math.Max(d, 0))
}
