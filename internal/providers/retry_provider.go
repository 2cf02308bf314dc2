package providers

import (
	"context"
	"log/slog"
	"time"

	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a SquadProvider with retry/backoff behavior and
// records each attempt with the metrics recorder.
type retryingProvider struct {
	inner       SquadProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner SquadProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) SquadProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = NameOf(inner, "unknown")
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) Name() string {
	return r.name
}

func (r *retryingProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		items, err := r.inner.FetchSquads(ctx)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return items, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, &FetchError{Provider: r.name, Err: lastErr}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
