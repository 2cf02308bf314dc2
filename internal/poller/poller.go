package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"club-lineup-service/internal/domain/squads"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/metrics"
	"club-lineup-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// SquadSink receives refreshed roster snapshots.
type SquadSink interface {
	ReplaceSquads([]squads.Squad) error
}

// Poller refreshes squads from the provider on an interval so transfer,
// injury, and suspension changes land in the store without a restart.
type Poller struct {
	provider providers.SquadProvider
	sink     SquadSink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.SquadProvider, sink SquadSink, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("roster refresh started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("roster refresh stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("roster refresh stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	items, err := p.provider.FetchSquads(ctx)
	if p.metrics != nil {
		p.metrics.RecordRefreshCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("roster refresh failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.sink != nil {
		if sinkErr := p.sink.ReplaceSquads(items); sinkErr != nil {
			p.logError("roster store update failed", sinkErr)
			p.recordFailure(sinkErr, start)
			return
		}
	}
	p.recordSuccess(start)
	p.logInfo("roster refreshed",
		logging.FieldCount, len(items),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.SquadProvider {
	return p.provider
}
