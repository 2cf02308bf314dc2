package teststubs

import (
	"context"
	"sync"

	"club-lineup-service/internal/domain/squads"
)

// GoodProvider returns the provided squads with no error.
type GoodProvider struct {
	Squads []squads.Squad
}

func (p GoodProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	_ = ctx
	return p.Squads, nil
}

func (GoodProvider) Name() string { return "good" }

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	return nil, p.Err
}

// EmptyProvider returns no squads, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	return []squads.Squad{}, nil
}

// NotifyingProvider returns squads and closes Notify on the first fetch.
type NotifyingProvider struct {
	Squads []squads.Squad
	Notify chan struct{}

	once sync.Once
}

func (p *NotifyingProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	_ = ctx
	p.once.Do(func() {
		if p.Notify != nil {
			close(p.Notify)
		}
	})
	return p.Squads, nil
}

// FlakyProvider fails the first Failures calls, then succeeds.
type FlakyProvider struct {
	Squads   []squads.Squad
	Failures int
	Err      error

	mu    sync.Mutex
	calls int
}

func (p *FlakyProvider) FetchSquads(ctx context.Context) ([]squads.Squad, error) {
	_ = ctx
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.Failures {
		return nil, p.Err
	}
	return p.Squads, nil
}

// Calls reports how many times FetchSquads has been invoked.
func (p *FlakyProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
