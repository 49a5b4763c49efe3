package downloadmgr

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the amount of parallel downloads if nothing else is configured
const DefaultConcurrency = 16

// Manager runs batches of work with a fixed concurrency limit.
// Every batch waits for all of its items before returning.
type Manager struct {
	Concurrency int
}

// New creates a new Manager. concurrency <= 0 uses DefaultConcurrency
func New(concurrency int) *Manager {
	return &Manager{Concurrency: concurrency}
}

func (m *Manager) limit() int {
	if m == nil || m.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return m.Concurrency
}

// Each calls fn for every index in [0, n) with at most Concurrency calls
// running at the same time. It returns after all calls returned.
func (m *Manager) Each(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	g := errgroup.Group{}
	g.SetLimit(m.limit())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	// fn can not fail, Wait only waits
	_ = g.Wait()
}

// FetchAll downloads all assets using f. The returned results have the
// same order as assets.
func (m *Manager) FetchAll(ctx context.Context, f *Fetcher, assets []Asset) []Result {
	results := make([]Result, len(assets))
	m.Each(ctx, len(assets), func(ctx context.Context, i int) {
		results[i] = f.FetchAsset(ctx, assets[i])
	})
	return results
}

// Failed returns the assets of all failed results
func Failed(results []Result) []Asset {
	failed := make([]Asset, 0)
	for _, r := range results {
		if r.Failed() {
			failed = append(failed, r.Asset)
		}
	}
	return failed
}
