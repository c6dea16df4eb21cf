// Package health runs the readiness checks of the task store.
package health

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/ports"
)

// DefaultCheckTimeout bounds each individual check.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides the per-check deadline. Non-positive values keep
// the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithCacheTTL makes CheckAll reuse its last results for ttl, so frequent
// probes do not hit the database on every call. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(r *Registry) {
		r.ttl = max(ttl, 0)
	}
}

// WithClock replaces time.Now for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry implements ports.HealthRegistry. It is safe for concurrent use.
type Registry struct {
	timeout time.Duration
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	checkers map[string]ports.HealthChecker
	last     map[string]error
	checked  time.Time
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		timeout:  DefaultCheckTimeout,
		now:      time.Now,
		checkers: make(map[string]ports.HealthChecker),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name(). A checker registered under an
// existing name replaces it. Cached results are discarded.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
	r.last = nil
}

// CheckAll runs every check concurrently, each under its own deadline. The
// returned map is owned by the caller.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.Lock()
	if r.last != nil && r.now().Sub(r.checked) < r.ttl {
		cached := maps.Clone(r.last)
		r.mu.Unlock()
		return cached
	}
	checkers := maps.Clone(r.checkers)
	r.mu.Unlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(checkers))
	)
	for name, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			err := c.HealthCheck(checkCtx)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		})
	}
	wg.Wait()

	if r.ttl > 0 {
		r.mu.Lock()
		r.last, r.checked = maps.Clone(results), r.now()
		r.mu.Unlock()
	}
	return results
}
