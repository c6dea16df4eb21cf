// Package resilience wraps outbound calls to the backing store with a circuit
// breaker and provides retry with exponential backoff for startup probes.
//
//	breaker := resilience.NewBreaker("postgres", &cfg.Database.CircuitBreaker, logger)
//	err := breaker.Execute(func() error { return pool.QueryRow(...).Scan(...) })
//
// When the breaker is open, Execute fails fast with an error that matches
// domain.ErrUnavailable.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/tasklists-service/internal/domain"
	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

// Breaker is a named circuit breaker. Not-found and conflict results and
// caller cancellation count as successes so they never trip it.
type Breaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreaker creates a Breaker that opens after cfg.MaxFailures consecutive
// failures and probes recovery with cfg.HalfOpenLimit requests after
// cfg.Timeout. State changes are logged at WARN.
func NewBreaker(name string, cfg *config.CircuitBreakerConfig, logger *slog.Logger) *Breaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Breaker{name: name, cb: cb}
}

// Execute runs fn through the breaker. Rejections caused by an open or
// saturated half-open breaker are returned wrapped in domain.ErrUnavailable;
// errors from fn are returned unchanged.
func (b *Breaker) Execute(fn func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	if IsRejection(err) {
		return fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, b.name, err)
	}
	return err
}

// IsOpen reports whether the breaker is rejecting calls outright.
func (b *Breaker) IsOpen() bool {
	return b.cb.State() == gobreaker.StateOpen
}

// State returns the breaker state as "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

// Status reports the breaker state as an error: nil while closed, a
// descriptive error while half-open or open.
func (b *Breaker) Status() error {
	state := b.cb.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", b.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", b.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", b.name, state)
	}
}

// IsRejection reports whether err came from the breaker refusing a call.
func IsRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
