package resilience

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/platform/config"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// Retry calls fn until it succeeds, the attempts in cfg are exhausted, or
// ctx is done. Delays grow exponentially from cfg.InitialInterval, capped at
// cfg.MaxInterval, with ±25% jitter. Each retry is logged at WARN with the
// given operation name. The last error from fn is returned.
func Retry(ctx context.Context, cfg *config.RetryConfig, logger *slog.Logger, operation string,
	fn func(context.Context) error,
) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("resilience: max_attempts must be >= 1, got %d", cfg.MaxAttempts)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var lastErr error

	for attempt := range cfg.MaxAttempts {
		if attempt > 0 {
			delay := backoff(attempt, cfg)
			logger.WarnContext(ctx, "retrying operation",
				slog.String("operation", operation),
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", cfg.MaxAttempts),
				slog.Duration("backoff", delay),
				slog.Any("error", lastErr),
			)

			select {
			case <-ctx.Done():
				return errors.Join(ctx.Err(), lastErr)
			case <-time.After(delay):
			}
		}

		lastErr = fn(ctx)
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%s: giving up after %d attempts: %w", operation, cfg.MaxAttempts, lastErr)
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg *config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if delay > float64(cfg.MaxInterval) {
		delay = float64(cfg.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether fn's error warrants another attempt. Context
// cancellation and deadline exceeded are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
