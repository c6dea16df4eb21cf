package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasklists-service/internal/app/fanout"
)

func double(_ context.Context, n int) (int, error) { return n * 2, nil }

func TestMap_Empty(t *testing.T) {
	t.Parallel()

	got, err := fanout.Map(t.Context(), 4, nil, func(context.Context, int) (int, error) {
		t.Fatal("fn called for empty input")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Map() = %#v, want empty non-nil slice", got)
	}
}

func TestMap_PreservesOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		items   int
	}{
		{"serial", 1, 10},
		{"fewer workers than items", 3, 10},
		{"more workers than items", 50, 5},
		{"non-positive workers", 0, 4},
		{"negative workers", -2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := make([]int, tt.items)
			for i := range items {
				items[i] = i
			}

			// Later items finish first to shake out ordering bugs.
			got, err := fanout.Map(t.Context(), tt.workers, items, func(_ context.Context, n int) (string, error) {
				time.Sleep(time.Duration(tt.items-n) * time.Millisecond)
				return fmt.Sprintf("list-%d", n), nil
			})
			if err != nil {
				t.Fatalf("Map() error = %v", err)
			}
			for i, v := range got {
				if want := fmt.Sprintf("list-%d", i); v != want {
					t.Errorf("got[%d] = %q, want %q", i, v, want)
				}
			}
		})
	}
}

func TestMap_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3
	var running, peak atomic.Int32

	_, err := fanout.Map(t.Context(), workers, make([]int, 20), func(context.Context, int) (int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if p := peak.Load(); p > workers {
		t.Errorf("peak concurrency = %d, want <= %d", p, workers)
	}
}

func TestMap_FirstErrorStopsTheRest(t *testing.T) {
	t.Parallel()

	errLoad := errors.New("loading tasks failed")
	var calls atomic.Int32

	got, err := fanout.Map(t.Context(), 1, make([]int, 100), func(_ context.Context, _ int) (int, error) {
		if calls.Add(1) == 3 {
			return 0, errLoad
		}
		return 1, nil
	})

	if !errors.Is(err, errLoad) {
		t.Fatalf("Map() error = %v, want %v", err, errLoad)
	}
	if got != nil {
		t.Errorf("Map() values = %v, want nil on error", got)
	}
	if c := calls.Load(); c >= 100 {
		t.Errorf("fn called %d times, want remaining items skipped", c)
	}
}

func TestMap_ErrorCancelsInFlightCalls(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	_, err := fanout.Map(t.Context(), 2, []int{0, 1}, func(ctx context.Context, n int) (int, error) {
		if n == 0 {
			return 0, errBoom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 0, errors.New("sibling was not canceled")
		}
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("Map() error = %v, want %v", err, errBoom)
	}
}

func TestMap_CanceledParent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := fanout.Map(ctx, 2, []int{1, 2, 3}, double)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Map() error = %v, want context.Canceled", err)
	}
}

func TestMap_Values(t *testing.T) {
	t.Parallel()

	got, err := fanout.Map(t.Context(), 2, []int{1, 2, 3}, double)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	want := []int{2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
