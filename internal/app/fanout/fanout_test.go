package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/initiative-tracker/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []string{}, func(context.Context, string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("results = %v, want empty non-nil slice", results)
	}
}

func TestRun_PreservesOrderAndErrors(t *testing.T) {
	t.Parallel()

	errSave := errors.New("disk full")
	ids := []string{"a", "b", "c", "d"}

	results := fanout.Run(context.Background(), 2, ids, func(_ context.Context, id string) (string, error) {
		if id == "c" {
			return "", errSave
		}
		// Later items finish first.
		time.Sleep(time.Duration(len(ids)-int(id[0]-'a')) * time.Millisecond)
		return "saved " + id, nil
	})

	for i, id := range ids {
		r := results[i]
		if id == "c" {
			if !errors.Is(r.Err, errSave) {
				t.Errorf("results[%d].Err = %v, want %v", i, r.Err, errSave)
			}
			continue
		}
		if r.Err != nil || r.Value != "saved "+id {
			t.Errorf("results[%d] = %+v, want value %q", i, r, "saved "+id)
		}
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3

	var active, peak atomic.Int32
	items := make([]int, 15)

	fanout.Run(context.Background(), workers, items, func(context.Context, int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		return 0, nil
	})

	if p := peak.Load(); p > workers {
		t.Fatalf("peak concurrency %d exceeded %d workers", p, workers)
	}
}

func TestRun_NonPositiveWorkersStillRuns(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, -1} {
		results := fanout.Run(context.Background(), workers, []int{1, 2}, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})
		if results[0].Value != 2 || results[1].Value != 4 {
			t.Errorf("workers=%d: results = %+v, want values [2 4]", workers, results)
		}
	}
}

func TestRun_CanceledContextSkipsFn(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(context.Context, int) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	if n := calls.Load(); n != 0 {
		t.Errorf("fn called %d times on a canceled context, want 0", n)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestEach(t *testing.T) {
	t.Parallel()

	errDestroy := errors.New("locked")
	var seen atomic.Int32

	errs := fanout.Each(context.Background(), 4, []string{"x", "y", "z"}, func(_ context.Context, id string) error {
		seen.Add(1)
		if id == "y" {
			return errDestroy
		}
		return nil
	})

	if seen.Load() != 3 {
		t.Errorf("fn called %d times, want 3", seen.Load())
	}
	if len(errs) != 3 {
		t.Fatalf("len(errs) = %d, want 3", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("errs = %v, want nil for x and z", errs)
	}
	if !errors.Is(errs[1], errDestroy) {
		t.Errorf("errs[1] = %v, want %v", errs[1], errDestroy)
	}
}
