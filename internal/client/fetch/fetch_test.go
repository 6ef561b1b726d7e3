// internal/client/fetch/fetch_test.go
package fetch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/internal/client/fetch"
)

// waitSettled reads updates until a non-loading snapshot arrives.
func waitSettled[T any](t *testing.T, h *fetch.Hook[T]) fetch.State[T] {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case st := <-h.Updates():
			if !st.Loading {
				return st
			}
		case <-deadline:
			t.Fatal("hook never settled")
		}
	}
}

func TestHook_SuccessAfterDelay(t *testing.T) {
	h := fetch.New(func(ctx context.Context) (map[string]int, error) {
		time.Sleep(20 * time.Millisecond)
		return map[string]int{"value": 42}, nil
	})

	h.Use(context.Background())

	if st := h.State(); !st.Loading {
		t.Fatal("expected loading immediately after activation")
	}

	st := waitSettled(t, h)
	if st.Err != nil {
		t.Fatalf("unexpected error: %v", st.Err)
	}
	if st.Data["value"] != 42 {
		t.Fatalf("data = %v", st.Data)
	}
}

func TestHook_FailureZeroesData(t *testing.T) {
	var calls atomic.Int64
	h := fetch.New(func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "payload", nil
		}
		return "", errors.New("network down")
	})

	h.Use(context.Background())
	st := waitSettled(t, h)
	if st.Data != "payload" || st.Err != nil {
		t.Fatalf("first fetch: %+v", st)
	}

	h.Refetch(context.Background())
	st = waitSettled(t, h)
	if st.Err == nil || st.Err.Error() != "network down" {
		t.Fatalf("expected failure, got %+v", st)
	}
	if st.Data != "" {
		t.Fatal("data must be zeroed on failure")
	}
}

func TestHook_StaleResultDiscarded(t *testing.T) {
	block := make(chan struct{})
	var calls atomic.Int64
	h := fetch.New(func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			<-block
			return "stale", nil
		}
		return "fresh", nil
	})

	h.Refetch(context.Background())
	// Let the first invocation start before superseding it.
	time.Sleep(10 * time.Millisecond)
	h.Refetch(context.Background())

	st := waitSettled(t, h)
	if st.Data != "fresh" {
		t.Fatalf("data = %q, want fresh", st.Data)
	}

	// Release the stale call; its result must not clobber the newer state.
	close(block)
	time.Sleep(20 * time.Millisecond)
	if st := h.State(); st.Data != "fresh" || st.Loading {
		t.Fatalf("stale result clobbered state: %+v", st)
	}
}

func TestHook_UseRefetchesOnDepChange(t *testing.T) {
	var calls atomic.Int64
	h := fetch.New(func(ctx context.Context) (int64, error) {
		return calls.Add(1), nil
	})

	h.Use(context.Background(), "contact-1")
	waitSettled(t, h)
	h.Use(context.Background(), "contact-1")
	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 1 {
		t.Fatalf("same deps must not refetch, calls = %d", calls.Load())
	}

	h.Use(context.Background(), "contact-2")
	st := waitSettled(t, h)
	if calls.Load() != 2 {
		t.Fatalf("changed deps must refetch, calls = %d", calls.Load())
	}
	if st.Data != 2 {
		t.Fatalf("data = %d", st.Data)
	}
}

func TestHook_NothingRunsBeforeUse(t *testing.T) {
	var calls atomic.Int64
	h := fetch.New(func(ctx context.Context) (int64, error) {
		return calls.Add(1), nil
	})

	time.Sleep(10 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatal("call ran before activation")
	}
	if st := h.State(); st.Loading || st.Err != nil {
		t.Fatalf("unexpected initial state: %+v", st)
	}
}
