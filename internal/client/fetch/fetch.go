// internal/client/fetch/fetch.go

// Package fetch wraps an API call in the load/refetch state machine the
// dashboard views share: a Loading flag, the last Data or Err, an on-demand
// Refetch, and re-fetching when a dependency list changes. Every invocation
// carries a sequence number; a result that resolves after a newer
// invocation began is discarded, so stale responses never clobber newer
// state.
package fetch

import (
	"context"
	"reflect"
	"sync"
)

// State is one snapshot of a hook. Exactly one of the three shapes holds:
// loading (Loading true), success (Data set, Err nil), or failure (Data
// zeroed, Err set).
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Hook drives one data dependency of a view.
type Hook[T any] struct {
	call func(context.Context) (T, error)

	mu      sync.Mutex
	state   State[T]
	seq     uint64
	deps    []any
	started bool
	updates chan State[T]
}

// New creates a Hook around call. Nothing runs until Use or Refetch.
func New[T any](call func(context.Context) (T, error)) *Hook[T] {
	return &Hook[T]{
		call:    call,
		updates: make(chan State[T], 1),
	}
}

// State returns the current snapshot.
func (h *Hook[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Updates delivers state changes, latest-wins: a slow receiver sees the
// newest snapshot, not every intermediate one.
func (h *Hook[T]) Updates() <-chan State[T] {
	return h.updates
}

// Use activates the hook for the given dependency values. The first call
// fetches; later calls fetch again only when the values differ from the
// previous ones.
func (h *Hook[T]) Use(ctx context.Context, deps ...any) {
	h.mu.Lock()
	same := h.started && reflect.DeepEqual(deps, h.deps)
	h.deps = deps
	h.started = true
	h.mu.Unlock()

	if !same {
		h.Refetch(ctx)
	}
}

// Refetch starts a new invocation. The loading state is visible before
// Refetch returns; the result lands asynchronously.
func (h *Hook[T]) Refetch(ctx context.Context) {
	h.mu.Lock()
	h.seq++
	mine := h.seq
	h.state.Loading = true
	h.state.Err = nil
	st := h.state
	h.mu.Unlock()
	h.publish(st)

	go func() {
		data, err := h.call(ctx)

		h.mu.Lock()
		if mine != h.seq {
			// A newer invocation owns the state now.
			h.mu.Unlock()
			return
		}
		if err != nil {
			var zero T
			h.state = State[T]{Data: zero, Loading: false, Err: err}
		} else {
			h.state = State[T]{Data: data, Loading: false, Err: nil}
		}
		st := h.state
		h.mu.Unlock()
		h.publish(st)
	}()
}

func (h *Hook[T]) publish(st State[T]) {
	for {
		select {
		case h.updates <- st:
			return
		default:
		}
		select {
		case <-h.updates:
		default:
		}
	}
}
