package queue

import (
	"context"
	"errors"
	"sync"
)

// signal is a broadcast-only condition bound to the queue mutex. Unlike
// sync.Cond, a waiter can give up when its context is done.
//
// All methods must be called with the queue mutex held.
type signal struct {
	// nil until someone waits; closed and reset by broadcast.
	ch chan struct{}
}

// wait releases mu until the next broadcast or until ctx is done, then
// reacquires it. A nil error does not mean the caller's predicate holds.
func (s *signal) wait(ctx context.Context, mu *sync.Mutex) error {
	if s.ch == nil {
		s.ch = make(chan struct{})
	}
	ch := s.ch
	mu.Unlock()

	var err error
	select {
	case <-ch:
	case <-ctx.Done():
		err = errors.Join(ErrCancelled, context.Cause(ctx))
	}

	mu.Lock()
	return err
}

// broadcast wakes every goroutine currently in wait.
func (s *signal) broadcast() {
	if s.ch == nil {
		return
	}
	close(s.ch)
	s.ch = nil
}
