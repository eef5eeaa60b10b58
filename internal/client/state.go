package client

import (
	"fmt"
	"sync"
)

// Phase is the lifecycle of one asynchronous action.
type Phase string

const (
	Idle      Phase = "idle"
	Pending   Phase = "pending"
	Succeeded Phase = "succeeded"
	Failed    Phase = "failed"
)

// ErrActionPending is returned by Begin while a previous invocation of the
// same action is still in flight.
var ErrActionPending = fmt.Errorf("action already in progress")

// Action tracks the state of a single user-triggered operation. Each action
// allows at most one pending invocation at a time; distinct actions are
// independent, so a delivery may run while a generation is pending.
type Action[T any] struct {
	mu     sync.Mutex
	phase  Phase
	result T
	err    error
}

// NewAction returns an action in the idle phase.
func NewAction[T any]() *Action[T] {
	return &Action[T]{phase: Idle}
}

// Begin moves the action to pending and clears the previous error. It fails
// with ErrActionPending when an invocation is already outstanding.
func (a *Action[T]) Begin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase == Pending {
		return ErrActionPending
	}
	a.phase = Pending
	a.err = nil
	return nil
}

// Succeed records the result and moves to succeeded. The stored result is
// replaced as a whole; callers never observe a blend of old and new values.
func (a *Action[T]) Succeed(result T) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.phase = Succeeded
	a.result = result
	a.err = nil
}

// Fail records the error and moves to failed, keeping any previous result
// out of view.
func (a *Action[T]) Fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.phase = Failed
	var zero T
	a.result = zero
	a.err = err
}

// Phase returns the current lifecycle phase.
func (a *Action[T]) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Result returns the last successful result and whether one is held.
func (a *Action[T]) Result() (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.phase == Succeeded
}

// Err returns the most recent error, or nil outside the failed phase.
func (a *Action[T]) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != Failed {
		return nil
	}
	return a.err
}
