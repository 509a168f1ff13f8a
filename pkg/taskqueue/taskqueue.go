// Package taskqueue chains dependent steps and runs them strictly in order.
//
// Every step receives the value produced by the step before it. The first
// failing step cancels the queue: no later step runs and the completion
// callback never fires. The owner of a queue may also cancel it explicitly,
// typically from inside a step that has already produced the answer the
// pipeline was looking for.
package taskqueue

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrCancelled is returned by Run when the queue was cancelled by its owner.
	ErrCancelled = errors.New("task queue cancelled")
	// ErrAlreadyRun is returned when a queue is run twice or modified after Run.
	ErrAlreadyRun = errors.New("task queue already run")
)

// Step is one unit of work. It gets the previous step's output and returns its own.
type Step[T any] func(ctx context.Context, in T) (T, error)

// Queue is a single-use ordered chain of steps.
type Queue[T any] struct {
	mu        sync.Mutex
	steps     []Step[T]
	started   bool
	cancelled bool
	onCancel  func()
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Each builds a queue with one step per item, invoking fn for the items in order.
func Each[E any](items []E, fn func(context.Context, E) error) *Queue[struct{}] {
	q := New[struct{}]()
	for _, item := range items {
		q.steps = append(q.steps, func(ctx context.Context, in struct{}) (struct{}, error) {
			return in, fn(ctx, item)
		})
	}
	return q
}

// Add registers a step. Steps can only be added before Run.
func (q *Queue[T]) Add(step Step[T]) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return ErrAlreadyRun
	}
	q.steps = append(q.steps, step)
	return nil
}

// OnCancel sets a hook invoked once when the queue becomes cancelled.
func (q *Queue[T]) OnCancel(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onCancel = fn
}

// Len returns the number of registered steps.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.steps)
}

// Cancel stops the queue. Steps that have not started will never run.
// It is safe to call from within a step and more than once.
func (q *Queue[T]) Cancel() {
	q.mu.Lock()
	if q.cancelled {
		q.mu.Unlock()
		return
	}
	q.cancelled = true
	hook := q.onCancel
	q.mu.Unlock()

	if hook != nil {
		hook()
	}
}

// Cancelled reports whether the queue has been cancelled.
func (q *Queue[T]) Cancelled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.cancelled
}

// Run executes the steps in registration order. done fires only when every
// step succeeded and nobody cancelled the queue.
func (q *Queue[T]) Run(ctx context.Context, done func()) error {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return ErrAlreadyRun
	}
	q.started = true
	steps := q.steps
	q.mu.Unlock()

	var value T
	for _, step := range steps {
		if q.Cancelled() {
			return ErrCancelled
		}
		if err := ctx.Err(); err != nil {
			q.Cancel()
			return err
		}
		out, err := step(ctx, value)
		if err != nil {
			q.Cancel()
			return err
		}
		value = out
	}

	if q.Cancelled() {
		return ErrCancelled
	}
	if done != nil {
		done()
	}
	return nil
}
