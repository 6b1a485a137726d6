// Package dispatch runs storage work off the caller's goroutine.
//
// A Queue owns one worker goroutine that executes submitted tasks strictly in
// submission order, so writes issued by one session never overtake each
// other. Submit hands back a Future the caller waits on.
package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/hitec/nhplus/internal/common"
)

type task func()

// Queue is a single-worker FIFO task queue.
type Queue struct {
	mu     sync.RWMutex
	closed bool
	tasks  chan task
	done   chan struct{}
}

// NewQueue starts a queue buffering up to size pending tasks.
func NewQueue(size int) *Queue {
	if size < 0 {
		size = 0
	}
	q := &Queue{
		tasks: make(chan task, size),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for t := range q.tasks {
		t()
	}
}

// Close stops accepting tasks, runs the ones already queued and waits for
// the worker to exit. It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	<-q.done
}

// Future is the pending result of a submitted task.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task finished or ctx is done. Cancelling ctx does not
// cancel the task itself.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Submit queues fn and returns its Future. fn receives ctx; if ctx is already
// done when the task is reached, fn is skipped and the Future carries
// ctx.Err(). A panic in fn is turned into an error. After Close every Future
// fails with common.ErrorQueueClosed.
func Submit[T any](ctx context.Context, q *Queue, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	t := func() {
		var zero T
		if err := ctx.Err(); err != nil {
			f.resolve(zero, err)
			return
		}
		defer func() {
			if p := recover(); p != nil {
				f.resolve(zero, fmt.Errorf("task panicked: %v", p))
			}
		}()
		v, err := fn(ctx)
		f.resolve(v, err)
	}

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		var zero T
		f.resolve(zero, common.ErrorQueueClosed)
		return f
	}
	q.tasks <- t
	return f
}

// Do submits fn and waits for its result.
func Do[T any](ctx context.Context, q *Queue, fn func(ctx context.Context) (T, error)) (T, error) {
	return Submit(ctx, q, fn).Wait(ctx)
}
