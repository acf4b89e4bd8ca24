// Package loop provides the single event thread on which all synchronization state changes.
package loop

import (
	"context"
	"sync"
)

// Loop runs posted functions one at a time, in order, on the goroutine calling Run.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wakeup chan struct{}
}

// New creates an idle Loop.
func New() *Loop {
	return &Loop{wakeup: make(chan struct{}, 1)}
}

// Post enqueues fn without waiting for it to run. It never blocks.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wakeup <- struct{}{}:
	default:
	}
}

// Do enqueues fn and waits until it has run or ctx is done.
// It must not be called from a function running on the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.Post(func() {
		defer close(done)
		fn()
	})

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted functions until ctx is done.
// Functions still queued at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	for {
		for _, fn := range l.take() {
			if ctx.Err() != nil {
				return nil
			}
			fn()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-l.wakeup:
		}
	}
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch := l.queue
	l.queue = nil
	return batch
}
