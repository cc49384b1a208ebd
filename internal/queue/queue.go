package queue

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("queue closed")

// BlockingQueue is an unbounded FIFO handing values from producers to
// consumers. Receive blocks while the queue is empty. Every value is
// delivered to exactly one receiver.
type BlockingQueue[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

func New[T any]() *BlockingQueue[T] {
	q := &BlockingQueue[T]{}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Send appends v to the tail and wakes one blocked receiver. It never
// blocks. Values sent after Close are dropped and Send reports false.
func (q *BlockingQueue[T]) Send(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.cond.Signal()
	return true
}

// Receive removes and returns the head of the queue, waiting until a value
// is available. It returns ctx.Err() when ctx is done first, and ErrClosed
// once the queue is closed and drained.
func (q *BlockingQueue[T]) Receive(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	// sync.Cond has no cancellable wait; wake every waiter so each one
	// re-checks its own context.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed && ctx.Err() == nil {
		q.cond.Wait()
	}

	if len(q.items) > 0 {
		return q.pop(), nil
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	return zero, ErrClosed
}

// TryReceive is the non-blocking form of Receive.
func (q *BlockingQueue[T]) TryReceive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	return q.pop(), true
}

func (q *BlockingQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Close releases every blocked receiver. Values already queued can still be
// received. Close is idempotent.
func (q *BlockingQueue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// pop must be called with mu held and the queue non-empty.
func (q *BlockingQueue[T]) pop() T {
	var zero T

	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}

	return v
}
