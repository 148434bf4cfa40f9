// Package queue defines the contract for enqueuing and consuming uploaded
// stat rows.
//
// Implementations may use channels or more advanced structures. The MVP
// starts with an in-memory bounded queue.
package queue

import (
	"context"
	"sync"

	"github.com/okian/gridiron/internal/domain/model"
	"github.com/okian/gridiron/pkg/metrics"
)

// Default queue configuration constants.
const (
	defaultQueueCapacity = 100000
	defaultBufferSize    = 100000
)

// Row represents the payload type flowing through the queue.
// Using the model.StatRow type for type safety.
type Row = model.StatRow

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a row to the queue.
	// Returns false if the queue is full and the row was not enqueued.
	Enqueue(ctx context.Context, r Row) bool

	// Dequeue returns a channel that will receive rows as they become available.
	// The channel will be closed when the queue is closed.
	Dequeue(ctx context.Context) <-chan Row

	// Len returns the current number of queued rows.
	Len(ctx context.Context) int

	// Close gracefully shuts down the queue.
	// After closing, no new rows can be enqueued and the dequeue channel will be closed.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	rows       chan Row
	capacity   int
	bufferSize int
	mu         sync.RWMutex
	closed     bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity:   defaultQueueCapacity,
		bufferSize: defaultBufferSize,
	}

	for _, opt := range opts {
		opt(q)
	}

	// A capacity above the channel buffer could never fill; keep them in step.
	if q.capacity < q.bufferSize {
		q.bufferSize = q.capacity
	}
	q.rows = make(chan Row, q.bufferSize)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a row to the queue.
func (q *InMemoryQueue) Enqueue(ctx context.Context, r Row) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	if len(q.rows) >= q.capacity {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "capacity_exceeded")
		return false
	}

	select {
	case q.rows <- r:
		metrics.RecordQueueEnqueue()
		metrics.UpdateQueueSize(len(q.rows))
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "queue_full")
		return false
	}
}

// Dequeue returns a channel that will receive rows as they become available.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Row {
	out := make(chan Row)
	go func() {
		defer close(out)
		for row := range q.rows {
			select {
			case out <- row:
				metrics.RecordQueueDequeue()
				metrics.UpdateQueueSize(len(q.rows))
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued rows.
func (q *InMemoryQueue) Len(ctx context.Context) int {
	size := len(q.rows)
	metrics.UpdateQueueSize(size)
	return size
}

// Close gracefully shuts down the queue.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	close(q.rows)
	q.closed = true

	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
