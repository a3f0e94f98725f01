// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Locked is a [Ring] guarded by a spin lock, for queues shared between
// goroutines.
//
// Every operation takes the lock for a constant number of steps, so
// contention is short and a CPU pause loop beats parking the goroutine.
// Locked has no cursor; use Snapshot to read the live elements.
//
// Memory: O(capacity) plus two cache lines of padding
type Locked[T any] struct {
	_     pad
	state atomix.Uint64 // 0 unlocked, 1 locked
	_     padShort
	ring  Ring[T]
}

// NewLocked creates a new locked ring with capacity slots.
// Panics if capacity < 2.
func NewLocked[T any](capacity int) *Locked[T] {
	l := &Locked[T]{}
	l.ring = *NewRing[T](capacity)
	return l
}

func (l *Locked[T]) lock() {
	sw := spin.Wait{}
	for !l.state.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (l *Locked[T]) unlock() {
	l.state.StoreRelease(0)
}

// Enqueue copies *elem into the tail slot.
// Returns ErrFull if the ring holds Cap()-1 elements.
func (l *Locked[T]) Enqueue(elem *T) error {
	l.lock()
	err := l.ring.Enqueue(elem)
	l.unlock()
	return err
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, false) if the ring is empty.
func (l *Locked[T]) Dequeue() (T, bool) {
	l.lock()
	elem, ok := l.ring.Dequeue()
	l.unlock()
	return elem, ok
}

// Peek returns the oldest element without removing it.
func (l *Locked[T]) Peek() (T, bool) {
	l.lock()
	elem, ok := l.ring.Peek()
	l.unlock()
	return elem, ok
}

// Count returns the number of live elements at the time of the call.
func (l *Locked[T]) Count() int {
	l.lock()
	n := l.ring.Count()
	l.unlock()
	return n
}

// Empty reports whether the ring held no elements at the time of the call.
func (l *Locked[T]) Empty() bool {
	return l.Count() == 0
}

// Cap returns the slot count N.
func (l *Locked[T]) Cap() int {
	return l.ring.Cap()
}

// Reset drops every element.
func (l *Locked[T]) Reset() {
	l.lock()
	l.ring.Reset()
	l.unlock()
}

// Snapshot returns a copy of the live elements, oldest first.
func (l *Locked[T]) Snapshot() []T {
	l.lock()
	out := l.ring.appendTo(make([]T, 0, l.ring.Count()))
	l.unlock()
	return out
}

// EnqueueWait enqueues *elem, backing off while the ring is full.
// Returns ctx.Err() if ctx is done before space frees up.
func (l *Locked[T]) EnqueueWait(ctx context.Context, elem *T) error {
	backoff := iox.Backoff{}
	for {
		err := l.Enqueue(elem)
		if err == nil {
			return nil
		}
		if !IsWouldBlock(err) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		backoff.Wait()
	}
}

// DequeueWait dequeues the oldest element, backing off while the ring is
// empty. Returns ctx.Err() if ctx is done before an element arrives.
func (l *Locked[T]) DequeueWait(ctx context.Context) (T, error) {
	backoff := iox.Backoff{}
	for {
		if elem, ok := l.Dequeue(); ok {
			return elem, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		backoff.Wait()
	}
}
