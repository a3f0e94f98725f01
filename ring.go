// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "iter"

// DefaultCapacity is the slot count used when no other capacity is needed.
// A ring with DefaultCapacity slots holds at most 9 elements.
const DefaultCapacity = 10

// Ring is a single-owner bounded FIFO queue.
//
// Based on a circular buffer with head and tail indices taken modulo the
// slot count N. One slot stays unused so that head == tail always means
// empty; a ring holds at most N-1 elements. The buffer is allocated once
// in NewRing and never resized, and Dequeue never moves elements.
//
// Ring is not safe for concurrent use. Wrap it in [Locked] or guard it
// externally when it must be shared.
//
// The zero value is not usable; create rings with [NewRing].
//
// Memory: O(capacity), one allocation
type Ring[T any] struct {
	buffer []T
	n      uint64
	head   uint64 // Oldest live element
	tail   uint64 // Next free slot
	mod    uint64 // Bumped on every mutation, checked by cursors
}

// NewRing creates a new ring with capacity slots.
// Capacity is not rounded: NewRing[T](10) has 10 slots and holds 9 elements.
// Panics if capacity < 2.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}

	return &Ring[T]{
		buffer: make([]T, capacity),
		n:      uint64(capacity),
	}
}

// Enqueue copies *elem into the tail slot.
// Returns ErrFull, leaving the ring untouched, if it holds Cap()-1 elements.
func (q *Ring[T]) Enqueue(elem *T) error {
	next := q.wrap(q.tail + 1)
	if next == q.head {
		return ErrFull
	}

	q.buffer[q.tail] = *elem
	q.tail = next
	q.mod++
	return nil
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, false) if the ring is empty.
func (q *Ring[T]) Dequeue() (T, bool) {
	var zero T
	if q.head == q.tail {
		return zero, false
	}

	elem := q.buffer[q.head]
	q.buffer[q.head] = zero
	q.head = q.wrap(q.head + 1)
	q.mod++
	return elem, true
}

// Peek returns the oldest element without removing it.
// Returns (zero-value, false) if the ring is empty.
func (q *Ring[T]) Peek() (T, bool) {
	if q.head == q.tail {
		var zero T
		return zero, false
	}
	return q.buffer[q.head], true
}

// Count returns the number of live elements, in [0, Cap()-1].
func (q *Ring[T]) Count() int {
	return int(q.wrap(q.tail + q.n - q.head))
}

// Empty reports whether the ring holds no elements.
func (q *Ring[T]) Empty() bool {
	return q.head == q.tail
}

// Full reports whether the next Enqueue would return ErrFull.
func (q *Ring[T]) Full() bool {
	return q.wrap(q.tail+1) == q.head
}

// Free returns how many more elements Enqueue will accept.
func (q *Ring[T]) Free() int {
	return int(q.n) - 1 - q.Count()
}

// Cap returns the slot count N.
func (q *Ring[T]) Cap() int {
	return int(q.n)
}

// Reset drops every element and clears the buffer.
// Outstanding cursors are invalidated.
func (q *Ring[T]) Reset() {
	clear(q.buffer)
	q.head = 0
	q.tail = 0
	q.mod++
}

// Iter returns a cursor over the live elements, oldest first.
// Every call starts a fresh pass.
func (q *Ring[T]) Iter() *Cursor[T] {
	return &Cursor[T]{
		q:    q,
		pos:  q.head,
		left: q.wrap(q.tail + q.n - q.head),
		mod:  q.mod,
	}
}

// Values returns an iterator over copies of the live elements, oldest first.
//
// Modifying the ring while ranging over Values panics with ErrModified on
// the following step.
func (q *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := q.Iter()
		for c.Next() {
			if !yield(*c.Value()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}

// appendTo appends the live elements to dst in FIFO order.
func (q *Ring[T]) appendTo(dst []T) []T {
	if q.head <= q.tail {
		return append(dst, q.buffer[q.head:q.tail]...)
	}
	dst = append(dst, q.buffer[q.head:]...)
	return append(dst, q.buffer[:q.tail]...)
}

func (q *Ring[T]) wrap(i uint64) uint64 {
	return i % q.n
}
