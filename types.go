// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Queue is the combined producer-consumer interface for a bounded FIFO queue.
//
// Both [Ring] and [Locked] implement Queue. Enqueue returns [ErrFull] when
// the queue cannot accept another element; Dequeue reports an empty queue
// through its boolean result.
//
// Example:
//
//	q := ringq.NewRing[int](ringq.DefaultCapacity)
//
//	// Enqueue
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // Handle full queue
//	}
//
//	// Dequeue
//	if elem, ok := q.Dequeue(); ok {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Count returns the number of live elements.
	Count() int

	// Empty reports whether Count() == 0.
	Empty() bool

	// Cap returns the number of slots N. At most N-1 elements are live.
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. The queue
// stores a copy of the pointed-to value, so the original can be modified
// after Enqueue returns.
type Producer[T any] interface {
	// Enqueue appends a copy of *elem at the tail.
	// Returns nil on success, ErrFull if the queue holds Cap()-1 elements.
	// A failed Enqueue does not modify the queue.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The element is returned by value (copied from the queue's buffer). The
// vacated slot is cleared so the queue does not keep referenced objects alive.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, false) if the queue is empty. An empty queue is
	// not an error, and (zero-value, true) means a zero value was dequeued.
	Dequeue() (T, bool)
}
