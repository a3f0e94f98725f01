// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides a fixed-capacity FIFO queue backed by a circular
// buffer.
//
// A [Ring] owns a buffer of N slots allocated once at construction. Head and
// tail indices advance modulo N, so dequeued slots are reused and the ring
// can cycle indefinitely without allocating. One slot is always left empty
// to tell a full ring from an empty one: a ring with N slots holds at most
// N-1 elements.
//
// # Quick Start
//
//	q := ringq.NewRing[int](ringq.DefaultCapacity) // 10 slots, 9 elements
//
//	v := 7
//	if err := q.Enqueue(&v); err != nil {
//	    // ErrFull - apply backpressure
//	}
//
//	if elem, ok := q.Dequeue(); ok {
//	    fmt.Println(elem)
//	}
//
// Builder API selects the queue type:
//
//	q := ringq.Build[Event](ringq.New(64))          // → *Ring
//	q := ringq.Build[Event](ringq.New(64).Shared()) // → *Locked
//
// # Iteration
//
// [Ring.Iter] returns a [Cursor] over the live elements, oldest first. The
// cursor reads the buffer in place and yields references to the slots:
//
//	for c := q.Iter(); c.Next(); {
//	    fmt.Println("Item is", *c.Value())
//	}
//
// [Ring.Values] wraps the cursor for range-over-func:
//
//	sum := 0
//	for v := range q.Values() {
//	    sum += v
//	}
//
// Each call starts a new pass. A cursor is invalidated by any successful
// Enqueue, Dequeue or Reset made after it was created: Next returns false
// and Err returns [ErrModified]. Values panics with ErrModified instead.
// A rejected Enqueue or an empty Dequeue changes nothing and keeps cursors
// valid.
//
// # Error Handling
//
// Enqueue on a ring holding N-1 elements returns [ErrFull] and writes
// nothing. ErrFull wraps [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox]:
//
//	ringq.IsWouldBlock(err)  // true for ErrFull
//	ringq.IsSemantic(err)    // true if control flow signal
//	ringq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Dequeue on an empty ring is not an error. It returns (zero-value, false),
// which differs from dequeuing a stored zero value, (zero-value, true).
//
// Construction panics if capacity < 2. Capacity is not rounded.
//
// # Thread Safety
//
// Ring is for a single owner and does no synchronization. Share it through
// [Locked], which guards a Ring with a spin lock, or through a lock of the
// caller's choosing:
//
//	q := ringq.NewLocked[Job](256)
//
//	go func() { // Producer
//	    for job := range jobs {
//	        if err := q.EnqueueWait(ctx, &job); err != nil {
//	            return
//	        }
//	    }
//	}()
//
//	for { // Consumer
//	    job, err := q.DequeueWait(ctx)
//	    if err != nil {
//	        return
//	    }
//	    handle(job)
//	}
//
// Locked offers [Locked.Snapshot] in place of cursors.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// backoff, [code.hybscloud.com/atomix] for the lock word with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package ringq
