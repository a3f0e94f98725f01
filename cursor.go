// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Cursor walks the live elements of a [Ring] from oldest to newest.
//
// A cursor captures the ring's head and element count when created by
// [Ring.Iter] and reads slots in place; it does not copy the buffer. Any
// successful Enqueue, Dequeue or Reset on the ring invalidates the cursor:
// the next call to Next returns false and Err returns [ErrModified].
//
// Example:
//
//	for c := q.Iter(); c.Next(); {
//	    fmt.Println(*c.Value())
//	}
type Cursor[T any] struct {
	q    *Ring[T]
	pos  uint64 // Slot of the next element
	left uint64 // Elements not yet visited
	mod  uint64 // Ring modification count at creation
	cur  *T
	err  error
}

// Next advances to the next element.
// Returns false when the pass is complete or the ring was modified.
func (c *Cursor[T]) Next() bool {
	c.cur = nil
	if c.err != nil {
		return false
	}
	if c.mod != c.q.mod {
		c.err = ErrModified
		return false
	}
	if c.left == 0 {
		return false
	}

	c.cur = &c.q.buffer[c.pos]
	c.pos = c.q.wrap(c.pos + 1)
	c.left--
	return true
}

// Value returns a reference to the current element.
// It is nil before the first Next and after Next returns false.
// The reference points into the ring and is only meaningful until the
// ring is next modified.
func (c *Cursor[T]) Value() *T {
	return c.cur
}

// Err returns ErrModified if the pass stopped because the ring changed.
func (c *Cursor[T]) Err() error {
	return c.err
}
