// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

// Options configures queue creation.
type Options struct {
	// Sharing (selects Ring or Locked)
	shared bool

	// Slot count N; at most N-1 elements are live
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Single-owner ring
//	q := ringq.BuildRing[Event](ringq.New(ringq.DefaultCapacity))
//
//	// Ring shared between goroutines
//	q := ringq.BuildLocked[Request](ringq.New(64).Shared())
//
//	// Let the builder choose
//	q := ringq.Build[Event](ringq.New(64))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given slot count.
//
// Capacity is used as given: New(10) builds queues holding up to 9 elements.
//
// Panics if capacity < 2.
func New(capacity int) *Builder {
	if capacity < 2 {
		panic("ringq: capacity must be >= 2")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Shared declares that more than one goroutine will use the queue.
// Selects [Locked] instead of [Ring].
func (b *Builder) Shared() *Builder {
	b.opts.shared = true
	return b
}

// Build creates a Queue[T].
//
// Selection:
//
//	Shared → Locked (spin-locked ring)
//	default → Ring (single owner)
//
// For concrete return types, use:
//   - BuildRing[T](b) → *Ring[T]
//   - BuildLocked[T](b) → *Locked[T]
func Build[T any](b *Builder) Queue[T] {
	if b.opts.shared {
		return NewLocked[T](b.opts.capacity)
	}
	return NewRing[T](b.opts.capacity)
}

// BuildRing creates a single-owner ring.
// Panics if builder is configured with Shared().
func BuildRing[T any](b *Builder) *Ring[T] {
	if b.opts.shared {
		panic("ringq: BuildRing requires a builder without Shared()")
	}
	return NewRing[T](b.opts.capacity)
}

// BuildLocked creates a locked ring. Shared() is implied.
func BuildLocked[T any](b *Builder) *Locked[T] {
	return NewLocked[T](b.opts.capacity)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
