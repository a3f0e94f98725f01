// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// It is a control flow signal, not a failure. The caller should retry later
// (with backoff or after consuming elements) rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by Enqueue when the queue already holds Cap()-1
// elements. Nothing is written and no index moves.
//
// ErrFull wraps [ErrWouldBlock], so both errors.Is(err, ErrFull) and
// IsWouldBlock(err) hold:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Enqueue(&item)
//	    if err == nil {
//	        break
//	    }
//	    if !ringq.IsWouldBlock(err) {
//	        return err
//	    }
//	    drain(q)
//	    backoff.Wait()
//	}
var ErrFull = fmt.Errorf("ringq: queue full: %w", ErrWouldBlock)

// ErrModified is reported by a [Cursor] whose queue was enqueued to,
// dequeued from, or reset after the cursor was created.
var ErrModified = errors.New("ringq: queue modified during iteration")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
