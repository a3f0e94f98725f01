// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"testing"

	"code.hybscloud.com/ringq"
)

func TestBuildSelection(t *testing.T) {
	if _, ok := ringq.Build[int](ringq.New(8)).(*ringq.Ring[int]); !ok {
		t.Error("Build: want *Ring without Shared()")
	}
	if _, ok := ringq.Build[int](ringq.New(8).Shared()).(*ringq.Locked[int]); !ok {
		t.Error("Build: want *Locked with Shared()")
	}

	if q := ringq.BuildRing[int](ringq.New(ringq.DefaultCapacity)); q.Cap() != 10 {
		t.Errorf("BuildRing Cap: got %d, want 10", q.Cap())
	}
	if q := ringq.BuildLocked[int](ringq.New(5)); q.Cap() != 5 {
		t.Errorf("BuildLocked Cap: got %d, want 5", q.Cap())
	}
}

func TestBuildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"New(1)", func() { ringq.New(1) }},
		{"New(0)", func() { ringq.New(0) }},
		{"BuildRing(Shared)", func() { ringq.BuildRing[int](ringq.New(4).Shared()) }},
		{"NewLocked(1)", func() { ringq.NewLocked[int](1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

// TestQueueInterface tests Ring and Locked through the shared interface.
func TestQueueInterface(t *testing.T) {
	for _, b := range []*ringq.Builder{ringq.New(3), ringq.New(3).Shared()} {
		q := ringq.Build[string](b)

		a, c := "a", "c"
		if err := q.Enqueue(&a); err != nil {
			t.Fatalf("%T Enqueue: %v", q, err)
		}
		if err := q.Enqueue(&c); err != nil {
			t.Fatalf("%T Enqueue: %v", q, err)
		}
		if err := q.Enqueue(&a); !ringq.IsWouldBlock(err) {
			t.Fatalf("%T Enqueue on full: got %v, want ErrWouldBlock", q, err)
		}
		if q.Count() != 2 || q.Empty() {
			t.Fatalf("%T Count=%d Empty=%v", q, q.Count(), q.Empty())
		}
		if got, ok := q.Dequeue(); !ok || got != "a" {
			t.Fatalf("%T Dequeue: got (%q, %v)", q, got, ok)
		}
	}
}
