// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/ringq"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, ringq.DefaultCapacity, []int{3, 2, 1}); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Item is 3\nItem is 2\nItem is 1\nCount: 3, Sum: 6\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\ngot  %q\nwant %q", got, want)
	}
}

func TestRunFull(t *testing.T) {
	var buf bytes.Buffer
	values := make([]int, ringq.DefaultCapacity)

	err := run(&buf, ringq.DefaultCapacity, values)
	if !errors.Is(err, ringq.ErrFull) {
		t.Fatalf("run: got %v, want ErrFull", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("output on failure: %q", buf.String())
	}
}

func TestParseValues(t *testing.T) {
	got, err := parseValues(nil)
	if err != nil || len(got) != 3 || got[0] != 3 {
		t.Fatalf("parseValues(nil): got %v, %v", got, err)
	}

	got, err = parseValues([]string{"7", "-102"})
	if err != nil || len(got) != 2 || got[1] != -102 {
		t.Fatalf("parseValues: got %v, %v", got, err)
	}

	if _, err := parseValues([]string{"x"}); err == nil {
		t.Fatal("parseValues(x): expected error")
	}
}
