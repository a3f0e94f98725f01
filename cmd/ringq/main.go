// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringq enqueues integers into a bounded ring and prints them back
// in FIFO order.
//
// Usage:
//
//	ringq [-n SLOTS] [VALUE...]
//
// With no values it enqueues 3 2 1. A ring with SLOTS slots holds at most
// SLOTS-1 values; enqueueing more fails with exit status 1.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"code.hybscloud.com/ringq"
)

var nFlag = flag.Int("n", ringq.DefaultCapacity, "number of ring slots (>= 2)")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ringq [-n SLOTS] [VALUE...]\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *nFlag < 2 {
		fmt.Fprintf(os.Stderr, "ringq: -n must be >= 2, got %d\n", *nFlag)
		os.Exit(2)
	}

	values, err := parseValues(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringq: %v\n", err)
		os.Exit(2)
	}

	if err := run(os.Stdout, *nFlag, values); err != nil {
		fmt.Fprintf(os.Stderr, "ringq: %v\n", err)
		os.Exit(1)
	}
}

func parseValues(args []string) ([]int, error) {
	if len(args) == 0 {
		return []int{3, 2, 1}, nil
	}
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func run(w io.Writer, slots int, values []int) error {
	q := ringq.NewRing[int](slots)
	for i := range values {
		if err := q.Enqueue(&values[i]); err != nil {
			return fmt.Errorf("value %d of %d: %w", i+1, len(values), err)
		}
	}

	sum := 0
	for c := q.Iter(); c.Next(); {
		fmt.Fprintf(w, "Item is %d\n", *c.Value())
		sum += *c.Value()
	}
	fmt.Fprintf(w, "Count: %d, Sum: %d\n", q.Count(), sum)
	return nil
}
