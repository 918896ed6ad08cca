// Package utils holds the work partitioning shared by the concurrent parts of the library.
package utils

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MinPerWorker is the fewest records each worker is given by Workload, unless there are fewer
// records than that in total.
const MinPerWorker int = 100

// Range is a half-open range of indexes: [Low, High)
type Range struct {
	Low, High int
}

// Len returns the number of indexes in the Range
func (r Range) Len() int {
	return r.High - r.Low
}

// Threads returns the number of workers to use when the caller asked for the given number. Zero
// means one per CPU, plus one more on machines with more than one.
func Threads(requested int) int {
	if requested > 0 {
		return requested
	}

	n := runtime.NumCPU()
	if n > 1 {
		n++
	}

	return n
}

// Workload splits the records [0, records) into contiguous Ranges, one per worker. The number of
// workers is given by Threads(threads), reduced so that each worker has at least MinPerWorker
// records; there is always at least one worker. The last Range takes any remainder.
func Workload(records, threads int) ([]Range, error) {
	if records < 1 {
		return nil, errors.Errorf("Can't divide %d records between workers", records)
	} else if threads < 0 {
		return nil, errors.Errorf("Number of threads must be >= 0 (%d)", threads)
	}

	n := Threads(threads)
	if records/n < MinPerWorker {
		n = records / MinPerWorker
		if n < 1 {
			n = 1
		}
	}

	size := records / n
	rs := make([]Range, n)
	for i := range rs {
		rs[i] = Range{i * size, (i + 1) * size}
	}
	rs[n-1].High = records

	return rs, nil
}

// ForkJoin runs f(0), f(1), ... f(n-1), each in its own goroutine, and waits for all of them to
// finish. If one or more return an error, the first of them is returned. A panic inside f is
// recovered and returned as an error, so that it reaches the caller instead of crashing the
// program.
//
// With n == 1, f is run in the calling goroutine.
func ForkJoin(n int, f func(int) error) error {
	if n == 1 {
		return protect(0, f)
	}

	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return protect(i, f)
		})
	}

	return g.Wait()
}

func protect(i int, f func(int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("worker %d panicked: %v", i, r)
		}
	}()

	return f(i)
}
