package utils

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkload(t *testing.T) {
	for _, tc := range []struct {
		records, threads int
		want             []Range
	}{
		{400, 4, []Range{{0, 100}, {100, 200}, {200, 300}, {300, 400}}},
		{250, 4, []Range{{0, 125}, {125, 250}}},
		{50, 8, []Range{{0, 50}}},
		{1003, 2, []Range{{0, 501}, {501, 1003}}},
	} {
		rs, err := Workload(tc.records, tc.threads)
		require.NoError(t, err)
		assert.Equal(t, tc.want, rs, "%d records, %d threads", tc.records, tc.threads)
	}

	_, err := Workload(0, 1)
	assert.Error(t, err)
	_, err = Workload(10, -1)
	assert.Error(t, err)
}

func TestWorkloadCovers(t *testing.T) {
	for _, records := range []int{1, 99, 100, 101, 999, 12345} {
		rs, err := Workload(records, 0)
		require.NoError(t, err)

		next := 0
		for _, r := range rs {
			assert.Equal(t, next, r.Low)
			assert.True(t, r.Len() > 0)
			next = r.High
		}
		assert.Equal(t, records, next)
	}
}

func TestThreads(t *testing.T) {
	assert.Equal(t, 3, Threads(3))

	want := runtime.NumCPU()
	if want > 1 {
		want++
	}
	assert.Equal(t, want, Threads(0))
}

func TestForkJoin(t *testing.T) {
	var count int64
	seen := make([]bool, 8)

	err := ForkJoin(len(seen), func(i int) error {
		atomic.AddInt64(&count, 1)
		seen[i] = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)
	for i := range seen {
		assert.True(t, seen[i], "worker %d didn't run", i)
	}
}

func TestForkJoinError(t *testing.T) {
	bad := errors.New("bad record")

	err := ForkJoin(4, func(i int) error {
		if i == 2 {
			return bad
		}
		return nil
	})
	assert.Equal(t, bad, err)

	err = ForkJoin(1, func(i int) error { return bad })
	assert.Equal(t, bad, err)
}

func TestForkJoinPanic(t *testing.T) {
	for _, n := range []int{1, 3} {
		err := ForkJoin(n, func(i int) error {
			if i == 0 {
				panic("index out of range")
			}
			return nil
		})

		require.Error(t, err)
		assert.Equal(t, "worker 0 panicked: index out of range", err.Error())
	}

	err := ForkJoin(2, func(i int) error {
		if i == 1 {
			panic(errors.New("bad weights"))
		}
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, "worker 1 panicked: bad weights", err.Error())
}
