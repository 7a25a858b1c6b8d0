package strq_test

// File helper_test.go contains test helper functionality.

import (
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/neilotoole/strq"
	"github.com/neilotoole/strq/internal/alloctrack"
)

// trackers holds the allocation tracker of each running test.
var trackers sync.Map // testing.TB -> *alloctrack.Tracker

// tracker returns the allocation tracker shared by every queue that
// newQueue creates for t. Elements may move between those queues, so
// accounting is per test rather than per queue. The test fails at
// cleanup, after its queues are destroyed, if any storage is live.
func tracker(t testing.TB) *alloctrack.Tracker {
	t.Helper()
	if v, ok := trackers.Load(t); ok {
		return v.(*alloctrack.Tracker)
	}

	tr := alloctrack.New()
	trackers.Store(t, tr)
	t.Cleanup(func() {
		trackers.Delete(t)
		stats := tr.Stats()
		require.Zero(t, stats.Queues, "live queues")
		require.Zero(t, stats.Elements, "live elements")
		require.Zero(t, stats.Bytes, "live bytes")
		require.Zero(t, stats.DoubleFrees, "double frees")
	})
	return tr
}

// newQueue returns a new queue holding vals, front to back. The queue
// is destroyed at cleanup.
func newQueue(t testing.TB, vals ...string) *strq.Queue {
	t.Helper()
	q, err := strq.New(strq.WithAllocator(tracker(t)))
	require.NoError(t, err)
	t.Cleanup(q.Destroy)

	for _, v := range vals {
		require.NoError(t, q.InsertTail(v))
	}
	return q
}

// requireValues fails t if q is not a valid ring holding exactly
// want, front to back. The ring is walked backwards too.
func requireValues(t testing.TB, q *strq.Queue, want ...string) {
	t.Helper()
	require.NoError(t, q.Validate())
	if len(want) == 0 {
		want = []string{}
	}
	require.Equal(t, want, q.Values())
	require.Equal(t, len(want), q.Size())

	got := make([]string, 0, len(want))
	for e := q.Back(); e != nil; e = e.Prev() {
		got = append(got, e.Value)
	}
	require.Equal(t, lo.Reverse(append([]string{}, want...)), got)
}

// elements returns q's elements, front to back.
func elements(q *strq.Queue) []*strq.Element {
	var elems []*strq.Element
	for e := q.Front(); e != nil; e = e.Next() {
		elems = append(elems, e)
	}
	return elems
}

// randomValues returns n values drawn from a small alphabet, so that
// duplicates are common.
func randomValues(r *rand.Rand, n, alphabet int) []string {
	return lo.Times(n, func(int) string {
		return strconv.Itoa(r.Intn(alphabet))
	})
}

// digits returns the decimal representations of vals.
func digits(vals ...int) []string {
	return lo.Map(vals, func(v, _ int) string {
		return strconv.Itoa(v)
	})
}

// requireSame fails t unless got holds exactly the elements of want,
// by identity, in the same order.
func requireSame(t testing.TB, want, got []*strq.Element) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Same(t, want[i], got[i], "element %d", i)
	}
}
