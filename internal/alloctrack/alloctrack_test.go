package alloctrack_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neilotoole/strq"
	"github.com/neilotoole/strq/internal/alloctrack"
)

var _ strq.Allocator = (*alloctrack.Tracker)(nil)

func TestTracker(t *testing.T) {
	tr := alloctrack.New()
	require.False(t, tr.Live())

	q, err := strq.New(strq.WithAllocator(tr))
	require.NoError(t, err)
	require.NoError(t, q.InsertTail("abc"))
	require.NoError(t, q.InsertTail("de"))
	require.Equal(t, alloctrack.Stats{Queues: 1, Elements: 2, Bytes: 5}, tr.Stats())

	e := q.RemoveHead(nil)
	require.Equal(t, 2, tr.Stats().Elements)
	e.Release()
	require.Equal(t, alloctrack.Stats{Queues: 1, Elements: 1, Bytes: 2}, tr.Stats())

	// Releasing twice is a no-op: the element forgets its allocator.
	e.Release()
	require.Zero(t, tr.Stats().DoubleFrees)

	q.Destroy()
	require.False(t, tr.Live())
	require.Equal(t, alloctrack.Stats{}, tr.Stats())
}

func TestTracker_FailAfter(t *testing.T) {
	tr := alloctrack.New()
	tr.FailAfter(3)

	q, err := strq.New(strq.WithAllocator(tr))
	require.NoError(t, err)
	require.NoError(t, q.InsertTail("a"))
	require.NoError(t, q.InsertTail("b"))
	require.ErrorIs(t, q.InsertTail("c"), alloctrack.ErrExhausted)
	require.ErrorIs(t, q.InsertTail("c"), strq.ErrAllocation)
	require.Equal(t, []string{"a", "b"}, q.Values())

	tr.FailAfter(-1)
	require.NoError(t, q.InsertTail("c"))
	q.Destroy()
	require.False(t, tr.Live())
}

func TestTracker_doubleFree(t *testing.T) {
	tr := alloctrack.New()
	q, err := strq.New(strq.WithAllocator(tr))
	require.NoError(t, err)
	q.Destroy()
	tr.FreeQueue(q)
	require.Equal(t, 1, tr.Stats().DoubleFrees)

	tr.FreeElement(&strq.Element{})
	require.Equal(t, 2, tr.Stats().DoubleFrees)
}
