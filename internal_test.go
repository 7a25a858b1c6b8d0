package strq

// internal_test.go contains functions that
// expose internal state for testing.

// SetSize overwrites q's element count without touching the ring.
func SetSize(q *Queue, n int) {
	q.size = n
}

// Sentinel returns q's sentinel element.
func Sentinel(q *Queue) *Element {
	return &q.sentinel
}

// BreakPrev points e's prev link at to, breaking the ring.
func BreakPrev(e, to *Element) {
	e.prev = to
}
