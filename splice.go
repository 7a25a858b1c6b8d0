package strq

// File splice.go contains the link primitives. Every operation
// that restructures the ring is written in terms of these, so that
// next/prev consistency only has to be maintained here. None of the
// primitives touch Queue.size; callers account for that.

// link inserts the detached element e immediately after at.
func (q *Queue) link(e, at *Element) {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	e.q = q
}

// unlink removes e from the ring, leaving it detached.
func (q *Queue) unlink(e *Element) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil // avoid memory leaks
	e.prev = nil // avoid memory leaks
	e.q = nil
}

// move relinks e, which must be linked in q, immediately after at.
// It is a no-op if e is at or already follows at.
func (q *Queue) move(e, at *Element) {
	if e == at || at.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	q.link(e, at)
}

// cut detaches the linked range first..last (inclusive, in next
// order) and closes the gap. The range keeps its internal links;
// first.prev and last.next are left pointing at the old neighbours.
func (q *Queue) cut(first, last *Element) {
	first.prev.next = last.next
	last.next.prev = first.prev
}

// release unlinks e and returns its storage to its allocator.
func (q *Queue) release(e *Element) {
	q.unlink(e)
	q.size--
	e.Release()
}

// open detaches every element from the sentinel and returns the
// first of them as a nil-terminated chain threaded through next.
// The queue is left empty (self-linked sentinel) but q.size is not
// changed. It returns nil if the queue has no elements.
func (q *Queue) open() *Element {
	if q.sentinel.next == &q.sentinel {
		return nil
	}
	first := q.sentinel.next
	q.sentinel.prev.next = nil
	q.sentinel.next = &q.sentinel
	q.sentinel.prev = &q.sentinel
	return first
}

// close appends the nil-terminated chain starting at first to the
// tail of the ring, rebuilding every prev link and ownership, and
// returns the number of elements appended.
func (q *Queue) close(first *Element) int {
	var n int
	at := q.sentinel.prev
	for e := first; e != nil; {
		next := e.next
		e.prev = at
		at.next = e
		e.q = q
		at = e
		e = next
		n++
	}
	at.next = &q.sentinel
	q.sentinel.prev = at
	return n
}
