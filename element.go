package strq

// node is the intrusive link embedded in every Element, including
// the queue's sentinel. To simplify the implementation, the queue
// is a ring: the sentinel is both the next element of the last
// element and the previous element of the first.
type node struct {
	next, prev *Element
}

// Element is a single member of a Queue: an owned string value
// plus its links.
type Element struct {
	node

	// alloc is the Allocator that produced the element. It is nil
	// for a queue's sentinel.
	alloc Allocator

	// q is the queue the element is currently linked into, or nil
	// if the element is detached.
	q *Queue

	// Value is the element's owned copy of the inserted string.
	Value string
}

// Next returns the next element or nil.
func (e *Element) Next() *Element {
	if p := e.next; e.q != nil && p != &e.q.sentinel {
		return p
	}
	return nil
}

// Prev returns the previous element or nil.
func (e *Element) Prev() *Element {
	if p := e.prev; e.q != nil && p != &e.q.sentinel {
		return p
	}
	return nil
}

// Release returns e's storage to the Allocator that produced it.
// It is a no-op if e is nil or still linked into a queue. The
// element must not be used after Release.
func (e *Element) Release() {
	if e == nil || e.q != nil || e.alloc == nil {
		return
	}
	a := e.alloc
	e.alloc = nil
	a.FreeElement(e)
}
