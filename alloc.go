package strq

import (
	"strings"
	"sync"
)

// Allocator provides storage for queue headers and elements. It
// exists so that storage exhaustion can be reported, and so that
// tests can account for every allocation.
//
// An Allocator must be safe for concurrent use, as queues that
// share it may live on different goroutines.
type Allocator interface {
	// AllocQueue returns storage for a new queue header.
	AllocQueue() (*Queue, error)

	// FreeQueue releases a header obtained from AllocQueue.
	FreeQueue(q *Queue)

	// AllocElement returns a detached element holding an owned
	// copy of value. The queue records itself as the element's
	// allocator, so that Element.Release reaches the Allocator the
	// queue was configured with.
	AllocElement(value string) (*Element, error)

	// FreeElement releases an element obtained from AllocElement.
	FreeElement(e *Element)
}

// DefaultAllocator is the Allocator used by New unless WithAllocator
// is supplied. It recycles element storage via a sync.Pool.
var DefaultAllocator Allocator = &poolAllocator{
	elements: sync.Pool{New: func() any { return new(Element) }},
}

var _ Allocator = (*poolAllocator)(nil)

type poolAllocator struct {
	elements sync.Pool
}

// AllocQueue implements Allocator.
func (a *poolAllocator) AllocQueue() (*Queue, error) {
	return &Queue{}, nil
}

// FreeQueue implements Allocator. Queue headers are left to the
// garbage collector.
func (a *poolAllocator) FreeQueue(*Queue) {}

// AllocElement implements Allocator.
func (a *poolAllocator) AllocElement(value string) (*Element, error) {
	e := a.elements.Get().(*Element)
	e.Value = strings.Clone(value)
	return e, nil
}

// FreeElement implements Allocator.
func (a *poolAllocator) FreeElement(e *Element) {
	*e = Element{}
	a.elements.Put(e)
}
