// Package alloctrack provides an strq.Allocator that accounts for
// every queue and element it hands out, and that can be armed to
// fail. It exists so that tests can verify that storage is released,
// and can exercise allocation failure paths.
package alloctrack

import (
	"errors"
	"sync"

	"github.com/neilotoole/strq"
)

// ErrExhausted is returned by a Tracker whose allocation budget,
// set via Tracker.FailAfter, has been used up.
var ErrExhausted = errors.New("alloctrack: allocation budget exhausted")

var _ strq.Allocator = (*Tracker)(nil)

// Tracker wraps an strq.Allocator and counts live allocations.
// The zero value wraps strq.DefaultAllocator and never fails.
type Tracker struct {
	// Alloc is the underlying allocator. If nil,
	// strq.DefaultAllocator is used.
	Alloc strq.Allocator

	mu       sync.Mutex
	queues   map[*strq.Queue]struct{}
	elements map[*strq.Element]int

	bytes int

	// budget is the number of allocations remaining before
	// failure. It applies only if limited is true.
	budget  int
	limited bool

	// doubleFree counts frees of storage that isn't live.
	doubleFree int
}

// New returns a Tracker that wraps strq.DefaultAllocator.
func New() *Tracker {
	return &Tracker{}
}

func (t *Tracker) alloc() strq.Allocator {
	if t.Alloc == nil {
		return strq.DefaultAllocator
	}
	return t.Alloc
}

func (t *Tracker) lazyInit() {
	if t.queues == nil {
		t.queues = map[*strq.Queue]struct{}{}
		t.elements = map[*strq.Element]int{}
	}
}

// FailAfter arms t so that, after n more successful allocations,
// every allocation fails with ErrExhausted. A negative n disarms t.
func (t *Tracker) FailAfter(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.budget = n
	t.limited = n >= 0
}

// take consumes one unit of budget, reporting false if none is left.
func (t *Tracker) take() bool {
	if !t.limited {
		return true
	}
	if t.budget == 0 {
		return false
	}
	t.budget--
	return true
}

// AllocQueue implements strq.Allocator.
func (t *Tracker) AllocQueue() (*strq.Queue, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lazyInit()
	if !t.take() {
		return nil, ErrExhausted
	}

	q, err := t.alloc().AllocQueue()
	if err != nil {
		return nil, err
	}
	t.queues[q] = struct{}{}
	return q, nil
}

// FreeQueue implements strq.Allocator.
func (t *Tracker) FreeQueue(q *strq.Queue) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lazyInit()
	if _, ok := t.queues[q]; !ok {
		t.doubleFree++
		return
	}
	delete(t.queues, q)
	t.alloc().FreeQueue(q)
}

// AllocElement implements strq.Allocator.
func (t *Tracker) AllocElement(value string) (*strq.Element, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lazyInit()
	if !t.take() {
		return nil, ErrExhausted
	}

	e, err := t.alloc().AllocElement(value)
	if err != nil {
		return nil, err
	}
	t.elements[e] = len(value)
	t.bytes += len(value)
	return e, nil
}

// FreeElement implements strq.Allocator.
func (t *Tracker) FreeElement(e *strq.Element) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lazyInit()
	n, ok := t.elements[e]
	if !ok {
		t.doubleFree++
		return
	}
	delete(t.elements, e)
	t.bytes -= n
	t.alloc().FreeElement(e)
}

// Stats is a snapshot of a Tracker's accounting.
type Stats struct {
	// Queues is the number of live queue headers.
	Queues int

	// Elements is the number of live elements.
	Elements int

	// Bytes is the total length of the values held by live elements.
	Bytes int

	// DoubleFrees is the number of frees of storage that was not live.
	DoubleFrees int
}

// Stats returns a snapshot of t's accounting.
func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Queues:      len(t.queues),
		Elements:    len(t.elements),
		Bytes:       t.bytes,
		DoubleFrees: t.doubleFree,
	}
}

// Live reports whether any queue or element allocated by t has not
// yet been freed.
func (t *Tracker) Live() bool {
	s := t.Stats()
	return s.Queues > 0 || s.Elements > 0
}
