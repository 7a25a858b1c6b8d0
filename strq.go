// Package strq implements an in-memory queue of owned strings,
// built directly on a circular doubly-linked list. A sentinel
// element threads through the ring, so the first and last elements
// need no special casing, and there is no array backing.
//
// On top of constant-time insert and remove at both ends, a Queue
// can be restructured in place: delete the middle element, delete
// runs of duplicates, swap pairs, reverse whole or in groups of k,
// filter to a monotonic run, sort, and merge several sorted queues
// into one. None of these allocate elements; they only relink.
//
// A Queue is not safe for concurrent use. Callers that share a
// queue between goroutines must provide their own mutual
// exclusion; package syncq offers a wrapper that does so.
//
// The entrypoint to this package is strq.New.
package strq

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrAllocation is returned when the queue's Allocator cannot
// provide storage. The queue is left unchanged.
var ErrAllocation = errors.New("strq: allocation failed")

// ErrInvalidArgument is returned when an operation is invoked on a
// nil queue or with an unusable argument.
var ErrInvalidArgument = errors.New("strq: invalid argument")

// ErrElementLinked is returned when inserting an element that is
// still a member of a queue.
var ErrElementLinked = fmt.Errorf("%w: element is still linked", ErrInvalidArgument)

// ErrCorrupt is returned by Queue.Validate when the ring violates
// one of its invariants.
var ErrCorrupt = errors.New("strq: queue is corrupt")

// Queue is an ordered collection of strings held in a circular
// doubly-linked list. The zero value is not usable; use New.
//
// Every method is safe to call on a nil *Queue, in which case it
// does nothing and reports failure or emptiness.
type Queue struct {
	// sentinel anchors the ring. It never holds a value, and the
	// queue is empty iff sentinel links only to itself.
	sentinel Element

	// size is the number of elements linked into the ring,
	// excluding the sentinel.
	size int

	// alloc provides storage for elements, and takes back the
	// queue header on Destroy. It is nil once q is destroyed.
	alloc Allocator

	// log is the queue's logger. It may be nil; use getLog.
	log *slog.Logger
}

// New returns a new, empty Queue. If the configured Allocator
// cannot provide the queue header, an error wrapping ErrAllocation
// is returned.
func New(opts ...Option) (*Queue, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	q, err := cfg.alloc.AllocQueue()
	if err != nil {
		cfg.getLog().Warn("Failed to allocate queue", "error", err)
		return nil, fmt.Errorf("new queue: %w", errors.Join(ErrAllocation, err))
	}

	q.alloc = cfg.alloc
	q.log = cfg.log
	return q.init(), nil
}

// init initializes or clears the ring without releasing elements.
func (q *Queue) init() *Queue {
	q.sentinel.next = &q.sentinel
	q.sentinel.prev = &q.sentinel
	q.sentinel.q = q
	q.size = 0
	return q
}

// Destroy releases every element of q and then q itself. It is a
// no-op if q is nil or already destroyed. The queue must not be
// used after Destroy.
func (q *Queue) Destroy() {
	if q == nil || q.alloc == nil {
		return
	}

	var n int
	for e := q.sentinel.next; e != &q.sentinel && e != nil; {
		next := e.next
		e.next, e.prev, e.q = nil, nil, nil
		e.Release()
		e = next
		n++
	}

	q.getLog().Debug("Destroyed queue", "elements", n)
	a := q.alloc
	q.init()
	q.alloc = nil
	a.FreeQueue(q)
}

// Size returns the number of elements in q, or zero if q is nil.
func (q *Queue) Size() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Front returns the first element of q, or nil if q is nil or empty.
func (q *Queue) Front() *Element {
	if q == nil || q.size == 0 {
		return nil
	}
	return q.sentinel.next
}

// Back returns the last element of q, or nil if q is nil or empty.
func (q *Queue) Back() *Element {
	if q == nil || q.size == 0 {
		return nil
	}
	return q.sentinel.prev
}

// Values returns a copy of q's values, front to back.
func (q *Queue) Values() []string {
	if q == nil {
		return nil
	}
	vals := make([]string, 0, q.size)
	for e := q.sentinel.next; e != &q.sentinel; e = e.next {
		vals = append(vals, e.Value)
	}
	return vals
}

// Validate walks the ring in both directions and returns an error
// wrapping ErrCorrupt describing the first broken invariant: a
// next/prev mismatch, an element owned by another queue, or a walk
// length that differs from Size.
func (q *Queue) Validate() error {
	if q == nil {
		return nil
	}

	s := &q.sentinel
	var n int
	for e := s.next; e != s; e = e.next {
		switch {
		case e == nil:
			return fmt.Errorf("%w: nil next link after %d elements", ErrCorrupt, n)
		case e.prev == nil || e.prev.next != e:
			return fmt.Errorf("%w: element %d (%q) has inconsistent prev link", ErrCorrupt, n, e.Value)
		case e.q != q:
			return fmt.Errorf("%w: element %d (%q) is not owned by queue", ErrCorrupt, n, e.Value)
		}
		n++
		if n > q.size {
			return fmt.Errorf("%w: ring longer than size %d", ErrCorrupt, q.size)
		}
	}
	if s.prev == nil || s.prev.next != s {
		return fmt.Errorf("%w: sentinel has inconsistent prev link", ErrCorrupt)
	}
	if n != q.size {
		return fmt.Errorf("%w: walked %d elements, size is %d", ErrCorrupt, n, q.size)
	}

	n = 0
	for e := s.prev; e != s; e = e.prev {
		if e == nil || n >= q.size {
			return fmt.Errorf("%w: backward walk does not return to sentinel", ErrCorrupt)
		}
		n++
	}
	return nil
}
