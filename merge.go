package strq

import (
	"github.com/oleiade/lane/v2"
)

// Merge merges queues, each already sorted in the direction given by
// descend, into the first non-nil queue of the slice, and returns its
// resulting size. Elements are moved, not copied. Every other queue
// is left empty but usable; it may be reused or destroyed.
//
// Every value is kept, including duplicates. Elements that came from
// the same input keep their relative order; the order of equal
// values from different inputs is unspecified. Nil queues, and
// repeated occurrences of the same queue, are ignored.
func Merge(queues []*Queue, descend bool) int {
	var (
		dst    *Queue
		chains []*Element
		seen   = make(map[*Queue]struct{}, len(queues))
	)

	for _, q := range queues {
		if q == nil || q.alloc == nil {
			continue
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		if dst == nil {
			dst = q
		}
		if first := q.open(); first != nil {
			chains = append(chains, first)
		}
		q.size = 0
	}

	if dst == nil {
		return 0
	}

	// The priority queue holds the current head of each chain,
	// keyed by its value.
	var pq *lane.PriorityQueue[*Element, string]
	if descend {
		pq = lane.NewMaxPriorityQueue[*Element, string]()
	} else {
		pq = lane.NewMinPriorityQueue[*Element, string]()
	}
	for _, first := range chains {
		pq.Push(first, first.Value)
	}

	var head Element
	tail := &head
	for {
		e, _, ok := pq.Pop()
		if !ok {
			break
		}
		if next := e.next; next != nil {
			pq.Push(next, next.Value)
		}
		tail.next = e
		tail = e
	}
	tail.next = nil

	dst.size = dst.close(head.next)
	dst.getLog().Debug("Merged queues", "inputs", len(seen), "size", dst.size)
	return dst.size
}
