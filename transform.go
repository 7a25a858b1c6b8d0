package strq

// DeleteMid deletes the middle element of q, releasing it. The
// middle is found by advancing a slow cursor one step and a fast
// cursor two steps from the first element until the fast cursor
// reaches the sentinel; for n elements this is the element at
// index n/2 (zero-based). DeleteMid returns false if q is nil or
// empty.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.size == 0 {
		return false
	}

	s := &q.sentinel
	slow, fast := s.next, s.next
	for fast != s && fast.next != s {
		slow = slow.next
		fast = fast.next.next
	}
	q.release(slow)
	return true
}

// DeleteDup deletes every run of two or more adjacent elements with
// equal values, keeping none of them. Elements that are not part of
// such a run keep their order. It is intended for sorted queues;
// equal values that are not adjacent are left alone.
//
// DeleteDup returns false, without changing q, if q is nil or has
// fewer than two elements.
func (q *Queue) DeleteDup() bool {
	if q == nil || q.size < 2 {
		return false
	}

	s := &q.sentinel
	for first := s.next; first != s; {
		last := first
		for last.next != s && last.next.Value == first.Value {
			last = last.next
		}
		next := last.next
		if last != first {
			q.cut(first, last)
			for e := first; ; {
				following := e.next
				q.size--
				e.next, e.prev, e.q = nil, nil, nil
				e.Release()
				if e == last {
					break
				}
				e = following
			}
		}
		first = next
	}
	return true
}

// Swap exchanges the positions of each pair of adjacent elements,
// starting from the front. An odd trailing element stays put, so
// [a b c d e] becomes [b a d c e].
func (q *Queue) Swap() {
	if q == nil {
		return
	}

	s := &q.sentinel
	for a := s.next; a != s && a.next != s; a = a.next {
		q.move(a, a.next)
	}
}

// Reverse reverses the order of q's elements in place.
func (q *Queue) Reverse() {
	if q == nil {
		return
	}

	s := &q.sentinel
	e := s
	for {
		e.next, e.prev = e.prev, e.next
		e = e.prev // previously next
		if e == s {
			return
		}
	}
}

// ReverseK reverses the order of each consecutive group of k
// elements, starting from the front. A trailing group of fewer than
// k elements keeps its order. ReverseK is a no-op if k <= 1.
func (q *Queue) ReverseK(k int) {
	if q == nil || k <= 1 || q.size < k {
		return
	}

	s := &q.sentinel
	for before := s; ; {
		last := before
		for i := 0; i < k; i++ {
			last = last.next
			if last == s {
				return
			}
		}

		// Move each element of the group, in turn, to the front of
		// the group. The original first element ends up last.
		first := before.next
		for i := 1; i < k; i++ {
			q.move(first.next, before)
		}
		before = first
	}
}
