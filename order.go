package strq

// Values are ordered by plain Go string comparison, which is
// byte-wise lexicographic.

// inOrder returns a function reporting whether a may precede b in a
// queue sorted in the given direction. Equal values are always in
// order, which is what makes mergeChains stable.
func inOrder(descend bool) func(a, b string) bool {
	if descend {
		return func(a, b string) bool { return a >= b }
	}
	return func(a, b string) bool { return a <= b }
}

// Sort sorts q in ascending order, or in descending order if descend
// is true. The sort is stable, and relinks elements without
// allocating. Sort is a no-op if q has fewer than two elements.
func (q *Queue) Sort(descend bool) {
	if q == nil || q.size < 2 {
		return
	}

	first := q.open()
	q.close(mergeSort(first, inOrder(descend)))
}

// mergeSort sorts the nil-terminated chain starting at first, using
// only next links, and returns the new first element.
func mergeSort(first *Element, ordered func(a, b string) bool) *Element {
	if first == nil || first.next == nil {
		return first
	}

	// Split after the midpoint. Starting fast one step ahead puts
	// slow at the end of the left half for both odd and even lengths.
	slow, fast := first, first.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	return mergeChains(mergeSort(first, ordered), mergeSort(right, ordered), ordered)
}

// mergeChains merges two sorted nil-terminated chains, taking from
// left whenever the heads are in order, and returns the first element
// of the merged chain. Only next links are maintained.
func mergeChains(left, right *Element, ordered func(a, b string) bool) *Element {
	var head Element
	tail := &head
	for left != nil && right != nil {
		if ordered(left.Value, right.Value) {
			tail.next = left
			left = left.next
		} else {
			tail.next = right
			right = right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
	} else {
		tail.next = right
	}
	return head.next
}

// Ascend deletes every element that has a strictly smaller value
// anywhere after it, leaving a non-decreasing queue, and returns the
// resulting size.
func (q *Queue) Ascend() int {
	return q.monotonic(func(e, kept string) bool { return e > kept })
}

// Descend deletes every element that has a strictly greater value
// anywhere after it, leaving a non-increasing queue, and returns the
// resulting size.
func (q *Queue) Descend() int {
	return q.monotonic(func(e, kept string) bool { return e < kept })
}

// monotonic walks q from the tail toward the head, comparing each
// element with the nearest surviving element after it, and deletes
// the element if drop reports true. The nearest survivor is always
// the extreme value seen so far, so one pass suffices.
func (q *Queue) monotonic(drop func(e, kept string) bool) int {
	if q == nil {
		return 0
	}
	if q.size < 2 {
		return q.size
	}

	s := &q.sentinel
	kept := s.prev
	for e := kept.prev; e != s; {
		prev := e.prev
		if drop(e.Value, kept.Value) {
			q.release(e)
		} else {
			kept = e
		}
		e = prev
	}
	return q.size
}
