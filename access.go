package strq

import (
	"fmt"
)

// InsertHead inserts a copy of value at the front of q.
// It returns an error wrapping ErrInvalidArgument if q is nil or
// destroyed, or ErrAllocation if storage can't be obtained; in
// either case q is unchanged.
func (q *Queue) InsertHead(value string) error {
	e, err := q.newElement(value)
	if err != nil {
		return fmt.Errorf("insert head: %w", err)
	}
	q.link(e, &q.sentinel)
	q.size++
	return nil
}

// InsertTail inserts a copy of value at the back of q.
// Errors are as for InsertHead.
func (q *Queue) InsertTail(value string) error {
	e, err := q.newElement(value)
	if err != nil {
		return fmt.Errorf("insert tail: %w", err)
	}
	q.link(e, q.sentinel.prev)
	q.size++
	return nil
}

// InsertHeadElement links e, previously removed from this or any
// other queue, at the front of q. The value is not copied.
func (q *Queue) InsertHeadElement(e *Element) error {
	if err := q.checkDetached(e); err != nil {
		return fmt.Errorf("insert head: %w", err)
	}
	q.link(e, &q.sentinel)
	q.size++
	return nil
}

// InsertTailElement links e, previously removed from this or any
// other queue, at the back of q. The value is not copied.
func (q *Queue) InsertTailElement(e *Element) error {
	if err := q.checkDetached(e); err != nil {
		return fmt.Errorf("insert tail: %w", err)
	}
	q.link(e, q.sentinel.prev)
	q.size++
	return nil
}

// RemoveHead detaches the first element of q and returns it. The
// caller owns the returned element, and should either Release it
// or insert it into a queue.
//
// If sp is non-empty, up to len(sp)-1 bytes of the value are copied
// into sp, and the rest of sp is zeroed, so that sp always holds a
// terminating zero byte. Truncation is not an error.
//
// RemoveHead returns nil if q is nil or empty.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if q == nil || q.size == 0 {
		return nil
	}
	return q.remove(q.sentinel.next, sp)
}

// RemoveTail is the mirror of RemoveHead: it detaches and returns
// the last element of q.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if q == nil || q.size == 0 {
		return nil
	}
	return q.remove(q.sentinel.prev, sp)
}

func (q *Queue) remove(e *Element, sp []byte) *Element {
	if len(sp) > 0 {
		n := copy(sp[:len(sp)-1], e.Value)
		clear(sp[n:])
	}
	q.unlink(e)
	q.size--
	return e
}

func (q *Queue) newElement(value string) (*Element, error) {
	if q == nil || q.alloc == nil {
		return nil, ErrInvalidArgument
	}

	e, err := q.alloc.AllocElement(value)
	if err != nil {
		q.getLog().Warn("Failed to allocate element", "size", len(value), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	e.alloc = q.alloc
	return e, nil
}

func (q *Queue) checkDetached(e *Element) error {
	switch {
	case q == nil || q.alloc == nil || e == nil || e.alloc == nil:
		return ErrInvalidArgument
	case e.q != nil:
		return ErrElementLinked
	}
	return nil
}
