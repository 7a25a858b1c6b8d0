// Package syncq wraps an strq.Queue so that it can be shared between
// goroutines. strq.Queue itself has no internal locking; syncq.Queue
// supplies the external mutual exclusion it requires, granting the
// lock to waiting callers in FIFO order via fifomu.Mutex.
package syncq

import (
	"context"
	"fmt"

	"github.com/neilotoole/fifomu"

	"github.com/neilotoole/strq"
)

// Queue is an strq.Queue guarded by a FIFO mutex. Methods that may
// block take a context; if ctx is done before the lock is acquired,
// the method returns ctx's error and the queue is not touched.
type Queue struct {
	mu fifomu.Mutex
	q  *strq.Queue
}

// New returns a new Queue wrapping a queue created by strq.New
// with opts.
func New(opts ...strq.Option) (*Queue, error) {
	q, err := strq.New(opts...)
	if err != nil {
		return nil, err
	}
	return &Queue{q: q}, nil
}

// lock acquires the mutex, honoring ctx.
func (s *Queue) lock(ctx context.Context) error {
	if err := s.mu.LockContext(ctx); err != nil {
		return fmt.Errorf("syncq: acquire lock: %w", err)
	}
	return nil
}

// Do invokes fn with the underlying queue while holding the lock.
// fn must not retain q after it returns.
func (s *Queue) Do(ctx context.Context, fn func(q *strq.Queue)) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	fn(s.q)
	return nil
}

// InsertHead inserts a copy of value at the front of the queue.
func (s *Queue) InsertHead(ctx context.Context, value string) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.q.InsertHead(value)
}

// InsertTail inserts a copy of value at the back of the queue.
func (s *Queue) InsertTail(ctx context.Context, value string) error {
	if err := s.lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return s.q.InsertTail(value)
}

// RemoveHead removes the first element and returns its value. The
// element's storage is released before RemoveHead returns. If the
// queue is empty, ok is false.
func (s *Queue) RemoveHead(ctx context.Context) (value string, ok bool, err error) {
	if err = s.lock(ctx); err != nil {
		return "", false, err
	}
	defer s.mu.Unlock()
	return take(s.q.RemoveHead(nil))
}

// RemoveTail removes the last element and returns its value.
// See RemoveHead.
func (s *Queue) RemoveTail(ctx context.Context) (value string, ok bool, err error) {
	if err = s.lock(ctx); err != nil {
		return "", false, err
	}
	defer s.mu.Unlock()
	return take(s.q.RemoveTail(nil))
}

func take(e *strq.Element) (string, bool, error) {
	if e == nil {
		return "", false, nil
	}
	v := e.Value
	e.Release()
	return v, true, nil
}

// Size returns the number of elements in the queue.
func (s *Queue) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.Size()
}

// Values returns a copy of the queue's values, front to back.
func (s *Queue) Values(ctx context.Context) ([]string, error) {
	if err := s.lock(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	return s.q.Values(), nil
}

// Destroy destroys the underlying queue. The Queue must not be
// used afterwards.
func (s *Queue) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.q.Destroy()
}
