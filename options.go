package strq

import (
	"log/slog"
)

// Option configures a Queue created by New.
type Option func(*options)

type options struct {
	alloc Allocator
	log   *slog.Logger
}

func defaultOptions() options {
	return options{alloc: DefaultAllocator}
}

// WithAllocator sets the Allocator that provides the queue's
// storage. A nil Allocator is ignored.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithLogger sets the queue's logger. By default nothing is logged.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
