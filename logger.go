package strq

import (
	"log/slog"

	"github.com/neilotoole/sq/libsq/core/lg"
)

func (o options) getLog() *slog.Logger {
	if o.log == nil {
		return lg.Discard()
	}
	return o.log
}

func (q *Queue) getLog() *slog.Logger {
	if q.log == nil {
		return lg.Discard()
	}
	return q.log
}
