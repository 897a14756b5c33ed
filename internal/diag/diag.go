// Package diag provides the structured logging the core lazyjson
// package deliberately does not do itself: the teacher never logs on a
// caller's behalf (every minio/simdjson-go package threads failures
// through return values only), and lazyjson follows the same
// discipline. The one place a system built on top of this library
// benefits from observability is the streaming adaptor's pump-retry
// loop, so diag wires lazyjson.StreamSource.OnEvent to a zerolog
// logger for callers — currently cmd/lazyjson-cat's -verbose flag —
// that want to see it.
package diag

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/shardwell/lazyjson"
)

// NewLogger returns a zerolog.Logger writing human-readable output to
// w (or os.Stderr if w is nil).
func NewLogger(w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// StreamEventLogger adapts a zerolog.Logger to the callback shape
// lazyjson.StreamSource.OnEvent expects, logging one debug-level event
// per pump-retry attempt.
func StreamEventLogger(log zerolog.Logger) func(lazyjson.StreamEvent) {
	return func(evt lazyjson.StreamEvent) {
		log.Debug().
			Int("attempt", evt.Attempt).
			Int("offset", evt.Offset).
			Int("read", evt.Read).
			Bool("eof", evt.EOF).
			Msg("stream pump")
	}
}
