package sink

import "github.com/ringlog/ringlog/core"

// Sink consumes committed records. Implementations must tolerate
// concurrent Emit calls only if they are shared between stores; a
// single store serializes all Emit calls under its own lock.
type Sink interface {
	// Emit writes one committed record
	Emit(rec core.Record) error

	// Close releases any resources held by the sink
	Close() error
}
