package sink

import "github.com/ringlog/ringlog/core"

// FuncSink adapts a plain function to the Sink interface.
type FuncSink func(rec core.Record) error

// Emit calls the wrapped function
func (f FuncSink) Emit(rec core.Record) error { return f(rec) }

// Close is a no-op
func (FuncSink) Close() error { return nil }
