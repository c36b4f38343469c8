package benchmark

import "github.com/ringlog/ringlog/core"

// discardSink swallows every record, so benchmarks measure the
// store's bookkeeping rather than writer throughput.
type discardSink struct{}

func (discardSink) Emit(core.Record) error { return nil }
func (discardSink) Close() error           { return nil }
