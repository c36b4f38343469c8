package sink

import "github.com/ringlog/ringlog/core"

// MultiSink fans records out to several sinks in order.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a sink that forwards to all given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Emit forwards the record to every sink. All sinks are attempted
// even when one fails; the first error is returned.
func (m *MultiSink) Emit(rec core.Record) error {
	var first error
	for _, s := range m.sinks {
		if err := s.Emit(rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close closes every sink, returning the first error encountered.
func (m *MultiSink) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
