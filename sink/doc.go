// Package sink defines the output destinations a store can commit
// records to.
//
// All sinks share one small interface, Sink, and all of them are
// best-effort from the store's perspective: Emit errors are returned
// for callers that care but the store itself swallows them, because
// a logging failure must never surface as an application failure.
//
// Provided implementations: ConsoleSink (line-oriented writer with
// optional ANSI colorization of the priority tag), FileSink
// (append-only file, opened per write), MultiSink (fan-out) and
// ZapSink (bridge into go.uber.org/zap).
package sink
