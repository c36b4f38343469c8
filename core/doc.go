// Package core defines the shared types used across ringlog.
//
// It provides the Priority type for severity filtering, the Record
// type that represents one committed log line, and the Text/Join
// conversion helpers that turn heterogeneous argument lists into
// message text. Any type can opt into custom rendering by
// implementing Loggable.
//
// Line assembly goes through a pooled bytes.Buffer, and the
// second-precision timestamp prefix is cached so that back-to-back
// commits within the same second never re-run time.Format inside
// the store's critical section.
package core
