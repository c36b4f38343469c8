package store

import (
	"sync"

	"github.com/ringlog/ringlog/core"
)

var (
	defaultStore *Store
	defaultMu    sync.RWMutex
)

func init() {
	defaultStore = NewBuilder().Build()
}

// Default returns the process-wide default store
func Default() *Store {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultStore
}

// SetDefault replaces the process-wide default store. Call once at
// startup, before other goroutines log.
func SetDefault(s *Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// Package-level convenience functions using the default store

// Record commits a message at priority p using the default store
func Record(p core.Priority, parts ...any) {
	Default().Record(p, parts...)
}

// Debug commits a Debugging record using the default store
func Debug(parts ...any) {
	Default().Debug(parts...)
}

// Message commits a Message record using the default store
func Message(parts ...any) {
	Default().Message(parts...)
}

// Warning commits a Warning record using the default store
func Warning(parts ...any) {
	Default().Warning(parts...)
}

// Error commits an Error record using the default store
func Error(parts ...any) {
	Default().Error(parts...)
}

// Append accumulates parts on the default store's pending message
func Append(parts ...any) *Store {
	return Default().Append(parts...)
}

// Flush commits the default store's pending message
func Flush() {
	Default().Flush()
}

// SetLog injects a pre-rendered record into the default store
func SetLog(text string, p core.Priority) {
	Default().SetLog(text, p)
}

// SetVerbosity sets the default store's console verbosity
func SetVerbosity(p core.Priority) {
	Default().SetVerbosity(p)
}

// LogToFile toggles the default store's file sink
func LogToFile(on bool) {
	Default().LogToFile(on)
}
