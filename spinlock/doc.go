// Package spinlock provides a busy-wait mutual-exclusion lock.
//
// SpinLock satisfies sync.Locker, so code written against the
// interface can substitute a sync.Mutex without change. The store
// package takes advantage of this for deterministic tests.
package spinlock
