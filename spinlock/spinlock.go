package spinlock

import "sync/atomic"

// SpinLock is a mutual-exclusion lock that busy-waits on an atomic
// flag instead of parking the goroutine. It is intended for critical
// sections measured in nanoseconds, where the cost of an OS-level
// mutex would dominate the work being guarded.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be
// copied after first use.
//
// There is no ownership tracking, no reentrancy and no fairness: a
// goroutine that calls Lock twice deadlocks, and a waiter may starve
// under heavy contention. Both are caller contract, not defects.
type SpinLock struct {
	flag atomic.Bool
}

// Lock acquires the lock, spinning until it is available. The
// successful compare-and-swap has acquire semantics, so all writes
// made by the previous holder are visible after Lock returns.
func (l *SpinLock) Lock() {
	for !l.flag.CompareAndSwap(false, true) {
	}
}

// Unlock releases the lock with release semantics, publishing the
// caller's writes to the next acquirer. Unlocking a lock the caller
// does not hold leaves the lock in an undefined state.
func (l *SpinLock) Unlock() {
	l.flag.Store(false)
}

// TryLock attempts to acquire the lock exactly once and reports
// whether it succeeded. It never blocks.
func (l *SpinLock) TryLock() bool {
	return l.flag.CompareAndSwap(false, true)
}
