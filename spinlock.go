package vgatext

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a busy waiting mutual exclusion lock. It never sleeps, which
// makes it usable where no scheduler is available.
//
// SpinLock is not reentrant: locking it twice from the same caller never returns.
type SpinLock struct {
	held atomic.Bool
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.held.CompareAndSwap(false, true)
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	if !l.held.CompareAndSwap(true, false) {
		panic("vgatext: unlock of unlocked SpinLock")
	}
}
