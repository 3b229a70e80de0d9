package services

import "time"

// TimedLock is the coordinator-owned mutual exclusion guarding the whole
// order transaction. One lock serializes all venues; see DESIGN.md for the
// per-venue partitioning follow-up.
type TimedLock struct {
	slot chan struct{}
}

func NewTimedLock() *TimedLock {
	l := &TimedLock{slot: make(chan struct{}, 1)}
	l.slot <- struct{}{}
	return l
}

// Acquire blocks up to timeout and reports whether the lock was taken.
func (l *TimedLock) Acquire(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-l.slot:
		return true
	case <-timer.C:
		return false
	}
}

// Release must only be called after a successful Acquire.
func (l *TimedLock) Release() {
	l.slot <- struct{}{}
}
