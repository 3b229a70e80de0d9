package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimedLockAcquireRelease(t *testing.T) {
	lock := NewTimedLock()
	assert.True(t, lock.Acquire(time.Millisecond))
	lock.Release()
	assert.True(t, lock.Acquire(time.Millisecond))
	lock.Release()
}

func TestTimedLockTimesOutWhenHeld(t *testing.T) {
	lock := NewTimedLock()
	assert.True(t, lock.Acquire(time.Millisecond))

	start := time.Now()
	assert.False(t, lock.Acquire(20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	lock.Release()
	assert.True(t, lock.Acquire(time.Millisecond))
}
