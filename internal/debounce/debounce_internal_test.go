package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlushWhileTimerFiringKeepsCall(t *testing.T) {
	var calls atomic.Int32
	d := New(time.Millisecond, func() { calls.Add(1) })
	d.Trigger()

	// hold the lock until the timer has fired and its callback is waiting
	d.mu.Lock()
	time.Sleep(30 * time.Millisecond)
	assert.False(t, d.takePending())
	d.mu.Unlock()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}
