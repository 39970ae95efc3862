package tick

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-tracker/internal/registry"
)

func TestScheduler_RefreshesRunningTimers(t *testing.T) {
	reg := registry.New()
	key := registry.Key{ProjectID: "p1", TaskID: "t1"}
	start := time.Now()
	reg.Start(key, start)

	var refreshes atomic.Int32
	scheduler := New(reg, 5*time.Millisecond, func() {
		refreshes.Add(1)
	})
	scheduler.Run()
	defer scheduler.Stop()

	require.Eventually(t, func() bool {
		return refreshes.Load() >= 2
	}, time.Second, time.Millisecond)

	timer, ok := reg.Get(key)
	require.True(t, ok)
	assert.Greater(t, timer.Elapsed, time.Duration(0))
}

func TestScheduler_SkipsNotificationWhenNothingRuns(t *testing.T) {
	reg := registry.New()

	var refreshes atomic.Int32
	scheduler := New(reg, time.Millisecond, func() {
		refreshes.Add(1)
	})
	scheduler.Run()

	time.Sleep(20 * time.Millisecond)
	scheduler.Stop()

	assert.Equal(t, int32(0), refreshes.Load())
}

func TestScheduler_MeasuresFromOriginalStartInstant(t *testing.T) {
	reg := registry.New()
	key := registry.Key{ProjectID: "p1", TaskID: "t1"}

	// Simulate a timer that started five seconds ago; the very first tick
	// must report the full wall-clock elapsed time, not one tick interval.
	reg.Start(key, time.Now().Add(-5*time.Second))

	scheduler := New(reg, time.Millisecond, nil)
	scheduler.Run()
	defer scheduler.Stop()

	require.Eventually(t, func() bool {
		timer, ok := reg.Get(key)
		return ok && timer.Elapsed >= 5*time.Second
	}, time.Second, time.Millisecond)
}

func TestScheduler_StopTerminatesLoop(t *testing.T) {
	reg := registry.New()
	key := registry.Key{ProjectID: "p1", TaskID: "t1"}
	reg.Start(key, time.Now())

	var refreshes atomic.Int32
	scheduler := New(reg, time.Millisecond, func() {
		refreshes.Add(1)
	})
	scheduler.Run()

	require.Eventually(t, func() bool {
		return refreshes.Load() > 0
	}, time.Second, time.Millisecond)

	scheduler.Stop()
	after := refreshes.Load()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, refreshes.Load())
}

func TestScheduler_StopIsSafeToCallTwice(t *testing.T) {
	scheduler := New(registry.New(), time.Millisecond, nil)
	scheduler.Run()

	scheduler.Stop()
	assert.NotPanics(t, func() {
		scheduler.Stop()
	})
}
