package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	keyA = Key{ProjectID: "p1", TaskID: "t1"}
	keyB = Key{ProjectID: "p1", TaskID: "t2"}
)

func TestRegistry_Start(t *testing.T) {
	reg := New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	reg.Start(keyA, now)

	timer, ok := reg.Get(keyA)
	require.True(t, ok)
	assert.True(t, timer.Running)
	assert.Equal(t, now, timer.StartedAt)
	assert.Equal(t, time.Duration(0), timer.Elapsed)
}

func TestRegistry_Start_TwiceResetsRun(t *testing.T) {
	reg := New()
	first := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(10 * time.Second)

	reg.Start(keyA, first)
	reg.Refresh(first.Add(5 * time.Second))
	reg.Start(keyA, second)

	// The second start overwrites the first run entirely; elapsed time is
	// measured relative to the second start instant.
	timer, ok := reg.Get(keyA)
	require.True(t, ok)
	assert.Equal(t, second, timer.StartedAt)
	assert.Equal(t, time.Duration(0), timer.Elapsed)

	reg.Refresh(second.Add(3 * time.Second))
	timer, _ = reg.Get(keyA)
	assert.Equal(t, 3*time.Second, timer.Elapsed)
}

func TestRegistry_Stop(t *testing.T) {
	reg := New()
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	reg.Start(keyA, start)
	reg.Refresh(start.Add(5 * time.Second))

	startedAt, elapsed, ok := reg.Stop(keyA)

	require.True(t, ok)
	assert.Equal(t, start, startedAt)
	assert.Equal(t, 5*time.Second, elapsed)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Stop_WithoutRunningTimerIsNoOp(t *testing.T) {
	reg := New()

	_, _, ok := reg.Stop(keyA)

	assert.False(t, ok)
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_Stop_IsIdempotent(t *testing.T) {
	reg := New()
	reg.Start(keyA, time.Now())

	_, _, ok := reg.Stop(keyA)
	require.True(t, ok)

	_, _, ok = reg.Stop(keyA)
	assert.False(t, ok)
}

func TestRegistry_IndependentTimers(t *testing.T) {
	reg := New()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	reg.Start(keyA, base)
	reg.Start(keyB, base.Add(2*time.Second))
	reg.Refresh(base.Add(10 * time.Second))

	timerA, _ := reg.Get(keyA)
	timerB, _ := reg.Get(keyB)
	assert.Equal(t, 10*time.Second, timerA.Elapsed)
	assert.Equal(t, 8*time.Second, timerB.Elapsed)

	// Stopping one timer leaves the other untouched.
	_, _, ok := reg.Stop(keyA)
	require.True(t, ok)

	reg.Refresh(base.Add(12 * time.Second))
	timerB, ok = reg.Get(keyB)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, timerB.Elapsed)
}

func TestRegistry_Refresh_ReturnsRunningCount(t *testing.T) {
	reg := New()
	now := time.Now()

	assert.Equal(t, 0, reg.Refresh(now))

	reg.Start(keyA, now)
	reg.Start(keyB, now)
	assert.Equal(t, 2, reg.Refresh(now.Add(time.Second)))
}

func TestRegistry_Snapshot_IsACopy(t *testing.T) {
	reg := New()
	now := time.Now()
	reg.Start(keyA, now)

	snapshot := reg.Snapshot()
	require.Len(t, snapshot, 1)

	entry := snapshot[keyA]
	entry.Elapsed = time.Hour
	snapshot[keyA] = entry

	timer, _ := reg.Get(keyA)
	assert.Equal(t, time.Duration(0), timer.Elapsed)
}
