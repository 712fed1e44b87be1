package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySnapshotPercentiles(t *testing.T) {
	reg := NewRegistry(time.Hour)
	for _, ms := range []int{100, 200, 300, 400, 500} {
		reg.Observe("find", time.Duration(ms)*time.Millisecond)
	}

	snap, ok := reg.Snapshot()["find"]
	require.True(t, ok)
	assert.Equal(t, 5, snap.Count)
	assert.InDelta(t, 100, snap.MinMs, 1e-9)
	assert.InDelta(t, 500, snap.MaxMs, 1e-9)
	assert.InDelta(t, 300, snap.AvgMs, 1e-9)
	assert.InDelta(t, 300, snap.P50Ms, 1e-9)
	assert.InDelta(t, 480, snap.P95Ms, 1e-9)
	assert.InDelta(t, 496, snap.P99Ms, 1e-9)
}

func TestRegistryPrunesExpiredSamples(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg := NewRegistry(time.Minute)
	reg.now = func() time.Time { return now }

	reg.Observe("split", 100*time.Millisecond)
	now = now.Add(2 * time.Minute)

	_, ok := reg.Snapshot()["split"]
	assert.False(t, ok, "expired samples should not be reported")

	reg.Observe("split", 200*time.Millisecond)
	snap := reg.Snapshot()["split"]
	assert.Equal(t, 1, snap.Count)
	assert.InDelta(t, 200, snap.MinMs, 1e-9)
	assert.InDelta(t, 200, snap.MaxMs, 1e-9)
}

func TestRegistryKeepsNamesApart(t *testing.T) {
	reg := NewRegistry(time.Hour)
	reg.Observe("find", time.Millisecond)
	reg.Observe("branch", 3*time.Millisecond)
	reg.Observe("branch", 5*time.Millisecond)

	snaps := reg.Snapshot()
	assert.Equal(t, 1, snaps["find"].Count)
	assert.Equal(t, 2, snaps["branch"].Count)
	assert.InDelta(t, 4, snaps["branch"].AvgMs, 1e-9)
}

func TestRegistryClampsNegativeDuration(t *testing.T) {
	reg := NewRegistry(time.Hour)
	reg.Observe("find", -10*time.Millisecond)

	snap := reg.Snapshot()["find"]
	assert.Equal(t, 1, snap.Count)
	assert.Zero(t, snap.MinMs)
	assert.Zero(t, snap.MaxMs)
}
