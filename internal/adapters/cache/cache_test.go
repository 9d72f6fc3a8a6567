package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/evalrs/internal/adapters/cache"
)

func TestCache_PrimeSeedsEmptySlot(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	lease, err := c.Acquire("deadbeef00000000")
	require.NoError(t, err)
	defer func() { require.NoError(t, lease.Release()) }()

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(targetDir))

	// The slot's directory moved into the project; the slot is now empty.
	info, err := os.Stat(targetDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(filepath.Join(root, "deadbeef00000000", "target"))
	assert.True(t, os.IsNotExist(err))
}

func TestCache_SaveRefillsSlot(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	lease, err := c.Acquire("deadbeef00000000")
	require.NoError(t, err)
	defer func() { require.NoError(t, lease.Release()) }()

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(targetDir))

	kept, err := lease.Save(targetDir)
	require.NoError(t, err)
	assert.True(t, kept)

	_, err = os.Stat(filepath.Join(root, "deadbeef00000000", "target"))
	assert.NoError(t, err)
	_, err = os.Stat(targetDir)
	assert.True(t, os.IsNotExist(err))
}

func TestCache_RoundTripPreservesArtifacts(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	// First invocation: prime an empty slot, produce an artifact, save.
	lease, err := c.Acquire("cafe000000000000")
	require.NoError(t, err)

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(targetDir))
	require.NoError(t, os.WriteFile(filepath.Join(targetDir, "artifact"), []byte("compiled"), 0o644))

	kept, err := lease.Save(targetDir)
	require.NoError(t, err)
	require.True(t, kept)
	require.NoError(t, lease.Release())

	// Second invocation: the artifact comes back with the primed directory.
	lease, err = c.Acquire("cafe000000000000")
	require.NoError(t, err)
	defer func() { require.NoError(t, lease.Release()) }()

	secondTarget := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(secondTarget))

	data, err := os.ReadFile(filepath.Join(secondTarget, "artifact"))
	require.NoError(t, err)
	assert.Equal(t, "compiled", string(data))
}

func TestCache_SaveSkippedWhenSlotRefilled(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	lease, err := c.Acquire("0000000000000001")
	require.NoError(t, err)
	defer func() { require.NoError(t, lease.Release()) }()

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(targetDir))

	// Simulate another invocation refilling the slot.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "0000000000000001", "target"), 0o750))

	kept, err := lease.Save(targetDir)
	require.NoError(t, err)
	assert.False(t, kept)

	// The fresh directory is abandoned in place.
	_, err = os.Stat(targetDir)
	assert.NoError(t, err)
}

func TestCache_SlotsAreIsolatedByKey(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	lease, err := c.Acquire("aaaaaaaaaaaaaaaa")
	require.NoError(t, err)

	targetDir := filepath.Join(t.TempDir(), "target")
	require.NoError(t, lease.Prime(targetDir))
	require.NoError(t, os.WriteFile(filepath.Join(targetDir, "artifact"), []byte("a"), 0o644))
	_, err = lease.Save(targetDir)
	require.NoError(t, err)
	require.NoError(t, lease.Release())

	// A different key starts from an empty directory.
	other, err := c.Acquire("bbbbbbbbbbbbbbbb")
	require.NoError(t, err)
	defer func() { require.NoError(t, other.Release()) }()

	otherTarget := filepath.Join(t.TempDir(), "target")
	require.NoError(t, other.Prime(otherTarget))

	_, err = os.Stat(filepath.Join(otherTarget, "artifact"))
	assert.True(t, os.IsNotExist(err))
}

func TestCache_AcquireHoldsAdvisoryLock(t *testing.T) {
	root := t.TempDir()
	c := cache.New(root)

	lease, err := c.Acquire("0123456789abcdef")
	require.NoError(t, err)

	contender := flock.New(filepath.Join(root, "0123456789abcdef", ".lock"))
	locked, err := contender.TryLock()
	require.NoError(t, err)
	assert.False(t, locked, "lock should be held while the lease is live")

	require.NoError(t, lease.Release())

	locked, err = contender.TryLock()
	require.NoError(t, err)
	assert.True(t, locked, "lock should be free after release")
	require.NoError(t, contender.Unlock())
}
