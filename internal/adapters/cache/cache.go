// Package cache persists cargo build-output directories between invocations.
//
// The cache is a directory of content-addressed slots under the system temp
// root. Each slot holds at most one target/ directory and carries an
// advisory file lock that serializes the prime-through-save sequence across
// processes, so two concurrent invocations with the same dependency set
// cannot race on the slot.
package cache

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirName  = "evalrs_cache"
	slotDir  = "target"
	lockName = ".lock"
)

var _ ports.ArtifactCache = (*Cache)(nil)

// Cache implements ports.ArtifactCache.
type Cache struct {
	root string
}

// New creates a Cache rooted at root. An empty root selects the default
// location under the system temporary directory.
func New(root string) *Cache {
	if root == "" {
		root = filepath.Join(os.TempDir(), dirName)
	}
	return &Cache{root: root}
}

// Acquire locks the slot for key, blocking until any concurrent invocation
// holding it has finished its prime-through-save sequence.
func (c *Cache) Acquire(key string) (ports.CacheLease, error) {
	slot := filepath.Join(c.root, key)
	if err := os.MkdirAll(slot, 0o750); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot create cache slot"), "path", slot)
	}

	// The lock file lives beside the slot's target/ directory, never inside
	// it, so the rename dance does not move it.
	fl := flock.New(filepath.Join(slot, lockName))
	if err := fl.Lock(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot lock cache slot"), "path", fl.Path())
	}
	return &lease{slot: slot, fl: fl}, nil
}

type lease struct {
	slot string
	fl   *flock.Flock
}

// Prime relocates the slot's build-output directory to targetDir so cargo
// starts from the cached incremental state. An empty slot is seeded with an
// empty directory first.
func (l *lease) Prime(targetDir string) error {
	cached := filepath.Join(l.slot, slotDir)
	if err := os.MkdirAll(cached, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot create cached build-output directory"), "path", cached)
	}
	if err := os.Rename(cached, targetDir); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, "cannot move build-output directory out of cache"), "from", cached), "to", targetDir)
	}
	return nil
}

// Save relocates targetDir back into the slot. If the slot has been refilled
// in the meantime the directory is left in place and false is returned; it
// is then cleaned up together with the project directory.
func (l *lease) Save(targetDir string) (bool, error) {
	cached := filepath.Join(l.slot, slotDir)
	if _, err := os.Stat(cached); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, zerr.With(zerr.Wrap(err, "cannot stat cache slot"), "path", cached)
	}

	if err := os.Rename(targetDir, cached); err != nil {
		return false, zerr.With(zerr.With(zerr.Wrap(err, "cannot move build-output directory into cache"), "from", targetDir), "to", cached)
	}
	return true, nil
}

// Release unlocks the slot.
func (l *lease) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return zerr.Wrap(err, "cannot unlock cache slot")
	}
	return nil
}
