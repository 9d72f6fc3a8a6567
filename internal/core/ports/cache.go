package ports

// ArtifactCache persists one build-output directory per dependency set
// between invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArtifactCache interface {
	// Acquire locks the cache slot for key and returns a lease on it. The
	// lease must be released exactly once.
	Acquire(key string) (CacheLease, error)
}

// CacheLease is exclusive access to one cache slot, held from priming
// through saving.
type CacheLease interface {
	// Prime relocates the slot's build-output directory to targetDir,
	// seeding the slot with an empty directory first if it was empty.
	Prime(targetDir string) error

	// Save relocates targetDir back into the slot if the slot is still
	// empty. It reports whether the directory was kept.
	Save(targetDir string) (bool, error)

	// Release unlocks the slot.
	Release() error
}
