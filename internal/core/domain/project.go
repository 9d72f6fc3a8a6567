package domain

import "path/filepath"

// Project is a generated throwaway cargo project on disk. It is owned
// exclusively by the current invocation and removed when the run finishes.
type Project struct {
	// Root is the absolute path of the project directory.
	Root string
}

// TargetDir returns the path of the build-output directory cargo manages.
func (p *Project) TargetDir() string {
	return filepath.Join(p.Root, "target")
}

// BinaryPath returns the path of the executable produced by a build with the
// given profile.
func (p *Project) BinaryPath(release bool) string {
	profile := "debug"
	if release {
		profile = "release"
	}
	return filepath.Join(p.Root, "target", profile, PackageName)
}
