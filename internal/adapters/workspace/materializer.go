// Package workspace materializes throwaway cargo projects on disk.
package workspace

import (
	"os"
	"path/filepath"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fixed names of the generated project layout. Cargo expects these exact
// names; they are part of its external contract.
const (
	tempPrefix   = "evalrs_temp"
	manifestName = "Cargo.toml"
	sourceDir    = "src"
	sourceName   = "main.rs"
)

var _ ports.Workspace = (*Materializer)(nil)

// Materializer implements ports.Workspace on the local filesystem.
type Materializer struct{}

// NewMaterializer creates a new Materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// Materialize creates a uniquely named temporary project directory and
// writes the manifest and source into it. On any failure the partially
// created directory is removed before the error is returned.
func (m *Materializer) Materialize(manifest, source string) (*domain.Project, error) {
	root, err := os.MkdirTemp("", tempPrefix)
	if err != nil {
		return nil, zerr.Wrap(err, "cannot create temporary project directory")
	}

	project := &domain.Project{Root: root}
	if err := populate(project, manifest, source); err != nil {
		_ = os.RemoveAll(root)
		return nil, err
	}
	return project, nil
}

func populate(project *domain.Project, manifest, source string) error {
	manifestPath := filepath.Join(project.Root, manifestName)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil { //nolint:gosec // generated manifest is not sensitive
		return zerr.With(zerr.Wrap(err, "cannot write manifest"), "path", manifestPath)
	}

	srcDir := filepath.Join(project.Root, sourceDir)
	if err := os.Mkdir(srcDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot create source directory"), "path", srcDir)
	}

	sourcePath := filepath.Join(srcDir, sourceName)
	if err := os.WriteFile(sourcePath, []byte(source), 0o644); err != nil { //nolint:gosec // generated source is not sensitive
		return zerr.With(zerr.Wrap(err, "cannot write source file"), "path", sourcePath)
	}
	return nil
}

// Remove deletes the project directory and everything beneath it.
func (m *Materializer) Remove(project *domain.Project) error {
	if err := os.RemoveAll(project.Root); err != nil {
		return zerr.With(zerr.Wrap(err, "cannot remove project directory"), "path", project.Root)
	}
	return nil
}
