package ports

import "go.trai.ch/evalrs/internal/core/domain"

// Workspace materializes generated projects on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Materialize creates a fresh project directory holding the manifest and
	// the wrapped source.
	Materialize(manifest, source string) (*domain.Project, error)

	// Remove deletes the project directory and everything beneath it.
	Remove(project *domain.Project) error
}
