// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/evalrs/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command with the given standard streams and blocks
	// until it finishes.
	//
	// A normal exit, zero or not, is reported through the returned code with
	// a nil error. A process that terminates without an exit code yields an
	// error matching domain.ErrNoExitCode; any other error means the process
	// could not be run at all.
	Execute(ctx context.Context, command *domain.Command, stdin io.Reader, stdout, stderr io.Writer) (int, error)
}
