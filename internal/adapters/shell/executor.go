// Package shell provides the subprocess executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command with the given standard streams and waits for it
// to finish. The child inherits the current process environment.
func (e *Executor) Execute(ctx context.Context, command *domain.Command, stdin io.Reader, stdout, stderr io.Writer) (int, error) {
	if len(command.Argv) == 0 {
		return 0, domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, command.Argv[0], command.Argv[1:]...) //nolint:gosec // argv is assembled by the caller
	cmd.Dir = command.Dir
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Terminated by a signal: there is no exit code to propagate.
		return 0, zerr.With(zerr.Wrap(domain.ErrNoExitCode, exitErr.ProcessState.String()), "command", command.Argv[0])
	}
	return 0, zerr.With(zerr.Wrap(err, "cannot run command"), "command", command.Argv[0])
}
