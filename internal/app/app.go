// Package app implements the application layer for evalrs.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/evalrs/internal/core/domain"
	"go.trai.ch/evalrs/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options controls a single evaluation run.
type Options struct {
	// PrintResult wraps the snippet body so its value is debug-printed.
	PrintResult bool

	// Quiet suppresses cargo's informational build output.
	Quiet bool

	// Release builds with optimizations enabled.
	Release bool
}

// App represents the main application logic.
type App struct {
	executor  ports.Executor
	workspace ports.Workspace
	artifacts ports.ArtifactCache
	logger    ports.Logger

	cargo  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a new App instance.
func New(executor ports.Executor, workspace ports.Workspace, artifacts ports.ArtifactCache, logger ports.Logger, opts ...func(*App)) *App {
	a := &App{
		executor:  executor,
		workspace: workspace,
		artifacts: artifacts,
		logger:    logger,
		cargo:     "cargo",
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithCargo overrides the build toolchain binary. An empty path keeps the
// default.
func WithCargo(path string) func(*App) {
	return func(a *App) {
		if path != "" {
			a.cargo = path
		}
	}
}

// WithStdio overrides the standard streams handed to child processes.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) func(*App) {
	return func(a *App) {
		a.stdin = stdin
		a.stdout = stdout
		a.stderr = stderr
	}
}

// Run evaluates the snippet: it generates a throwaway cargo project, primes
// it with cached build artifacts, builds it, executes the produced binary,
// and saves the artifacts back. The returned code is the build step's exit
// code if it failed, otherwise the snippet's own.
func (a *App) Run(ctx context.Context, snippet string, opts Options) (int, error) {
	deps := domain.ExtractDependencies(snippet)
	manifest := domain.RenderManifest(deps)
	source := domain.Wrap(snippet, opts.PrintResult)

	project, err := a.workspace.Materialize(manifest, source)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := a.workspace.Remove(project); err != nil {
			a.logger.Error(err)
		}
	}()

	lease, err := a.artifacts.Acquire(domain.CacheKey(deps))
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := lease.Release(); err != nil {
			a.logger.Error(err)
		}
	}()

	if err := lease.Prime(project.TargetDir()); err != nil {
		return 0, err
	}

	code, runErr := a.buildAndRun(ctx, project, opts)

	// The build-output directory goes back into the cache whatever the child
	// processes exited with; failed builds still carry reusable incremental
	// state.
	kept, err := lease.Save(project.TargetDir())
	if err != nil {
		return 0, err
	}
	if !kept {
		a.logger.Warn("cache slot was refilled concurrently, discarding fresh build artifacts")
	}
	return code, runErr
}

func (a *App) buildAndRun(ctx context.Context, project *domain.Project, opts Options) (int, error) {
	argv := []string{a.cargo, "build"}
	if opts.Quiet {
		argv = append(argv, "--quiet")
	}
	if opts.Release {
		argv = append(argv, "--release")
	}

	code, err := a.executor.Execute(ctx, &domain.Command{Argv: argv, Dir: project.Root}, a.stdin, a.stdout, a.stderr)
	if err != nil {
		return 0, zerr.Wrap(err, "build step failed to run")
	}
	if code != 0 {
		// Cargo's diagnostics already went to stderr; skip execution and
		// propagate its exit code.
		return code, nil
	}

	// The binary is invoked directly rather than through `cargo run` so the
	// snippet executes in the caller's working directory.
	run := &domain.Command{Argv: []string{project.BinaryPath(opts.Release)}}
	code, err = a.executor.Execute(ctx, run, a.stdin, a.stdout, a.stderr)
	if err != nil {
		return 0, zerr.Wrap(err, "snippet execution failed")
	}
	return code, nil
}
