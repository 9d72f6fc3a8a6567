package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyCommand is returned when an executor is asked to run a command
	// with no argv.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrNoExitCode is returned when a child process terminates without a
	// retrievable exit code, such as when it is killed by a signal.
	ErrNoExitCode = zerr.New("process exited without a retrievable exit code")
)
