// Package main is the entry point for the evalrs snippet evaluator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.trai.ch/evalrs/cmd/evalrs/commands"
	"go.trai.ch/evalrs/internal/adapters/cache"
	"go.trai.ch/evalrs/internal/adapters/config"
	"go.trai.ch/evalrs/internal/adapters/logger"
	"go.trai.ch/evalrs/internal/adapters/shell"
	"go.trai.ch/evalrs/internal/adapters/workspace"
	"go.trai.ch/evalrs/internal/app"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.Path())
	if err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}

	application := app.New(
		shell.NewExecutor(),
		workspace.NewMaterializer(),
		cache.New(cfg.CacheDir),
		logger.New(),
		app.WithCargo(cfg.Cargo),
		app.WithStdio(stdin, stdout, stderr),
	)

	cli := commands.New(application, cfg.Quiet)
	cli.SetArgs(args)
	cli.SetInput(stdin)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "%+v\n", err)
		return 1
	}
	return cli.ExitCode()
}
