// Package commands implements the CLI for the evalrs snippet evaluator.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/evalrs/internal/app"
	"go.trai.ch/evalrs/internal/build"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for evalrs.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app. defaultQuiet seeds the
// --quiet flag from the user configuration.
func New(a *app.App, defaultQuiet bool) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "evalrs [snippet]",
		Short: "A Rust code snippet evaluator",
		Long: "Evaluates a Rust code snippet by generating a throwaway cargo project,\n" +
			"building it, and running the result. Build artifacts are cached across\n" +
			"invocations. If the snippet argument is omitted, it is read from the\n" +
			"standard input until end-of-stream.",
		Version:       build.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          c.runE,
	}

	rootCmd.Flags().BoolP("print-result", "p", false, `Print the evaluation result using println!("{:?}", result)`)
	rootCmd.Flags().BoolP("quiet", "q", defaultQuiet, "Don't show cargo's build messages")
	rootCmd.Flags().Bool("release", false, "Build with optimizations enabled")

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runE(cmd *cobra.Command, args []string) error {
	snippet, err := resolveSnippet(cmd, args)
	if err != nil {
		return err
	}

	printResult, _ := cmd.Flags().GetBool("print-result")
	quiet, _ := cmd.Flags().GetBool("quiet")
	release, _ := cmd.Flags().GetBool("release")

	code, err := c.app.Run(cmd.Context(), snippet, app.Options{
		PrintResult: printResult,
		Quiet:       quiet,
		Release:     release,
	})
	if err != nil {
		return err
	}
	c.exitCode = code
	return nil
}

// resolveSnippet returns the positional snippet argument, falling back to
// reading the standard input until end-of-stream.
func resolveSnippet(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", zerr.Wrap(err, "cannot read snippet from standard input")
	}
	return string(data), nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code propagated from the child processes of the
// last Execute call.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetInput sets the reader used when the snippet is not passed as an
// argument.
func (c *CLI) SetInput(r io.Reader) {
	c.rootCmd.SetIn(r)
}

// SetOutput sets the writers used for cobra's own output.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}
