// Package cli provides the plotmcp command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/plotmcp"
)

// Version information set at build time.
var (
	Version   = plotmcp.Version
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath       string
	logLevel         string
	descriptionsPath string
	examplesPath     string
}

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader
	opener func(path string) error
	global globalOptions
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}

	app.root = &cobra.Command{
		Use:   "plotmcp",
		Short: "Chart advisor and figure builder",
		Long: `plotmcp looks up chart descriptions and examples, builds bar, scatter and
line figures from tabular data, and serves the same operations as
Model Context Protocol tools.

Tabular input is a JSON object: {"columns": [...], "data": [[...], ...]}.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := app.root.PersistentFlags()
	flags.StringVarP(&app.global.configPath, "config", "c", "", "Path to configuration file (YAML or JSON)")
	flags.StringVar(&app.global.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.StringVar(&app.global.descriptionsPath, "descriptions", "", "Plot description file (overrides config)")
	flags.StringVar(&app.global.examplesPath, "examples", "", "Plot example file (overrides config)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newTypesCmd(),
		app.newDescribeCmd(),
		app.newExampleCmd(),
		app.newVisualizeCmd(),
		app.newDemoCmd(),
		app.newServeCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used for "-" inputs.
func (a *App) WithInput(stdin io.Reader) *App {
	a.stdin = stdin
	a.root.SetIn(stdin)
	return a
}

// WithOpener replaces the browser launcher used by demo and --open.
func (a *App) WithOpener(open func(path string) error) *App {
	a.opener = open
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

// newVersionCmd creates the version command.
func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(a.stdout, "plotmcp version %s\n", Version)
			_, _ = fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}
