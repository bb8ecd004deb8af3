// Package cli provides the vacuum-planner command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vacuum-planner/config"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/logger"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/repo"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vacuum-planner/service"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
		cfg:    config.Envs,
	}

	app.root = &cobra.Command{
		Use:   "vacuum",
		Short: "Plan cleaning routes for a vacuum agent on a grid",
		Long: `vacuum searches a grid world for a sequence of moves that cleans every
dirty cell, using depth-first or uniform-cost search, and reports how many
nodes each search generated and expanded.

World files hold the column count, the row count, then one line per row:
  _ empty   # blocked   * dirty   @ agent start`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newPlanCmd(),
		app.newCompareCmd(),
		app.newGenerateCmd(),
		app.newMazeCmd(),
		app.newBenchCmd(),
		app.newServeCmd(),
		app.newTokenCmd(),
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
			fmt.Fprintf(a.stdout, "vacuum version %s\n", Version)
			fmt.Fprintf(a.stdout, "  Git commit: %s\n", GitCommit)
			fmt.Fprintf(a.stdout, "  Build date: %s\n", BuildDate)
		},
	}
}

// newLogger creates a component logger on stderr so stdout stays machine readable.
func (a *App) newLogger(component, color string) (*logger.Logger, error) {
	return logger.New(component, color, a.stderr,
		logger.WithLevel(a.cfg.LogLevel),
		logger.WithFormat(a.cfg.LogFormat),
	)
}

// localPlanner builds a plan service backed by in-process stores.
func (a *App) localPlanner() (*service.PlanService, error) {
	log, err := a.newLogger("PLANNER", config.ColorCyan)
	if err != nil {
		return nil, err
	}
	return service.NewPlanService(
		repo.NewMemoryRunRepo(),
		sortedstorage.NewMemorySortedQueue(int64(a.cfg.BoardSize)),
		log,
		&service.Options{Verify: true},
	)
}
