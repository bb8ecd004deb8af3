package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/spf13/cobra"
)

// compareOptions holds options for the compare command.
type compareOptions struct {
	strategies []string
}

// newCompareCmd creates the compare command.
func (a *App) newCompareCmd() *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <world-file>",
		Short: "Run several strategies on one world and tabulate the results",
		Long: `Run every strategy (or those given with --strategy) on the same world
concurrently and print one row per strategy.

Examples:
  vacuum compare worlds/small.txt
  vacuum compare worlds/small.txt --strategy uniform-cost`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompare(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.strategies, "strategy", "s", nil, "Strategies to run (default all)")

	return cmd
}

// runCompare prints a table of runs over one world.
func (a *App) runCompare(ctx context.Context, path string, opts *compareOptions) error {
	w, err := world.ParseFile(path)
	if err != nil {
		return err
	}

	ps, err := a.localPlanner()
	if err != nil {
		return err
	}

	strategies := make([]string, len(opts.strategies))
	for idx, s := range opts.strategies {
		strategies[idx] = strings.ToLower(s)
	}

	runs, err := ps.Compare(ctx, w, strategies...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tSOLVED\tLENGTH\tGENERATED\tEXPANDED\tDURATION")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\t%s\n",
			run.Strategy, run.Solved, len(run.Plan), run.NodesGenerated, run.NodesExpanded, run.Duration)
	}
	return tw.Flush()
}
