package cli

import (
	"context"
	"strings"

	"github.com/beka-birhanu/vacuum-planner/infrastruture/codec"
	"github.com/beka-birhanu/vacuum-planner/planner"
	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/spf13/cobra"
)

// planOptions holds options for the plan command.
type planOptions struct {
	format string
}

// newPlanCmd creates the plan command.
func (a *App) newPlanCmd() *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <algorithm> <world-file>",
		Short: "Search a world file for a cleaning plan",
		Long: `Search a world file with the chosen algorithm and print the plan, one
action per line (N, S, W, E, V), followed by the node counters.

Algorithms: ` + strings.Join(planner.Names(), ", ") + `

Examples:
  vacuum plan uniform-cost worlds/small.txt
  vacuum plan depth-first worlds/small.txt --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd.Context(), strings.ToLower(args[0]), args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", codec.FormatText, "Output format (text, json, proto)")

	return cmd
}

// runPlan searches one world file and writes the encoded run to stdout.
func (a *App) runPlan(ctx context.Context, algorithm, path string, opts *planOptions) error {
	encoder, err := codec.ForFormat(opts.format)
	if err != nil {
		return err
	}

	w, err := world.ParseFile(path)
	if err != nil {
		return err
	}

	ps, err := a.localPlanner()
	if err != nil {
		return err
	}

	run, err := ps.Plan(ctx, w, algorithm)
	if err != nil {
		return err
	}

	out, err := encoder.MarshalRun(run)
	if err != nil {
		return err
	}
	_, err = a.stdout.Write(out)
	return err
}
