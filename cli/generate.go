package cli

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/spf13/cobra"
)

// generateOptions holds options shared by the world generators.
type generateOptions struct {
	seed   int64
	output string
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&o.seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Write the world to a file instead of stdout")
}

func (o *generateOptions) rng() *rand.Rand {
	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// newGenerateCmd creates the generate command.
func (a *App) newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <rows> <cols> <blocked-fraction> <num-dirty>",
		Short: "Generate a random world",
		Long: `Generate a world where each cell is blocked with the given probability,
then scatter the dirty cells and the agent over the open cells.

Examples:
  vacuum generate 5 7 0.15 3
  vacuum generate 20 20 0.3 8 --seed 42 -o worlds/big.txt`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := intArg("rows", args[0])
			if err != nil {
				return err
			}
			cols, err := intArg("cols", args[1])
			if err != nil {
				return err
			}
			fraction, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("blocked-fraction %q: %w", args[2], err)
			}
			dirty, err := intArg("num-dirty", args[3])
			if err != nil {
				return err
			}

			w, err := world.Generate(world.GenerateConfig{
				Rows:            rows,
				Cols:            cols,
				BlockedFraction: fraction,
				Dirty:           dirty,
			}, opts.rng())
			if err != nil {
				return err
			}
			return a.writeWorld(w, opts.output)
		},
	}
	opts.bind(cmd)

	return cmd
}

// newMazeCmd creates the maze command.
func (a *App) newMazeCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "maze <height> <width> <num-dirty>",
		Short: "Generate a maze world",
		Long: `Generate a perfect maze of height x width rooms with Wilson's algorithm.
Walls become blocked cells, so the grid is (2*height+1) x (2*width+1).

Examples:
  vacuum maze 4 6 5 --seed 7`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := intArg("height", args[0])
			if err != nil {
				return err
			}
			width, err := intArg("width", args[1])
			if err != nil {
				return err
			}
			dirty, err := intArg("num-dirty", args[2])
			if err != nil {
				return err
			}

			w, err := world.GenerateMaze(world.MazeConfig{
				Width:  width,
				Height: height,
				Dirty:  dirty,
			}, opts.rng())
			if err != nil {
				return err
			}
			return a.writeWorld(w, opts.output)
		},
	}
	opts.bind(cmd)

	return cmd
}

func (a *App) writeWorld(w *world.World, path string) error {
	if path == "" {
		_, err := fmt.Fprint(a.stdout, w.String())
		return err
	}
	return os.WriteFile(path, []byte(w.String()), 0o644)
}

func intArg(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, err)
	}
	return v, nil
}
