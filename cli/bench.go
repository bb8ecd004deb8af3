package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptySuite    = errors.New("bench suite lists no worlds")
	ErrWorldSource   = errors.New("bench world needs exactly one of file, generate or maze")
	ErrUnnamedWorld  = errors.New("bench world needs a name")
	ErrDuplicateName = errors.New("bench world name used twice")
)

// benchSuite is the YAML layout of a bench file.
//
//	strategies: [depth-first, uniform-cost]
//	worlds:
//	  - name: small
//	    file: worlds/small.txt
//	  - name: scattered
//	    generate: {rows: 8, cols: 8, blocked: 0.2, dirty: 4, seed: 1}
//	  - name: maze
//	    maze: {width: 5, height: 5, dirty: 3, seed: 2}
type benchSuite struct {
	Strategies []string     `yaml:"strategies"`
	Worlds     []benchWorld `yaml:"worlds"`
}

type benchWorld struct {
	Name     string          `yaml:"name"`
	File     string          `yaml:"file,omitempty"`
	Generate *benchGenerated `yaml:"generate,omitempty"`
	Maze     *benchMaze      `yaml:"maze,omitempty"`
}

type benchGenerated struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Blocked float64 `yaml:"blocked"`
	Dirty   int     `yaml:"dirty"`
	Seed    int64   `yaml:"seed"`
}

type benchMaze struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Dirty  int   `yaml:"dirty"`
	Seed   int64 `yaml:"seed"`
}

// loadBenchSuite reads and validates a suite file.
func loadBenchSuite(path string) (*benchSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	suite := &benchSuite{}
	if err := yaml.Unmarshal(data, suite); err != nil {
		return nil, fmt.Errorf("bench suite %s: %w", path, err)
	}
	if len(suite.Worlds) == 0 {
		return nil, ErrEmptySuite
	}

	seen := make(map[string]struct{}, len(suite.Worlds))
	for idx, bw := range suite.Worlds {
		if bw.Name == "" {
			return nil, fmt.Errorf("world %d: %w", idx, ErrUnnamedWorld)
		}
		if _, dup := seen[bw.Name]; dup {
			return nil, fmt.Errorf("%s: %w", bw.Name, ErrDuplicateName)
		}
		seen[bw.Name] = struct{}{}

		sources := 0
		if bw.File != "" {
			sources++
		}
		if bw.Generate != nil {
			sources++
		}
		if bw.Maze != nil {
			sources++
		}
		if sources != 1 {
			return nil, fmt.Errorf("%s: %w", bw.Name, ErrWorldSource)
		}
	}
	return suite, nil
}

// build materializes the world. Relative files resolve against dir.
func (bw benchWorld) build(dir string) (*world.World, error) {
	switch {
	case bw.File != "":
		path := bw.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return world.ParseFile(path)
	case bw.Generate != nil:
		g := bw.Generate
		return world.Generate(world.GenerateConfig{
			Rows:            g.Rows,
			Cols:            g.Cols,
			BlockedFraction: g.Blocked,
			Dirty:           g.Dirty,
		}, rand.New(rand.NewSource(g.Seed)))
	default:
		m := bw.Maze
		return world.GenerateMaze(world.MazeConfig{
			Width:  m.Width,
			Height: m.Height,
			Dirty:  m.Dirty,
		}, rand.New(rand.NewSource(m.Seed)))
	}
}

// newBenchCmd creates the bench command.
func (a *App) newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <suite.yaml>",
		Short: "Run a YAML suite of worlds against every listed strategy",
		Long: `Run each world of a bench suite against each strategy and print one row
per pair. Worlds come from files (relative to the suite) or from seeded
generator parameters, so a suite always benchmarks the same worlds.

Example suite:
  strategies: [depth-first, uniform-cost]
  worlds:
    - name: small
      file: worlds/small.txt
    - name: maze
      maze: {width: 5, height: 5, dirty: 3, seed: 2}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBench(cmd.Context(), args[0])
		},
	}
}

// runBench runs every (world, strategy) pair of a suite.
func (a *App) runBench(ctx context.Context, path string) error {
	suite, err := loadBenchSuite(path)
	if err != nil {
		return err
	}

	ps, err := a.localPlanner()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORLD\tSTRATEGY\tSOLVED\tLENGTH\tGENERATED\tEXPANDED")
	for _, bw := range suite.Worlds {
		w, err := bw.build(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", bw.Name, err)
		}

		runs, err := ps.Compare(ctx, w, suite.Strategies...)
		if err != nil {
			return fmt.Errorf("%s: %w", bw.Name, err)
		}
		for _, run := range runs {
			fmt.Fprintf(tw, "%s\t%s\t%t\t%d\t%d\t%d\n",
				bw.Name, run.Strategy, run.Solved, len(run.Plan), run.NodesGenerated, run.NodesExpanded)
		}
	}
	return tw.Flush()
}
