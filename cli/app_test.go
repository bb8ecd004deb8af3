package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beka-birhanu/vacuum-planner/infrastruture/codec"
	"github.com/beka-birhanu/vacuum-planner/infrastruture/token"
	"github.com/beka-birhanu/vacuum-planner/planner"
	"github.com/beka-birhanu/vacuum-planner/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	app.cfg.LogLevel = "error"
	app.cfg.JWTSecret = ""
	return app, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestApp_Version(t *testing.T) {
	app, stdout, _ := newTestApp()

	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"version"}))
	assert.Contains(t, stdout.String(), "vacuum version")
}

func TestApp_Help(t *testing.T) {
	app, stdout, _ := newTestApp()

	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"--help"}))
	for _, cmd := range []string{"plan", "compare", "generate", "maze", "bench", "serve", "token"} {
		assert.Contains(t, stdout.String(), cmd)
	}
}

func TestApp_Plan(t *testing.T) {
	dir := t.TempDir()
	line := writeFile(t, dir, "line.txt", "3\n1\n@*_\n")
	enclosed := writeFile(t, dir, "enclosed.txt", "3\n3\n@_#\n_#*\n__#\n")
	noStart := writeFile(t, dir, "nostart.txt", "3\n1\n_*_\n")

	t.Run("Prints the plan then the counters", func(t *testing.T) {
		for _, algorithm := range []string{"uniform-cost", "DEPTH-FIRST"} {
			app, stdout, _ := newTestApp()
			require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"plan", algorithm, line}))
			assert.Equal(t, "E\nV\n6 nodes generated\n4 nodes expanded\n", stdout.String())
		}
	})

	t.Run("Reports an unsolvable world", func(t *testing.T) {
		app, stdout, _ := newTestApp()
		require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"plan", "depth-first", enclosed}))
		assert.Equal(t, "No solution found.\n9 nodes generated\n5 nodes expanded\n", stdout.String())
	})

	t.Run("JSON output", func(t *testing.T) {
		app, stdout, _ := newTestApp()
		require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"plan", "uniform-cost", line, "--format", "json"}))
		assert.Contains(t, stdout.String(), `"solved": true`)
		assert.Contains(t, stdout.String(), `"nodes_expanded": 4`)
	})

	t.Run("Protobuf output decodes", func(t *testing.T) {
		app, stdout, _ := newTestApp()
		require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"plan", "uniform-cost", line, "-f", "proto"}))
		run, err := (&codec.Protobuf{}).UnmarshalRun(stdout.Bytes())
		require.NoError(t, err)
		assert.Equal(t, []string{"E", "V"}, run.Plan)
	})

	t.Run("Errors", func(t *testing.T) {
		cases := map[string]struct {
			args []string
			err  error
		}{
			"unknown algorithm": {[]string{"plan", "greedy", line}, planner.ErrUnknownStrategy},
			"no start":          {[]string{"plan", "depth-first", noStart}, planner.ErrNoStart},
			"missing file":      {[]string{"plan", "depth-first", filepath.Join(dir, "nope.txt")}, os.ErrNotExist},
			"unknown format":    {[]string{"plan", "depth-first", line, "--format", "yaml"}, codec.ErrUnknownFormat},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				app, _, _ := newTestApp()
				err := app.ExecuteWithArgs(context.Background(), tc.args)
				assert.ErrorIs(t, err, tc.err)
			})
		}

		app, _, _ := newTestApp()
		assert.Error(t, app.ExecuteWithArgs(context.Background(), []string{"plan", "depth-first"}))
	})
}

func TestApp_Compare(t *testing.T) {
	path := writeFile(t, t.TempDir(), "corners.txt", "3\n3\n*@_\n_#_\n__*\n")

	app, stdout, _ := newTestApp()
	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"compare", path}))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 1+len(planner.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "STRATEGY"))
	assert.True(t, strings.HasPrefix(lines[1], planner.DepthFirstName))
	assert.True(t, strings.HasPrefix(lines[2], planner.UniformCostName))

	app, stdout, _ = newTestApp()
	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"compare", path, "-s", "Uniform-Cost"}))
	assert.Len(t, strings.Split(strings.TrimSpace(stdout.String()), "\n"), 2)
}

func TestApp_Generate(t *testing.T) {
	run := func(args ...string) string {
		app, stdout, _ := newTestApp()
		require.NoError(t, app.ExecuteWithArgs(context.Background(), args))
		return stdout.String()
	}

	t.Run("Scattered world", func(t *testing.T) {
		out := run("generate", "3", "4", "0", "2", "--seed", "7")
		assert.Equal(t, out, run("generate", "3", "4", "0", "2", "--seed", "7"), "same seed must give the same world")

		w, err := world.Parse(strings.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 3, w.Grid.Rows())
		assert.Equal(t, 4, w.Grid.Cols())
		assert.Len(t, w.Dirty, 2)
		assert.NotNil(t, w.Start)
	})

	t.Run("Maze world", func(t *testing.T) {
		out := run("maze", "2", "3", "1", "--seed", "5")

		w, err := world.Parse(strings.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 5, w.Grid.Rows())
		assert.Equal(t, 7, w.Grid.Cols())
		assert.Len(t, w.Dirty, 1)
	})

	t.Run("Writes to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "w.txt")
		assert.Empty(t, run("generate", "2", "2", "0", "1", "--seed", "1", "-o", path))

		w, err := world.ParseFile(path)
		require.NoError(t, err)
		assert.Len(t, w.Dirty, 1)
	})

	t.Run("Rejects bad arguments", func(t *testing.T) {
		for _, args := range [][]string{
			{"generate", "x", "4", "0", "2"},
			{"generate", "3", "4", "half", "2"},
			{"generate", "3", "4", "1.5", "2"},
			{"maze", "0", "3", "1"},
		} {
			app, _, _ := newTestApp()
			assert.Error(t, app.ExecuteWithArgs(context.Background(), args), args)
		}
	})
}

func TestApp_Bench(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "line.txt", "3\n1\n@*_\n")

	t.Run("Runs every world against every strategy", func(t *testing.T) {
		suite := writeFile(t, dir, "suite.yaml", `
strategies: [depth-first, uniform-cost]
worlds:
  - name: line
    file: line.txt
  - name: open
    generate: {rows: 4, cols: 4, blocked: 0, dirty: 2, seed: 3}
  - name: maze
    maze: {width: 3, height: 2, dirty: 2, seed: 9}
`)
		app, stdout, _ := newTestApp()
		require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"bench", suite}))

		lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
		require.Len(t, lines, 1+3*2)
		assert.True(t, strings.HasPrefix(lines[0], "WORLD"))
		assert.Equal(t, []string{"line", "depth-first", "true", "2", "6", "4"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"line", "uniform-cost", "true", "2", "6", "4"}, strings.Fields(lines[2]))
	})

	t.Run("Invalid suites", func(t *testing.T) {
		cases := map[string]struct {
			content string
			err     error
		}{
			"no worlds":      {"strategies: [depth-first]\n", ErrEmptySuite},
			"two sources":    {"worlds:\n  - name: a\n    file: line.txt\n    maze: {width: 2, height: 2}\n", ErrWorldSource},
			"no source":      {"worlds:\n  - name: a\n", ErrWorldSource},
			"no name":        {"worlds:\n  - file: line.txt\n", ErrUnnamedWorld},
			"duplicate name": {"worlds:\n  - name: a\n    file: line.txt\n  - name: a\n    file: line.txt\n", ErrDuplicateName},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				suite := writeFile(t, dir, strings.ReplaceAll(name, " ", "_")+".yaml", tc.content)
				app, _, _ := newTestApp()
				assert.ErrorIs(t, app.ExecuteWithArgs(context.Background(), []string{"bench", suite}), tc.err)
			})
		}
	})
}

func TestApp_Token(t *testing.T) {
	app, _, _ := newTestApp()
	assert.ErrorIs(t, app.ExecuteWithArgs(context.Background(), []string{"token", "ci"}), ErrMissingSecret)

	app, stdout, _ := newTestApp()
	app.cfg.JWTSecret = "secret"
	require.NoError(t, app.ExecuteWithArgs(context.Background(), []string{"token", "ci", "--ttl", "1h"}))

	claims, err := token.NewJwtService("secret", app.cfg.JWTIssuer).Decode(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, "ci", claims[token.ClaimSubject])
}

func TestApp_ServeRequiresSecret(t *testing.T) {
	app, _, _ := newTestApp()
	assert.ErrorIs(t, app.ExecuteWithArgs(context.Background(), []string{"serve"}), ErrMissingSecret)
}
