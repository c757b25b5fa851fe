package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/distance"
	"github.com/katalvlaran/mazerunner/evolution"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/rng"
	"github.com/katalvlaran/mazerunner/runner"
)

// fixtureRows is a 4×4 tree maze; start distance 4, one side branch at (0,3).
//
//	S.#.
//	##.#
//	##.#
//	###G
var fixtureRows = []string{
	"S.#.",
	"##.#",
	"##.#",
	"###G",
}

// smallConfig is a fast configuration for unit tests.
func smallConfig() evolution.Config {
	cfg := evolution.DefaultConfig()
	cfg.PopulationSize = 20
	cfg.GenomeLength = 16
	return cfg
}

func fixture(t *testing.T) (*grid.Grid, *distance.Field) {
	t.Helper()
	g, err := grid.Parse(fixtureRows)
	require.NoError(t, err)
	f, err := distance.Compute(g)
	require.NoError(t, err)
	return g, f
}

func newEngine(t *testing.T, g *grid.Grid, f *distance.Field, cfg evolution.Config, seed int64) *evolution.Engine {
	t.Helper()
	e, err := evolution.New(g, f, cfg, evolution.WithRand(rng.FromSeed(seed)))
	require.NoError(t, err)
	return e
}

// carved builds a carved maze of the given size with a random far goal.
func carved(t *testing.T, size int, seed int64) (*grid.Grid, *distance.Field) {
	t.Helper()
	g, err := grid.New(size, grid.WithRand(rng.Stream(seed, rng.StreamStart)))
	require.NoError(t, err)
	_, err = maze.Generate(g, maze.WithRand(rng.Stream(seed, rng.StreamCarve)))
	require.NoError(t, err)
	_, err = g.AssignGoal(grid.GoalPolicy{MinHops: 1}, rng.Stream(seed, rng.StreamGoal))
	require.NoError(t, err)
	f, err := distance.Compute(g)
	require.NoError(t, err)
	return g, f
}

// pad extends a route to n genes with East moves, which are never walked
// once the goal is reached.
func pad(route []grid.Direction, n int) []grid.Direction {
	out := append([]grid.Direction(nil), route...)
	for len(out) < n {
		out = append(out, grid.East)
	}
	return out
}

func uniform(start grid.Cell, d grid.Direction, n int) *runner.Runner {
	genome := make([]grid.Direction, n)
	for i := range genome {
		genome[i] = d
	}
	return runner.FromGenome(start, genome)
}
