package evolution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/evolution"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/runner"
)

// TestFitness_Components checks each term of the score on hand-walked genomes.
func TestFitness_Components(t *testing.T) {
	cases := []struct {
		name    string
		genome  []grid.Direction
		backtrk bool
		want    float64
	}{
		{
			// E(new) blocked SE(new) S(new) SE(new, goal): 20 − 4·0.5 + 5·1 − 1000
			name:   "BlockedThenGoal",
			genome: []grid.Direction{grid.East, grid.South, grid.SouthEast, grid.South, grid.SouthEast},
			want:   -977,
		},
		{
			name:    "BlockedCountsAsBacktrack",
			genome:  []grid.Direction{grid.East, grid.South, grid.SouthEast, grid.South, grid.SouthEast},
			backtrk: true,
			want:    -972,
		},
		{
			// E(new) W(revisit) E(revisit), ends at distance 3: −0.5 + 10 + 30 + 3
			name:   "Backtracking",
			genome: []grid.Direction{grid.East, grid.West, grid.East},
			want:   42.5,
		},
		{
			// optimal route: 4·(1 − 0.5) − 1000
			name:   "Optimal",
			genome: []grid.Direction{grid.East, grid.SouthEast, grid.South, grid.SouthEast},
			want:   -998,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, f := fixture(t)
			cfg := smallConfig()
			cfg.BlockedIsBacktrack = tc.backtrk
			e := newEngine(t, g, f, cfg, 1)

			r := runner.FromGenome(g.Start(), tc.genome)
			r.Journey(g)
			assert.InDelta(t, tc.want, e.Fitness(r), 1e-9)
		})
	}
}

// TestFitness_UnreachableTerminal charges size² hops for a cut-off terminal.
func TestFitness_UnreachableTerminal(t *testing.T) {
	g, f := fixture(t)
	e := newEngine(t, g, f, smallConfig(), 1)
	r := runner.FromGenome(g.Start(), []grid.Direction{grid.East})
	r.Journey(g)
	require.True(t, g.Seal(grid.Cell{Row: 0, Col: 1}))
	// −0.5 + 16·10 + 1
	assert.InDelta(t, 160.5, e.Fitness(r), 1e-9)
}

// TestMinimumFitness matches the optimal route's score.
func TestMinimumFitness(t *testing.T) {
	g, f := fixture(t)
	e := newEngine(t, g, f, smallConfig(), 1)
	assert.InDelta(t, -998, e.MinimumFitness(), 1e-9)

	cfg := smallConfig()
	cfg.DiscoveryBonus = 0
	cfg.GoalReward = 0
	e2 := newEngine(t, g, f, cfg, 1)
	assert.InDelta(t, 4, e2.MinimumFitness(), 1e-9)
}

// TestNew_Errors verifies engine construction checks.
func TestNew_Errors(t *testing.T) {
	g, f := fixture(t)
	_, err := evolution.New(nil, f, smallConfig())
	assert.ErrorIs(t, err, evolution.ErrNilGrid)
	_, err = evolution.New(g, nil, smallConfig())
	assert.ErrorIs(t, err, evolution.ErrNilField)

	_, of := fixture(t)
	_, err = evolution.New(g, of, smallConfig())
	assert.ErrorIs(t, err, evolution.ErrFieldMismatch)

	bad := smallConfig()
	bad.PopulationSize = 0
	_, err = evolution.New(g, f, bad)
	assert.ErrorIs(t, err, evolution.ErrInvalidConfig)

	noGoal, err := grid.Parse([]string{"S.", ".."})
	require.NoError(t, err)
	_, err = evolution.New(noGoal, f, smallConfig())
	assert.ErrorIs(t, err, evolution.ErrGoalUnset)
}
