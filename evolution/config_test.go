package evolution_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/evolution"
)

// TestDefaultConfig_Valid pins the reference parameters.
func TestDefaultConfig_Valid(t *testing.T) {
	cfg := evolution.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.PopulationSize)
	assert.Equal(t, 0.1, cfg.MutationRate)
	assert.Equal(t, 0.4, cfg.SelectionRate)
	assert.Equal(t, 20.0, cfg.WallPenalty)
	assert.Equal(t, 5.0, cfg.BacktrackPenalty)
	assert.Equal(t, 10.0, cfg.DistanceWeight)
	assert.Equal(t, 1.0, cfg.LengthWeight)
	assert.False(t, cfg.BlockedIsBacktrack)
	assert.True(t, cfg.Pheromones)
}

// TestConfig_Validate covers each rejected parameter.
func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*evolution.Config)
	}{
		{"TinyPopulation", func(c *evolution.Config) { c.PopulationSize = 1 }},
		{"TinyGenome", func(c *evolution.Config) { c.GenomeLength = 1 }},
		{"NegativeMutation", func(c *evolution.Config) { c.MutationRate = -0.1 }},
		{"MutationAboveOne", func(c *evolution.Config) { c.MutationRate = 1.5 }},
		{"ZeroSelection", func(c *evolution.Config) { c.SelectionRate = 0 }},
		{"SelectionAboveOne", func(c *evolution.Config) { c.SelectionRate = 1.01 }},
		{"NegativePenalty", func(c *evolution.Config) { c.WallPenalty = -1 }},
		{"NegativeReward", func(c *evolution.Config) { c.GoalReward = -1 }},
		{"ZeroPheromoneInterval", func(c *evolution.Config) { c.PheromoneInterval = 0 }},
		{"NegativeReport", func(c *evolution.Config) { c.ReportInterval = -2 }},
		{"NegativeWorkers", func(c *evolution.Config) { c.Workers = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := evolution.DefaultConfig()
			tc.mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), evolution.ErrInvalidConfig)
		})
	}
}

// TestLoadConfig overlays YAML on the defaults.
func TestLoadConfig(t *testing.T) {
	doc := `
population_size: 50
mutation_rate: 0.05
blocked_is_backtrack: true
stop_on_goal: true
workers: 4
`
	cfg, err := evolution.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.PopulationSize)
	assert.Equal(t, 0.05, cfg.MutationRate)
	assert.True(t, cfg.BlockedIsBacktrack)
	assert.True(t, cfg.StopOnGoal)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 0.4, cfg.SelectionRate, "untouched keys keep defaults")

	empty, err := evolution.LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, evolution.DefaultConfig(), empty)
}

// TestLoadConfig_Errors rejects unknown keys and invalid values.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := evolution.LoadConfig(strings.NewReader("populaton_size: 10\n"))
	assert.ErrorIs(t, err, evolution.ErrInvalidConfig)

	_, err = evolution.LoadConfig(strings.NewReader("selection_rate: 2\n"))
	assert.ErrorIs(t, err, evolution.ErrInvalidConfig)

	_, err = evolution.LoadConfig(strings.NewReader("population_size: [1, 2]\n"))
	assert.ErrorIs(t, err, evolution.ErrInvalidConfig)
}
