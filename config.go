package mazerunner

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazerunner/evolution"
	"github.com/katalvlaran/mazerunner/grid"
)

// ErrInvalidConfig wraps every scenario configuration failure.
var ErrInvalidConfig = errors.New("mazerunner: invalid config")

// Config describes one scenario. Field tags are the YAML keys accepted by LoadConfig.
type Config struct {
	// Size is the side length of the square maze.
	Size int `yaml:"size"`
	// Seed feeds every random stream; 0 means rng.DefaultSeed.
	Seed int64 `yaml:"seed"`
	// Generations is the upper bound on evolved generations.
	Generations int `yaml:"generations"`
	// MinGoalHops is the minimum hop distance of a sampled goal from start;
	// 0 means size·2/3. Ignored when Goal is set.
	MinGoalHops int `yaml:"min_goal_hops"`

	// Start fixes the start cell instead of drawing it.
	Start *grid.Cell `yaml:"start"`
	// Goal fixes the goal cell instead of sampling it; it must end up open.
	Goal *grid.Cell `yaml:"goal"`

	Evolution evolution.Config `yaml:"evolution"`
}

// DefaultConfig returns a 20×20 scenario over evolution.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Size:        20,
		Seed:        1,
		Generations: 100,
		Evolution:   evolution.DefaultConfig(),
	}
}

// Validate reports the first invalid parameter wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Size < grid.MinSize:
		return fmt.Errorf("%w: size %d < %d", ErrInvalidConfig, c.Size, grid.MinSize)
	case c.Generations < 1:
		return fmt.Errorf("%w: generations %d < 1", ErrInvalidConfig, c.Generations)
	case c.MinGoalHops < 0:
		return fmt.Errorf("%w: min_goal_hops %d < 0", ErrInvalidConfig, c.MinGoalHops)
	}
	if err := c.Evolution.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// goalPolicy resolves MinGoalHops against the maze size.
func (c Config) goalPolicy() grid.GoalPolicy {
	if c.MinGoalHops == 0 {
		return grid.DefaultGoalPolicy(c.Size)
	}
	return grid.GoalPolicy{MinHops: c.MinGoalHops}
}

// LoadConfig decodes a YAML document over DefaultConfig and validates the
// result. Unknown keys are rejected at every level. An empty document yields
// the defaults.
//
//	size: 15
//	seed: 7
//	goal: {row: 14, col: 14}
//	evolution:
//	  population_size: 100
//	  stop_on_goal: true
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
