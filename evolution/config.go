package evolution

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable parameters of the genetic search. Field tags are
// the YAML keys accepted by LoadConfig.
type Config struct {
	// PopulationSize is restored after every reproduction phase.
	PopulationSize int `yaml:"population_size"`
	// GenomeLength is the number of genes per runner; 0 means size².
	GenomeLength int `yaml:"genome_length"`
	// MutationRate is the per-gene replacement probability, in [0,1].
	MutationRate float64 `yaml:"mutation_rate"`
	// SelectionRate is the retained elite fraction, in (0,1].
	SelectionRate float64 `yaml:"selection_rate"`

	// WallPenalty is added per blocked step.
	WallPenalty float64 `yaml:"wall_penalty"`
	// BacktrackPenalty is added per step landing on an already visited cell.
	BacktrackPenalty float64 `yaml:"backtrack_penalty"`
	// DistanceWeight multiplies the field distance of the terminal cell.
	DistanceWeight float64 `yaml:"distance_weight"`
	// LengthWeight multiplies the realized path length.
	LengthWeight float64 `yaml:"length_weight"`
	// DiscoveryBonus is subtracted per step landing on a new cell.
	DiscoveryBonus float64 `yaml:"discovery_bonus"`
	// GoalReward is subtracted once when the goal is reached.
	GoalReward float64 `yaml:"goal_reward"`
	// BlockedIsBacktrack also charges BacktrackPenalty for blocked steps,
	// since a blocked runner stays where it already was.
	BlockedIsBacktrack bool `yaml:"blocked_is_backtrack"`

	// Pheromones enables dead-end sealing between generations.
	Pheromones bool `yaml:"pheromones"`
	// PheromoneInterval seals every N generations (N ≥ 1).
	PheromoneInterval int `yaml:"pheromone_interval"`

	// StopOnGoal ends Evolution as soon as the best runner reaches the goal.
	StopOnGoal bool `yaml:"stop_on_goal"`
	// ReportInterval logs a progress line and fires the generation hook every
	// N generations; 0 fires the hook every generation and disables the log line.
	ReportInterval int `yaml:"report_interval"`
	// Workers > 1 evaluates runners concurrently.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize:     200,
		GenomeLength:       0,
		MutationRate:       0.1,
		SelectionRate:      0.4,
		WallPenalty:        20,
		BacktrackPenalty:   5,
		DistanceWeight:     10,
		LengthWeight:       1,
		DiscoveryBonus:     0.5,
		GoalReward:         1000,
		BlockedIsBacktrack: false,
		Pheromones:         true,
		PheromoneInterval:  1,
		StopOnGoal:         false,
		ReportInterval:     0,
		Workers:            1,
	}
}

// Validate reports the first invalid parameter wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.PopulationSize < 2:
		return fmt.Errorf("%w: population_size %d < 2", ErrInvalidConfig, c.PopulationSize)
	case c.GenomeLength != 0 && c.GenomeLength < 2:
		return fmt.Errorf("%w: genome_length %d < 2", ErrInvalidConfig, c.GenomeLength)
	case c.MutationRate < 0 || c.MutationRate > 1:
		return fmt.Errorf("%w: mutation_rate %v not in [0,1]", ErrInvalidConfig, c.MutationRate)
	case c.SelectionRate <= 0 || c.SelectionRate > 1:
		return fmt.Errorf("%w: selection_rate %v not in (0,1]", ErrInvalidConfig, c.SelectionRate)
	case c.WallPenalty < 0 || c.BacktrackPenalty < 0 || c.DistanceWeight < 0 || c.LengthWeight < 0:
		return fmt.Errorf("%w: penalties must be non-negative", ErrInvalidConfig)
	case c.DiscoveryBonus < 0 || c.GoalReward < 0:
		return fmt.Errorf("%w: bonuses must be non-negative", ErrInvalidConfig)
	case c.Pheromones && c.PheromoneInterval < 1:
		return fmt.Errorf("%w: pheromone_interval %d < 1", ErrInvalidConfig, c.PheromoneInterval)
	case c.ReportInterval < 0:
		return fmt.Errorf("%w: report_interval %d < 0", ErrInvalidConfig, c.ReportInterval)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// LoadConfig decodes a YAML document over DefaultConfig and validates the
// result. Unknown keys are rejected. An empty document yields the defaults.
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
