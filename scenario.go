package mazerunner

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/mazerunner/distance"
	"github.com/katalvlaran/mazerunner/evolution"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/maze"
	"github.com/katalvlaran/mazerunner/rng"
	"github.com/katalvlaran/mazerunner/runner"
)

// Option configures a Scenario.
type Option func(*options)

type options struct {
	log          *slog.Logger
	onGeneration func(evolution.GenerationStats) error
}

// WithLogger sets the structured logger shared by the scenario and its engine.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithOnGeneration forwards a generation hook to the engine.
func WithOnGeneration(fn func(evolution.GenerationStats) error) Option {
	return func(o *options) {
		o.onGeneration = fn
	}
}

// Scenario is a fully built maze with its distance field and evolution engine.
type Scenario struct {
	cfg    Config
	log    *slog.Logger
	g      *grid.Grid
	carve  *maze.Result
	field  *distance.Field
	engine *evolution.Engine
}

// Report summarizes a finished Run.
type Report struct {
	// Best is the best runner of the last evaluated generation.
	Best *runner.Runner
	// Generations is the number of evaluated generations.
	Generations int
	// Solved is true once a runner reached the goal at the minimum fitness.
	Solved bool
	// Sealed is the number of cells sealed over the whole run.
	Sealed int
	// Explored is the number of distinct cells visited by any runner.
	Explored int
}

// NewScenario builds the maze, picks the goal, labels the distance field and
// creates the engine. Start placement, carving, goal sampling and evolution
// use separate streams derived from cfg.Seed.
// Returns a wrapped ErrInvalidConfig, or the first error of a building stage.
func NewScenario(cfg Config, opts ...Option) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log := o.log.With(slog.String("component", "scenario"))

	gridOpts := []grid.Option{grid.WithRand(rng.Stream(cfg.Seed, rng.StreamStart))}
	if cfg.Start != nil {
		gridOpts = append(gridOpts, grid.WithStart(*cfg.Start))
	}
	g, err := grid.New(cfg.Size, gridOpts...)
	if err != nil {
		return nil, fmt.Errorf("mazerunner: grid: %w", err)
	}

	carve, err := maze.Generate(g, maze.WithRand(rng.Stream(cfg.Seed, rng.StreamCarve)))
	if err != nil {
		return nil, fmt.Errorf("mazerunner: carve: %w", err)
	}

	if cfg.Goal != nil {
		err = g.SetGoal(*cfg.Goal)
	} else {
		_, err = g.AssignGoal(cfg.goalPolicy(), rng.Stream(cfg.Seed, rng.StreamGoal))
	}
	if err != nil {
		return nil, fmt.Errorf("mazerunner: goal: %w", err)
	}

	field, err := distance.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("mazerunner: distance: %w", err)
	}

	engine, err := evolution.New(g, field, cfg.Evolution,
		evolution.WithRand(rng.Stream(cfg.Seed, rng.StreamEvolution)),
		evolution.WithLogger(o.log),
		evolution.WithOnGeneration(o.onGeneration),
	)
	if err != nil {
		return nil, fmt.Errorf("mazerunner: engine: %w", err)
	}

	goal, _ := g.Goal()
	log.Info("scenario ready",
		slog.Int("size", cfg.Size),
		slog.Int64("seed", cfg.Seed),
		slog.Any("start", g.Start()),
		slog.Any("goal", goal),
		slog.Int("open_cells", g.OpenCount()),
		slog.Int("start_distance", field.Distance(g.Start())),
		slog.Int("genome_length", engine.GenomeLength()),
	)

	return &Scenario{
		cfg:    cfg,
		log:    log,
		g:      g,
		carve:  carve,
		field:  field,
		engine: engine,
	}, nil
}

// Run evolves for at most cfg.Generations generations. On cancellation or a
// hook error the partial report is returned with the error.
func (s *Scenario) Run(ctx context.Context) (*Report, error) {
	best, err := s.engine.Evolution(ctx, s.cfg.Generations)
	rep := &Report{
		Best:        best,
		Generations: s.engine.Generation(),
		Solved:      s.engine.Solved(),
		Sealed:      s.g.SealedCount(),
		Explored:    len(s.engine.Explored()),
	}
	if err != nil {
		s.log.Warn("run interrupted",
			slog.Int("generations", rep.Generations),
			slog.String("error", err.Error()),
		)
		return rep, err
	}
	return rep, nil
}

// Solution returns the field-greedy route from start to goal on the current
// maze. It is the reference the population is measured against.
func (s *Scenario) Solution() ([]grid.Direction, error) {
	return s.field.Solve(s.g.Start())
}

// Config returns the scenario configuration.
func (s *Scenario) Config() Config { return s.cfg }

// Grid returns the live maze. Sealing during Run mutates it.
func (s *Scenario) Grid() *grid.Grid { return s.g }

// Carving returns the carving statistics of the maze.
func (s *Scenario) Carving() *maze.Result { return s.carve }

// Field returns the live distance field.
func (s *Scenario) Field() *distance.Field { return s.field }

// Engine returns the evolution engine.
func (s *Scenario) Engine() *evolution.Engine { return s.engine }
