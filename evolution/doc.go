// Package evolution runs the genetic search that teaches runners to cross a maze.
//
// What
//
//   - Engine owns a fixed-size population of runner.Runner values.
//   - RunGeneration walks and scores every runner, collects explored cells and
//     sorts the population best-first (lower fitness is better).
//   - ApplyPheromones seals every explored dead end and refreshes the distance
//     field, shrinking the maze for all later generations.
//   - Selection keeps the elite prefix; Reproduction refills the population by
//     single-point Crossover of random elite parents followed by Mutation.
//   - Evolution chains the phases for a number of generations, with optional
//     early stop, progress hook and structured logging.
//
// Fitness
//
//	blocked steps × WallPenalty
//	+ revisits × BacktrackPenalty − discoveries × DiscoveryBonus
//	+ DistanceWeight × field distance of the terminal cell
//	+ LengthWeight × path length − GoalReward (if the goal was reached)
//
// Determinism
//
//	All randomness comes from the engine's *rand.Rand. Evaluation draws no
//	random numbers, so concurrent evaluation (Workers > 1) yields the same
//	history as sequential evaluation.
//
// Configuration
//
//	Config is plain data with YAML tags; LoadConfig overlays a YAML document
//	on DefaultConfig and rejects unknown keys.
//
// Errors
//
//   - ErrInvalidConfig   wraps every configuration failure.
//   - ErrNilGrid, ErrNilField, ErrGoalUnset, ErrFieldMismatch from New.
//   - ErrInvalidCut, ErrGenomeMismatch from CrossoverAt and SeedPopulation.
//   - ctx.Err() and wrapped OnGeneration hook errors from Evolution.
package evolution
