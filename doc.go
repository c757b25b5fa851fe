// Package mazerunner evolves maze runners with a genetic algorithm.
//
// What is mazerunner?
//
//	A small, deterministic toolkit that brings together:
//		• grid/       square wall/open maze, 8-direction compass, dead-end sealing
//		• maze/       randomized depth-first carving of a spanning-tree maze
//		• distance/   goal distance field, greedy solve, recompute after sealing
//		• runner/     genome of compass moves, walk, lineage IDs
//		• evolution/  fitness, truncation selection, crossover, mutation, pheromones
//		• rng/        seeded random streams shared by every stage
//
// This package wires them into a Scenario: one YAML document (or Config value)
// describes the maze size, the seed, the goal and the genetic parameters;
// NewScenario builds everything from independent random streams and Run
// evolves the population.
//
// Determinism
//
//	Start placement, carving, goal sampling and evolution each draw from their
//	own stream derived from Config.Seed, so the same seed always yields the
//	same maze and the same evolution, and changing one stage does not shift the
//	others.
//
// Quick example:
//
//	cfg := mazerunner.DefaultConfig()
//	cfg.Size = 15
//	sc, err := mazerunner.NewScenario(cfg, mazerunner.WithLogger(slog.Default()))
//	if err != nil {
//		return err
//	}
//	report, err := sc.Run(ctx)
//	fmt.Println(sc.Grid(), report.Best.Fitness, report.Solved)
package mazerunner
