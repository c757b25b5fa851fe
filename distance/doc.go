// Package distance computes the goal distance field of a carved maze.
//
// What
//
//   - Compute labels every passable cell with its minimum number of
//     8-directional moves to the goal, and every other cell with Unreachable.
//   - Labels are produced by FIFO relaxation seeded at the goal, so each cell
//     is finalized the first time it is dequeued.
//   - Recompute relabels in place after the grid changed (e.g. after sealing).
//   - Solve walks the field greedily downhill from any reachable cell and
//     returns the move sequence; Trace replays it into cells.
//
// Why
//
//   - The field is the distance term of runner fitness: it measures how far a
//     runner really is from the goal through the maze, not as the crow flies.
//
// Complexity (N = size²)
//
//   - Compute / Recompute: O(N·8) time, O(N) memory.
//   - Distance:            O(1).
//   - Solve:               O(d·8) for a start at distance d.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrGoalUnset        if the grid has no goal.
//   - ErrUnreachableCell  if Solve starts from an unlabeled cell.
//   - ErrStuckPath        if Solve finds no strictly improving neighbor.
//   - ctx.Err()           if the context is cancelled mid-relaxation.
package distance
