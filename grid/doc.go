// Package grid models the square maze that runners walk.
//
// What:
//
//   - Grid stores a size×size matrix of Wall / Open / Sealed cells in row-major order.
//   - Start is open from construction; the goal is assigned once, either explicitly
//     (SetGoal) or by sampling a GoalPolicy (AssignGoal).
//   - The 8-direction compass (E, NE, N, NW, W, SW, S, SE) is a package-level table;
//     every other package refers to it through Direction and Cell.Step.
//   - Sealing turns discovered dead ends into impassable cells, one way only.
//
// Why:
//
//   - Maze generation, distance labelling and evolution all need the same notion of
//     adjacency and passability; keeping it here avoids drifting copies.
//
// Complexity:
//
//   - IsMoveValid, Seal, IsDeadEnd: O(1).
//   - HopsFrom, Reachable, GoalCandidates: O(size²·8) time, O(size²) memory.
//
// Errors:
//
//   - ErrInvalidSize: size below MinSize.
//   - ErrCellOutOfBounds: coordinate outside the grid.
//   - ErrGoalNotOpen, ErrGoalIsStart, ErrGoalAlreadySet: bad goal assignment.
//   - ErrUnreachableGoal: no cell satisfies the GoalPolicy.
//   - ErrBadLayout: malformed input to Parse.
package grid
