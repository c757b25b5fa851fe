package evolution

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazerunner/distance"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/runner"
)

// Fitness scores the last walk of r; lower is better.
//
//   - blocked step: +WallPenalty (and +BacktrackPenalty with BlockedIsBacktrack);
//   - step onto a visited cell: +BacktrackPenalty;
//   - step onto a new cell: −DiscoveryBonus;
//   - terminal cell: +DistanceWeight × field distance (size² if unreachable);
//   - path length: +LengthWeight × len(Path);
//   - goal reached: −GoalReward.
//
// The distance term uses the maze topology, not straight-line distance.
// Fitness only reads the grid and field, so it is safe to call concurrently.
func (e *Engine) Fitness(r *runner.Runner) float64 {
	c := e.cfg
	f := 0.0

	visited := mapset.New[grid.Cell]()
	visited.Put(r.Start)
	for i, s := range r.Path {
		if s == runner.Blocked {
			f += c.WallPenalty
			if c.BlockedIsBacktrack {
				f += c.BacktrackPenalty
			}
			continue
		}
		cell := r.Trail[i]
		if visited.Has(cell) {
			f += c.BacktrackPenalty
		} else {
			visited.Put(cell)
			f -= c.DiscoveryBonus
		}
	}

	d := e.field.Distance(r.Terminal)
	if d == distance.Unreachable {
		d = e.g.Size() * e.g.Size()
	}
	f += float64(d) * c.DistanceWeight
	f += float64(len(r.Path)) * c.LengthWeight
	if r.GoalReached {
		f -= c.GoalReward
	}
	return f
}

// MinimumFitness is the score of a penalty-free walk along the shortest
// route: d·(LengthWeight − DiscoveryBonus) − GoalReward with d the start
// distance. It is the optimum whenever DiscoveryBonus ≤ LengthWeight.
func (e *Engine) MinimumFitness() float64 {
	d := float64(e.startDist)
	return d*(e.cfg.LengthWeight-e.cfg.DiscoveryBonus) - e.cfg.GoalReward
}
