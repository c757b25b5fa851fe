package grid

// Unreached marks cells a flood fill did not reach.
const Unreached = -1

// HopsFrom runs a breadth-first flood fill from src through passable cells
// with 8-connectivity and returns the hop count of every cell in row-major
// order; unreached cells hold Unreached. An impassable or out-of-bounds src
// yields an all-Unreached result.
//
// Time:   O(size²·8).
// Memory: O(size²).
func (g *Grid) HopsFrom(src Cell) []int {
	total := g.size * g.size
	hops := make([]int, total)
	for i := range hops {
		hops[i] = Unreached
	}
	if !g.IsPassable(src) {
		return hops
	}

	i0 := g.index(src)
	hops[i0] = 0
	queue := make([]int, 0, total)
	queue = append(queue, i0)
	dirs := Directions()

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		uc := g.Coordinate(u)
		for _, d := range dirs {
			vc := uc.Step(d)
			if !g.IsPassable(vc) {
				continue
			}
			vi := g.index(vc)
			if hops[vi] == Unreached {
				hops[vi] = hops[u] + 1
				queue = append(queue, vi)
			}
		}
	}
	return hops
}

// Reachable returns every passable cell reachable from src ordered by hop
// count, ties in row-major order (src first). Returns nil if src is not passable.
func (g *Grid) Reachable(src Cell) []Cell {
	if !g.IsPassable(src) {
		return nil
	}
	hops := g.HopsFrom(src)
	maxHop := 0
	for _, h := range hops {
		if h > maxHop {
			maxHop = h
		}
	}
	buckets := make([][]Cell, maxHop+1)
	for i, h := range hops {
		if h == Unreached {
			continue
		}
		buckets[h] = append(buckets[h], g.Coordinate(i))
	}
	out := make([]Cell, 0, len(hops))
	for _, b := range buckets {
		out = append(out, b...)
	}
	return out
}

// PassableCells lists every passable cell in row-major order.
func (g *Grid) PassableCells() []Cell {
	out := make([]Cell, 0, g.size)
	for i, s := range g.cells {
		if s == Open {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// PassableEdges counts unordered pairs of adjacent passable cells under
// 8-connectivity. A carved tree has exactly OpenCount()-1 of them.
func (g *Grid) PassableEdges() int {
	edges := 0
	for i, s := range g.cells {
		if s != Open {
			continue
		}
		c := g.Coordinate(i)
		for _, d := range Directions() {
			n := c.Step(d)
			if g.IsPassable(n) && g.index(n) > i {
				edges++
			}
		}
	}
	return edges
}
