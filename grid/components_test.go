package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/rng"
)

// noGoal is the fixture with the goal left as a plain open cell.
var noGoal = []string{
	"S.#.",
	"##.#",
	"##.#",
	"###.",
}

// TestHopsFrom checks 8-connected hop counts on the fixture.
func TestHopsFrom(t *testing.T) {
	g := mustParse(t, fixture)
	hops := g.HopsFrom(g.Start())

	want := map[grid.Cell]int{
		{Row: 0, Col: 0}: 0,
		{Row: 0, Col: 1}: 1,
		{Row: 1, Col: 2}: 2,
		{Row: 0, Col: 3}: 3,
		{Row: 2, Col: 2}: 3,
		{Row: 3, Col: 3}: 4,
	}
	for c, h := range want {
		assert.Equal(t, h, hops[g.Index(c)], "hops at %v", c)
	}
	assert.Equal(t, grid.Unreached, hops[g.Index(grid.Cell{Row: 1, Col: 0})])

	// a wall source reaches nothing
	for _, h := range g.HopsFrom(grid.Cell{Row: 1, Col: 1}) {
		assert.Equal(t, grid.Unreached, h)
	}
}

// TestReachable_Order checks hop-major ordering and wall sources.
func TestReachable_Order(t *testing.T) {
	g := mustParse(t, fixture)
	got := g.Reachable(g.Start())
	want := []grid.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2},
		{Row: 0, Col: 3}, {Row: 2, Col: 2}, {Row: 3, Col: 3},
	}
	assert.Equal(t, want, got)
	assert.Nil(t, g.Reachable(grid.Cell{Row: 3, Col: 0}))
}

// TestPassableEdges_Tree verifies the edge count of a tree fixture.
func TestPassableEdges_Tree(t *testing.T) {
	g := mustParse(t, fixture)
	assert.Equal(t, 6, g.OpenCount())
	assert.Equal(t, 5, g.PassableEdges())
	assert.Len(t, g.PassableCells(), 6)

	// a 2×2 open block is a K4 under 8-connectivity
	block := mustParse(t, []string{"S.", ".."})
	assert.Equal(t, 6, block.PassableEdges())
}

// TestGoalCandidates_MinHops filters by hop distance.
func TestGoalCandidates_MinHops(t *testing.T) {
	g := mustParse(t, noGoal)

	all := g.GoalCandidates(grid.GoalPolicy{})
	assert.Len(t, all, 5, "every open cell but start")

	far := g.GoalCandidates(grid.GoalPolicy{MinHops: 3})
	assert.Equal(t, []grid.Cell{{Row: 0, Col: 3}, {Row: 2, Col: 2}, {Row: 3, Col: 3}}, far)

	assert.Equal(t, []grid.Cell{{Row: 3, Col: 3}}, g.GoalCandidates(grid.GoalPolicy{MinHops: 4}))
	assert.Empty(t, g.GoalCandidates(grid.GoalPolicy{MinHops: 5}))
	assert.Equal(t, grid.GoalPolicy{MinHops: 6}, grid.DefaultGoalPolicy(9))
}

// TestAssignGoal covers sampling, exhaustion, and single assignment.
func TestAssignGoal(t *testing.T) {
	g := mustParse(t, noGoal)
	_, err := g.AssignGoal(grid.GoalPolicy{MinHops: 5}, rng.FromSeed(1))
	require.ErrorIs(t, err, grid.ErrUnreachableGoal)
	assert.False(t, g.HasGoal())

	goal, err := g.AssignGoal(grid.GoalPolicy{MinHops: 4}, rng.FromSeed(1))
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Row: 3, Col: 3}, goal)
	assert.True(t, g.HasGoal())

	_, err = g.AssignGoal(grid.GoalPolicy{}, nil)
	assert.ErrorIs(t, err, grid.ErrGoalAlreadySet)
}

// TestSetGoal_Errors covers explicit goal validation.
func TestSetGoal_Errors(t *testing.T) {
	cases := []struct {
		name string
		cell grid.Cell
		err  error
	}{
		{"Outside", grid.Cell{Row: 4, Col: 4}, grid.ErrCellOutOfBounds},
		{"Start", grid.Cell{Row: 0, Col: 0}, grid.ErrGoalIsStart},
		{"Wall", grid.Cell{Row: 1, Col: 1}, grid.ErrGoalNotOpen},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, noGoal)
			assert.ErrorIs(t, g.SetGoal(tc.cell), tc.err)
		})
	}

	g := mustParse(t, noGoal)
	require.NoError(t, g.SetGoal(grid.Cell{Row: 2, Col: 2}))
	assert.ErrorIs(t, g.SetGoal(grid.Cell{Row: 3, Col: 3}), grid.ErrGoalAlreadySet)
}
