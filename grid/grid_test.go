package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.w, tc.h)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("New(%d,%d) error = %v; want ErrEmptyGrid", tc.w, tc.h, err)
			}
		})
	}
}

// TestNew_TooLarge verifies that a cell count overflowing int is rejected
// instead of allocating a short slice.
func TestNew_TooLarge(t *testing.T) {
	for _, dims := range [][2]int{{1 << 62, 4}, {4, 1 << 62}, {math.MaxInt, 2}} {
		require.NotPanics(t, func() {
			_, err := grid.New(dims[0], dims[1])
			assert.ErrorIs(t, err, grid.ErrTooLarge, "%dx%d", dims[0], dims[1])
		})
	}
}

// TestNew_CellPositionsMatchIndex checks the invariant that every cell's
// stored position equals its array index.
func TestNew_CellPositionsMatchIndex(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 12, g.Size())

	for idx := 0; idx < g.Size(); idx++ {
		p := g.Coordinate(idx)
		c, err := g.Cell(p)
		require.NoError(t, err)
		assert.Equal(t, p, c.Pos)
		assert.Equal(t, idx, g.Index(p))
		assert.False(t, c.Blocked)
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, p := range []grid.Position{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Blocked state Tests
//----------------------------------------------------------------------------//

// TestSetBlocked toggles a single cell and checks no other cell changes.
func TestSetBlocked(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	require.NoError(t, g.SetBlocked(grid.Pos(1, 2), true))
	assert.True(t, g.Blocked(grid.Pos(1, 2)))
	assert.Equal(t, 1, g.BlockedCount())

	require.NoError(t, g.SetBlocked(grid.Pos(1, 2), false))
	assert.False(t, g.Blocked(grid.Pos(1, 2)))
	assert.Zero(t, g.BlockedCount())
}

// TestOutOfBounds covers the contract violations.
func TestOutOfBounds(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	err = g.SetBlocked(grid.Pos(2, 0), true)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = g.Cell(grid.Pos(0, -1))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	assert.Panics(t, func() { g.Blocked(grid.Pos(5, 5)) })
}

// TestResetAndClone verifies Reset clears flags and Clone is independent.
func TestResetAndClone(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Pos(0, 0), true))

	c := g.Clone()
	g.Reset()

	assert.Zero(t, g.BlockedCount())
	assert.True(t, c.Blocked(grid.Pos(0, 0)), "clone must keep its own state")
}

func TestRestore(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Pos(1, 1), true))
	snap := g.Clone()

	require.NoError(t, g.SetBlocked(grid.Pos(0, 0), true))
	require.NoError(t, g.SetBlocked(grid.Pos(1, 1), false))
	require.NoError(t, g.Restore(snap))
	assert.True(t, g.Blocked(grid.Pos(1, 1)))
	assert.False(t, g.Blocked(grid.Pos(0, 0)))
	assert.Equal(t, 1, g.BlockedCount())

	other, err := grid.New(2, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Restore(other), grid.ErrSizeMismatch)
}

//----------------------------------------------------------------------------//
// Position and Path Tests
//----------------------------------------------------------------------------//

func TestPosition(t *testing.T) {
	p := grid.Pos(1, 1)
	assert.Equal(t, grid.Pos(2, 1), p.Add(grid.Right))
	assert.Equal(t, grid.Pos(1, 0), p.Add(grid.Down))
	assert.Equal(t, 8, grid.Pos(0, 0).Manhattan(grid.Pos(4, 4)))
	assert.Equal(t, "(1,1)", p.String())

	m := map[grid.Position]int{grid.Pos(3, 4): 7}
	assert.Equal(t, 7, m[grid.Position{X: 3, Y: 4}], "structural equality as map key")
}

func TestPath_Valid(t *testing.T) {
	cases := []struct {
		name string
		path grid.Path
		want bool
	}{
		{"Empty", grid.Path{}, false},
		{"Single", grid.Path{{0, 0}}, true},
		{"Straight", grid.Path{{0, 0}, {1, 0}, {2, 0}}, true},
		{"Diagonal", grid.Path{{0, 0}, {1, 1}}, false},
		{"Gap", grid.Path{{0, 0}, {2, 0}}, false},
		{"Repeat", grid.Path{{0, 0}, {1, 0}, {0, 0}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.path.Valid())
		})
	}
}

func TestPath_Accessors(t *testing.T) {
	p := grid.Path{{0, 0}, {0, 1}, {1, 1}}
	assert.Equal(t, 2, p.Steps())
	assert.Equal(t, grid.Pos(0, 0), p.Start())
	assert.Equal(t, grid.Pos(1, 1), p.End())
	assert.True(t, p.Contains(grid.Pos(0, 1)))
	assert.False(t, p.Contains(grid.Pos(1, 0)))
	assert.Zero(t, grid.Path(nil).Steps())
}

//----------------------------------------------------------------------------//
// Render Tests
//----------------------------------------------------------------------------//

// TestRender draws a 3×2 board; the top printed row is y=1.
func TestRender(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetBlocked(grid.Pos(0, 1), true))

	got := g.Render(map[grid.Position]rune{grid.Pos(2, 0): 'A'})
	assert.Equal(t, "#..\n..A\n", got)
}
