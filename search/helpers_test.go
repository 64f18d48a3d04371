package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/search"
)

// newEngine builds a w×h grid with the given cells blocked and returns an
// engine over it.
func newEngine(t testing.TB, w, h int, blocked ...grid.Position) (*search.Engine, *grid.Grid) {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	for _, p := range blocked {
		require.NoError(t, g.SetBlocked(p, true))
	}
	e, err := search.New(g)
	require.NoError(t, err)

	return e, g
}

// randomGrid blocks each cell with probability density, using a fixed seed.
func randomGrid(t testing.TB, w, h int, density float64, seed int64) *grid.Grid {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := grid.New(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < density {
				require.NoError(t, g.SetBlocked(grid.Pos(x, y), true))
			}
		}
	}

	return g
}

// requireRoute asserts p is a valid simple path from start to end.
func requireRoute(t testing.TB, p grid.Path, start, end grid.Position) {
	t.Helper()
	require.NotEmpty(t, p)
	require.True(t, p.Valid(), "path %v is not a simple orthogonal path", p)
	require.Equal(t, start, p.Start())
	require.Equal(t, end, p.End())
}

// solvers lists the three path-producing methods by name.
var solvers = []struct {
	name   string
	method search.Method
}{
	{"DFS", search.MethodDFS},
	{"BFS", search.MethodBFS},
	{"AStar", search.MethodAStar},
}
