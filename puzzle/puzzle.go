// Package puzzle describes a routing puzzle: board size, solver and the
// ordered endpoint pairs. Puzzles are either generated at random or read
// from HCL files.
package puzzle

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/router"
	"github.com/katalvlaran/flowgrid/search"
)

// Sentinel errors for puzzle construction.
var (
	// ErrTooManyPairs is returned when the board cannot hold 2n distinct endpoints.
	ErrTooManyPairs = errors.New("puzzle: not enough cells for the requested pairs")

	// ErrBadPosition is returned when a position attribute is not [x, y].
	ErrBadPosition = errors.New("puzzle: position must be a two-element list [x, y]")
)

// Palette is the label order given to generated pairs.
var Palette = []string{"red", "blue", "green", "yellow", "orange", "purple", "black", "cyan"}

// Puzzle is a complete routing problem.
type Puzzle struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Method search.Method `json:"method"`
	Pairs  []router.Pair `json:"pairs"`
}

// Label returns the palette label for pair i, or "pair-i" past the palette.
func Label(i int) string {
	if i >= 0 && i < len(Palette) {
		return Palette[i]
	}

	return fmt.Sprintf("pair-%d", i)
}

// Generate places n pairs on a width×height board at random positions; no
// two endpoints share a cell. The method defaults to BFS.
func Generate(width, height, n int, rng *rand.Rand) (*Puzzle, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("puzzle: %w", grid.ErrEmptyGrid)
	}
	if n < 1 {
		return nil, fmt.Errorf("puzzle: %w", router.ErrNoPairs)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("puzzle: %w: %dx%d", grid.ErrTooLarge, width, height)
	}
	if n > width*height/2 {
		return nil, fmt.Errorf("%w: %d pairs on %dx%d", ErrTooManyPairs, n, width, height)
	}

	used := make(map[grid.Position]struct{}, 2*n)
	pick := func() grid.Position {
		for {
			p := grid.Pos(rng.Intn(width), rng.Intn(height))
			if _, taken := used[p]; !taken {
				used[p] = struct{}{}
				return p
			}
		}
	}

	pz := &Puzzle{Width: width, Height: height, Method: search.MethodBFS}
	for i := 0; i < n; i++ {
		s := pick()
		e := pick()
		pz.Pairs = append(pz.Pairs, router.Pair{Start: s, End: e, Label: Label(i)})
	}

	return pz, nil
}

// Shuffle returns a copy of the puzzle with the pair order permuted. Labels
// travel with their pairs.
func (p *Puzzle) Shuffle(rng *rand.Rand) *Puzzle {
	out := *p
	out.Pairs = append([]router.Pair(nil), p.Pairs...)
	rng.Shuffle(len(out.Pairs), func(i, j int) {
		out.Pairs[i], out.Pairs[j] = out.Pairs[j], out.Pairs[i]
	})

	return &out
}

// Validate checks the board size and every endpoint.
func (p *Puzzle) Validate() error {
	_, err := p.Router()

	return err
}

// Router builds a fresh grid and a router for the puzzle. opts are applied
// after the puzzle's own method, so they may override it.
func (p *Puzzle) Router(opts ...router.Option) (*router.Router, error) {
	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}
	all := append([]router.Option{router.WithMethod(p.Method)}, opts...)

	return router.New(g, p.Pairs, all...)
}
