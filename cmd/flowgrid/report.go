package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/router"
)

// glyphs returns the endpoint and path runes of pair i: 'A'/'a' for the
// first pair, 'B'/'b' for the second and so on, wrapping after 'Z'.
func glyphs(i int) (endpoint, path rune) {
	off := rune(i % 26)
	return 'A' + off, 'a' + off
}

// writeReport prints the board after a run followed by one line per pair.
// Pairs after an abort are listed as not attempted.
func writeReport(w io.Writer, pz *puzzle.Puzzle, rt *router.Router, res *router.Result, runErr error) {
	failed := -1
	var uerr *router.UnsolvableError
	if errors.As(runErr, &uerr) {
		failed = uerr.Index
	}

	overlay := make(map[grid.Position]rune)
	for i, s := range res.Solutions {
		_, g := glyphs(i)
		for _, q := range s.Path {
			overlay[q] = g
		}
	}
	for i, p := range pz.Pairs {
		e, _ := glyphs(i)
		overlay[p.Start] = e
		overlay[p.End] = e
	}

	fmt.Fprintf(w, "%dx%d board, %d pairs, %s\n\n", pz.Width, pz.Height, len(pz.Pairs), res.Method)
	fmt.Fprint(w, rt.Grid().Render(overlay))
	fmt.Fprintln(w)

	for i, p := range pz.Pairs {
		e, _ := glyphs(i)
		switch {
		case i < len(res.Solutions):
			s := res.Solutions[i]
			fmt.Fprintf(w, "%c %-8s %v -> %v  length %d  visited %d\n",
				e, p.Label, p.Start, p.End, s.Path.Steps(), len(s.Trace))
		case i == failed:
			fmt.Fprintf(w, "%c %-8s %v -> %v  no path\n", e, p.Label, p.Start, p.End)
		default:
			fmt.Fprintf(w, "%c %-8s %v -> %v  not attempted\n", e, p.Label, p.Start, p.End)
		}
	}
}
