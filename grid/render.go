package grid

import "strings"

// Glyphs used by Render for cells without an overlay entry.
const (
	FreeGlyph    = '.'
	BlockedGlyph = '#'
)

// Render draws the grid as text, one line per row. Row Height()-1 is printed
// first so that +y points up, matching the board orientation of Directions.
// overlay entries take precedence over the free/blocked glyphs; a nil overlay
// draws the raw blocked state.
func (g *Grid) Render(overlay map[Position]rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			p := Position{X: x, Y: y}
			if r, ok := overlay[p]; ok {
				sb.WriteRune(r)
				continue
			}
			if g.cells[g.index(x, y)].Blocked {
				sb.WriteRune(BlockedGlyph)
			} else {
				sb.WriteRune(FreeGlyph)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
