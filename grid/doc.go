// Package grid models the rectangular puzzle board that paths are routed over.
//
// What:
//
//   - Grid is a fixed width×height array of Cells, stored row-major.
//   - Every Cell knows its Position and carries a single Blocked flag.
//   - Positions are plain comparable structs, usable as map keys.
//   - Path is an ordered list of Positions joined by orthogonal unit steps.
//
// Why:
//
//   - The search engine only needs bounds and blocked state; keeping the board
//     this small makes every search O(W×H) in time and memory.
//   - The router reserves committed paths by flipping Blocked, so the grid is
//     the only state shared between consecutive pair searches.
//
// Movement:
//
//	Directions lists the four orthogonal moves in the fixed order
//	right (+x), up (+y), left (−x), down (−y). Depth-first and breadth-first
//	tie-breaking depend on this order.
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrOutOfBounds: a Position outside the board was addressed.
package grid
