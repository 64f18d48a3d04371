// Package flowgrid routes colored endpoint pairs across a rectangular grid,
// one pair at a time, in the spirit of "Flow" puzzles.
//
// 🚀 What is flowgrid?
//
//	A small routing toolkit built from a handful of packages:
//		• grid    – the board: cells, blocked flags, paths, text rendering
//		• pqueue  – a stable min-priority queue (FIFO among equal priorities)
//		• search  – DFS, BFS and A* over 4-connected cells, plus IsReachable
//		• router  – sequential multi-pair routing that reserves each path
//		• puzzle  – random puzzle generation and HCL puzzle files
//		• server  – a websocket API that streams traces and paths
//
// Routing is greedy: pairs are solved in the order given, each committed
// path becomes an obstacle for the pairs after it, and the first pair with
// no path stops the run. Nothing is rolled back or retried, so the order of
// the pairs can decide whether a board is solvable.
//
// Quick ASCII example (4×3, y grows upward):
//
//	. . R .        b b B .
//	. B . .   →    b A a a
//	R . . B        B . . A
//
// Routing blue (A) before red (B) solves the board; the reverse order seals
// blue in and the run aborts.
//
// Neighbor order is fixed for every method: right, up, left, down. Together
// with the FIFO tie-break of pqueue this makes every trace and path fully
// deterministic.
//
// Command line:
//
//	go run ./cmd/flowgrid -width 8 -height 8 -pairs 4 -method astar
//	go run ./cmd/flowgrid board.hcl
//	go run ./cmd/flowgrid -serve :8080
//
// See the examples/ directory for runnable scenarios.
package flowgrid
