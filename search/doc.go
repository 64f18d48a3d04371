// Package search implements the path search engine used to route a single
// endpoint pair across a grid.Grid.
//
// What
//
//   - SolveDFS:    depth-first search with backtracking; returns some simple path.
//   - SolveBFS:    breadth-first search; returns a shortest path by edge count.
//   - IsReachable: breadth-first reachability predicate with strict blocking.
//   - SolveAStar:  A* with the Manhattan heuristic; returns a shortest path.
//   - Solve:       dispatches on a Method value.
//
// Traversability
//
//	A cell may be entered when it is in bounds and not blocked. Endpoints are
//	pre-blocked on the board to keep other pairs away from them, so each solver
//	exempts its own endpoints:
//	  - SolveDFS exempts both start and end.
//	  - SolveBFS and SolveAStar exempt end (start is seeded directly).
//	  - IsReachable exempts nothing beyond the seeded start.
//
// Determinism
//
//	Neighbors are always tried in grid.Directions order (right, up, left,
//	down). DFS commits to the first direction that succeeds; BFS keeps the
//	first-discovered predecessor; A* breaks equal-f ties by insertion order.
//
// Visit trace
//
//	WithTrace and WithOnVisit expose the order in which a solver examined
//	cells, for visualization only. The trace never feeds back into routing.
//	  - DFS records each cell when it is marked visited.
//	  - BFS records the start, every dequeue and every newly enqueued cell.
//	  - A* records the start, every pop and every push.
//
// Errors
//
//   - ErrNoPath       the expected "no route" outcome; not a fault.
//   - ErrOutOfBounds  start or end outside the grid (contract violation).
//   - ErrNilGrid      New called with a nil grid.
//   - ErrUnknownMethod Solve called with an unsupported Method.
//
// Complexity (N = W×H)
//
//   - SolveDFS, SolveBFS, IsReachable: O(N) time and memory.
//   - SolveAStar: O(N log N) time, O(N) memory.
//
// The engine never mutates the grid and keeps all per-call state in fresh
// local structures, so one Engine can serve any number of sequential calls.
package search
