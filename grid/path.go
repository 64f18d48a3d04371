package grid

// Path is an ordered sequence of positions from start to end inclusive.
type Path []Position

// Steps returns the number of edges in the path, len(p)-1.
// An empty path has zero steps.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first position. It panics on an empty path.
func (p Path) Start() Position { return p[0] }

// End returns the last position. It panics on an empty path.
func (p Path) End() Position { return p[len(p)-1] }

// Contains reports whether pos appears anywhere in the path.
func (p Path) Contains(pos Position) bool {
	for _, q := range p {
		if q == pos {
			return true
		}
	}

	return false
}

// Valid reports whether p is a simple orthogonal path: non-empty, every
// consecutive pair one unit step apart, and no position repeated.
func (p Path) Valid() bool {
	if len(p) == 0 {
		return false
	}
	seen := make(map[Position]struct{}, len(p))
	for i, q := range p {
		if _, dup := seen[q]; dup {
			return false
		}
		seen[q] = struct{}{}
		if i > 0 && p[i-1].Manhattan(q) != 1 {
			return false
		}
	}

	return true
}
