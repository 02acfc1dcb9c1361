package trace

// Neighborhood holds the up-to-four 4-neighbors of a grid cell. A nil
// pointer means the neighbor falls outside the grid; this keeps "absent"
// distinguishable from the stored value 0.
type Neighborhood struct {
	Top    *int
	Right  *int
	Bottom *int
	Left   *int
}

// neumannNeighbors returns the 4-neighborhood (von Neumann neighborhood) of
// cell (x, y) in a W-by-H grid of 0/1 values. Out-of-bounds neighbors are
// left absent (nil) rather than defaulted to 0.
func neumannNeighbors(grid [][]byte, x, y int) (Neighborhood, error) {
	if len(grid) == 0 {
		return Neighborhood{}, errInvalidArg("grid must be 2-dimensional and non-empty")
	}
	height := len(grid)
	width := len(grid[0])
	if y < 0 || y >= height || x < 0 || x >= width {
		return Neighborhood{}, errInvalidArg("x and y must be within the grid bounds")
	}

	var n Neighborhood
	if y != 0 {
		v := int(grid[y-1][x])
		n.Top = &v
	}
	if x != width-1 {
		v := int(grid[y][x+1])
		n.Right = &v
	}
	if y != height-1 {
		v := int(grid[y+1][x])
		n.Bottom = &v
	}
	if x != 0 {
		v := int(grid[y][x-1])
		n.Left = &v
	}
	return n, nil
}

// isZeroOrAbsent reports whether a neighbor is either out of bounds or holds
// the value 0 — the condition the edge-graph builder uses to decide a
// boundary edge is present.
func isZeroOrAbsent(v *int) bool {
	return v == nil || *v == 0
}
