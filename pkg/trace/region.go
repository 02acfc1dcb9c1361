package trace

// Point is an integer 2D coordinate. In pixel space x∈[0,W), y∈[0,H); in
// corner space x∈[0,W], y∈[0,H].
type Point struct {
	X, Y int
}

// PointSet is a set of pixel coordinates over a W×H grid, backed by both a
// bitmask (for fast neighbor lookups) and an ordered slice (to preserve
// discovery order for deterministic output).
type PointSet struct {
	Width, Height int
	Bitmask       [][]byte // Bitmask[y][x], 1 if present
	order         []Point
}

// NewPointSet creates an empty point set over a Width×Height grid.
func NewPointSet(width, height int) *PointSet {
	mask := make([][]byte, height)
	for y := range mask {
		mask[y] = make([]byte, width)
	}
	return &PointSet{Width: width, Height: height, Bitmask: mask}
}

// Add records p as present. Adding an out-of-bounds point is an
// invalid-argument error.
func (s *PointSet) Add(p Point) error {
	if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return errInvalidArg("point (%d,%d) is out of bounds for a %dx%d region", p.X, p.Y, s.Width, s.Height)
	}
	if s.Bitmask[p.Y][p.X] == 0 {
		s.Bitmask[p.Y][p.X] = 1
		s.order = append(s.order, p)
	}
	return nil
}

// Has reports whether p is present in the set.
func (s *PointSet) Has(p Point) bool {
	if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return false
	}
	return s.Bitmask[p.Y][p.X] == 1
}

// Points returns the points in first-insertion (row-major discovery) order.
func (s *PointSet) Points() []Point {
	return s.order
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int {
	return len(s.order)
}

// ColorRegion is a (color, bitmask, point-set) triple: every pixel of Color
// in the source image that has been recorded here.
type ColorRegion struct {
	Color Color
	*PointSet
}

// Cluster is a ColorRegion whose point set is additionally 4-connected.
type Cluster = ColorRegion

// PartitionByColor groups every pixel of an RGBA buffer by exact color,
// returning regions in row-major first-appearance order. Grounded on the
// source's get_distinct_color_regions: a single row-major scan keyed by the
// color's stable hex string.
func PartitionByColor(pixels [][]Color, width, height int) []*ColorRegion {
	var order []string
	byHex := make(map[string]*ColorRegion)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y][x]
			hex := c.Hex()
			region, ok := byHex[hex]
			if !ok {
				region = &ColorRegion{Color: c, PointSet: NewPointSet(width, height)}
				byHex[hex] = region
				order = append(order, hex)
			}
			// Pixel coordinates are always in-bounds here by construction.
			_ = region.Add(Point{X: x, Y: y})
		}
	}

	regions := make([]*ColorRegion, 0, len(order))
	for _, hex := range order {
		regions = append(regions, byHex[hex])
	}
	return regions
}
