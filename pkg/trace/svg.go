package trace

import (
	"fmt"
	"strings"
)

// Path pairs one cluster's concatenated path-data string with its fill
// color hex key.
type Path struct {
	Data string
	Fill string
}

// Document is a vector document: image dimensions, integer scale, and the
// ordered list of paths (one per cluster, in discovery order).
type Document struct {
	Width, Height, Scale int
	Paths                []Path
}

// loopPathData renders one loop as "M<x>,<y>L<x>,<y>...Z", with every
// coordinate multiplied by scale.
func loopPathData(l *Loop, scale int) string {
	pts := l.Points()
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&sb, "M%d,%d", p.X*scale, p.Y*scale)
		} else {
			fmt.Fprintf(&sb, "L%d,%d", p.X*scale, p.Y*scale)
		}
	}
	sb.WriteString("Z")
	return sb.String()
}

// EmitClusterPath concatenates one path-data segment per loop (outer
// contours and holes alike — their opposite windings make the non-zero
// fill rule render holes transparent) and pairs it with the cluster color.
func EmitClusterPath(color Color, loops []*Loop, scale int) Path {
	var sb strings.Builder
	for _, l := range loops {
		sb.WriteString(loopPathData(l, scale))
	}
	return Path{Data: sb.String(), Fill: color.Hex()}
}

// NewDocument creates an empty vector document for a W×H image at the given
// integer scale.
func NewDocument(width, height, scale int) *Document {
	return &Document{Width: width, Height: height, Scale: scale}
}

// AddPath appends a cluster's path, in cluster discovery order.
func (d *Document) AddPath(p Path) {
	d.Paths = append(d.Paths, p)
}

// Render serializes the document as UTF-8 SVG 1.1 bytes: one <svg> root
// (crispEdges rendering, width/height = source dims × scale) containing one
// <path> per emitted cluster.
func (d *Document) Render() []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg version="1.1" xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" shape-rendering="crispEdges">`,
		d.Width*d.Scale, d.Height*d.Scale)
	sb.WriteString("\n")
	for _, p := range d.Paths {
		fmt.Fprintf(&sb, `<path d="%s" fill="%s" />`, p.Data, p.Fill)
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>")
	return []byte(sb.String())
}
