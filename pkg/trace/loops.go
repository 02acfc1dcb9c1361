package trace

import "sort"

// Loop is a closed directed cycle in an EdgeGraph, identified by the arena
// index of any one of its nodes (its origin).
type Loop struct {
	g      *EdgeGraph
	Origin int
}

// Points returns the loop's vertices in traversal order, starting at Origin.
func (l *Loop) Points() []Point {
	pts := []Point{l.g.PointAt(l.Origin)}
	for id := l.g.next(l.Origin); id != l.Origin; id = l.g.next(id) {
		pts = append(pts, l.g.PointAt(id))
	}
	return pts
}

// ExtractLoops walks an EdgeGraph's nodes in row-major corner order (the two
// halves of a split vertex in arena order) and returns every closed loop,
// each discovered exactly once and starting at its row-major-first node. Every traversed
// node is marked visited so a loop that shares a corner with another (via a
// split vertex's two distinct arena entries) is never re-emitted, and the
// other loop at that same coordinate is still discovered separately since
// split halves are distinct arena indices.
//
// Grounded on the source's extract_node_loops: walk next from an
// undiscovered origin, marking nodes along the way, until returning to the
// origin (closed — record it) or hitting a dangling next (ill-formed graph
// — fatal for this cluster).
func ExtractLoops(g *EdgeGraph) ([]*Loop, error) {
	visited := make([]bool, g.NodeCount())
	var loops []*Loop

	order := make([]int, g.NodeCount())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := g.nodes[order[i]], g.nodes[order[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	for _, id := range order {
		if g.next(id) == noNode || visited[id] {
			continue
		}

		origin := id
		cur := g.next(origin)
		for cur != noNode && cur != origin {
			visited[cur] = true
			cur = g.next(cur)
		}

		if cur != origin {
			return nil, errInvariant("loop extraction reached a dangling edge before returning to origin %d", origin)
		}
		visited[origin] = true
		loops = append(loops, &Loop{g: g, Origin: origin})
	}

	return loops, nil
}
