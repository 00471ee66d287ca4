package surface

import "github.com/trailscad/trails/pkg/geometry"

type boundaryEdge struct {
	a, b int
}

// recomputeBoundary derives the outline of the filtered mesh: edges
// belonging to exactly one triangle, chained into polylines.
func recomputeBoundary(s *Surface) error {
	s.BoundaryPoints = nil
	s.BoundaryVertices = nil

	if len(s.Points) == 0 || len(s.Triangles) == 0 {
		return nil
	}

	counts := make(map[boundaryEdge]int)

	for _, tri := range geometry.Unpack(s.Triangles) {
		for _, e := range [3]boundaryEdge{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}} {
			counts[normalizeEdge(e)]++
		}
	}

	// Adjacency over boundary edges only.
	next := make(map[int][]int)
	for e, n := range counts {
		if n != 1 {
			continue
		}
		next[e.a] = append(next[e.a], e.b)
		next[e.b] = append(next[e.b], e.a)
	}

	visited := make(map[boundaryEdge]bool)

	for start := range next {
		for _, first := range next[start] {
			if visited[normalizeEdge(boundaryEdge{start, first})] {
				continue
			}

			line := walkBoundary(start, first, next, visited)

			for _, idx := range line {
				s.BoundaryPoints = append(s.BoundaryPoints, s.Points[idx])
			}
			s.BoundaryVertices = append(s.BoundaryVertices, int32(len(line)))
		}
	}

	return nil
}

// walkBoundary follows boundary edges from start through first until
// the chain closes or dead-ends, marking edges as visited
func walkBoundary(start, first int, next map[int][]int, visited map[boundaryEdge]bool) []int {
	line := []int{start, first}
	visited[normalizeEdge(boundaryEdge{start, first})] = true

	prev, current := start, first

	for current != start {
		advanced := false

		for _, candidate := range next[current] {
			if candidate == prev {
				continue
			}
			if visited[normalizeEdge(boundaryEdge{current, candidate})] {
				continue
			}

			visited[normalizeEdge(boundaryEdge{current, candidate})] = true
			line = append(line, candidate)
			prev, current = current, candidate
			advanced = true
			break
		}

		if !advanced {
			break
		}
	}

	return line
}

func normalizeEdge(e boundaryEdge) boundaryEdge {
	if e.a > e.b {
		return boundaryEdge{e.b, e.a}
	}
	return e
}
