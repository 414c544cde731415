package solid

// EdgeKey identifies an undirected edge by its endpoint indices, smaller
// index first. Two faces sharing a vertex pair produce the same key
// regardless of traversal direction.
type EdgeKey struct {
	A int
	B int
}

// MakeEdgeKey canonicalizes an index pair into an EdgeKey.
func MakeEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// Edges returns every unique edge of the solid, one entry per undirected
// vertex pair, in the order first encountered while walking Faces. The
// order is deterministic, so callers may index derived data (rectification
// vertices, midpoint samples) by position in this slice.
func (p *Polyhedron) Edges() []EdgeKey {
	seen := make(map[EdgeKey]bool)
	edges := make([]EdgeKey, 0, len(p.Faces)*3)
	for _, f := range p.Faces {
		for i, a := range f {
			k := MakeEdgeKey(a, f[(i+1)%len(f)])
			if seen[k] {
				continue
			}
			seen[k] = true
			edges = append(edges, k)
		}
	}
	return edges
}

// VertexFaces returns, for each vertex, the indices of its incident faces.
// The per-vertex lists are in face-scan order, which keeps every traversal
// over them deterministic.
func (p *Polyhedron) VertexFaces() [][]int {
	vf := make([][]int, len(p.Vertices))
	for fi, f := range p.Faces {
		for _, vi := range f {
			vf[vi] = append(vf[vi], fi)
		}
	}
	return vf
}

// EdgeFaces returns the incident faces of every edge. On a closed manifold
// each entry has exactly two faces. The map is used for lookup only; no
// caller iterates it where order matters.
func (p *Polyhedron) EdgeFaces() map[EdgeKey][]int {
	ef := make(map[EdgeKey][]int, len(p.Faces)*2)
	for fi, f := range p.Faces {
		for i, a := range f {
			k := MakeEdgeKey(a, f[(i+1)%len(f)])
			ef[k] = append(ef[k], fi)
		}
	}
	return ef
}

// EdgesAt returns the edges of the face that meet vertex vi, in ring order.
// A well-formed face yields exactly two.
func (f Face) EdgesAt(vi int) []EdgeKey {
	n := len(f)
	var out []EdgeKey
	for i, v := range f {
		if v != vi {
			continue
		}
		out = append(out, MakeEdgeKey(f[(i-1+n)%n], vi), MakeEdgeKey(vi, f[(i+1)%n]))
	}
	return out
}

// FaceRing orders the faces incident to vertex vi into a cycle. Starting
// from the first incident face, it repeatedly hops to the unvisited
// neighbor that shares an edge at vi with the current face. On a closed
// convex solid the hops visit every incident face exactly once.
//
// The boolean reports whether the chain completed without stalling. If a
// hop ever finds no edge-sharing candidate, the walk appends an arbitrary
// unvisited incident face and carries on, so the result is always a
// permutation of incident; a false return flags the input as non-manifold
// around vi.
func (p *Polyhedron) FaceRing(vi int, incident []int, edgeFaces map[EdgeKey][]int) (Face, bool) {
	if len(incident) == 0 {
		return nil, true
	}
	ring := make(Face, 0, len(incident))
	visited := make(map[int]bool, len(incident))
	ring = append(ring, incident[0])
	visited[incident[0]] = true
	clean := true
	for len(ring) < len(incident) {
		cur := ring[len(ring)-1]
		next := -1
		for _, e := range p.Faces[cur].EdgesAt(vi) {
			for _, g := range edgeFaces[e] {
				if g != cur && !visited[g] {
					next = g
					break
				}
			}
			if next >= 0 {
				break
			}
		}
		if next < 0 {
			clean = false
			for _, g := range incident {
				if !visited[g] {
					next = g
					break
				}
			}
		}
		ring = append(ring, next)
		visited[next] = true
	}
	return ring, clean
}
