// Package solid defines the polyhedron data model shared by the catalogue,
// the geometry builders, and the dual engine: a vertex list plus index-based
// faces, with derived combinatorics (edges, vertex/face adjacency) computed
// on demand and never stored.
package solid

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Face is an ordered ring of vertex indices describing one planar convex
// polygon. All faces of a solid wind the same way, outward-facing.
type Face []int

// Polyhedron is a closed convex solid. Records are immutable once published:
// the catalogue builds them at process start and every consumer treats them
// as read-only.
//
// A record with an empty Faces list is a point-only record: its face
// combinatorics were intentionally omitted and its surface comes from the
// convex hull fallback instead.
type Polyhedron struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Vertices []v3.Vec `json:"vertices"`
	Faces    []Face   `json:"faces,omitempty"`
}

// PointOnly reports whether the record carries no face data.
func (p *Polyhedron) PointOnly() bool {
	return len(p.Faces) == 0
}

// FacePoints gathers the vertex positions of face f into a fresh slice.
func (p *Polyhedron) FacePoints(f Face) []v3.Vec {
	pts := make([]v3.Vec, len(f))
	for i, vi := range f {
		pts[i] = p.Vertices[vi]
	}
	return pts
}
