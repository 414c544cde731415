// Package hull renders point-only records: solids whose catalogue entry
// carries vertex positions but no face combinatorics. The convex hull is
// delegated to a pluggable builder so the hull library can be swapped
// without touching the rest of the system.
package hull

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/geometry"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// Builder computes convex hulls. Hull returns the hull's vertices and a
// flat list of index triples into them, wound counter-clockwise seen from
// outside.
type Builder interface {
	Hull(points []v3.Vec) (verts []v3.Vec, tris []int, err error)
}

// DefaultEdgeThreshold is the dihedral angle, in degrees, below which two
// hull triangles are treated as fragments of one flat polygon rather than
// as meeting at a real edge of the solid.
const DefaultEdgeThreshold = 15.0

// surface is a triangulated hull with per-triangle unit normals, kept in
// model space so mesh and wireframe extraction scale it consistently.
type surface struct {
	verts   []v3.Vec
	tris    [][3]int
	normals []v3.Vec
}

// build runs the hull builder over the point cloud and assembles the
// triangle surface.
func build(b Builder, points []v3.Vec) (*surface, error) {
	verts, idx, err := b.Hull(points)
	if err != nil {
		return nil, fmt.Errorf("hull: %w", err)
	}
	if len(idx)%3 != 0 {
		return nil, fmt.Errorf("hull: builder returned %d indices, not a multiple of 3", len(idx))
	}

	s := &surface{
		verts:   verts,
		tris:    make([][3]int, 0, len(idx)/3),
		normals: make([]v3.Vec, 0, len(idx)/3),
	}
	for i := 0; i+2 < len(idx); i += 3 {
		a, bb, c := idx[i], idx[i+1], idx[i+2]
		if a < 0 || a >= len(verts) || bb < 0 || bb >= len(verts) || c < 0 || c >= len(verts) {
			return nil, fmt.Errorf("hull: builder returned out-of-range index in triangle %d", i/3)
		}
		tri := render.Triangle3{verts[a], verts[bb], verts[c]}
		s.tris = append(s.tris, [3]int{a, bb, c})
		s.normals = append(s.normals, tri.Normal())
	}
	return s, nil
}

// Mesh builds the renderable triangle soup for a point-only record, scaled
// by scale. Hull triangulation destroys the original polygon side counts,
// so every triangle takes the neutral fallback color instead of claiming a
// polygon class it cannot know.
func Mesh(b Builder, points []v3.Vec, scale float64) (*geometry.MeshBuffer, error) {
	s, err := build(b, points)
	if err != nil {
		return nil, err
	}

	gray := geometry.FallbackColor()
	verts := len(s.tris) * 3
	m := &geometry.MeshBuffer{
		Positions: make([]float32, 0, verts*3),
		Normals:   make([]float32, 0, verts*3),
		Colors:    make([]float32, 0, verts*3),
		Indices:   make([]uint32, 0, verts),
	}

	next := uint32(0)
	for ti, tri := range s.tris {
		n := s.normals[ti]
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for _, vi := range tri {
			v := s.verts[vi].MulScalar(scale)
			m.Positions = append(m.Positions, float32(v.X), float32(v.Y), float32(v.Z))
			m.Normals = append(m.Normals, nx, ny, nz)
			m.Colors = append(m.Colors, gray[0], gray[1], gray[2])
			m.Indices = append(m.Indices, next)
			next++
		}
	}
	return m, nil
}

// Edges derives the wireframe of a point-only record: every hull edge whose
// two triangles meet at a dihedral angle of at least thresholdDeg. Seams
// left by triangulating flat polygons sit near zero degrees and drop out,
// which recovers the solid's true edges approximately, not exactly. Pass
// DefaultEdgeThreshold unless the record needs tuning.
func Edges(b Builder, points []v3.Vec, scale float64, thresholdDeg float64) ([]geometry.Segment, error) {
	s, err := build(b, points)
	if err != nil {
		return nil, err
	}

	type edgeTris struct {
		tris [2]int
		n    int
	}
	byEdge := make(map[solid.EdgeKey]*edgeTris, len(s.tris)*2)
	var order []solid.EdgeKey
	for ti, tri := range s.tris {
		for i := 0; i < 3; i++ {
			k := solid.MakeEdgeKey(tri[i], tri[(i+1)%3])
			et := byEdge[k]
			if et == nil {
				et = &edgeTris{}
				byEdge[k] = et
				order = append(order, k)
			}
			if et.n < 2 {
				et.tris[et.n] = ti
			}
			et.n++
		}
	}

	// Two triangles meeting flatter than the threshold are coplanar
	// fragments of one polygon; their shared edge is not drawn.
	cosFlat := math.Cos(thresholdDeg * math.Pi / 180)

	var segs []geometry.Segment
	for _, k := range order {
		et := byEdge[k]
		if et.n == 2 {
			dot := s.normals[et.tris[0]].Dot(s.normals[et.tris[1]])
			if dot > cosFlat {
				continue
			}
		}
		segs = append(segs, geometry.Segment{
			s.verts[k.A].MulScalar(scale),
			s.verts[k.B].MulScalar(scale),
		})
	}
	return segs, nil
}
