// Package dual derives the dual of a convex polyhedron by polar
// reciprocation about a fitted midsphere: faces become vertices, vertices
// become faces. Reciprocating face planes through a sphere keeps every dual
// face exactly planar, which simpler centroid constructions do not
// guarantee for the less symmetric solids.
package dual

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// Compute returns the dual of p. The midsphere is fitted at the vertex
// centroid, so solids defined away from the origin still reciprocate
// through an interior point; for centered catalogue records the centroid is
// the origin and the classical construction applies unchanged. The result
// is rescaled so its first vertex sits at the same distance from the center
// as p's first vertex, keeping dual pairs at comparable display sizes.
//
// Compute is deterministic: the same input always produces bit-identical
// output.
func Compute(p *solid.Polyhedron) *solid.Polyhedron {
	var center v3.Vec
	if len(p.Vertices) > 0 {
		center = solid.Centroid(p.Vertices)
	}
	r2 := midsphereR2(p, center)

	verts := make([]v3.Vec, len(p.Faces))
	for fi, f := range p.Faces {
		verts[fi] = reciprocal(p, f, center, r2)
	}

	faces := dualFaces(p)
	for _, f := range faces {
		solid.OrientOutward(verts, f)
	}
	rescale(p.Vertices, verts, center)
	for i := range verts {
		verts[i] = verts[i].Add(center)
	}

	return &solid.Polyhedron{
		Name:     fmt.Sprintf("%s (dual)", p.Name),
		Category: p.Category,
		Vertices: verts,
		Faces:    faces,
	}
}

// midsphereR2 estimates the squared midsphere radius as the squared mean
// distance of the unique edge midpoints from center. For solids with a true
// midsphere every midpoint lies at that radius and the estimate is exact;
// for the rest it is the least-squares compromise that keeps the dual well
// shaped.
func midsphereR2(p *solid.Polyhedron, center v3.Vec) float64 {
	edges := p.Edges()
	if len(edges) == 0 {
		return 0
	}
	var sum float64
	for _, e := range edges {
		mid := p.Vertices[e.A].Add(p.Vertices[e.B]).MulScalar(0.5)
		sum += mid.Sub(center).Length()
	}
	mean := sum / float64(len(edges))
	return mean * mean
}

// reciprocal maps one face plane to its pole: the point along the face
// normal at distance r2 over the plane's distance from center. Flipping the
// winding negates both the normal and the distance, so the pole comes out
// the same either way. With center interior to the solid the distance is
// never zero.
func reciprocal(p *solid.Polyhedron, f solid.Face, center v3.Vec, r2 float64) v3.Vec {
	n := p.FaceNormal(f)
	d := p.Vertices[f[0]].Sub(center).Dot(n)
	return n.MulScalar(r2 / d)
}

// dualFaces builds one dual face per original vertex of degree three or
// more: the ring of incident faces ordered by shared-edge hops around the
// vertex. Dual face indices are original face indices, which by
// construction are the dual vertex indices.
func dualFaces(p *solid.Polyhedron) []solid.Face {
	vertexFaces := p.VertexFaces()
	edgeFaces := p.EdgeFaces()

	faces := make([]solid.Face, 0, len(p.Vertices))
	for vi, incident := range vertexFaces {
		if len(incident) < 3 {
			continue
		}
		ring, _ := p.FaceRing(vi, incident, edgeFaces)
		faces = append(faces, ring)
	}
	return faces
}

// rescale multiplies the still centered dual vertices so the first one
// matches the original's first vertex in distance from center. One sample
// is enough: for vertex-transitive solids every vertex gives the same
// factor, and for the rest the convention only has to be stable, not
// optimal.
func rescale(orig, dual []v3.Vec, center v3.Vec) {
	if len(orig) == 0 || len(dual) == 0 {
		return
	}
	k := orig[0].Sub(center).Length() / dual[0].Length()
	for i := range dual {
		dual[i] = dual[i].MulScalar(k)
	}
}
