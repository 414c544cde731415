package catalog

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// Truncation ratios that make the cut polygons regular. Cutting at t along
// each edge leaves the face's own edges at length 1-2t while the corner
// chords grow with the vertex angle; equating the two gives 1/3 for
// triangle-faced seeds, 1/(2+sqrt 2) at cube corners and 1/(2+phi) at
// dodecahedron corners.
const tTriangleFaced = 1.0 / 3

var (
	tCube   = 1 / (2 + math.Sqrt2)
	tDodeca = 1 / (2 + phi)
)

// Truncate cuts every corner of p with a plane through the points at
// fraction t along its incident edges. Each n-gon face shrinks to a 2n-gon
// and each degree-k vertex opens into a k-gon. The seeds used here all have
// concyclic vertex neighborhoods, so the cut faces come out planar.
func Truncate(p *solid.Polyhedron, t float64, name string) *solid.Polyhedron {
	type cut struct{ from, to int }
	index := make(map[cut]int, len(p.Faces)*6)
	var verts []v3.Vec
	cutPoint := func(from, to int) int {
		k := cut{from, to}
		if i, ok := index[k]; ok {
			return i
		}
		a, b := p.Vertices[from], p.Vertices[to]
		index[k] = len(verts)
		verts = append(verts, a.Add(b.Sub(a).MulScalar(t)))
		return index[k]
	}

	faces := make([]solid.Face, 0, len(p.Faces)+len(p.Vertices))
	for _, f := range p.Faces {
		shrunk := make(solid.Face, 0, 2*len(f))
		for i, a := range f {
			b := f[(i+1)%len(f)]
			shrunk = append(shrunk, cutPoint(a, b), cutPoint(b, a))
		}
		faces = append(faces, shrunk)
	}

	vertexFaces := p.VertexFaces()
	edgeFaces := p.EdgeFaces()
	for vi := range p.Vertices {
		nbrs := neighborCycle(p, vi, vertexFaces[vi], edgeFaces)
		if len(nbrs) < 3 {
			continue
		}
		corner := make(solid.Face, 0, len(nbrs))
		for _, nb := range nbrs {
			corner = append(corner, cutPoint(vi, nb))
		}
		faces = append(faces, corner)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// Rectify shrinks every face to the ring of its edge midpoints and opens
// every vertex into its midpoint figure, producing one vertex per original
// edge. Rectifying a Platonic solid gives its quasiregular form; applied
// again it gives the cantellated topology.
func Rectify(p *solid.Polyhedron, name string) *solid.Polyhedron {
	edges := p.Edges()
	index := make(map[solid.EdgeKey]int, len(edges))
	verts := make([]v3.Vec, len(edges))
	for i, e := range edges {
		index[e] = i
		verts[i] = p.Vertices[e.A].Add(p.Vertices[e.B]).MulScalar(0.5)
	}

	faces := make([]solid.Face, 0, len(p.Faces)+len(p.Vertices))
	for _, f := range p.Faces {
		shrunk := make(solid.Face, 0, len(f))
		for i, a := range f {
			shrunk = append(shrunk, index[solid.MakeEdgeKey(a, f[(i+1)%len(f)])])
		}
		faces = append(faces, shrunk)
	}

	vertexFaces := p.VertexFaces()
	edgeFaces := p.EdgeFaces()
	for vi := range p.Vertices {
		nbrs := neighborCycle(p, vi, vertexFaces[vi], edgeFaces)
		if len(nbrs) < 3 {
			continue
		}
		figure := make(solid.Face, 0, len(nbrs))
		for _, nb := range nbrs {
			figure = append(figure, index[solid.MakeEdgeKey(vi, nb)])
		}
		faces = append(faces, figure)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// neighborCycle returns vi's neighboring vertices in cyclic order around
// the vertex, derived from the face ring: consecutive incident faces share
// exactly one edge at vi, and that edge's far endpoint is the neighbor
// between them.
func neighborCycle(p *solid.Polyhedron, vi int, incident []int, edgeFaces map[solid.EdgeKey][]int) []int {
	faceRing, _ := p.FaceRing(vi, incident, edgeFaces)
	if len(faceRing) < 3 {
		return nil
	}
	nbrs := make([]int, 0, len(faceRing))
	for i, fi := range faceRing {
		gi := faceRing[(i+1)%len(faceRing)]
		for _, e := range p.Faces[fi].EdgesAt(vi) {
			if hasFace(edgeFaces[e], gi) {
				nbrs = append(nbrs, otherEnd(e, vi))
				break
			}
		}
	}
	return nbrs
}

func hasFace(faces []int, fi int) bool {
	for _, f := range faces {
		if f == fi {
			return true
		}
	}
	return false
}

func otherEnd(e solid.EdgeKey, vi int) int {
	if e.A == vi {
		return e.B
	}
	return e.A
}
