package geometry

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// Segment is one wireframe line, endpoints in render space.
type Segment [2]v3.Vec

// EdgeSegments returns every unique edge of p exactly once as a scaled
// segment. Order follows the solid's edge enumeration, so repeated calls
// produce identical output.
func EdgeSegments(p *solid.Polyhedron, scale float64) []Segment {
	edges := p.Edges()
	segs := make([]Segment, len(edges))
	for i, e := range edges {
		segs[i] = Segment{
			p.Vertices[e.A].MulScalar(scale),
			p.Vertices[e.B].MulScalar(scale),
		}
	}
	return segs
}

// LinePositions flattens segments into the 6-floats-per-segment layout line
// renderers consume: [ax,ay,az, bx,by,bz, ...].
func LinePositions(segs []Segment) []float32 {
	out := make([]float32, 0, len(segs)*6)
	for _, s := range segs {
		out = append(out,
			float32(s[0].X), float32(s[0].Y), float32(s[0].Z),
			float32(s[1].X), float32(s[1].Y), float32(s[1].Z),
		)
	}
	return out
}
