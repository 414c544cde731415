// Package quickhull implements the hull.Builder interface using the
// github.com/markus-wa/quickhull-go library.
package quickhull

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r3"
	qh "github.com/markus-wa/quickhull-go/v2"

	"github.com/payneba/polyhedra-viewer/pkg/hull"
)

// Compile-time interface check.
var _ hull.Builder = (*Builder)(nil)

// Builder computes convex hulls with quickhull-go.
type Builder struct{}

// New returns a new quickhull Builder.
func New() *Builder {
	return &Builder{}
}

// Hull computes the convex hull of points. The returned triangles are wound
// counter-clockwise seen from outside, and the vertex list contains only
// points on the hull.
func (b *Builder) Hull(points []v3.Vec) ([]v3.Vec, []int, error) {
	if len(points) < 4 {
		return nil, nil, fmt.Errorf("quickhull: need at least 4 points, got %d", len(points))
	}

	cloud := make([]r3.Vector, len(points))
	for i, p := range points {
		cloud[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
	}

	h := new(qh.QuickHull).ConvexHull(cloud, true, false, 0)
	if len(h.Indices) == 0 {
		return nil, nil, fmt.Errorf("quickhull: degenerate input, no hull produced")
	}

	verts := make([]v3.Vec, len(h.Vertices))
	for i, v := range h.Vertices {
		verts[i] = v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
	}
	return verts, h.Indices, nil
}
