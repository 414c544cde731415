package solid

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// FaceNormal computes the unit normal of face f from the cross product of
// the first two edge vectors. Faces are planar and convex, so the first
// three vertices are enough.
func (p *Polyhedron) FaceNormal(f Face) v3.Vec {
	v0 := p.Vertices[f[0]]
	a := p.Vertices[f[1]].Sub(v0)
	b := p.Vertices[f[2]].Sub(v0)
	return a.Cross(b).Normalize()
}

// NewellNormal computes a polygon normal from every vertex of the ring via
// Newell's method. Unlike a three-point cross product it stays stable when
// the ring is large or slightly non-planar, which is why orientation checks
// on freshly assembled faces use it.
func NewellNormal(points []v3.Vec) v3.Vec {
	var n v3.Vec
	for i, a := range points {
		b := points[(i+1)%len(points)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	return n.Normalize()
}

// Centroid returns the arithmetic mean of points.
func Centroid(points []v3.Vec) v3.Vec {
	var c v3.Vec
	for _, pt := range points {
		c = c.Add(pt)
	}
	return c.DivScalar(float64(len(points)))
}

// OrientOutward reverses f in place when its winding faces the origin,
// leaving every face wound outward. It assumes the origin lies strictly
// inside the solid, which holds for all centered records.
func OrientOutward(verts []v3.Vec, f Face) {
	pts := make([]v3.Vec, len(f))
	for i, vi := range f {
		pts[i] = verts[vi]
	}
	if NewellNormal(pts).Dot(Centroid(pts)) < 0 {
		for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
			f[i], f[j] = f[j], f[i]
		}
	}
}

// PlaneDeviation measures how far face f strays from planar: the largest
// distance from any of its vertices to the Newell plane through the face
// centroid. Exactly planar faces return a value at floating point noise
// level.
func (p *Polyhedron) PlaneDeviation(f Face) float64 {
	pts := p.FacePoints(f)
	n := NewellNormal(pts)
	c := Centroid(pts)
	var worst float64
	for _, pt := range pts {
		d := pt.Sub(c).Dot(n)
		if d < 0 {
			d = -d
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}
