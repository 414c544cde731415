package quickhull

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func cubeCorners() []v3.Vec {
	var pts []v3.Vec
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				pts = append(pts, v3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

func TestHull_Cube(t *testing.T) {
	b := New()
	verts, tris, err := b.Hull(cubeCorners())
	if err != nil {
		t.Fatalf("Hull failed: %v", err)
	}
	if len(verts) != 8 {
		t.Fatalf("got %d hull vertices, want 8", len(verts))
	}
	// 6 square faces triangulate into 12 triangles.
	if len(tris) != 36 {
		t.Fatalf("got %d indices, want 36", len(tris))
	}
	for i, idx := range tris {
		if idx < 0 || idx >= len(verts) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestHull_OutwardWinding(t *testing.T) {
	b := New()
	verts, tris, err := b.Hull(cubeCorners())
	if err != nil {
		t.Fatalf("Hull failed: %v", err)
	}
	// The cube is origin-centered, so every triangle normal must point away
	// from the origin.
	for i := 0; i+2 < len(tris); i += 3 {
		p0, p1, p2 := verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		c := p0.Add(p1).Add(p2).DivScalar(3)
		if n.Dot(c) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestHull_DropsInteriorPoint(t *testing.T) {
	b := New()
	pts := append(cubeCorners(), v3.Vec{X: 0, Y: 0, Z: 0})
	verts, _, err := b.Hull(pts)
	if err != nil {
		t.Fatalf("Hull failed: %v", err)
	}
	if len(verts) != 8 {
		t.Fatalf("got %d hull vertices, want 8 (interior point dropped)", len(verts))
	}
	for _, v := range verts {
		if v.Length() < 1 {
			t.Fatalf("interior point %v leaked into the hull", v)
		}
	}
}

func TestHull_TooFewPoints(t *testing.T) {
	b := New()
	_, _, err := b.Hull([]v3.Vec{{X: 1}, {Y: 1}, {Z: 1}})
	if err == nil {
		t.Fatal("expected error for fewer than 4 points, got none")
	}
}
