package catalog

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// johnsonSolids builds the Johnson records with exact constructions:
// pyramids, cupolas and their elongations, plus the gyrobifastigium. The
// remaining members of the family come in through the JSON loader rather
// than in-code constructions.
func johnsonSolids() []*solid.Polyhedron {
	list := []*solid.Polyhedron{
		// J1, J2: equilateral pyramids.
		pyramid(4, "square pyramid"),
		pyramid(5, "pentagonal pyramid"),
		// J3 through J5: cupolas.
		cupola(3, "triangular cupola"),
		cupola(4, "square cupola"),
		cupola(5, "pentagonal cupola"),
		// J8, J10: prism and antiprism elongations of the square pyramid.
		elongatedPyramid(4, "elongated square pyramid"),
		gyroelongatedPyramid(4, "gyroelongated square pyramid"),
		// J12, J13, J15: bipyramids and the elongated square bipyramid.
		bipyramid(3, "triangular bipyramid"),
		bipyramid(5, "pentagonal bipyramid"),
		elongatedBipyramid(4, "elongated square bipyramid"),
		// J26.
		gyrobifastigium(),
	}
	for _, p := range list {
		p.Category = CategoryJohnson
	}
	return list
}

// pyramidHeight is the apex height over a unit-circumradius n-gon that
// makes the lateral edges equal to the base edge.
func pyramidHeight(n int) float64 {
	s := 2 * math.Sin(math.Pi/float64(n))
	return math.Sqrt(s*s - 1)
}

// pyramid builds the equilateral n-gonal pyramid: base ring 0..n-1, apex n.
// Only n = 3, 4, 5 close with equilateral triangles; larger bases flatten
// below zero height.
func pyramid(n int, name string) *solid.Polyhedron {
	verts := append(ring(n, 1, 0, 0), v3.Vec{Z: pyramidHeight(n)})

	base := make(solid.Face, n)
	for i := 0; i < n; i++ {
		base[i] = n - 1 - i
	}
	faces := []solid.Face{base}
	for i := 0; i < n; i++ {
		faces = append(faces, solid.Face{i, (i + 1) % n, n})
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// bipyramid mirrors the pyramid through its base plane: ring 0..n-1, upper
// apex n, lower apex n+1.
func bipyramid(n int, name string) *solid.Polyhedron {
	h := pyramidHeight(n)
	verts := append(ring(n, 1, 0, 0), v3.Vec{Z: h}, v3.Vec{Z: -h})

	var faces []solid.Face
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			solid.Face{i, j, n},
			solid.Face{j, i, n + 1},
		)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// cupola builds the n-gonal cupola: a 2n-gon base ring 0..2n-1 joined to a
// half-turned n-gon top ring 2n..3n-1 by alternating squares and
// triangles. Each top vertex sits over a base edge midpoint direction,
// which is what makes all lateral edges equal.
func cupola(n int, name string) *solid.Polyhedron {
	nf := float64(n)
	s := 1.0 // base edge on the unit-step rings below scales out in finish
	rBase := s / (2 * math.Sin(math.Pi/(2*nf)))
	rTop := s / (2 * math.Sin(math.Pi/nf))
	h := s * math.Sqrt(1-1/(4*math.Sin(math.Pi/nf)*math.Sin(math.Pi/nf)))

	verts := append(
		ring(2*n, rBase, 0, 0),
		ring(n, rTop, h, math.Pi/(2*nf))...,
	)

	base := make(solid.Face, 2*n)
	for i := 0; i < 2*n; i++ {
		base[i] = 2*n - 1 - i
	}
	top := make(solid.Face, n)
	for i := 0; i < n; i++ {
		top[i] = 2*n + i
	}
	faces := []solid.Face{base, top}
	for j := 0; j < n; j++ {
		faces = append(faces,
			solid.Face{2 * j, 2*j + 1, 2*n + j},
			solid.Face{2*j + 1, (2*j + 2) % (2 * n), 2*n + (j+1)%n, 2*n + j},
		)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// elongatedPyramid inserts a prism between the pyramid and its base.
func elongatedPyramid(n int, name string) *solid.Polyhedron {
	s := 2 * math.Sin(math.Pi/float64(n))
	verts := append(ring(n, 1, 0, 0), ring(n, 1, -s, 0)...)
	verts = append(verts, v3.Vec{Z: pyramidHeight(n)})
	apex := 2 * n

	base := make(solid.Face, n)
	for i := 0; i < n; i++ {
		base[i] = 2*n - 1 - i
	}
	faces := []solid.Face{base}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			solid.Face{i, j, apex},
			solid.Face{i, j, n + j, n + i},
		)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// gyroelongatedPyramid inserts an antiprism instead of a prism.
func gyroelongatedPyramid(n int, name string) *solid.Polyhedron {
	nf := float64(n)
	sin := math.Sin(math.Pi / nf)
	hAnti := math.Sqrt(4*sin*sin - 2*(1-math.Cos(math.Pi/nf)))

	verts := append(ring(n, 1, 0, 0), ring(n, 1, -hAnti, math.Pi/nf)...)
	verts = append(verts, v3.Vec{Z: pyramidHeight(n)})
	apex := 2 * n

	base := make(solid.Face, n)
	for i := 0; i < n; i++ {
		base[i] = 2*n - 1 - i
	}
	faces := []solid.Face{base}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			solid.Face{i, j, apex},
			// Antiprism bands: lower ring vertex i sits between upper
			// ring vertices i and i+1.
			solid.Face{i, n + i, j},
			solid.Face{n + i, n + j, j},
		)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// elongatedBipyramid inserts a prism between the two pyramid halves.
func elongatedBipyramid(n int, name string) *solid.Polyhedron {
	s := 2 * math.Sin(math.Pi/float64(n))
	h := pyramidHeight(n)
	verts := append(ring(n, 1, s/2, 0), ring(n, 1, -s/2, 0)...)
	verts = append(verts, v3.Vec{Z: s/2 + h}, v3.Vec{Z: -s/2 - h})
	top, bottom := 2*n, 2*n+1

	var faces []solid.Face
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			solid.Face{i, j, top},
			solid.Face{n + j, n + i, bottom},
			solid.Face{i, j, n + j, n + i},
		)
	}

	return finish(&solid.Polyhedron{Name: name, Vertices: verts, Faces: faces})
}

// gyrobifastigium glues two triangular prisms square-to-square with a
// quarter turn: the shared square 0..3, a ridge along x below, a ridge
// along y above.
func gyrobifastigium() *solid.Polyhedron {
	h := math.Sqrt(3)
	verts := []v3.Vec{
		{X: -1, Y: -1, Z: 0},
		{X: 1, Y: -1, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: -1, Y: 1, Z: 0},
		{X: -1, Y: 0, Z: -h},
		{X: 1, Y: 0, Z: -h},
		{X: 0, Y: -1, Z: h},
		{X: 0, Y: 1, Z: h},
	}
	faces := []solid.Face{
		{0, 1, 5, 4}, // lower slant, y < 0
		{2, 3, 4, 5}, // lower slant, y > 0
		{0, 4, 3},    // lower end, x = -1
		{1, 2, 5},    // lower end, x = +1
		{0, 3, 7, 6}, // upper slant, x < 0
		{2, 1, 6, 7}, // upper slant, x > 0
		{0, 6, 1},    // upper end, y = -1
		{2, 7, 3},    // upper end, y = +1
	}
	return finish(&solid.Polyhedron{
		Name:     "gyrobifastigium",
		Vertices: verts,
		Faces:    faces,
	})
}
