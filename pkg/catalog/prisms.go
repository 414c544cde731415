package catalog

import (
	"fmt"
	"math"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

var gonalNames = map[int]string{
	3:  "triangular",
	4:  "square",
	5:  "pentagonal",
	6:  "hexagonal",
	7:  "heptagonal",
	8:  "octagonal",
	9:  "enneagonal",
	10: "decagonal",
}

// prismaticSolids builds the uniform prisms and antiprisms up to 10-gonal
// bases. The square prism and the triangular antiprism are skipped: they
// are the cube and the octahedron, already present as Platonic records.
func prismaticSolids() []*solid.Polyhedron {
	var list []*solid.Polyhedron
	for n := 3; n <= 10; n++ {
		if n != 4 {
			list = append(list, prism(n))
		}
		if n != 3 {
			list = append(list, antiprism(n))
		}
	}
	return list
}

// prism builds the uniform n-gonal prism on the unit circle: square side
// faces, so the height equals the base edge.
func prism(n int) *solid.Polyhedron {
	s := 2 * math.Sin(math.Pi/float64(n))
	verts := append(ring(n, 1, -s/2, 0), ring(n, 1, s/2, 0)...)

	var faces []solid.Face
	bottom := make(solid.Face, n)
	top := make(solid.Face, n)
	for i := 0; i < n; i++ {
		bottom[i] = n - 1 - i
		top[i] = n + i
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, solid.Face{i, j, n + j, n + i})
	}

	p := &solid.Polyhedron{
		Name:     fmt.Sprintf("%s prism", gonalNames[n]),
		Category: CategoryPrism,
		Vertices: verts,
		Faces:    faces,
	}
	return finish(p)
}

// antiprism builds the uniform n-gonal antiprism on the unit circle: the
// top ring is rotated half a step and the height is chosen so the side
// triangles come out equilateral.
func antiprism(n int) *solid.Polyhedron {
	nf := float64(n)
	sin := math.Sin(math.Pi / nf)
	// Lateral edge^2 = 2 - 2cos(pi/n) + h^2; equilateral means it equals
	// the base edge 2sin(pi/n).
	h := math.Sqrt(4*sin*sin - 2*(1-math.Cos(math.Pi/nf)))
	verts := append(ring(n, 1, -h/2, 0), ring(n, 1, h/2, math.Pi/nf)...)

	var faces []solid.Face
	bottom := make(solid.Face, n)
	top := make(solid.Face, n)
	for i := 0; i < n; i++ {
		bottom[i] = n - 1 - i
		top[i] = n + i
	}
	faces = append(faces, bottom, top)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces,
			solid.Face{i, j, n + i},
			solid.Face{n + i, j, n + j},
		)
	}

	p := &solid.Polyhedron{
		Name:     fmt.Sprintf("%s antiprism", gonalNames[n]),
		Category: CategoryAntiprism,
		Vertices: verts,
		Faces:    faces,
	}
	return finish(p)
}
