package catalog

import (
	"math"
	"sort"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// phi is the golden ratio, the constant running through all icosahedral
// coordinates.
var phi = (1 + math.Sqrt(5)) / 2

func platonicSolids() []*solid.Polyhedron {
	list := []*solid.Polyhedron{
		tetrahedron(),
		cube(),
		octahedron(),
		dodecahedron(),
		icosahedron(),
	}
	for _, p := range list {
		p.Category = CategoryPlatonic
		finish(p)
	}
	return list
}

func tetrahedron() *solid.Polyhedron {
	return &solid.Polyhedron{
		Name: "tetrahedron",
		Vertices: []v3.Vec{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		Faces: []solid.Face{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

func cube() *solid.Polyhedron {
	return &solid.Polyhedron{
		Name: "cube",
		Vertices: []v3.Vec{
			{X: -1, Y: -1, Z: -1},
			{X: 1, Y: -1, Z: -1},
			{X: 1, Y: 1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
			{X: 1, Y: -1, Z: 1},
			{X: 1, Y: 1, Z: 1},
			{X: -1, Y: 1, Z: 1},
		},
		Faces: []solid.Face{
			{0, 3, 2, 1},
			{4, 5, 6, 7},
			{0, 1, 5, 4},
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 0, 4, 7},
		},
	}
}

func octahedron() *solid.Polyhedron {
	return &solid.Polyhedron{
		Name: "octahedron",
		Vertices: []v3.Vec{
			{X: 1, Y: 0, Z: 0},
			{X: -1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: -1, Z: 0},
			{X: 0, Y: 0, Z: 1},
			{X: 0, Y: 0, Z: -1},
		},
		Faces: []solid.Face{
			{0, 2, 4},
			{2, 1, 4},
			{1, 3, 4},
			{3, 0, 4},
			{2, 0, 5},
			{1, 2, 5},
			{3, 1, 5},
			{0, 3, 5},
		},
	}
}

// dodecahedron builds the 20 vertices from the three golden-rectangle
// families and recovers the 12 pentagon rings from the face planes, whose
// normals are the icosahedron's vertex directions.
func dodecahedron() *solid.Polyhedron {
	inv := 1 / phi
	var verts []v3.Vec
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				verts = append(verts, v3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	for _, s1 := range []float64{-1, 1} {
		for _, s2 := range []float64{-1, 1} {
			verts = append(verts,
				v3.Vec{X: 0, Y: s1 * phi, Z: s2 * inv},
				v3.Vec{X: s1 * inv, Y: 0, Z: s2 * phi},
				v3.Vec{X: s1 * phi, Y: s2 * inv, Z: 0},
			)
		}
	}
	return &solid.Polyhedron{
		Name:     "dodecahedron",
		Vertices: verts,
		Faces:    facesFromPlanes(verts, icosahedralDirections()),
	}
}

// icosahedron is the dual arrangement: vertices in the icosahedral
// directions, triangle rings recovered from planes through the
// dodecahedron's vertex directions.
func icosahedron() *solid.Polyhedron {
	verts := icosahedralDirections()
	dodeca := dodecahedron()
	return &solid.Polyhedron{
		Name:     "icosahedron",
		Vertices: verts,
		Faces:    facesFromPlanes(verts, dodeca.Vertices),
	}
}

// icosahedralDirections returns the cyclic permutations of (0, ±1, ±phi):
// the icosahedron's vertices and, equally, the dodecahedron's face normals.
func icosahedralDirections() []v3.Vec {
	var dirs []v3.Vec
	for _, s1 := range []float64{-1, 1} {
		for _, s2 := range []float64{-1, 1} {
			dirs = append(dirs,
				v3.Vec{X: 0, Y: s1, Z: s2 * phi},
				v3.Vec{X: s1, Y: s2 * phi, Z: 0},
				v3.Vec{X: s2 * phi, Y: 0, Z: s1},
			)
		}
	}
	return dirs
}

// facesFromPlanes recovers face rings from support planes: for each outward
// direction, the vertices at maximum support lie on that face, and sorting
// them by angle around the direction yields the ring wound outward. The
// support gap between a face and the next vertex layer is large for every
// solid built here, so the membership tolerance is uncritical.
func facesFromPlanes(verts []v3.Vec, dirs []v3.Vec) []solid.Face {
	faces := make([]solid.Face, 0, len(dirs))
	for _, dir := range dirs {
		n := dir.Normalize()
		max := math.Inf(-1)
		for _, v := range verts {
			if s := v.Dot(n); s > max {
				max = s
			}
		}
		var ringFace solid.Face
		for i, v := range verts {
			if v.Dot(n) > max-1e-6 {
				ringFace = append(ringFace, i)
			}
		}
		u := perpTo(n)
		w := n.Cross(u)
		sort.Slice(ringFace, func(a, b int) bool {
			va, vb := verts[ringFace[a]], verts[ringFace[b]]
			return math.Atan2(va.Dot(w), va.Dot(u)) < math.Atan2(vb.Dot(w), vb.Dot(u))
		})
		faces = append(faces, ringFace)
	}
	return faces
}

// perpTo returns an arbitrary unit vector perpendicular to n.
func perpTo(n v3.Vec) v3.Vec {
	ref := v3.Vec{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = v3.Vec{Y: 1}
	}
	return n.Cross(ref).Normalize()
}
