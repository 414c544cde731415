package catalog

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// archimedeanSolids derives the Archimedean family from the Platonic seeds
// with the truncation and rectification operators. The quasiregular and
// truncated forms come out metrically exact; the twice-derived forms
// (cantellations and omnitruncations) have the canonical topology with
// slightly oblong rectangles where the uniform solid has squares, which is
// the price of deriving them instead of entering coordinate tables. The two
// snub solids resist derivation entirely: the snub cube ships as a
// point-only record and the snub dodecahedron is left to loaded data.
func archimedeanSolids() []*solid.Polyhedron {
	tet := tetrahedron()
	cub := cube()
	oct := octahedron()
	dod := dodecahedron()
	ico := icosahedron()

	cubocta := Rectify(cub, "cuboctahedron")
	icosidodeca := Rectify(ico, "icosidodecahedron")

	list := []*solid.Polyhedron{
		Truncate(tet, tTriangleFaced, "truncated tetrahedron"),
		Truncate(cub, tCube, "truncated cube"),
		Truncate(oct, tTriangleFaced, "truncated octahedron"),
		Truncate(dod, tDodeca, "truncated dodecahedron"),
		Truncate(ico, tTriangleFaced, "truncated icosahedron"),
		cubocta,
		icosidodeca,
		Rectify(cubocta, "cantellated cube"),
		Truncate(cubocta, tTriangleFaced, "omnitruncated cube"),
		Rectify(icosidodeca, "cantellated dodecahedron"),
		Truncate(icosidodeca, tTriangleFaced, "omnitruncated dodecahedron"),
		snubCube(),
	}
	for _, p := range list {
		p.Category = CategoryArchimedean
	}
	return list
}

// tribonacci is the real root of x^3 = x^2 + x + 1, the constant behind
// snub cube coordinates.
const tribonacci = 1.8392867552141612

// snubCube returns the snub cube as a point-only record: 24 vertices, no
// face rings. Its chiral faces do not fall out of any operator chain here,
// so the surface is left to the convex hull fallback. One handedness only.
func snubCube() *solid.Polyhedron {
	a, b, c := 1.0, 1/tribonacci, tribonacci

	evenPerms := [][3]float64{{a, b, c}, {b, c, a}, {c, a, b}}
	oddPerms := [][3]float64{{a, c, b}, {c, b, a}, {b, a, c}}

	var verts []v3.Vec
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				minus := 0
				for _, s := range []float64{sx, sy, sz} {
					if s < 0 {
						minus++
					}
				}
				perms := evenPerms
				if minus%2 == 1 {
					perms = oddPerms
				}
				for _, p := range perms {
					verts = append(verts, v3.Vec{X: sx * p[0], Y: sy * p[1], Z: sz * p[2]})
				}
			}
		}
	}

	return finish(&solid.Polyhedron{
		Name:     "snub cube",
		Category: CategoryArchimedean,
		Vertices: verts,
	})
}
