package dual_test

import (
	"math"
	"reflect"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/catalog"
	"github.com/payneba/polyhedra-viewer/pkg/dual"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

func mustLookup(t *testing.T, name string) *solid.Polyhedron {
	t.Helper()
	p, ok := catalog.Lookup(name)
	if !ok {
		t.Fatalf("catalogue is missing %q", name)
	}
	return p
}

// ---------------------------------------------------------------------------
// Classical pairs
// ---------------------------------------------------------------------------

func TestCompute_TetrahedronIsSelfDual(t *testing.T) {
	d := dual.Compute(mustLookup(t, "tetrahedron"))
	if len(d.Vertices) != 4 || len(d.Faces) != 4 {
		t.Fatalf("dual tetrahedron has %d vertices and %d faces, want 4 and 4",
			len(d.Vertices), len(d.Faces))
	}
	for fi, f := range d.Faces {
		if len(f) != 3 {
			t.Errorf("face %d has %d sides, want 3", fi, len(f))
		}
	}
}

func TestCompute_CubeOctahedronPair(t *testing.T) {
	d := dual.Compute(mustLookup(t, "cube"))
	if len(d.Vertices) != 6 || len(d.Faces) != 8 {
		t.Fatalf("dual cube has %d vertices and %d faces, want the octahedron's 6 and 8",
			len(d.Vertices), len(d.Faces))
	}
	for fi, f := range d.Faces {
		if len(f) != 3 {
			t.Errorf("face %d has %d sides, want 3", fi, len(f))
		}
	}

	// The cube's vertices all sit at radius 1, and the octahedron is
	// vertex transitive, so after rescaling every dual vertex lands on
	// the unit sphere.
	for i, v := range d.Vertices {
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Errorf("dual vertex %d at radius %g, want 1", i, v.Length())
		}
	}
}

func TestCompute_DodecahedronIcosahedronPair(t *testing.T) {
	d := dual.Compute(mustLookup(t, "dodecahedron"))
	if len(d.Vertices) != 12 || len(d.Faces) != 20 {
		t.Fatalf("dual dodecahedron has %d vertices and %d faces, want 12 and 20",
			len(d.Vertices), len(d.Faces))
	}
	i := dual.Compute(mustLookup(t, "icosahedron"))
	if len(i.Vertices) != 20 || len(i.Faces) != 12 {
		t.Fatalf("dual icosahedron has %d vertices and %d faces, want 20 and 12",
			len(i.Vertices), len(i.Faces))
	}
}

func TestCompute_CuboctahedronGivesRhombicDodecahedron(t *testing.T) {
	d := dual.Compute(mustLookup(t, "cuboctahedron"))
	if len(d.Vertices) != 14 || len(d.Faces) != 12 {
		t.Fatalf("got %d vertices and %d faces, want 14 and 12",
			len(d.Vertices), len(d.Faces))
	}
	for fi, f := range d.Faces {
		if len(f) != 4 {
			t.Errorf("face %d has %d sides, want 4 (rhombi)", fi, len(f))
		}
	}
}

func TestCompute_NameAndCategory(t *testing.T) {
	d := dual.Compute(mustLookup(t, "cube"))
	if d.Name != "cube (dual)" {
		t.Errorf("dual named %q", d.Name)
	}
	if d.Category != catalog.CategoryPlatonic {
		t.Errorf("dual category %q, want the original's", d.Category)
	}
}

// ---------------------------------------------------------------------------
// Whole-catalogue properties
// ---------------------------------------------------------------------------

func TestCompute_CatalogueDualsAreValid(t *testing.T) {
	for _, p := range catalog.All() {
		if p.PointOnly() {
			continue
		}
		d := dual.Compute(p)
		for _, e := range solid.Validate(d) {
			t.Errorf("%s: %s", d.Name, e)
		}
	}
}

func TestCompute_SwapsCountsKeepsEdges(t *testing.T) {
	for _, p := range catalog.All() {
		if p.PointOnly() {
			continue
		}
		d := dual.Compute(p)
		if len(d.Vertices) != len(p.Faces) {
			t.Errorf("%s: %d dual vertices for %d faces", p.Name, len(d.Vertices), len(p.Faces))
		}
		if len(d.Faces) != len(p.Vertices) {
			t.Errorf("%s: %d dual faces for %d vertices", p.Name, len(d.Faces), len(p.Vertices))
		}
		if got, want := len(d.Edges()), len(p.Edges()); got != want {
			t.Errorf("%s: dual has %d edges, original %d", p.Name, got, want)
		}
	}
}

// TestCompute_DualFacesArePlanar relies on the reciprocation identity: the
// poles of every face meeting at a vertex v all lie on the polar plane of
// v, so dual faces are planar to rounding error no matter how lopsided the
// original solid is.
func TestCompute_DualFacesArePlanar(t *testing.T) {
	for _, p := range catalog.All() {
		if p.PointOnly() {
			continue
		}
		d := dual.Compute(p)
		for fi, f := range d.Faces {
			if dev := d.PlaneDeviation(f); dev > 1e-9 {
				t.Errorf("%s: face %d deviates from planar by %g", d.Name, fi, dev)
			}
		}
	}
}

func TestCompute_DualsWindOutward(t *testing.T) {
	for _, p := range catalog.All() {
		if p.PointOnly() {
			continue
		}
		d := dual.Compute(p)
		for fi, f := range d.Faces {
			n := solid.NewellNormal(d.FacePoints(f))
			c := solid.Centroid(d.FacePoints(f))
			if n.Dot(c) <= 0 {
				t.Errorf("%s: face %d winds inward", d.Name, fi)
			}
		}
	}
}

func TestCompute_DoubleDualRestoresCounts(t *testing.T) {
	for _, name := range []string{
		"tetrahedron", "cube", "icosahedron",
		"truncated octahedron", "pentagonal cupola", "gyrobifastigium",
	} {
		p := mustLookup(t, name)
		dd := dual.Compute(dual.Compute(p))
		if len(dd.Vertices) != len(p.Vertices) || len(dd.Faces) != len(p.Faces) {
			t.Errorf("%s: double dual has %d vertices and %d faces, want %d and %d",
				name, len(dd.Vertices), len(dd.Faces), len(p.Vertices), len(p.Faces))
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	p := mustLookup(t, "truncated icosahedron")
	a := dual.Compute(p)
	b := dual.Compute(p)
	if !reflect.DeepEqual(a.Vertices, b.Vertices) {
		t.Error("two runs produced different vertices")
	}
	if !reflect.DeepEqual(a.Faces, b.Faces) {
		t.Error("two runs produced different faces")
	}
}

// ---------------------------------------------------------------------------
// Edge cases
// ---------------------------------------------------------------------------

func TestCompute_WindingFlipDoesNotMovePoles(t *testing.T) {
	p := mustLookup(t, "cube")
	flipped := &solid.Polyhedron{
		Name:     p.Name,
		Vertices: p.Vertices,
		Faces:    make([]solid.Face, len(p.Faces)),
	}
	for i, f := range p.Faces {
		r := make(solid.Face, len(f))
		for j, vi := range f {
			r[len(f)-1-j] = vi
		}
		flipped.Faces[i] = r
	}

	a := dual.Compute(p)
	b := dual.Compute(flipped)
	for i := range a.Vertices {
		if !a.Vertices[i].Equals(b.Vertices[i], 1e-12) {
			t.Fatalf("vertex %d moved under winding flip: %v vs %v",
				i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestCompute_OffCenterInputReciprocatesAboutCentroid(t *testing.T) {
	p := mustLookup(t, "cube")
	offset := v3.Vec{X: 3, Y: -2, Z: 5}
	moved := &solid.Polyhedron{
		Name:     p.Name,
		Vertices: make([]v3.Vec, len(p.Vertices)),
		Faces:    p.Faces,
	}
	for i, v := range p.Vertices {
		moved.Vertices[i] = v.Add(offset)
	}

	centered := dual.Compute(p)
	shifted := dual.Compute(moved)
	for i := range centered.Vertices {
		got := shifted.Vertices[i].Sub(offset)
		if !got.Equals(centered.Vertices[i], 1e-9) {
			t.Fatalf("vertex %d: shifted dual at %v, centered dual at %v",
				i, got, centered.Vertices[i])
		}
	}
}

func TestCompute_SolidTouchingOrigin(t *testing.T) {
	// A face plane through the origin would make origin-pinned
	// reciprocation divide by zero. Fitting the sphere at the centroid
	// keeps every plane at positive distance.
	wedge := &solid.Polyhedron{
		Name: "wedge",
		Vertices: []v3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		Faces: []solid.Face{
			{0, 2, 1}, {3, 4, 5},
			{0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5},
		},
	}
	d := dual.Compute(wedge)
	if len(d.Vertices) != 5 || len(d.Faces) != 6 {
		t.Fatalf("got %d vertices and %d faces, want 5 and 6", len(d.Vertices), len(d.Faces))
	}
	for i, v := range d.Vertices {
		l := v.Length()
		if math.IsNaN(l) || math.IsInf(l, 0) {
			t.Fatalf("vertex %d is not finite: %v", i, v)
		}
	}
	for _, e := range solid.Validate(d) {
		if e.Severity == solid.SeverityError {
			t.Errorf("dual wedge: %s", e)
		}
	}
}

func TestCompute_PointOnlyGivesEmptyDual(t *testing.T) {
	d := dual.Compute(mustLookup(t, "snub cube"))
	if len(d.Vertices) != 0 || len(d.Faces) != 0 {
		t.Fatalf("point-only input produced %d vertices and %d faces",
			len(d.Vertices), len(d.Faces))
	}
	if d.Name != "snub cube (dual)" {
		t.Errorf("dual named %q", d.Name)
	}
}

func TestCompute_SquarePyramidDual(t *testing.T) {
	// The pyramid has one degree-4 apex and four degree-3 base corners:
	// the dual gets one quad and four triangles back.
	d := dual.Compute(mustLookup(t, "square pyramid"))
	if len(d.Vertices) != 5 || len(d.Faces) != 5 {
		t.Fatalf("got %d vertices and %d faces, want 5 and 5", len(d.Vertices), len(d.Faces))
	}
	var tris, quads int
	for _, f := range d.Faces {
		switch len(f) {
		case 3:
			tris++
		case 4:
			quads++
		}
	}
	if tris != 4 || quads != 1 {
		t.Errorf("got %d triangles and %d quads, want 4 and 1", tris, quads)
	}
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	p := mustLookup(t, "dodecahedron")
	before := make([]v3.Vec, len(p.Vertices))
	copy(before, p.Vertices)
	dual.Compute(p)
	for i := range before {
		if p.Vertices[i] != before[i] {
			t.Fatalf("input vertex %d moved", i)
		}
	}
}
