// Package catalog is the static store of named solids: the Platonic and
// Archimedean solids, the uniform prisms and antiprisms, and a set of
// Johnson solids, all built at process start from exact constructions.
// Every record is origin-centered, scaled to unit circumradius and wound
// outward, which is the pose the dual engine and the renderers assume.
//
// Additional records in the JSON interchange format can be read with Load;
// they are returned to the caller rather than merged, so the built-in
// registry stays immutable after init.
package catalog

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// Record categories. Script-defined solids use CategoryCustom; the loader
// accepts any string.
const (
	CategoryPlatonic    = "platonic"
	CategoryArchimedean = "archimedean"
	CategoryPrism       = "prism"
	CategoryAntiprism   = "antiprism"
	CategoryJohnson     = "johnson"
	CategoryCustom      = "custom"
)

var (
	ordered []*solid.Polyhedron
	byName  map[string]*solid.Polyhedron
)

func init() {
	byName = make(map[string]*solid.Polyhedron)
	add(platonicSolids())
	add(archimedeanSolids())
	add(prismaticSolids())
	add(johnsonSolids())
}

func add(list []*solid.Polyhedron) {
	for _, p := range list {
		if _, dup := byName[p.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate solid name %q", p.Name))
		}
		byName[p.Name] = p
		ordered = append(ordered, p)
	}
}

// All returns every built-in record in catalogue order: Platonic solids,
// Archimedean solids, prisms and antiprisms, Johnson solids. The slice is a
// copy; the records are shared and must not be mutated.
func All() []*solid.Polyhedron {
	out := make([]*solid.Polyhedron, len(ordered))
	copy(out, ordered)
	return out
}

// aliases maps well-known alternate names onto catalogue names. The
// twice-derived Archimedean records are registered under their operator
// names, so the classical ones land here.
var aliases = map[string]string{
	"rhombicuboctahedron":         "cantellated cube",
	"truncated cuboctahedron":     "omnitruncated cube",
	"rhombicosidodecahedron":      "cantellated dodecahedron",
	"truncated icosidodecahedron": "omnitruncated dodecahedron",
}

// Lookup returns the built-in record with the given name, accepting both
// catalogue names and their classical aliases.
func Lookup(name string) (*solid.Polyhedron, bool) {
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	p, ok := byName[name]
	return p, ok
}

// Names returns all built-in record names in catalogue order.
func Names() []string {
	out := make([]string, len(ordered))
	for i, p := range ordered {
		out[i] = p.Name
	}
	return out
}

// ByCategory returns the built-in records of one category in catalogue
// order.
func ByCategory(category string) []*solid.Polyhedron {
	var out []*solid.Polyhedron
	for _, p := range ordered {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// finish puts a freshly built solid into canonical pose: centered on its
// vertex centroid, scaled so the farthest vertex sits at distance 1, every
// face wound outward. Generators call it last, so hand-entered windings
// only need to be consistent, not correct.
func finish(p *solid.Polyhedron) *solid.Polyhedron {
	c := solid.Centroid(p.Vertices)
	for i := range p.Vertices {
		p.Vertices[i] = p.Vertices[i].Sub(c)
	}
	var max float64
	for _, v := range p.Vertices {
		if l := v.Length(); l > max {
			max = l
		}
	}
	if max > 0 {
		for i := range p.Vertices {
			p.Vertices[i] = p.Vertices[i].DivScalar(max)
		}
	}
	for _, f := range p.Faces {
		solid.OrientOutward(p.Vertices, f)
	}
	return p
}

// ring returns n points evenly spaced on the circle of radius r at height
// z, starting at angle phase.
func ring(n int, r, z, phase float64) []v3.Vec {
	pts := make([]v3.Vec, n)
	for i := range pts {
		a := 2*math.Pi*float64(i)/float64(n) + phase
		pts[i] = v3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}
	return pts
}
