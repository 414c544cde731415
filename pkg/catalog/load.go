package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// loadRecord is the interchange form of one solid: coordinate triples
// instead of vector structs, so data files stay portable.
type loadRecord struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`
}

// Load reads solids from the JSON interchange format: an array of records
// with a name, an optional category, vertices as [x,y,z] triples and faces
// as vertex index rings. Records without faces load as point-only records.
//
// Every face-bearing record is validated; the first blocking finding
// aborts the load. Loaded solids are returned in file order and are not
// merged into the built-in registry.
func Load(r io.Reader) ([]*solid.Polyhedron, error) {
	var records []loadRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	out := make([]*solid.Polyhedron, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("catalog: record %d has no name", i)
		}
		p := &solid.Polyhedron{
			Name:     rec.Name,
			Category: rec.Category,
			Vertices: make([]v3.Vec, len(rec.Vertices)),
		}
		for j, c := range rec.Vertices {
			p.Vertices[j] = v3.Vec{X: c[0], Y: c[1], Z: c[2]}
		}
		for _, f := range rec.Faces {
			p.Faces = append(p.Faces, solid.Face(f))
		}
		for _, e := range solid.Validate(p) {
			if e.Severity == solid.SeverityError {
				return nil, fmt.Errorf("catalog: record %q: %w", rec.Name, e)
			}
		}
		out = append(out, p)
	}
	return out, nil
}
