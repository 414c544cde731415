// Command polystat prints combinatorial statistics for the built-in solid
// catalogue or an external JSON dataset: vertex/edge/face counts with Euler
// checks, per-solid detail, and raw render-buffer dumps for debugging the
// frontend.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/payneba/polyhedra-viewer/pkg/catalog"
	"github.com/payneba/polyhedra-viewer/pkg/dual"
	"github.com/payneba/polyhedra-viewer/pkg/geometry"
	"github.com/payneba/polyhedra-viewer/pkg/hull"
	"github.com/payneba/polyhedra-viewer/pkg/hull/quickhull"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

func main() {
	var solidName string
	var useDual bool
	var asJSON bool
	var dataFile string
	flag.StringVar(&solidName, "solid", "", "Show one solid instead of the whole table.")
	flag.BoolVar(&useDual, "dual", false, "Replace each solid by its dual first.")
	flag.BoolVar(&asJSON, "json", false, "Emit JSON; combined with -solid, full render buffers.")
	flag.StringVar(&dataFile, "f", "", "Read records from a JSON dataset instead of the catalogue.")
	flag.Parse()

	if err := run(os.Stdout, solidName, useDual, asJSON, dataFile); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, solidName string, useDual, asJSON bool, dataFile string) error {
	records, err := loadRecords(dataFile)
	if err != nil {
		return err
	}

	if solidName != "" {
		p, ok := find(records, dataFile == "", solidName)
		if !ok {
			return fmt.Errorf("no solid named %q", solidName)
		}
		if useDual {
			if p.PointOnly() {
				return fmt.Errorf("solid %q has no faces; the dual needs face rings", p.Name)
			}
			p = dual.Compute(p)
		}
		if asJSON {
			return writeBuffers(w, p)
		}
		return writeDetail(w, p)
	}

	if useDual {
		records = dualize(records)
	}
	if asJSON {
		return writeSummaries(w, records)
	}
	return writeTable(w, records)
}

// loadRecords returns the working set: the built-in catalogue, or the
// records of an external dataset file.
func loadRecords(path string) ([]*solid.Polyhedron, error) {
	if path == "" {
		return catalog.All(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return catalog.Load(f)
}

// find resolves a solid name. Catalogue lookups go through catalog.Lookup
// so classical aliases keep working; external datasets are scanned by exact
// name.
func find(records []*solid.Polyhedron, builtin bool, name string) (*solid.Polyhedron, bool) {
	if builtin {
		return catalog.Lookup(name)
	}
	for _, p := range records {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// dualize replaces each face-bearing record with its dual. Point-only
// records have no face rings to reciprocate and are dropped with a note.
func dualize(records []*solid.Polyhedron) []*solid.Polyhedron {
	out := make([]*solid.Polyhedron, 0, len(records))
	for _, p := range records {
		if p.PointOnly() {
			fmt.Fprintf(os.Stderr, "skipping %s: no faces to dualize\n", p.Name)
			continue
		}
		out = append(out, dual.Compute(p))
	}
	return out
}

func writeTable(w io.Writer, records []*solid.Polyhedron) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tVERTICES\tEDGES\tFACES\tEULER")
	for _, p := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			p.Name, p.Category, len(p.Vertices), len(p.Edges()), len(p.Faces), eulerMark(p))
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, p *solid.Polyhedron) error {
	fmt.Fprintf(w, "name:      %s\n", p.Name)
	fmt.Fprintf(w, "category:  %s\n", p.Category)
	fmt.Fprintf(w, "vertices:  %d\n", len(p.Vertices))
	fmt.Fprintf(w, "edges:     %d\n", len(p.Edges()))
	if p.PointOnly() {
		fmt.Fprintf(w, "faces:     none (point-only record, faces come from the convex hull)\n")
		return nil
	}
	fmt.Fprintf(w, "faces:     %d (%s)\n", len(p.Faces), sideBreakdown(p))
	fmt.Fprintf(w, "euler:     %s\n", eulerMark(p))
	return nil
}

// eulerMark reports the closed-surface check V - E + F = 2.
func eulerMark(p *solid.Polyhedron) string {
	if p.PointOnly() {
		return "-"
	}
	x := len(p.Vertices) - len(p.Edges()) + len(p.Faces)
	if x == 2 {
		return "ok"
	}
	return fmt.Sprintf("V-E+F=%d", x)
}

func sideBreakdown(p *solid.Polyhedron) string {
	hist := make(map[int]int)
	for _, f := range p.Faces {
		hist[len(f)]++
	}
	sides := make([]int, 0, len(hist))
	for s := range hist {
		sides = append(sides, s)
	}
	sort.Ints(sides)
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = fmt.Sprintf("%dx%d-gon", hist[s], s)
	}
	return strings.Join(parts, ", ")
}

type summary struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
	Faces    int    `json:"faces"`
}

func writeSummaries(w io.Writer, records []*solid.Polyhedron) error {
	out := make([]summary, len(records))
	for i, p := range records {
		out[i] = summary{
			Name:     p.Name,
			Category: p.Category,
			Vertices: len(p.Vertices),
			Edges:    len(p.Edges()),
			Faces:    len(p.Faces),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type bufferDump struct {
	Name     string               `json:"name"`
	Category string               `json:"category"`
	Mesh     *geometry.MeshBuffer `json:"mesh"`
	Lines    []float32            `json:"lines"`
}

// writeBuffers dumps the exact buffers a frontend would receive for one
// solid. Point-only records go through the hull path like everywhere else.
func writeBuffers(w io.Writer, p *solid.Polyhedron) error {
	dump := bufferDump{Name: p.Name, Category: p.Category}
	if p.PointOnly() {
		b := quickhull.New()
		mesh, err := hull.Mesh(b, p.Vertices, 1)
		if err != nil {
			return err
		}
		segs, err := hull.Edges(b, p.Vertices, 1, hull.DefaultEdgeThreshold)
		if err != nil {
			return err
		}
		dump.Mesh = mesh
		dump.Lines = geometry.LinePositions(segs)
	} else {
		dump.Mesh = geometry.ColoredMesh(p, 1)
		dump.Lines = geometry.LinePositions(geometry.EdgeSegments(p, 1))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}
