package main

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/payneba/polyhedra-viewer/pkg/catalog"
	"github.com/payneba/polyhedra-viewer/pkg/dual"
	"github.com/payneba/polyhedra-viewer/pkg/geometry"
	"github.com/payneba/polyhedra-viewer/pkg/hull"
	"github.com/payneba/polyhedra-viewer/pkg/hull/quickhull"
	"github.com/payneba/polyhedra-viewer/pkg/script"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// App is the Wails backend. It exposes methods to the frontend via bindings.
// The geometry pipeline itself is stateless; the only state here is the set
// of solids defined through the script console.
type App struct {
	ctx    context.Context
	engine *script.Engine
	hull   hull.Builder

	mu          sync.Mutex
	custom      map[string]*solid.Polyhedron
	customOrder []string
}

// SolidInfo is the JSON-serializable summary of one solid for pickers.
type SolidInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Vertices int    `json:"vertices"`
	Faces    int    `json:"faces"`
	Edges    int    `json:"edges"`
}

// ViewConfig is the immutable view configuration the frontend passes per
// render call. Mode is "solid", "wireframe" or "both"; empty means "both".
// A non-positive scale means 1.
type ViewConfig struct {
	Solid string  `json:"solid"`
	Mode  string  `json:"mode"`
	Dual  bool    `json:"dual"`
	Scale float64 `json:"scale"`
}

// LegendEntry maps a face side count to its display color so the frontend
// can label the palette. Sides 0 marks the uniform hull color of a
// point-only record.
type LegendEntry struct {
	Sides int    `json:"sides"`
	Hex   string `json:"hex"`
}

// RenderResult carries everything the frontend needs to draw one solid.
// Err is a user-visible message for the status line; when it is set the
// buffers are empty.
type RenderResult struct {
	Name   string               `json:"name"`
	Mesh   *geometry.MeshBuffer `json:"mesh,omitempty"`
	Lines  []float32            `json:"lines,omitempty"`
	Legend []LegendEntry        `json:"legend,omitempty"`
	Err    string               `json:"err,omitempty"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend console.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ScriptResult is the full result of a console evaluation: a summary and a
// default render of every defined solid, plus the errors.
type ScriptResult struct {
	Solids []SolidInfo     `json:"solids"`
	Meshes []RenderResult  `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with a script engine and the quickhull builder.
func NewApp() *App {
	return &App{
		engine: script.NewEngine(),
		hull:   quickhull.New(),
		custom: make(map[string]*solid.Polyhedron),
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// ListSolids returns every available solid: the built-in catalogue followed
// by console-defined solids in definition order.
func (a *App) ListSolids() []SolidInfo {
	var infos []SolidInfo
	for _, p := range catalog.All() {
		infos = append(infos, infoFor(p))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, name := range a.customOrder {
		infos = append(infos, infoFor(a.custom[name]))
	}
	return infos
}

// Render produces the draw buffers for one view configuration. Catalogue
// names win over console-defined names; point-only records render through
// the convex hull path.
func (a *App) Render(cfg ViewConfig) RenderResult {
	p, ok := a.lookup(cfg.Solid)
	if !ok {
		return RenderResult{Err: fmt.Sprintf("render: no solid named %q", cfg.Solid)}
	}

	mode := cfg.Mode
	if mode == "" {
		mode = "both"
	}
	switch mode {
	case "solid", "wireframe", "both":
	default:
		return RenderResult{Err: fmt.Sprintf("render: unknown display mode %q", cfg.Mode)}
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}

	if cfg.Dual {
		if p.PointOnly() {
			return RenderResult{Err: fmt.Sprintf(
				"render: solid %q has no faces; the dual needs face rings", p.Name)}
		}
		p = dual.Compute(p)
	}

	return a.renderRecord(p, mode, scale)
}

// renderRecord fills the draw buffers for one resolved record.
func (a *App) renderRecord(p *solid.Polyhedron, mode string, scale float64) RenderResult {
	result := RenderResult{Name: p.Name, Legend: legendFor(p)}

	if p.PointOnly() {
		return a.renderHull(result, p, mode, scale)
	}

	if mode != "wireframe" {
		result.Mesh = geometry.ColoredMesh(p, scale)
	}
	if mode != "solid" {
		result.Lines = geometry.LinePositions(geometry.EdgeSegments(p, scale))
	}
	return result
}

// renderHull fills result through the convex hull fallback for point-only
// records.
func (a *App) renderHull(result RenderResult, p *solid.Polyhedron, mode string, scale float64) RenderResult {
	if mode != "wireframe" {
		mesh, err := hull.Mesh(a.hull, p.Vertices, scale)
		if err != nil {
			log.Printf("Render hull error for %q: %v", p.Name, err)
			return RenderResult{Name: p.Name, Err: "render: " + err.Error()}
		}
		result.Mesh = mesh
	}
	if mode != "solid" {
		segs, err := hull.Edges(a.hull, p.Vertices, scale, hull.DefaultEdgeThreshold)
		if err != nil {
			log.Printf("Render hull error for %q: %v", p.Name, err)
			return RenderResult{Name: p.Name, Err: "render: " + err.Error()}
		}
		result.Lines = geometry.LinePositions(segs)
	}
	return result
}

// EvaluateScript runs console source through the script engine. A
// successful evaluation replaces the previous console-defined solids, so
// the console behaves like a document rather than an accumulator; a failed
// one leaves them alone. Every surviving solid comes back with a default
// render for the preview panel.
func (a *App) EvaluateScript(source string) ScriptResult {
	result := ScriptResult{
		Solids: []SolidInfo{},
		Meshes: []RenderResult{},
		Errors: []EvalErrorData{},
	}

	solids, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, superseded).
		log.Printf("EvaluateScript fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	for _, e := range evalErrs {
		result.Errors = append(result.Errors, EvalErrorData{
			Line:    e.Line,
			Col:     e.Col,
			Message: e.Message,
		})
	}
	if solids == nil {
		// The source never ran; keep the previous definitions.
		return result
	}

	a.mu.Lock()
	a.custom = make(map[string]*solid.Polyhedron, len(solids))
	a.customOrder = a.customOrder[:0]
	for _, p := range solids {
		a.custom[p.Name] = p
		a.customOrder = append(a.customOrder, p.Name)
	}
	a.mu.Unlock()

	for _, p := range solids {
		result.Solids = append(result.Solids, infoFor(p))
		result.Meshes = append(result.Meshes, a.renderRecord(p, "both", 1))
	}
	return result
}

// lookup resolves a solid name: catalogue first, then console definitions.
func (a *App) lookup(name string) (*solid.Polyhedron, bool) {
	if p, ok := catalog.Lookup(name); ok {
		return p, true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.custom[name]
	return p, ok
}

func infoFor(p *solid.Polyhedron) SolidInfo {
	return SolidInfo{
		Name:     p.Name,
		Category: p.Category,
		Vertices: len(p.Vertices),
		Faces:    len(p.Faces),
		Edges:    len(p.Edges()),
	}
}

// legendFor lists the face palette entries actually present in p, smallest
// side count first.
func legendFor(p *solid.Polyhedron) []LegendEntry {
	if p.PointOnly() {
		return []LegendEntry{{Sides: 0, Hex: geometry.FaceColorHex(0)}}
	}
	seen := make(map[int]bool)
	var sides []int
	for _, f := range p.Faces {
		if !seen[len(f)] {
			seen[len(f)] = true
			sides = append(sides, len(f))
		}
	}
	sort.Ints(sides)
	entries := make([]LegendEntry, len(sides))
	for i, s := range sides {
		entries[i] = LegendEntry{Sides: s, Hex: geometry.FaceColorHex(s)}
	}
	return entries
}
