// Command preview opens a desktop window with an orbiting wireframe of one
// catalogue solid at a time, a quick way to eyeball records and their duals
// without starting the full viewer. Arrow keys orbit, space toggles the
// dual, tab cycles through the catalogue.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/payneba/polyhedra-viewer/pkg/catalog"
	"github.com/payneba/polyhedra-viewer/pkg/dual"
	"github.com/payneba/polyhedra-viewer/pkg/geometry"
	"github.com/payneba/polyhedra-viewer/pkg/hull"
	"github.com/payneba/polyhedra-viewer/pkg/hull/quickhull"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

const (
	screenW = 800
	screenH = 600

	// Camera sits on the view axis at viewDistance; anything closer than
	// nearLimit to the camera plane is culled rather than blown up.
	viewDistance = 3.0
	nearLimit    = 0.2
	zoom         = 2.2

	orbitStep = 0.03
	maxPitch  = 1.5
)

var (
	backgroundColor = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}
	lineColor       = color.RGBA{R: 0xf0, G: 0xf3, B: 0xf5, A: 0xff}
)

type game struct {
	records []*solid.Polyhedron
	builder hull.Builder

	index    int
	showDual bool
	yaw      float64
	pitch    float64

	segs    []geometry.Segment
	caption string
}

func newGame(start string) (*game, error) {
	g := &game{
		records: catalog.All(),
		builder: quickhull.New(),
		yaw:     0.6,
		pitch:   0.5,
	}
	if start != "" {
		p, ok := catalog.Lookup(start)
		if !ok {
			return nil, fmt.Errorf("no solid named %q", start)
		}
		for i, r := range g.records {
			if r.Name == p.Name {
				g.index = i
				break
			}
		}
	}
	g.rebuild()
	return g, nil
}

// rebuild refreshes the wireframe and caption for the current selection.
// Point-only records fall back to hull edges; the dual toggle is a no-op
// for them since there are no face rings to reciprocate.
func (g *game) rebuild() {
	p := g.records[g.index]
	note := ""
	if g.showDual {
		if p.PointOnly() {
			note = "  [no faces, dual unavailable]"
		} else {
			p = dual.Compute(p)
		}
	}

	if p.PointOnly() {
		segs, err := hull.Edges(g.builder, p.Vertices, 1, hull.DefaultEdgeThreshold)
		if err != nil {
			log.Printf("preview: hull edges for %q: %v", p.Name, err)
		}
		g.segs = segs
		g.caption = fmt.Sprintf("%s (%s)%s\nvertices %d  hull edges %d\ntab next  space dual  arrows orbit",
			p.Name, p.Category, note, len(p.Vertices), len(segs))
		return
	}

	g.segs = geometry.EdgeSegments(p, 1)
	g.caption = fmt.Sprintf("%s (%s)%s\nvertices %d  edges %d  faces %d\ntab next  space dual  arrows orbit",
		p.Name, p.Category, note, len(p.Vertices), len(p.Edges()), len(p.Faces))
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.yaw -= orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.yaw += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.pitch += orbitStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.pitch -= orbitStep
	}
	if g.pitch > maxPitch {
		g.pitch = maxPitch
	}
	if g.pitch < -maxPitch {
		g.pitch = -maxPitch
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.index = (g.index + 1) % len(g.records)
		g.rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.showDual = !g.showDual
		g.rebuild()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	for _, s := range g.segs {
		x0, y0, ok0 := g.project(s[0], w, h)
		x1, y1, ok1 := g.project(s[1], w, h)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, lineColor, true)
	}
	ebitenutil.DebugPrint(screen, g.caption)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// project maps a model-space point to screen coordinates. Yaw spins the
// solid about the Z axis, pitch raises the camera above the equator, then a
// perspective divide against a camera at viewDistance. At pitch zero the
// view is a front view with +Z up; screen y grows downward.
func (g *game) project(v v3.Vec, w, h int) (float32, float32, bool) {
	cy, sy := math.Cos(g.yaw), math.Sin(g.yaw)
	x1 := v.X*cy - v.Y*sy
	y1 := v.X*sy + v.Y*cy
	z1 := v.Z

	cp, sp := math.Cos(g.pitch), math.Sin(g.pitch)
	up := z1*cp - y1*sp
	depth := y1*cp + z1*sp

	denom := viewDistance - depth
	if denom <= nearLimit {
		return 0, 0, false
	}
	persp := zoom / denom
	size := 0.45 * math.Min(float64(w-1), float64(h-1))

	px := float64(w-1)/2 + x1*persp*size
	py := float64(h-1)/2 - up*persp*size
	return float32(px), float32(py), true
}

func main() {
	var start string
	flag.StringVar(&start, "solid", "", "Solid to show first.")
	flag.Parse()

	g, err := newGame(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	ebiten.SetWindowTitle("polyhedra preview")
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
