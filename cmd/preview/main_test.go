package main

import (
	"math"
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestProjectZGoesUp(t *testing.T) {
	g := &game{pitch: 0.8}

	_, py0, ok := g.project(v3.Vec{}, screenW, screenH)
	if !ok {
		t.Fatalf("project origin failed")
	}
	_, pyUp, ok := g.project(v3.Vec{Z: 1}, screenW, screenH)
	if !ok {
		t.Fatalf("project +Z failed")
	}
	_, pyDown, ok := g.project(v3.Vec{Z: -1}, screenW, screenH)
	if !ok {
		t.Fatalf("project -Z failed")
	}

	// In screen coordinates, smaller y means "up".
	if !(pyUp < py0 && py0 < pyDown) {
		t.Fatalf("expected +Z up: pyUp=%v py0=%v pyDown=%v", pyUp, py0, pyDown)
	}
}

func TestProjectCenterLandsMidScreen(t *testing.T) {
	for _, g := range []*game{
		{},
		{yaw: 0.6, pitch: 0.5},
		{yaw: -2.1, pitch: 1.2},
	} {
		px, py, ok := g.project(v3.Vec{}, screenW, screenH)
		if !ok {
			t.Fatalf("yaw=%v pitch=%v: origin culled", g.yaw, g.pitch)
		}
		wantX := float64(screenW-1) / 2
		wantY := float64(screenH-1) / 2
		if math.Abs(float64(px)-wantX) > 1e-6 || math.Abs(float64(py)-wantY) > 1e-6 {
			t.Fatalf("yaw=%v pitch=%v: origin at (%v, %v), want (%v, %v)",
				g.yaw, g.pitch, px, py, wantX, wantY)
		}
	}
}

func TestProjectYawSwingsX(t *testing.T) {
	right := v3.Vec{X: 1}

	g := &game{}
	px, _, ok := g.project(right, screenW, screenH)
	if !ok || px <= float32(screenW-1)/2 {
		t.Fatalf("yaw 0: +X at px=%v, want right of center", px)
	}

	g.yaw = math.Pi
	px, _, ok = g.project(right, screenW, screenH)
	if !ok || px >= float32(screenW-1)/2 {
		t.Fatalf("yaw pi: +X at px=%v, want left of center", px)
	}
}

func TestProjectCullsBehindCamera(t *testing.T) {
	g := &game{}

	// At pitch zero depth runs along +Y. The camera sits at viewDistance,
	// so points at or past it must be culled, not blown up by the divide.
	if _, _, ok := g.project(v3.Vec{Y: 5}, screenW, screenH); ok {
		t.Fatalf("point behind the camera was not culled")
	}
	if _, _, ok := g.project(v3.Vec{Y: 2.9}, screenW, screenH); ok {
		t.Fatalf("point inside the near limit was not culled")
	}
	if _, _, ok := g.project(v3.Vec{Y: 1}, screenW, screenH); !ok {
		t.Fatalf("point in front of the camera was culled")
	}
}

func solidIndex(t *testing.T, g *game, name string) int {
	t.Helper()
	for i, r := range g.records {
		if r.Name == name {
			return i
		}
	}
	t.Fatalf("catalogue has no %q", name)
	return -1
}

func TestNewGameStartFlag(t *testing.T) {
	g, err := newGame("cube")
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if got := g.records[g.index].Name; got != "cube" {
		t.Fatalf("start solid = %q, want cube", got)
	}
	if len(g.segs) != 12 {
		t.Fatalf("cube wireframe has %d segments, want 12", len(g.segs))
	}
	if !strings.Contains(g.caption, "cube (platonic)") {
		t.Fatalf("caption %q does not name the solid", g.caption)
	}
}

func TestNewGameResolvesAlias(t *testing.T) {
	g, err := newGame("rhombicuboctahedron")
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	if got := g.records[g.index].Name; got != "cantellated cube" {
		t.Fatalf("start solid = %q, want cantellated cube", got)
	}
}

func TestNewGameUnknownSolid(t *testing.T) {
	if _, err := newGame("hexaflexagon"); err == nil {
		t.Fatalf("expected an error for an unknown solid")
	} else if !strings.Contains(err.Error(), "no solid named") {
		t.Fatalf("error = %v, want a no-solid message", err)
	}
}

func TestRebuildDualSwapsCounts(t *testing.T) {
	g, err := newGame("cube")
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	g.showDual = true
	g.rebuild()

	if !strings.Contains(g.caption, "cube (dual)") {
		t.Fatalf("caption %q does not name the dual", g.caption)
	}
	if !strings.Contains(g.caption, "vertices 6  edges 12  faces 8") {
		t.Fatalf("caption %q does not carry octahedron counts", g.caption)
	}
	if len(g.segs) != 12 {
		t.Fatalf("dual wireframe has %d segments, want 12", len(g.segs))
	}
}

func TestRebuildPointOnlyUsesHull(t *testing.T) {
	g, err := newGame("")
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}
	g.index = solidIndex(t, g, "snub cube")
	g.rebuild()

	if len(g.segs) != 60 {
		t.Fatalf("snub cube hull has %d segments, want 60", len(g.segs))
	}
	if !strings.Contains(g.caption, "hull edges 60") {
		t.Fatalf("caption %q does not report hull edges", g.caption)
	}

	g.showDual = true
	g.rebuild()
	if !strings.Contains(g.caption, "no faces, dual unavailable") {
		t.Fatalf("caption %q does not flag the missing dual", g.caption)
	}
	if len(g.segs) != 60 {
		t.Fatalf("dual toggle changed the hull wireframe to %d segments", len(g.segs))
	}
}
