package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunTable(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "", false, false, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"NAME", "tetrahedron", "cube", "gyrobifastigium"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
	// Header plus at least the 42 built-in records.
	if lines := strings.Count(out, "\n"); lines < 43 {
		t.Errorf("table has %d lines, want at least 43", lines)
	}
	if strings.Contains(out, "V-E+F") {
		t.Error("a catalogue record failed its Euler check")
	}
}

func TestRunDetail(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "cube", false, false, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"name:      cube",
		"vertices:  8",
		"edges:     12",
		"faces:     6 (6x4-gon)",
		"euler:     ok",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail output missing %q in:\n%s", want, out)
		}
	}
}

func TestRunDetailDual(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "cube", true, false, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"name:      cube (dual)",
		"vertices:  6",
		"faces:     8 (8x3-gon)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dual detail missing %q in:\n%s", want, out)
		}
	}
}

func TestRunUnknownSolid(t *testing.T) {
	err := run(&bytes.Buffer{}, "hexaflexagon", false, false, "")
	if err == nil || !strings.Contains(err.Error(), "no solid named") {
		t.Fatalf("expected a lookup error, got %v", err)
	}
}

func TestRunDualOfPointOnly(t *testing.T) {
	err := run(&bytes.Buffer{}, "snub cube", true, false, "")
	if err == nil || !strings.Contains(err.Error(), "no faces") {
		t.Fatalf("expected a no-faces error, got %v", err)
	}
}

func TestRunJSONBuffers(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "cube", false, true, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var dump bufferDump
	if err := json.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if dump.Name != "cube" {
		t.Errorf("dump name %q", dump.Name)
	}
	if got := dump.Mesh.TriangleCount(); got != 12 {
		t.Errorf("mesh has %d triangles, want 12", got)
	}
	// 12 edges, 2 endpoints each, 3 floats per endpoint.
	if len(dump.Lines) != 72 {
		t.Errorf("lines buffer has %d floats, want 72", len(dump.Lines))
	}
}

func TestRunJSONSummaries(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "", false, true, ""); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var out []summary
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out) < 42 {
		t.Fatalf("got %d summaries, want at least 42", len(out))
	}
	if out[0].Name != "tetrahedron" || out[0].Vertices != 4 {
		t.Errorf("first summary = %+v, want the tetrahedron", out[0])
	}
}

func TestRunExternalDataset(t *testing.T) {
	data := `[
  {
    "name": "flatland gem",
    "category": "custom",
    "vertices": [[1,0,0],[-1,0,0],[0,1,0],[0,-1,0],[0,0,1],[0,0,-1]],
    "faces": [[0,2,4],[2,1,4],[1,3,4],[3,0,4],[2,0,5],[1,2,5],[3,1,5],[0,3,5]]
  }
]`
	path := filepath.Join(t.TempDir(), "dataset.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := run(&buf, "", false, false, path); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "flatland gem") {
		t.Errorf("table missing the dataset record:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "tetrahedron") {
		t.Error("dataset mode should not include catalogue records")
	}

	buf.Reset()
	if err := run(&buf, "flatland gem", false, false, path); err != nil {
		t.Fatalf("detail run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "faces:     8 (8x3-gon)") {
		t.Errorf("detail output wrong:\n%s", buf.String())
	}
}

func TestRunMissingDataset(t *testing.T) {
	err := run(&bytes.Buffer{}, "", false, false, filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "open dataset") {
		t.Fatalf("expected an open error, got %v", err)
	}
}
