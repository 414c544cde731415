package solid

import (
	"fmt"
	"math"
)

// ValidationSeverity indicates whether a validation finding blocks rendering
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks rendering
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single validation finding.
type ValidationError struct {
	Face     int                // which face has the problem (-1 if solid-level)
	Message  string             // human-readable description
	Severity ValidationSeverity // error or warning
}

func (e ValidationError) Error() string {
	if e.Face < 0 {
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	}
	return fmt.Sprintf("[%s] face %d: %s", e.Severity, e.Face, e.Message)
}

// Validate runs every structural check on the solid and returns the
// findings. An empty result means the solid is a closed, consistently wound
// manifold. Point-only records skip the face checks; only their coordinates
// are examined. Validate is read-only and never mutates the solid.
func Validate(p *Polyhedron) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateCoordinates(p)...)
	if p.PointOnly() {
		return errs
	}
	errs = append(errs, validateFaces(p)...)
	errs = append(errs, validateManifold(p)...)
	errs = append(errs, validateCoverage(p)...)
	return errs
}

// validateCoordinates checks that every vertex position is finite.
func validateCoordinates(p *Polyhedron) []ValidationError {
	var errs []ValidationError
	for i, v := range p.Vertices {
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				errs = append(errs, ValidationError{
					Face:     -1,
					Message:  fmt.Sprintf("vertex %d has non-finite coordinate", i),
					Severity: SeverityError,
				})
				break
			}
		}
	}
	return errs
}

// validateFaces checks that every face is a ring of at least three distinct,
// in-range vertex indices.
func validateFaces(p *Polyhedron) []ValidationError {
	var errs []ValidationError
	for fi, f := range p.Faces {
		if len(f) < 3 {
			errs = append(errs, ValidationError{
				Face:     fi,
				Message:  fmt.Sprintf("face has %d vertices, need at least 3", len(f)),
				Severity: SeverityError,
			})
			continue
		}
		seen := make(map[int]bool, len(f))
		for _, vi := range f {
			if vi < 0 || vi >= len(p.Vertices) {
				errs = append(errs, ValidationError{
					Face:     fi,
					Message:  fmt.Sprintf("vertex index %d out of range [0,%d)", vi, len(p.Vertices)),
					Severity: SeverityError,
				})
				continue
			}
			if seen[vi] {
				errs = append(errs, ValidationError{
					Face:     fi,
					Message:  fmt.Sprintf("vertex index %d repeats within the face", vi),
					Severity: SeverityError,
				})
			}
			seen[vi] = true
		}
	}
	return errs
}

// validateManifold checks the closed-surface conditions: every undirected
// edge is shared by exactly two faces, and no directed edge is traversed
// twice (two faces crossing an edge in the same direction means their
// windings disagree).
func validateManifold(p *Polyhedron) []ValidationError {
	var errs []ValidationError

	undirected := make(map[EdgeKey]int)
	type dirEdge struct{ from, to int }
	directed := make(map[dirEdge][]int)

	for fi, f := range p.Faces {
		for i, a := range f {
			b := f[(i+1)%len(f)]
			undirected[MakeEdgeKey(a, b)]++
			directed[dirEdge{a, b}] = append(directed[dirEdge{a, b}], fi)
		}
	}

	// Report in deterministic order by walking faces again rather than
	// ranging over the maps.
	reported := make(map[EdgeKey]bool)
	for fi, f := range p.Faces {
		for i, a := range f {
			b := f[(i+1)%len(f)]
			k := MakeEdgeKey(a, b)
			if reported[k] {
				continue
			}
			reported[k] = true
			if n := undirected[k]; n != 2 {
				errs = append(errs, ValidationError{
					Face:     fi,
					Message:  fmt.Sprintf("edge %d-%d is shared by %d faces, want 2", k.A, k.B, n),
					Severity: SeverityError,
				})
				continue
			}
			if faces := directed[dirEdge{a, b}]; len(faces) > 1 {
				errs = append(errs, ValidationError{
					Face:     fi,
					Message:  fmt.Sprintf("edge %d-%d traversed twice in the same direction, windings disagree", a, b),
					Severity: SeverityError,
				})
			}
		}
	}
	return errs
}

// validateCoverage warns about vertices no face references. They are legal
// but usually indicate a mis-entered record.
func validateCoverage(p *Polyhedron) []ValidationError {
	used := make([]bool, len(p.Vertices))
	for _, f := range p.Faces {
		for _, vi := range f {
			if vi >= 0 && vi < len(used) {
				used[vi] = true
			}
		}
	}
	var errs []ValidationError
	for i, u := range used {
		if !u {
			errs = append(errs, ValidationError{
				Face:     -1,
				Message:  fmt.Sprintf("vertex %d is not referenced by any face", i),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}
