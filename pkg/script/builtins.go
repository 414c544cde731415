package script

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/payneba/polyhedra-viewer/pkg/catalog"
	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms console Lisp source before passing it to
// zygomys. It performs two transformations:
//
//  1. Comment conversion: ; line comments become // comments, which is the
//     form zygomys understands.
//
//  2. Kebab-case to underscore: half-height -> half_height
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries, so solid names
// like "twin-peaks" come through untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Collapse additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters, so minus
		// expressions like (- 10 5) stay arithmetic.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVertex wraps one vertex position so it can be returned from `vertex`
// and consumed by `defsolid`.
type sexpVertex struct {
	v v3.Vec
}

func (s *sexpVertex) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vertex %g %g %g)", s.v.X, s.v.Y, s.v.Z)
}
func (s *sexpVertex) Type() *zygo.RegisteredType { return nil }

// sexpFace wraps one face ring so it can be returned from `face` and
// consumed by `defsolid`.
type sexpFace struct {
	ring solid.Face
}

func (s *sexpFace) SexpString(ps *zygo.PrintState) string {
	out := "(face"
	for _, vi := range s.ring {
		out += fmt.Sprintf(" %d", vi)
	}
	return out + ")"
}
func (s *sexpFace) Type() *zygo.RegisteredType { return nil }

// sexpSolidRef wraps a defined solid's name so scripts can see what
// defsolid returned.
type sexpSolidRef struct {
	name string
}

func (s *sexpSolidRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %q)", s.name)
}
func (s *sexpSolidRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toInt extracts an int from a SexpInt. Floats are rejected: a fractional
// vertex index is always a script mistake.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer index, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Solid collection
// ---------------------------------------------------------------------------

// collector accumulates the solids a script defines, in definition order.
type collector struct {
	solids []*solid.Polyhedron
	names  map[string]bool
}

func newCollector() *collector {
	return &collector{names: make(map[string]bool)}
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the solid-definition builtins into a zygomys
// environment. The builtins populate the provided collector during
// evaluation.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so comments and kebab-case identifiers parse.
func registerBuiltins(env *zygo.Zlisp, col *collector) {

	// -----------------------------------------------------------------------
	// (vertex 0.5 -0.5 1.0)
	// -----------------------------------------------------------------------
	env.AddFunction("vertex", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vertex requires exactly 3 coordinates, got %d", len(args))
		}

		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertex: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertex: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vertex: z: %w", err)
		}

		return &sexpVertex{v: v3.Vec{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (face 0 1 2 3)
	//
	// Indices refer to the enclosing defsolid's vertex forms in order of
	// appearance, counterclockwise as seen from outside the solid.
	// -----------------------------------------------------------------------
	env.AddFunction("face", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 3 {
			return zygo.SexpNull, fmt.Errorf("face requires at least 3 vertex indices, got %d", len(args))
		}

		ring := make(solid.Face, len(args))
		for i, a := range args {
			vi, err := toInt(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("face: index %d: %w", i, err)
			}
			ring[i] = vi
		}

		return &sexpFace{ring: ring}, nil
	})

	// -----------------------------------------------------------------------
	// (defsolid "gem"
	//   (vertex 0 0 1) (vertex 1 0 0) (vertex 0 1 0) (vertex 0 0 0)
	//   (face 0 1 2) ...)
	//
	// A defsolid with vertices and no faces defines a point-only record,
	// which renders through the convex hull path.
	// -----------------------------------------------------------------------
	env.AddFunction("defsolid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 1 {
			return zygo.SexpNull, fmt.Errorf("defsolid requires a name argument")
		}

		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: name: %w", err)
		}
		if solidName == "" {
			return zygo.SexpNull, fmt.Errorf("defsolid: name must not be empty")
		}
		if col.names[solidName] {
			return zygo.SexpNull, fmt.Errorf("defsolid: %q already defined", solidName)
		}

		p := &solid.Polyhedron{
			Name:     solidName,
			Category: catalog.CategoryCustom,
		}
		for i := 1; i < len(args); i++ {
			switch form := args[i].(type) {
			case *sexpVertex:
				p.Vertices = append(p.Vertices, form.v)
			case *sexpFace:
				p.Faces = append(p.Faces, form.ring)
			default:
				return zygo.SexpNull, fmt.Errorf("defsolid: form %d: expected vertex or face, got %T (%s)",
					i, args[i], args[i].SexpString(nil))
			}
		}

		col.names[solidName] = true
		col.solids = append(col.solids, p)

		return &sexpSolidRef{name: solidName}, nil
	})
}
