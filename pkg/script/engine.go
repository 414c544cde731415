// Package script provides the Lisp console for defining custom polyhedra.
// It wraps zygomys in a sandboxed environment and turns user source code
// into validated solid records that flow through the same geometry pipeline
// as the built-in catalogue.
package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/payneba/polyhedra-viewer/pkg/solid"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a validation
// finding on a defined solid.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Engine wraps the zygomys interpreter for the solid console.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate takes Lisp source code and produces the solids it defines.
// Each call creates a fresh zygomys sandbox for deterministic evaluation.
//
// Return semantics:
//   - On success: returns solids + nil errors + nil error
//   - On parse/eval failure: returns nil solids + eval errors + nil error
//   - On validation findings: returns the surviving solids + eval errors +
//     nil error (solids with blocking findings are dropped, advisory
//     findings keep theirs)
//   - On fatal failure (timeout, panic): returns nil + nil + error
func (e *Engine) Evaluate(source string) ([]*solid.Polyhedron, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		solids, evalErrs, err := e.evaluate(source)
		ch <- evalResult{solids: solids, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) ([]*solid.Polyhedron, []EvalError, error) {
	// Empty source is a valid program that defines no solids.
	if strings.TrimSpace(source) == "" {
		return []*solid.Polyhedron{}, nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	col := newCollector()
	registerBuiltins(env, col)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	_, err = env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	solids, evalErrs := checkSolids(col.solids)
	return solids, evalErrs, nil
}

// planarityTolerance is the advisory limit on how far a face corner may sit
// from the face's Newell plane. Fan triangulation renders non-planar faces
// without complaint, so exceeding it warns rather than blocks.
const planarityTolerance = 1e-6

// checkSolids runs the validators over every defined solid and converts
// findings into EvalErrors for the console. Solids with blocking findings
// are dropped from the result; advisory findings keep theirs.
func checkSolids(defined []*solid.Polyhedron) ([]*solid.Polyhedron, []EvalError) {
	keep := make([]*solid.Polyhedron, 0, len(defined))
	var evalErrs []EvalError

	for _, p := range defined {
		blocked := false
		for _, v := range solid.Validate(p) {
			evalErrs = append(evalErrs, EvalError{
				Message: fmt.Sprintf("solid %q: %s", p.Name, v),
			})
			if v.Severity == solid.SeverityError {
				blocked = true
			}
		}
		if blocked {
			continue
		}

		// Planarity is advisory only, and only meaningful once the face
		// indices are known to be in range.
		for fi, f := range p.Faces {
			if dev := p.PlaneDeviation(f); dev > planarityTolerance {
				evalErrs = append(evalErrs, EvalError{
					Message: fmt.Sprintf("solid %q: face %d is not planar (deviation %.3g)",
						p.Name, fi, dev),
				})
			}
		}
		keep = append(keep, p)
	}
	return keep, evalErrs
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError values.
// It attempts to extract line number information from the error message.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	// zygomys formats parse errors as "Error on line N: <details>\n"
	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		detail := strings.TrimSpace(m[2])
		return []EvalError{{
			Line:    line,
			Col:     0,
			Message: detail,
		}}
	}

	// Fallback: no line info available.
	return []EvalError{{
		Line:    0,
		Col:     0,
		Message: strings.TrimSpace(msg),
	}}
}
