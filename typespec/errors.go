package typespec

import (
	"fmt"
	"strings"

	"github.com/dhamidi/tsp/peg"
)

// SyntaxError reports a grammar match failure: the furthest position the
// match reached and the alternatives that were expected there. No partial
// document accompanies it.
type SyntaxError struct {
	Pos      peg.Position
	Expected []string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: syntax error", e.Pos)
	}
	return fmt.Sprintf("%s: expected %s", e.Pos, strings.Join(e.Expected, " or "))
}

// UnsupportedConstructError reports a TypeSpec construct outside the
// supported subset, such as a namespace or interface declaration. It behaves
// like a syntax error at the parsing boundary but names the construct.
type UnsupportedConstructError struct {
	Pos       peg.Position
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("%s: unsupported construct %q", e.Pos, e.Construct)
}

// SemanticError reports a structurally valid parse with invalid meaning:
// a duplicate field name, a reserved word used as a name, or a reference to
// an undeclared type.
type SemanticError struct {
	Name   string
	Reason string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

func duplicateField(model, field string) *SemanticError {
	return &SemanticError{Name: field, Reason: fmt.Sprintf("duplicate field in model %s", model)}
}

func duplicateDecl(name string) *SemanticError {
	return &SemanticError{Name: name, Reason: "duplicate declaration"}
}

func reservedWord(name, where string) *SemanticError {
	return &SemanticError{Name: name, Reason: fmt.Sprintf("reserved word used as %s", where)}
}
