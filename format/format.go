// Package format renders parsed TypeSpec documents as target-language
// declarations. Each encoder is a pure function of the document: no encoder
// mutates the tree, and output is deterministic for a given input.
package format

import (
	"encoding"
	"fmt"

	"github.com/dhamidi/tsp/typespec"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *typespec.Document) error
}

// CheckReferences verifies that every Reference in the document names a
// declared model or enum. Resolution is two-pass and name-based: all
// declaration names are collected first, so forward references are fine and
// declaration order never matters.
func CheckReferences(doc *typespec.Document) error {
	names := make(map[string]bool, len(doc.Decls))
	for _, decl := range doc.Decls {
		names[decl.DeclName()] = true
	}
	for _, model := range doc.Models() {
		for _, field := range model.Fields {
			name, ok := referencedName(field.Type)
			if !ok || names[name] {
				continue
			}
			return &typespec.SemanticError{
				Name:   name,
				Reason: fmt.Sprintf("undeclared type referenced by %s.%s", model.Name, field.Name),
			}
		}
	}
	return nil
}

func referencedName(t typespec.Type) (string, bool) {
	switch t := t.(type) {
	case typespec.Reference:
		return t.Name, true
	case typespec.Array:
		return referencedName(t.Elem)
	case typespec.Optional:
		return referencedName(t.Elem)
	}
	return "", false
}
