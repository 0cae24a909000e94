// Package typespec parses the model/enum subset of TypeSpec into a typed
// document tree.
package typespec

import (
	"encoding/json"
	"fmt"
)

// Type is a field's declared type together with its modifiers. Modifiers are
// part of the type, never flags on the field: "string[]?" is
// Optional{Array{Primitive{"string"}}}.
type Type interface {
	typeNode()
	// String renders the type in TypeSpec's concrete syntax.
	String() string
}

type Primitive struct {
	Name string
}

type Array struct {
	Elem Type
}

type Optional struct {
	Elem Type
}

// Reference names another model or enum in the same document. Resolution is
// name-based and happens at generation time, so declaration order does not
// matter.
type Reference struct {
	Name string
}

func (Primitive) typeNode() {}
func (Array) typeNode()     {}
func (Optional) typeNode()  {}
func (Reference) typeNode() {}

func (t Primitive) String() string { return t.Name }
func (t Array) String() string     { return t.Elem.String() + "[]" }
func (t Optional) String() string  { return t.Elem.String() + "?" }
func (t Reference) String() string { return t.Name }

func (t Primitive) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"kind": "primitive", "name": t.Name})
}

func (t Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": "array", "elem": t.Elem})
}

func (t Optional) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{"kind": "optional", "elem": t.Elem})
}

func (t Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"kind": "reference", "name": t.Name})
}

type Field struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Decl is a top-level declaration: a Model or an Enum.
type Decl interface {
	declNode()
	DeclName() string
}

type Model struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

type Enum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (*Model) declNode() {}
func (*Enum) declNode()  {}

func (m *Model) DeclName() string { return m.Name }
func (e *Enum) DeclName() string  { return e.Name }

// Document holds the declarations of one source file in declaration order.
type Document struct {
	Decls []Decl
}

// Lookup returns the declaration with the given name, if any.
func (d *Document) Lookup(name string) (Decl, bool) {
	for _, decl := range d.Decls {
		if decl.DeclName() == name {
			return decl, true
		}
	}
	return nil, false
}

// Models returns the model declarations in declaration order.
func (d *Document) Models() []*Model {
	var models []*Model
	for _, decl := range d.Decls {
		if m, ok := decl.(*Model); ok {
			models = append(models, m)
		}
	}
	return models
}

// Enums returns the enum declarations in declaration order.
func (d *Document) Enums() []*Enum {
	var enums []*Enum
	for _, decl := range d.Decls {
		if e, ok := decl.(*Enum); ok {
			enums = append(enums, e)
		}
	}
	return enums
}

func (d *Document) MarshalJSON() ([]byte, error) {
	type decl struct {
		Kind   string   `json:"kind"`
		Name   string   `json:"name"`
		Fields []Field  `json:"fields,omitempty"`
		Values []string `json:"values,omitempty"`
	}
	decls := make([]decl, 0, len(d.Decls))
	for _, item := range d.Decls {
		switch item := item.(type) {
		case *Model:
			decls = append(decls, decl{Kind: "model", Name: item.Name, Fields: item.Fields})
		case *Enum:
			decls = append(decls, decl{Kind: "enum", Name: item.Name, Values: item.Values})
		default:
			return nil, fmt.Errorf("unknown declaration type %T", item)
		}
	}
	return json.Marshal(map[string]any{"declarations": decls})
}
