package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/tsp/typespec"
)

// GoEncoder renders a document as Go struct and constant declarations.
// Optional types become pointers, arrays become slices.
type GoEncoder struct {
	w       io.Writer
	doc     *typespec.Document
	pkgName string
}

type GoOption func(*GoEncoder)

// WithPackage sets the package clause of the generated file.
func WithPackage(name string) GoOption {
	return func(e *GoEncoder) {
		e.pkgName = name
	}
}

func NewGoEncoder(w io.Writer, opts ...GoOption) *GoEncoder {
	e := &GoEncoder{w: w, pkgName: "types"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *GoEncoder) Encode(doc *typespec.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

var goPrimitives = map[string]string{
	"string":  "string",
	"integer": "int64",
	"boolean": "bool",
	"float":   "float64",
}

func (e *GoEncoder) MarshalText() ([]byte, error) {
	if err := CheckReferences(e.doc); err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by tsp. DO NOT EDIT.\n\npackage %s\n", e.pkgName)

	for _, decl := range e.doc.Decls {
		sb.WriteString("\n")
		switch decl := decl.(type) {
		case *typespec.Enum:
			if err := e.writeEnum(&sb, decl); err != nil {
				return nil, err
			}
		case *typespec.Model:
			e.writeModel(&sb, decl)
		}
	}
	return []byte(sb.String()), nil
}

func (e *GoEncoder) writeEnum(sb *strings.Builder, enum *typespec.Enum) error {
	fmt.Fprintf(sb, "type %s string\n", enum.Name)
	if len(enum.Values) == 0 {
		return nil
	}
	sb.WriteString("\nconst (\n")
	seen := make(map[string]string)
	for _, value := range enum.Values {
		name := enum.Name + strcase.ToCamel(value)
		// Distinct values can case-fold to the same identifier; emitting
		// both would not compile.
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("enum %s: values %q and %q both map to constant %s", enum.Name, prev, value, name)
		}
		seen[name] = value
		fmt.Fprintf(sb, "\t%s %s = %q\n", name, enum.Name, value)
	}
	sb.WriteString(")\n")
	return nil
}

func (e *GoEncoder) writeModel(sb *strings.Builder, model *typespec.Model) {
	fmt.Fprintf(sb, "type %s struct {\n", model.Name)
	for _, field := range model.Fields {
		fmt.Fprintf(sb, "\t%s %s `json:%q`\n", strcase.ToCamel(field.Name), goType(field.Type), field.Name)
	}
	sb.WriteString("}\n")
}

func goType(t typespec.Type) string {
	switch t := t.(type) {
	case typespec.Primitive:
		return goPrimitives[t.Name]
	case typespec.Reference:
		return t.Name
	case typespec.Array:
		return "[]" + goType(t.Elem)
	case typespec.Optional:
		return "*" + goType(t.Elem)
	}
	panic(fmt.Sprintf("unknown type %T", t))
}
