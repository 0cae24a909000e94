package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/tsp/typespec"
)

// PythonEncoder renders a document as Python dataclass and Enum
// declarations. Enums come before models so the generated file is
// self-contained when executed top to bottom; within each group declaration
// order is preserved.
type PythonEncoder struct {
	w   io.Writer
	doc *typespec.Document
}

func NewPythonEncoder(w io.Writer) *PythonEncoder {
	return &PythonEncoder{w: w}
}

func (e *PythonEncoder) Encode(doc *typespec.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

var pythonPrimitives = map[string]string{
	"string":  "str",
	"integer": "int",
	"boolean": "bool",
	"float":   "float",
}

func (e *PythonEncoder) MarshalText() ([]byte, error) {
	if err := CheckReferences(e.doc); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("from dataclasses import dataclass\n")
	sb.WriteString("from typing import List, Optional\n")
	sb.WriteString("from enum import Enum\n\n\n")

	for _, enum := range e.doc.Enums() {
		if err := e.writeEnum(&sb, enum); err != nil {
			return nil, err
		}
		sb.WriteString("\n")
	}
	for _, model := range e.doc.Models() {
		e.writeModel(&sb, model)
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

func (e *PythonEncoder) writeEnum(sb *strings.Builder, enum *typespec.Enum) error {
	fmt.Fprintf(sb, "class %s(Enum):\n", enum.Name)
	if len(enum.Values) == 0 {
		sb.WriteString("    pass\n")
		return nil
	}
	seen := make(map[string]string)
	for _, value := range enum.Values {
		name := strcase.ToScreamingSnake(value)
		// Distinct values can case-fold to the same member name; Python
		// would keep only the last one.
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("enum %s: values %q and %q both map to member %s", enum.Name, prev, value, name)
		}
		seen[name] = value
		fmt.Fprintf(sb, "    %s = %q\n", name, value)
	}
	return nil
}

func (e *PythonEncoder) writeModel(sb *strings.Builder, model *typespec.Model) {
	sb.WriteString("@dataclass\n")
	fmt.Fprintf(sb, "class %s:\n", model.Name)
	if len(model.Fields) == 0 {
		sb.WriteString("    pass\n")
		return
	}
	for _, field := range model.Fields {
		fmt.Fprintf(sb, "    %s: %s\n", field.Name, pythonType(field.Type))
	}
}

func pythonType(t typespec.Type) string {
	switch t := t.(type) {
	case typespec.Primitive:
		return pythonPrimitives[t.Name]
	case typespec.Reference:
		return t.Name
	case typespec.Array:
		return "List[" + pythonType(t.Elem) + "]"
	case typespec.Optional:
		return "Optional[" + pythonType(t.Elem) + "]"
	}
	panic(fmt.Sprintf("unknown type %T", t))
}
