package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/tsp/typespec"
)

// TypeSpecEncoder renders a document back to canonical TypeSpec source:
// two-space indent, semicolon-terminated fields, comma-terminated enum
// values, one blank line between declarations. Formatting a document and
// parsing it again yields a structurally identical document, and formatting
// is idempotent on text.
type TypeSpecEncoder struct {
	w   io.Writer
	doc *typespec.Document
}

func NewTypeSpecEncoder(w io.Writer) *TypeSpecEncoder {
	return &TypeSpecEncoder{w: w}
}

func (e *TypeSpecEncoder) Encode(doc *typespec.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TypeSpecEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for i, decl := range e.doc.Decls {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch decl := decl.(type) {
		case *typespec.Model:
			writeModelDecl(&sb, decl)
		case *typespec.Enum:
			if err := writeEnumDecl(&sb, decl); err != nil {
				return nil, err
			}
		}
	}
	return []byte(sb.String()), nil
}

func writeModelDecl(sb *strings.Builder, model *typespec.Model) {
	if len(model.Fields) == 0 {
		fmt.Fprintf(sb, "model %s {}\n", model.Name)
		return
	}
	fmt.Fprintf(sb, "model %s {\n", model.Name)
	for _, field := range model.Fields {
		fmt.Fprintf(sb, "  %s: %s;\n", field.Name, field.Type)
	}
	sb.WriteString("}\n")
}

func writeEnumDecl(sb *strings.Builder, enum *typespec.Enum) error {
	if len(enum.Values) == 0 {
		fmt.Fprintf(sb, "enum %s {}\n", enum.Name)
		return nil
	}
	fmt.Fprintf(sb, "enum %s {\n", enum.Name)
	for _, value := range enum.Values {
		// String literals carry no escape sequences, so quoted values are
		// written back verbatim. A value holding a quote or newline has no
		// literal form at all.
		if strings.ContainsAny(value, "\"\n") {
			return fmt.Errorf("enum %s: value %q cannot be written as a string literal", enum.Name, value)
		}
		if needsQuoting(value) {
			fmt.Fprintf(sb, "  \"%s\",\n", value)
		} else {
			fmt.Fprintf(sb, "  %s,\n", value)
		}
	}
	sb.WriteString("}\n")
	return nil
}

// needsQuoting reports whether an enum value must be written as a string
// literal to parse back to the same value.
func needsQuoting(value string) bool {
	if value == "" || value == "model" || value == "enum" {
		return true
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		letter := 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || b == '_'
		digit := '0' <= b && b <= '9'
		if !letter && !(digit && i > 0) {
			return true
		}
	}
	return false
}

// Canonical parses source and renders it back in canonical form. It is the
// core of the fmt command.
func Canonical(source []byte) ([]byte, error) {
	doc, err := typespec.Parse(string(source))
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	enc := NewTypeSpecEncoder(&sb)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
