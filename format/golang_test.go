package format

import (
	"strings"
	"testing"
)

func TestGoEncoder(t *testing.T) {
	doc := parseDoc(t, `
		enum Status { active, inactive }

		model User {
			name: string;
			age: integer;
			email: string?;
			tags: string[];
			status: Status;
		}
	`)

	var sb strings.Builder
	if err := NewGoEncoder(&sb, WithPackage("models")).Encode(doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `// Code generated by tsp. DO NOT EDIT.

package models

type Status string

const (
	StatusActive Status = "active"
	StatusInactive Status = "inactive"
)

type User struct {
	Name string ` + "`json:\"name\"`" + `
	Age int64 ` + "`json:\"age\"`" + `
	Email *string ` + "`json:\"email\"`" + `
	Tags []string ` + "`json:\"tags\"`" + `
	Status Status ` + "`json:\"status\"`" + `
}
`
	if sb.String() != want {
		t.Errorf("generated:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestGoEnumConstantCollisionFailsGeneration(t *testing.T) {
	// Both values case-fold to StatusInProgress; emitting both constants
	// would not compile.
	doc := parseDoc(t, `enum Status { "in-progress", "in_progress" }`)

	err := NewGoEncoder(&strings.Builder{}).Encode(doc)
	if err == nil || !strings.Contains(err.Error(), "StatusInProgress") {
		t.Errorf("got %v, want collision error naming StatusInProgress", err)
	}
}

func TestGoTypeMapping(t *testing.T) {
	doc := parseDoc(t, "model M { a: float; b: boolean[]; c: integer[]?; }")

	var sb strings.Builder
	if err := NewGoEncoder(&sb).Encode(doc); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	for _, snippet := range []string{
		"package types",
		"A float64",
		"B []bool",
		"C *[]int64",
	} {
		if !strings.Contains(sb.String(), snippet) {
			t.Errorf("output missing %q:\n%s", snippet, sb.String())
		}
	}
}
