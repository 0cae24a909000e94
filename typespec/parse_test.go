package typespec

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

func TestParseFieldTypes(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"f: string", Primitive{Name: "string"}},
		{"f: integer", Primitive{Name: "integer"}},
		{"f: boolean", Primitive{Name: "boolean"}},
		{"f: float", Primitive{Name: "float"}},
		{"f: string?", Optional{Elem: Primitive{Name: "string"}}},
		{"f: string[]", Array{Elem: Primitive{Name: "string"}}},
		{"f: string[]?", Optional{Elem: Array{Elem: Primitive{Name: "string"}}}},
		{"f: Address", Reference{Name: "Address"}},
		{"f: Address[]", Array{Elem: Reference{Name: "Address"}}},
		{"f: Address?", Optional{Elem: Reference{Name: "Address"}}},
		{"f: Address[]?", Optional{Elem: Array{Elem: Reference{Name: "Address"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc := mustParse(t, "model Address {}\nmodel M { "+tt.input+"; }")
			model, ok := doc.Decls[1].(*Model)
			if !ok {
				t.Fatalf("declaration 1 is %T, want *Model", doc.Decls[1])
			}
			if len(model.Fields) != 1 {
				t.Fatalf("got %d fields, want 1", len(model.Fields))
			}
			if got := model.Fields[0].Type; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("type = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestOptionalIsPartOfTheType(t *testing.T) {
	doc := mustParse(t, "model M { email: string?; }")
	field := doc.Models()[0].Fields[0]
	want := Field{Name: "email", Type: Optional{Elem: Primitive{Name: "string"}}}
	if !reflect.DeepEqual(field, want) {
		t.Errorf("field = %#v, want %#v", field, want)
	}
}

func TestOptionalBeforeArrayIsSyntaxError(t *testing.T) {
	// The grammar fixes the composition order: the array marker must precede
	// the optional marker. "string?[]" is not a silently-accepted alternate
	// spelling of "string[]?".
	_, err := Parse("model M { f: string?[]; }")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	if len(syntaxErr.Expected) == 0 {
		t.Error("syntax error carries no expected alternatives")
	}
}

func TestParseEmptyModel(t *testing.T) {
	doc := mustParse(t, "model Empty {}")
	model := doc.Models()[0]
	if model.Name != "Empty" || len(model.Fields) != 0 {
		t.Errorf("got %#v, want empty model named Empty", model)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, src := range []string{"", "  \n\t", "// just a comment\n", "/* block */"} {
		doc := mustParse(t, src)
		if len(doc.Decls) != 0 {
			t.Errorf("Parse(%q) = %d declarations, want 0", src, len(doc.Decls))
		}
	}
}

func TestDeclarationOrderPreserved(t *testing.T) {
	doc := mustParse(t, `
		enum Status { active, inactive }
		model User { name: string; status: Status; }
		model Company { owner: User; }
	`)
	var names []string
	for _, decl := range doc.Decls {
		names = append(names, decl.DeclName())
	}
	if want := []string{"Status", "User", "Company"}; !reflect.DeepEqual(names, want) {
		t.Errorf("declaration order = %v, want %v", names, want)
	}
}

func TestFieldOrderPreserved(t *testing.T) {
	doc := mustParse(t, "model User { name: string; age: integer; email: string?; }")
	var names []string
	for _, field := range doc.Models()[0].Fields {
		names = append(names, field.Name)
	}
	if want := []string{"name", "age", "email"}; !reflect.DeepEqual(names, want) {
		t.Errorf("field order = %v, want %v", names, want)
	}
}

func TestEnumValuesInDeclarationOrder(t *testing.T) {
	doc := mustParse(t, "enum Status { active, inactive }")
	enum := doc.Enums()[0]
	if want := []string{"active", "inactive"}; !reflect.DeepEqual(enum.Values, want) {
		t.Errorf("values = %v, want %v", enum.Values, want)
	}
}

func TestEnumTrailingSeparator(t *testing.T) {
	for _, src := range []string{
		"enum Status { active, inactive, }",
		"enum Status { active; inactive; }",
		"enum Status { active, inactive }",
	} {
		doc := mustParse(t, src)
		if got := doc.Enums()[0].Values; !reflect.DeepEqual(got, []string{"active", "inactive"}) {
			t.Errorf("Parse(%q) values = %v", src, got)
		}
	}
}

func TestEnumQuotedValues(t *testing.T) {
	doc := mustParse(t, `enum Status { "in-progress", done }`)
	if want := []string{"in-progress", "done"}; !reflect.DeepEqual(doc.Enums()[0].Values, want) {
		t.Errorf("values = %v, want %v", doc.Enums()[0].Values, want)
	}
}

func TestSeparatorsCommaAndSemicolon(t *testing.T) {
	doc := mustParse(t, "model M { a: string, b: integer; c: boolean }")
	if got := len(doc.Models()[0].Fields); got != 3 {
		t.Errorf("got %d fields, want 3", got)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	doc := mustParse(t, `
		// a user record
		model User {
			name: string; // display name
			/* age in years */ age: integer;
		}
	`)
	if got := len(doc.Models()[0].Fields); got != 2 {
		t.Errorf("got %d fields, want 2", got)
	}
}

func TestDuplicateFieldIsSemanticError(t *testing.T) {
	_, err := Parse("model M { a: string; a: integer; }")
	var semErr *SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("got %v, want *SemanticError", err)
	}
	if semErr.Name != "a" {
		t.Errorf("error names %q, want %q", semErr.Name, "a")
	}
}

func TestReservedWordNamesAreSemanticErrors(t *testing.T) {
	tests := []string{
		"model model {}",
		"enum enum { a }",
		"model M { model: string; }",
		"enum E { model }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			_, err := Parse(src)
			var semErr *SemanticError
			if !errors.As(err, &semErr) {
				t.Errorf("got %v, want *SemanticError", err)
			}
		})
	}
}

func TestDuplicateDeclarationIsSemanticError(t *testing.T) {
	_, err := Parse("model User {}\nmodel User {}")
	var semErr *SemanticError
	if !errors.As(err, &semErr) {
		t.Fatalf("got %v, want *SemanticError", err)
	}
	if semErr.Name != "User" {
		t.Errorf("error names %q, want %q", semErr.Name, "User")
	}
}

func TestUnterminatedBlockCommentIsSyntaxError(t *testing.T) {
	_, err := Parse("model A {} /* junk")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	// The failure points at the opening /*, not at end of input.
	if syntaxErr.Pos.Line != 1 || syntaxErr.Pos.Column != 12 {
		t.Errorf("error at %d:%d, want 1:12", syntaxErr.Pos.Line, syntaxErr.Pos.Column)
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := Parse("model User {\n  name string;\n}")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
	// The furthest failure is at "string", where ":" was expected.
	if syntaxErr.Pos.Line != 2 {
		t.Errorf("error at line %d, want 2", syntaxErr.Pos.Line)
	}
}

func TestKeywordNeedsWordBoundary(t *testing.T) {
	_, err := Parse("modelUser {}")
	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("got %v, want *SyntaxError", err)
	}
}

func TestUnsupportedConstruct(t *testing.T) {
	tests := []struct {
		input     string
		construct string
	}{
		{"namespace Api;", "namespace"},
		{"interface Users { list(): string; }", "interface"},
		{"model M {}\nusing TypeSpec.Http;", "using"},
	}
	for _, tt := range tests {
		t.Run(tt.construct, func(t *testing.T) {
			_, err := Parse(tt.input)
			var unsupported *UnsupportedConstructError
			if !errors.As(err, &unsupported) {
				t.Fatalf("got %v, want *UnsupportedConstructError", err)
			}
			if unsupported.Construct != tt.construct {
				t.Errorf("construct = %q, want %q", unsupported.Construct, tt.construct)
			}
		})
	}
}

func TestNoPartialDocumentOnError(t *testing.T) {
	doc, err := Parse("model Good {}\nmodel Bad {")
	if err == nil {
		t.Fatal("expected an error")
	}
	if doc != nil {
		t.Errorf("got a partial document alongside the error: %#v", doc)
	}
}

func TestSharedGrammarIsSafeForConcurrentParses(t *testing.T) {
	src := "model User { name: string; tags: string[]; }"
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := Parse(src); err != nil {
					t.Errorf("Parse failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
