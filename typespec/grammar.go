package typespec

import "github.com/dhamidi/tsp/peg"

// Primitive type names recognized by the grammar subset. Any other type name
// is a reference to a model or enum declaration.
var primitiveTypes = map[string]bool{
	"string":  true,
	"integer": true,
	"boolean": true,
	"float":   true,
}

// IsPrimitive reports whether name is a built-in scalar type.
func IsPrimitive(name string) bool {
	return primitiveTypes[name]
}

// Grammar keywords. Using one as a declaration, field, or enum value name is
// a semantic error.
var reservedWords = map[string]bool{
	"model": true,
	"enum":  true,
}

// TypeSpec keywords outside the supported subset. Seeing one at a declaration
// boundary turns the syntax failure into an unsupported-construct diagnostic.
var unsupportedKeywords = map[string]bool{
	"alias":     true,
	"import":    true,
	"interface": true,
	"namespace": true,
	"op":        true,
	"scalar":    true,
	"union":     true,
	"using":     true,
}

func isLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isIdentStart(b byte) bool {
	return isLetter(b) || b == '_'
}

func isIdentTail(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}

// skipTrivia advances past whitespace, // line comments, and /* */ block
// comments. An unterminated block comment is not consumed, so the following
// match fails at its opening /* rather than silently accepting the input.
func skipTrivia(input string, pos int) int {
	for pos < len(input) {
		switch {
		case input[pos] == ' ' || input[pos] == '\t' || input[pos] == '\r' || input[pos] == '\n':
			pos++
		case pos+1 < len(input) && input[pos] == '/' && input[pos+1] == '/':
			for pos < len(input) && input[pos] != '\n' {
				pos++
			}
		case pos+1 < len(input) && input[pos] == '/' && input[pos+1] == '*':
			end := pos + 2
			for end+1 < len(input) && !(input[end] == '*' && input[end+1] == '/') {
				end++
			}
			if end+1 >= len(input) {
				return pos
			}
			pos = end + 2
		default:
			return pos
		}
	}
	return pos
}

// grammar is the fixed rule set for the supported TypeSpec subset. It is
// built once at package initialization and never mutated, so concurrent
// Parse calls share it safely.
var grammar = peg.New("Document", map[string]*peg.Expression{
	"Document": peg.Seq(
		peg.ZeroOrMore(peg.Choice(peg.Ref("ModelDecl"), peg.Ref("EnumDecl"))),
		peg.End(),
	),

	"ModelDecl": peg.Seq(
		peg.Keyword("model", isIdentTail),
		peg.Ref("Identifier"),
		peg.Lit("{"),
		peg.Ref("PropertyList"),
		peg.Lit("}"),
	),

	"PropertyList": peg.ZeroOrMore(peg.Seq(
		peg.Ref("Property"),
		peg.Opt(peg.Ref("Separator")),
	)),

	"Property": peg.Seq(
		peg.Ref("Identifier"),
		peg.Lit(":"),
		peg.Ref("TypeExpr"),
	),

	// The optional marker composes after the array marker: "string[]?" is an
	// optional array of strings, and "string?[]" does not parse.
	"TypeExpr": peg.Seq(
		peg.Ref("Identifier"),
		peg.Opt(peg.Ref("ArrayMarker")),
		peg.Opt(peg.Ref("OptionalMarker")),
	),

	"ArrayMarker":    peg.Seq(peg.Lit("["), peg.Lit("]")),
	"OptionalMarker": peg.Lit("?"),

	"EnumDecl": peg.Seq(
		peg.Keyword("enum", isIdentTail),
		peg.Ref("Identifier"),
		peg.Lit("{"),
		peg.Ref("EnumValueList"),
		peg.Lit("}"),
	),

	"EnumValueList": peg.ZeroOrMore(peg.Seq(
		peg.Ref("EnumValue"),
		peg.Opt(peg.Ref("Separator")),
	)),

	"EnumValue": peg.Choice(peg.Ref("Identifier"), peg.Ref("StringValue")),

	"Identifier": peg.Token(peg.Seq(
		peg.Class("letter", isIdentStart),
		peg.ZeroOrMore(peg.Class("letter or digit", isIdentTail)),
	)),

	"StringValue": peg.Token(peg.Seq(
		peg.Lit(`"`),
		peg.ZeroOrMore(peg.Class("string character", func(b byte) bool {
			return b != '"' && b != '\n'
		})),
		peg.Lit(`"`),
	)),

	"Separator": peg.Choice(peg.Lit(","), peg.Lit(";")),
}, peg.WithSkipper(skipTrivia))
