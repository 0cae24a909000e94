// Package peg implements generic backtracking pattern matching with ordered
// choice. A Grammar is an immutable set of named expressions built once and
// shared; matching threads explicit state and result values so that cursor
// restoration and furthest-failure tracking are observable behaviors rather
// than side effects of control flow.
package peg

type ExprKind int

const (
	KindLiteral ExprKind = iota
	KindSequence
	KindChoice
	KindRepetition
	KindCharClass
	KindRuleRef
	KindToken
	KindKeyword
	KindEnd
)

var exprKindNames = map[ExprKind]string{
	KindLiteral:    "Literal",
	KindSequence:   "Sequence",
	KindChoice:     "Choice",
	KindRepetition: "Repetition",
	KindCharClass:  "CharClass",
	KindRuleRef:    "RuleRef",
	KindToken:      "Token",
	KindKeyword:    "Keyword",
	KindEnd:        "End",
}

func (k ExprKind) String() string {
	if name, ok := exprKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Expression is one node of a grammar. Expressions are constructed through
// the combinator functions below and never mutated afterwards.
type Expression struct {
	Kind     ExprKind
	Text     string            // Literal: the exact text to match
	Children []*Expression     // Sequence, Choice
	Inner    *Expression       // Repetition, Token
	Min, Max int               // Repetition bounds; Max < 0 means unbounded
	Name     string            // CharClass description, RuleRef target
	Pred     func(b byte) bool // CharClass membership
}

// Lit matches the given text exactly.
func Lit(text string) *Expression {
	return &Expression{Kind: KindLiteral, Text: text}
}

// Seq matches each child in order, all from consecutive positions.
func Seq(children ...*Expression) *Expression {
	return &Expression{Kind: KindSequence, Children: children}
}

// Choice tries alternatives strictly in declared order; the first success
// wins. There is no longest-match preference.
func Choice(alternatives ...*Expression) *Expression {
	return &Expression{Kind: KindChoice, Children: alternatives}
}

// Rep matches inner greedily between min and max times. A negative max means
// unbounded.
func Rep(inner *Expression, min, max int) *Expression {
	return &Expression{Kind: KindRepetition, Inner: inner, Min: min, Max: max}
}

// ZeroOrMore is Rep(inner, 0, -1).
func ZeroOrMore(inner *Expression) *Expression {
	return Rep(inner, 0, -1)
}

// Opt is Rep(inner, 0, 1).
func Opt(inner *Expression) *Expression {
	return Rep(inner, 0, 1)
}

// Class matches a single byte satisfying pred. The name appears in expected
// sets when the match fails.
func Class(name string, pred func(b byte) bool) *Expression {
	return &Expression{Kind: KindCharClass, Name: name, Pred: pred}
}

// Ref matches the named rule of the enclosing grammar.
func Ref(name string) *Expression {
	return &Expression{Kind: KindRuleRef, Name: name}
}

// Token matches inner atomically: no trivia is skipped inside its span. Use
// it for lexical rules composed from classes and repetitions, so that
// "na me" is never one identifier.
func Token(inner *Expression) *Expression {
	return &Expression{Kind: KindToken, Inner: inner}
}

// Keyword matches text like a literal, but only at a word boundary: the byte
// after the match must not satisfy tail. This keeps "modelFoo" from matching
// the keyword "model" followed by an identifier.
func Keyword(text string, tail func(b byte) bool) *Expression {
	return &Expression{Kind: KindKeyword, Text: text, Pred: tail}
}

// End matches only at end of input (after trivia).
func End() *Expression {
	return &Expression{Kind: KindEnd}
}
