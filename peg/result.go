package peg

import (
	"fmt"
	"strings"
)

// Position is a human-readable location in the input, derived from a byte
// offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionAt computes the line and column for offset. Lines and columns are
// 1-based; offsets past the end of input clamp to the final position.
func PositionAt(input string, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	line, column := 1, 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return Position{Offset: offset, Line: line, Column: column}
}

// Failure records the furthest offset a match attempt reached and the set of
// alternatives that were expected there.
type Failure struct {
	Pos      int
	Expected []string
}

func (f *Failure) String() string {
	return fmt.Sprintf("expected %s", strings.Join(f.Expected, " or "))
}

// merge combines two failures, keeping the one that reached further. At equal
// offsets the expected sets are unioned, preserving first-seen order.
func merge(a, b *Failure) *Failure {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Pos > b.Pos:
		return a
	case b.Pos > a.Pos:
		return b
	}
	seen := make(map[string]bool, len(a.Expected))
	expected := make([]string, 0, len(a.Expected)+len(b.Expected))
	for _, e := range a.Expected {
		if !seen[e] {
			seen[e] = true
			expected = append(expected, e)
		}
	}
	for _, e := range b.Expected {
		if !seen[e] {
			seen[e] = true
			expected = append(expected, e)
		}
	}
	return &Failure{Pos: a.Pos, Expected: expected}
}

// Result is the outcome of matching one expression. A failed result leaves
// the caller's cursor untouched; the consumed span is only meaningful when OK
// is true. Failure is populated even on success with the furthest failure
// observed while producing the result, which is what stopped a greedy
// repetition or made an ordered choice fall through.
type Result struct {
	OK       bool
	Rule     string // rule name when produced through a RuleRef
	Start    int
	End      int
	Text     string
	Children []Result
	Failure  *Failure
}

// Child returns the i-th child result, or a zero Result when out of range.
func (r Result) Child(i int) Result {
	if i < 0 || i >= len(r.Children) {
		return Result{}
	}
	return r.Children[i]
}

// FirstOfRule returns the first child produced by the named rule.
func (r Result) FirstOfRule(name string) (Result, bool) {
	for _, child := range r.Children {
		if child.Rule == name {
			return child, true
		}
	}
	return Result{}, false
}

func (r Result) String() string {
	var sb strings.Builder
	r.stringIndent(&sb, 0)
	return sb.String()
}

func (r Result) stringIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	if !r.OK {
		sb.WriteString("Error")
		if r.Failure != nil {
			fmt.Fprintf(sb, " at %d: %s", r.Failure.Pos, r.Failure)
		}
		sb.WriteString("\n")
		return
	}
	if r.Rule != "" {
		sb.WriteString(r.Rule)
	} else {
		sb.WriteString("Match")
	}
	if len(r.Children) == 0 && r.Text != "" {
		fmt.Fprintf(sb, " %q", r.Text)
	}
	sb.WriteString("\n")
	for _, child := range r.Children {
		child.stringIndent(sb, indent+1)
	}
}

func failure(pos int, expected ...string) Result {
	return Result{Failure: &Failure{Pos: pos, Expected: expected}}
}
