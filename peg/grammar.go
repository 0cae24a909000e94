package peg

import "fmt"

// SkipFunc advances pos past trivia (whitespace, comments) and returns the
// new position. It is applied before terminals and rule entries, never inside
// a Token, Literal, or CharClass span.
type SkipFunc func(input string, pos int) int

// Option configures a Grammar at construction time.
type Option func(*Grammar)

// WithSkipper installs the trivia skipper applied between matches.
func WithSkipper(skip SkipFunc) Option {
	return func(g *Grammar) {
		g.skip = skip
	}
}

// Grammar is a fixed set of named expressions. It is immutable after New
// returns and safe for concurrent Match calls: every call owns its own state
// and result values.
type Grammar struct {
	rules map[string]*Expression
	start string
	skip  SkipFunc
}

// New builds a grammar starting at the named rule. It panics if the start
// rule or any referenced rule is undefined; grammars are fixed program data,
// so an unresolved reference is a programming error, not an input error.
func New(start string, rules map[string]*Expression, opts ...Option) *Grammar {
	g := &Grammar{
		rules: rules,
		start: start,
		skip:  func(input string, pos int) int { return pos },
	}
	for _, opt := range opts {
		opt(g)
	}
	if _, ok := rules[start]; !ok {
		panic(fmt.Sprintf("peg: undefined start rule %q", start))
	}
	for name, expr := range rules {
		g.checkRefs(name, expr)
	}
	return g
}

func (g *Grammar) checkRefs(owner string, expr *Expression) {
	if expr == nil {
		return
	}
	if expr.Kind == KindRuleRef {
		if _, ok := g.rules[expr.Name]; !ok {
			panic(fmt.Sprintf("peg: rule %q references undefined rule %q", owner, expr.Name))
		}
	}
	for _, child := range expr.Children {
		g.checkRefs(owner, child)
	}
	g.checkRefs(owner, expr.Inner)
}

type state struct {
	input  string
	pos    int
	atomic bool // inside a Token: trivia skipping disabled
}

// Match runs the start rule against input from offset zero. The result's End
// reports how far the match consumed; grammars that must cover the whole
// input end with End().
func (g *Grammar) Match(input string) Result {
	return g.MatchAt(input, 0)
}

// MatchAt runs the start rule from the given offset.
func (g *Grammar) MatchAt(input string, pos int) Result {
	return g.match(Ref(g.start), state{input: input, pos: pos})
}

func (g *Grammar) skipFrom(s state) int {
	if s.atomic {
		return s.pos
	}
	return g.skip(s.input, s.pos)
}

func (g *Grammar) match(expr *Expression, s state) Result {
	switch expr.Kind {
	case KindLiteral:
		return g.matchLiteral(expr, s)
	case KindSequence:
		return g.matchSequence(expr, s)
	case KindChoice:
		return g.matchChoice(expr, s)
	case KindRepetition:
		return g.matchRepetition(expr, s)
	case KindCharClass:
		return g.matchClass(expr, s)
	case KindRuleRef:
		return g.matchRef(expr, s)
	case KindToken:
		return g.matchToken(expr, s)
	case KindKeyword:
		return g.matchKeyword(expr, s)
	case KindEnd:
		return g.matchEnd(s)
	}
	panic(fmt.Sprintf("peg: unknown expression kind %v", expr.Kind))
}

func (g *Grammar) matchLiteral(expr *Expression, s state) Result {
	pos := g.skipFrom(s)
	end := pos + len(expr.Text)
	if end <= len(s.input) && s.input[pos:end] == expr.Text {
		return Result{OK: true, Start: pos, End: end, Text: expr.Text}
	}
	return failure(pos, fmt.Sprintf("%q", expr.Text))
}

func (g *Grammar) matchKeyword(expr *Expression, s state) Result {
	pos := g.skipFrom(s)
	end := pos + len(expr.Text)
	if end <= len(s.input) && s.input[pos:end] == expr.Text {
		if end >= len(s.input) || !expr.Pred(s.input[end]) {
			return Result{OK: true, Start: pos, End: end, Text: expr.Text}
		}
	}
	return failure(pos, fmt.Sprintf("%q", expr.Text))
}

func (g *Grammar) matchClass(expr *Expression, s state) Result {
	pos := g.skipFrom(s)
	if pos < len(s.input) && expr.Pred(s.input[pos]) {
		return Result{OK: true, Start: pos, End: pos + 1, Text: s.input[pos : pos+1]}
	}
	return failure(pos, expr.Name)
}

func (g *Grammar) matchSequence(expr *Expression, s state) Result {
	start := s.pos
	var children []Result
	var deepest *Failure
	for _, child := range expr.Children {
		r := g.match(child, s)
		deepest = merge(deepest, r.Failure)
		if !r.OK {
			// The whole sequence fails; the caller's cursor is
			// untouched because state was passed by value.
			return Result{Failure: deepest}
		}
		children = append(children, r)
		s.pos = r.End
	}
	if len(children) > 0 {
		start = children[0].Start
	}
	return Result{
		OK:       true,
		Start:    start,
		End:      s.pos,
		Text:     s.input[start:s.pos],
		Children: children,
		Failure:  deepest,
	}
}

func (g *Grammar) matchChoice(expr *Expression, s state) Result {
	var deepest *Failure
	for _, alt := range expr.Children {
		r := g.match(alt, s)
		if r.OK {
			r.Failure = merge(deepest, r.Failure)
			return r
		}
		deepest = merge(deepest, r.Failure)
	}
	return Result{Failure: deepest}
}

func (g *Grammar) matchRepetition(expr *Expression, s state) Result {
	start := s.pos
	var children []Result
	var deepest *Failure
	for expr.Max < 0 || len(children) < expr.Max {
		r := g.match(expr.Inner, s)
		deepest = merge(deepest, r.Failure)
		if !r.OK {
			break
		}
		if r.End == s.pos {
			// Inner matched without consuming input; looping again
			// would never terminate.
			break
		}
		children = append(children, r)
		s.pos = r.End
	}
	if len(children) < expr.Min {
		return Result{Failure: deepest}
	}
	if len(children) > 0 {
		start = children[0].Start
	}
	return Result{
		OK:       true,
		Start:    start,
		End:      s.pos,
		Text:     s.input[start:s.pos],
		Children: children,
		Failure:  deepest,
	}
}

func (g *Grammar) matchRef(expr *Expression, s state) Result {
	entry := g.skipFrom(s)
	r := g.match(g.rules[expr.Name], s)
	if r.OK {
		r.Rule = expr.Name
		return r
	}
	// When a lexical rule fails without consuming anything, naming the rule
	// is a better diagnostic than its character classes.
	if r.Failure != nil && r.Failure.Pos <= entry && g.rules[expr.Name].Kind == KindToken {
		r.Failure = &Failure{Pos: r.Failure.Pos, Expected: []string{expr.Name}}
	}
	return r
}

func (g *Grammar) matchToken(expr *Expression, s state) Result {
	s.pos = g.skipFrom(s)
	s.atomic = true
	r := g.match(expr.Inner, s)
	if !r.OK {
		return r
	}
	// Tokens are atomic lexemes: flatten the interior structure.
	return Result{OK: true, Start: r.Start, End: r.End, Text: s.input[r.Start:r.End], Failure: r.Failure}
}

func (g *Grammar) matchEnd(s state) Result {
	pos := g.skipFrom(s)
	if pos >= len(s.input) {
		return Result{OK: true, Start: pos, End: pos}
	}
	return failure(pos, "end of input")
}
