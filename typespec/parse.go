package typespec

import "github.com/dhamidi/tsp/peg"

// Parse parses TypeSpec source into a Document. It returns *SyntaxError when
// the grammar does not match, *UnsupportedConstructError when the failure
// sits at a construct outside the supported subset, and *SemanticError for
// structurally valid input with invalid meaning. No partial document is ever
// returned alongside an error.
func Parse(src string) (*Document, error) {
	result := grammar.Match(src)
	if !result.OK {
		return nil, matchError(src, result.Failure)
	}
	return buildDocument(result)
}

func matchError(src string, f *peg.Failure) error {
	if f == nil {
		return &SyntaxError{Pos: peg.PositionAt(src, len(src))}
	}
	if word := wordAt(src, f.Pos); unsupportedKeywords[word] {
		return &UnsupportedConstructError{
			Pos:       peg.PositionAt(src, f.Pos),
			Construct: word,
		}
	}
	return &SyntaxError{
		Pos:      peg.PositionAt(src, f.Pos),
		Expected: f.Expected,
	}
}

func wordAt(src string, pos int) string {
	if pos >= len(src) || !isIdentStart(src[pos]) {
		return ""
	}
	end := pos
	for end < len(src) && isIdentTail(src[end]) {
		end++
	}
	return src[pos:end]
}
