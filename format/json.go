package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/tsp/typespec"
)

// JSONEncoder dumps the document tree as JSON for tooling.
type JSONEncoder struct {
	w   io.Writer
	doc *typespec.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *typespec.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(e.doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
