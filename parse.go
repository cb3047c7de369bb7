package jsoncompare

import (
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Shape is the syntactic form of a document, known from its first character
type Shape uint8

const (
	// ShapeLiteral is any top-level value that isn't an object or array: a
	// quoted string, number, boolean, null or bare word
	ShapeLiteral Shape = iota
	// ShapeObject is a document starting with '{'
	ShapeObject
	// ShapeArray is a document starting with '['
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	default:
		return "literal"
	}
}

// ShapeOf classifies text without parsing it
func ShapeOf(text string) Shape {
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return ShapeObject
	case strings.HasPrefix(trimmed, "["):
		return ShapeArray
	default:
		return ShapeLiteral
	}
}

// ParseError is returned when a document can't be parsed
type ParseError struct {
	// Input names the document, "expected" or "actual" when parsing for a
	// comparison
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "parsing JSON: " + e.Err.Error()
	}
	return "parsing " + e.Input + " JSON: " + e.Err.Error()
}

// Unwrap returns the underlying decoder error
func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a single JSON document into a Value. Object key order is kept.
// Malformed text and trailing data after the document are errors
func Parse(text string) (Value, error) {
	// the token stream doesn't check separators
	if !json.Valid([]byte(text)) {
		return nil, &ParseError{Err: errors.New("malformed JSON document")}
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	p := &parser{dec: dec}

	v, err := p.value()
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

// MustParse is Parse that panics on error
func MustParse(text string) Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	dec *json.Decoder
}

func (p *parser) value() (Value, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
		return nil, errors.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return String(t), nil
	case json.Number:
		n, err := NumberFromLiteral(string(t))
		if err != nil {
			return nil, err
		}
		return n, nil
	case float64:
		return NewNumber(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, errors.Errorf("unexpected token %v", tok)
}

func (p *parser) object() (*Object, error) {
	obj := &Object{fields: map[string]Value{}}
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("expected object key, got %v", tok)
		}
		v, err := p.value()
		if err != nil {
			return nil, errors.Wrapf(err, "reading value for key %q", key)
		}
		obj.set(key, v)
	}
	if err := p.closing('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *parser) array() (*Array, error) {
	arr := &Array{}
	for p.dec.More() {
		v, err := p.value()
		if err != nil {
			return nil, errors.Wrapf(err, "reading element %d", len(arr.elems))
		}
		arr.elems = append(arr.elems, v)
	}
	if err := p.closing(']'); err != nil {
		return nil, err
	}
	return arr, nil
}

func (p *parser) closing(delim json.Delim) error {
	tok, err := p.dec.Token()
	if err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != delim {
		return errors.Errorf("expected %q, got %v", rune(delim), tok)
	}
	return nil
}
