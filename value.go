package jsoncompare

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind enumerates the shapes a Value can take
type Kind uint8

const (
	// KindNull is the JSON null literal
	KindNull Kind = iota
	// KindBool is true or false
	KindBool
	// KindNumber is any JSON number, compared as a float64
	KindNumber
	// KindString is a JSON string
	KindString
	// KindArray is an ordered list of values
	KindArray
	// KindObject is an ordered set of unique keys mapped to values
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a parsed JSON value. The set of implementations is closed: Null,
// Bool, Number, String, *Array and *Object. Values are never modified once
// built, so a single tree can be shared by any number of comparisons
type Value interface {
	Kind() Kind
	// String renders the value as compact JSON text
	String() string
	value()
}

// Null is the JSON null value
type Null struct{}

// Bool is a JSON boolean
type Bool bool

// Number is a JSON number. The literal text is kept for display, equality is
// always float64 equality
type Number struct {
	f   float64
	lit string
}

// String is a JSON string
type String string

// Array is an ordered list of values
type Array struct {
	elems []Value
}

// Object is an ordered mapping of unique string keys to values
type Object struct {
	keys   []string
	fields map[string]Value
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (*Array) Kind() Kind  { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (Null) value()    {}
func (Bool) value()    {}
func (Number) value()  {}
func (String) value()  {}
func (*Array) value()  {}
func (*Object) value() {}

// NewNumber creates a Number from a float
func NewNumber(f float64) Number {
	return Number{f: f}
}

// NumberFromLiteral creates a Number from JSON number text
func NumberFromLiteral(lit string) (Number, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number literal %q", lit)
	}
	return Number{f: f, lit: lit}, nil
}

// Float64 returns the numeric value
func (n Number) Float64() float64 { return n.f }

// NewArray creates an array holding elems
func NewArray(elems ...Value) *Array {
	return &Array{elems: elems}
}

// Len is the number of elements
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i
func (a *Array) At(i int) Value { return a.elems[i] }

// Elements returns a copy of the element list
func (a *Array) Elements() []Value {
	cp := make([]Value, len(a.elems))
	copy(cp, a.elems)
	return cp
}

// Field is a single key/value pair, used to build objects in order
type Field struct {
	Key   string
	Value Value
}

// NewObject creates an object from fields, preserving their order. A repeated
// key keeps its first position and its last value
func NewObject(fields ...Field) *Object {
	o := &Object{fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		o.set(f.Key, f.Value)
	}
	return o
}

func (o *Object) set(key string, v Value) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
}

// Len is the number of keys
func (o *Object) Len() int { return len(o.keys) }

// Keys returns object keys in document order
func (o *Object) Keys() []string {
	cp := make([]string, len(o.keys))
	copy(cp, o.keys)
	return cp
}

// Get returns the value for key, and whether the key exists
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

func (Null) String() string { return "null" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (n Number) String() string {
	if n.lit != "" {
		return n.lit
	}
	return strconv.FormatFloat(n.f, 'f', -1, 64)
}

func (s String) String() string { return quote(string(s)) }

func (a *Array) String() string {
	b := &strings.Builder{}
	writeValue(b, a)
	return b.String()
}

func (o *Object) String() string {
	b := &strings.Builder{}
	writeValue(b, o)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch x := v.(type) {
	case *Array:
		b.WriteByte('[')
		for i, el := range x.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			writeValue(b, el)
		}
		b.WriteByte(']')
	case *Object:
		b.WriteByte('{')
		for i, k := range x.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(k))
			b.WriteByte(':')
			writeValue(b, x.fields[k])
		}
		b.WriteByte('}')
	case nil:
		b.WriteString("null")
	default:
		b.WriteString(v.String())
	}
}

func quote(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler for every value kind
func (n Null) MarshalJSON() ([]byte, error)    { return []byte(n.String()), nil }
func (b Bool) MarshalJSON() ([]byte, error)    { return []byte(b.String()), nil }
func (n Number) MarshalJSON() ([]byte, error)  { return []byte(n.String()), nil }
func (s String) MarshalJSON() ([]byte, error)  { return []byte(s.String()), nil }
func (a *Array) MarshalJSON() ([]byte, error)  { return []byte(a.String()), nil }
func (o *Object) MarshalJSON() ([]byte, error) { return []byte(o.String()), nil }

// isScalar reports whether v is neither an array nor an object
func isScalar(v Value) bool {
	switch v.(type) {
	case *Array, *Object:
		return false
	}
	return true
}

// scalarEqual compares two non-container values. Numbers compare as float64
func scalarEqual(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.f == y.f
	case String:
		y, ok := b.(String)
		return ok && x == y
	}
	return false
}

// scalarKey is a map key for a value under float64 equality, used to count
// occurrences of primitive array elements
func scalarKey(v Value) string {
	switch x := v.(type) {
	case Null:
		return "null"
	case Bool:
		return "b:" + x.String()
	case Number:
		f := x.f
		if f == 0 {
			// collapse -0 onto 0
			f = 0
		}
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	case String:
		return "s:" + string(x)
	case nil:
		return "null"
	default:
		return "v:" + v.String()
	}
}
