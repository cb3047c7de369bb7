package jsoncompare

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{`{"b":[1,"x",null,true],"a":{}}`, `{"b":[1,"x",null,true],"a":{}}`},
		{` { "z" : 1.50 , "y" : [ ] } `, `{"z":1.50,"y":[]}`},
		{`"quote \" inside"`, `"quote \" inside"`},
		{`-0`, `-0`},
		{`[[],[[]],{}]`, `[[],[[]],{}]`},
	}

	for i, c := range cases {
		v, err := Parse(c.in)
		if err != nil {
			t.Errorf("%d. unexpected error: %s", i, err)
			continue
		}
		if got := v.String(); got != c.out {
			t.Errorf("%d. want: %s got: %s", i, c.out, got)
		}
	}
}

func TestParseKeepsKeyOrder(t *testing.T) {
	obj := MustParse(`{"c":1,"a":2,"b":3}`).(*Object)
	if diff := cmp.Diff([]string{"c", "a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDuplicateKey(t *testing.T) {
	obj := MustParse(`{"a":1,"b":2,"a":3}`).(*Object)
	if diff := cmp.Diff([]string{"a", "b"}, obj.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	v, _ := obj.Get("a")
	if !scalarEqual(v, NewNumber(3)) {
		t.Errorf("duplicate key should keep the last value, got %s", v)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		``,
		`{"a":}`,
		`{"a":1`,
		`[1,2`,
		`{"a":1} {"b":2}`,
		`[1] x`,
		`{"a" 1}`,
		`[1 2]`,
		`{"a":1 "b":2}`,
		`[1,,2]`,
		`{,"a":1}`,
		`[1,]`,
		`{"a":1,}`,
	}

	for i, c := range cases {
		_, err := Parse(c)
		if err == nil {
			t.Errorf("%d. expected error parsing %q", i, c)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%d. expected a *ParseError, got %T", i, err)
		}
	}
}

func TestShapeOf(t *testing.T) {
	cases := []struct {
		in    string
		shape Shape
	}{
		{`{}`, ShapeObject},
		{"\n\t [1]", ShapeArray},
		{`"x"`, ShapeLiteral},
		{`12`, ShapeLiteral},
		{`true`, ShapeLiteral},
		{`bare`, ShapeLiteral},
	}
	for _, c := range cases {
		if got := ShapeOf(c.in); got != c.shape {
			t.Errorf("ShapeOf(%q) = %s, want %s", c.in, got, c.shape)
		}
	}
}

func TestFromInterface(t *testing.T) {
	var decoded interface{}
	if err := json.Unmarshal([]byte(`{"b":[1,"two",false,null],"a":{"c":1.5}}`), &decoded); err != nil {
		t.Fatal(err)
	}

	v, err := FromInterface(decoded)
	if err != nil {
		t.Fatal(err)
	}
	// map keys sort
	if got, want := v.String(), `{"a":{"c":1.5},"b":[1,"two",false,null]}`; got != want {
		t.Errorf("want: %s got: %s", want, got)
	}

	n, err := FromInterface(json.Number("12.50"))
	if err != nil {
		t.Fatal(err)
	}
	if n.String() != "12.50" {
		t.Errorf("json.Number should keep its text, got %s", n)
	}

	if _, err := FromInterface(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestCountNodesAndPaths(t *testing.T) {
	v := MustParse(`{"a":[1,{"b":null}],"c":"d"}`)
	if got := CountNodes(v); got != 6 {
		t.Errorf("CountNodes = %d, want 6", got)
	}
	want := []string{"", "a", "a[0]", "a[1]", "a[1].b", "c"}
	if diff := cmp.Diff(want, Paths(v)); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestScalarEqual(t *testing.T) {
	cases := []struct {
		a, b  Value
		equal bool
	}{
		{Null{}, Null{}, true},
		{Bool(true), Bool(true), true},
		{Bool(true), Bool(false), false},
		{NewNumber(1), MustParse(`1.0`), true},
		{NewNumber(0), MustParse(`-0`), true},
		{String("1"), NewNumber(1), false},
		{String("a"), String("a"), true},
		{Null{}, Bool(false), false},
	}
	for i, c := range cases {
		if got := scalarEqual(c.a, c.b); got != c.equal {
			t.Errorf("%d. scalarEqual(%s, %s) = %t, want %t", i, c.a, c.b, got, c.equal)
		}
		if c.equal && scalarKey(c.a) != scalarKey(c.b) {
			t.Errorf("%d. equal values should share a key: %q != %q", i, scalarKey(c.a), scalarKey(c.b))
		}
	}
}
