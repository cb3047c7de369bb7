package jsoncompare

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromInterface builds a Value from go types created by unmarshaling JSON:
//   map[string]interface{}
//   []interface{}
// and the scalar types:
//   string, float64, int, int64, json.Number, bool, nil
// map keys are sorted so the resulting object has a deterministic key order
func FromInterface(v interface{}) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case float64:
		return NewNumber(x), nil
	case float32:
		return NewNumber(float64(x)), nil
	case int:
		return Number{f: float64(x), lit: strconv.Itoa(x)}, nil
	case int64:
		return Number{f: float64(x), lit: strconv.FormatInt(x, 10)}, nil
	case json.Number:
		return NumberFromLiteral(string(x))
	case string:
		return String(x), nil
	case []interface{}:
		arr := &Array{elems: make([]Value, len(x))}
		for i, el := range x {
			child, err := FromInterface(el)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr.elems[i] = child
		}
		return arr, nil
	case map[string]interface{}:
		// gotta sort keys for a stable order
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)

		obj := &Object{keys: names, fields: make(map[string]Value, len(x))}
		for _, name := range names {
			child, err := FromInterface(x[name])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			obj.fields[name] = child
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected type: %T", v)
	}
}

// MustFromInterface is FromInterface that panics on error, intended for
// literals in tests and examples
func MustFromInterface(v interface{}) Value {
	val, err := FromInterface(v)
	if err != nil {
		panic(err)
	}
	return val
}

// CountNodes returns the number of values in a tree, including the root
func CountNodes(v Value) int {
	n := 0
	walk(v, "", func(string, Value) bool {
		n++
		return true
	})
	return n
}

// Paths lists the path of every value in a tree in document order. The root
// value has the empty path
func Paths(v Value) []string {
	var paths []string
	walk(v, "", func(p string, _ Value) bool {
		paths = append(paths, p)
		return true
	})
	return paths
}

// walk visits a tree in top-down (prefix) order, handing fn the rendered path
// of each value. returning false from fn skips the value's children
func walk(v Value, path string, fn func(path string, v Value) bool) {
	if !fn(path, v) {
		return
	}
	switch x := v.(type) {
	case *Array:
		for i, el := range x.elems {
			walk(el, indexPath(path, i), fn)
		}
	case *Object:
		for _, k := range x.keys {
			walk(x.fields[k], fieldPath(path, k), fn)
		}
	}
}
