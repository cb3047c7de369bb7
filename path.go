package jsoncompare

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldPath appends an object key to a path. keys at the root are bare
func fieldPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// indexPath appends an array index to a path
func indexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

// keyedPath addresses an array element by the value of a unique field
func keyedPath(prefix, field string, key Value) string {
	return prefix + "[" + field + "=" + keyText(key) + "]"
}

// arrayPath addresses an array as a whole, for entries not tied to one element
func arrayPath(prefix string) string {
	return prefix + "[]"
}

// keyText renders a correlation key value without string quotes
func keyText(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return v.String()
}

// Lookup resolves a path of the form produced by a comparison, eg:
//   a.b[2].c
//   items[id=5].name
// against a value tree. An empty path returns the tree itself
func Lookup(tree Value, path string) (Value, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	elem := tree
	for i, seg := range segs {
		switch seg.kind {
		case segField:
			obj, ok := elem.(*Object)
			if !ok {
				return nil, fmt.Errorf("invalid path %q: %s is a %s, not an object", path, joinSegments(segs[:i]), elem.Kind())
			}
			v, ok := obj.Get(seg.name)
			if !ok {
				return nil, fmt.Errorf("invalid path %q: no key %q", path, seg.name)
			}
			elem = v
		case segIndex:
			arr, ok := elem.(*Array)
			if !ok {
				return nil, fmt.Errorf("invalid path %q: %s is a %s, not an array", path, joinSegments(segs[:i]), elem.Kind())
			}
			if seg.index < 0 || seg.index >= arr.Len() {
				return nil, fmt.Errorf("array index %d exceeds %d at path %s", seg.index, arr.Len(), path)
			}
			elem = arr.At(seg.index)
		case segKeyed:
			arr, ok := elem.(*Array)
			if !ok {
				return nil, fmt.Errorf("invalid path %q: %s is a %s, not an array", path, joinSegments(segs[:i]), elem.Kind())
			}
			found := false
			for _, el := range arr.elems {
				obj, ok := el.(*Object)
				if !ok {
					continue
				}
				if v, ok := obj.Get(seg.name); ok && isScalar(v) && keyText(v) == seg.key {
					elem = el
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("invalid path %q: no element with %s=%s", path, seg.name, seg.key)
			}
		}
	}
	return elem, nil
}

type segmentKind uint8

const (
	segField segmentKind = iota
	segIndex
	segKeyed
)

type segment struct {
	kind  segmentKind
	name  string
	index int
	key   string
}

func (s segment) String() string {
	switch s.kind {
	case segIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case segKeyed:
		return "[" + s.name + "=" + s.key + "]"
	default:
		return s.name
	}
}

func joinSegments(segs []segment) string {
	p := ""
	for _, s := range segs {
		if s.kind == segField {
			p = fieldPath(p, s.name)
		} else {
			p += s.String()
		}
	}
	if p == "" {
		return "root"
	}
	return p
}

func splitPath(path string) ([]segment, error) {
	var segs []segment
	for len(path) > 0 {
		switch path[0] {
		case '.':
			path = path[1:]
			if path == "" || path[0] == '.' || path[0] == '[' {
				return nil, fmt.Errorf("invalid path: empty key")
			}
		case '[':
			end := strings.IndexByte(path, ']')
			if end < 0 {
				return nil, fmt.Errorf("invalid path: unclosed '['")
			}
			inner := path[1:end]
			path = path[end+1:]
			if eq := strings.IndexByte(inner, '='); eq >= 0 {
				segs = append(segs, segment{kind: segKeyed, name: inner[:eq], key: inner[eq+1:]})
				continue
			}
			i, err := strconv.Atoi(inner)
			if err != nil {
				return nil, fmt.Errorf("invalid index value: %s", inner)
			}
			segs = append(segs, segment{kind: segIndex, index: i})
			continue
		}

		end := strings.IndexAny(path, ".[")
		if end < 0 {
			end = len(path)
		}
		segs = append(segs, segment{kind: segField, name: path[:end]})
		path = path[end:]
	}
	return segs, nil
}
