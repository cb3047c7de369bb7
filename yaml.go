package jsoncompare

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ParseYAML reads the first document of a YAML stream into a Value, keeping
// mapping key order. Mapping keys must be scalars. An empty stream is null
func ParseYAML(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return Null{}, nil
		}
		return nil, &ParseError{Err: err}
	}
	v, err := fromYAMLNode(&root)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return v, nil
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null{}, nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, errors.Errorf("line %d: unresolved alias", n.Line)
		}
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, errors.Errorf("line %d: mapping has an odd number of nodes", n.Line)
		}
		obj := &Object{fields: make(map[string]Value, len(n.Content)/2)}
		for i := 0; i < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, errors.Errorf("line %d: mapping key must be a scalar", k.Line)
			}
			val, err := fromYAMLNode(v)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k.Value)
			}
			obj.set(k.Value, val)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := &Array{elems: make([]Value, 0, len(n.Content))}
		for i, c := range n.Content {
			val, err := fromYAMLNode(c)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			arr.elems = append(arr.elems, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return nil, errors.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrapf(err, "line %d", n.Line)
		}
		return NewNumber(f), nil
	default:
		return String(n.Value), nil
	}
}
