package jsoncompare

import (
	"fmt"
	"log/slog"
)

// Comparator compares expected and actual values, recording every difference
// into result. prefix is the path of the values being compared. Comparators
// hold only fixed configuration, so one comparator may be shared by
// concurrent comparisons as long as each uses its own Result
type Comparator interface {
	CompareValues(prefix string, expected, actual Value, result *Result)
	CompareObjects(prefix string, expected, actual *Object, result *Result)
	CompareArrays(prefix string, expected, actual *Array, result *Result)
}

// ComparatorOption adjusts comparator construction
type ComparatorOption func(cfg *comparatorConfig)

type comparatorConfig struct {
	logger *slog.Logger
}

// WithLogger sets a logger that records array strategy decisions at debug
// level. comparators are silent by default
func WithLogger(logger *slog.Logger) ComparatorOption {
	return func(cfg *comparatorConfig) {
		cfg.logger = logger
	}
}

// DefaultComparator compares values according to a Mode
type DefaultComparator struct {
	mode   Mode
	logger *slog.Logger
	// self is the comparator nested values are handed back to. it's the
	// DefaultComparator itself unless another comparator embeds this one
	self Comparator
}

var _ Comparator = (*DefaultComparator)(nil)

// NewDefaultComparator creates a comparator for mode
func NewDefaultComparator(mode Mode, opts ...ComparatorOption) *DefaultComparator {
	return newDefaultComparator(mode, nil, opts)
}

// newDefaultComparator builds a DefaultComparator that recurses through self.
// a nil self recurses through the DefaultComparator
func newDefaultComparator(mode Mode, self Comparator, opts []ComparatorOption) *DefaultComparator {
	cfg := &comparatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	d := &DefaultComparator{mode: mode, logger: cfg.logger}
	d.self = self
	if d.self == nil {
		d.self = d
	}
	return d
}

// Mode returns the comparator's mode
func (d *DefaultComparator) Mode() Mode { return d.mode }

// CompareObjects checks every expected key against actual, then, unless the
// mode is extensible, reports actual keys expected doesn't have
func (d *DefaultComparator) CompareObjects(prefix string, expected, actual *Object, result *Result) {
	for _, key := range expected.keys {
		path := fieldPath(prefix, key)
		expectedValue := expected.fields[key]
		actualValue, ok := actual.fields[key]
		if !ok {
			result.AddMissing(path, expectedValue)
			continue
		}
		d.self.CompareValues(path, expectedValue, actualValue, result)
	}

	if !d.mode.extensible {
		for _, key := range actual.keys {
			if !expected.Has(key) {
				result.AddUnexpected(fieldPath(prefix, key), actual.fields[key])
			}
		}
	}
}

// CompareValues compares two values of any kind
func (d *DefaultComparator) CompareValues(prefix string, expected, actual Value, result *Result) {
	if expected == nil {
		expected = Null{}
	}
	if actual == nil {
		actual = Null{}
	}

	_, expectedNull := expected.(Null)
	_, actualNull := actual.(Null)
	switch {
	case expectedNull && actualNull:
		return
	case expectedNull || actualNull:
		result.AddMismatch(prefix, expected, actual)
		return
	}

	switch e := expected.(type) {
	case *Object:
		if a, ok := actual.(*Object); ok {
			d.self.CompareObjects(prefix, e, a, result)
			return
		}
	case *Array:
		if a, ok := actual.(*Array); ok {
			d.self.CompareArrays(prefix, e, a, result)
			return
		}
	case Bool, Number, String:
		if scalarEqual(e, actual) {
			return
		}
	default:
		panic(fmt.Sprintf("unexpected value type: %T", expected))
	}
	result.AddMismatch(prefix, expected, actual)
}

// CompareArrays requires equal lengths, then picks a strategy:
//   1. strict order: elements compare by position
//   2. all expected elements are scalars: compare as multisets
//   3. all expected elements are objects: pair elements by a unique key field
//   4. otherwise: match each expected element against any unused actual one
func (d *DefaultComparator) CompareArrays(prefix string, expected, actual *Array, result *Result) {
	if expected.Len() != actual.Len() {
		result.AddFailure(arrayPath(prefix), fmt.Sprintf("Expected %d values but got %d", expected.Len(), actual.Len()))
		return
	}
	if expected.Len() == 0 {
		return
	}

	switch {
	case d.mode.strictOrder:
		d.debug("comparing array by position", prefix)
		d.CompareArrayByPosition(prefix, expected, actual, result)
	case allScalars(expected):
		d.debug("comparing array as multiset", prefix)
		d.CompareArrayOfScalars(prefix, expected, actual, result)
	case allObjects(expected):
		d.debug("comparing array of objects", prefix)
		d.CompareArrayOfObjects(prefix, expected, actual, result)
	default:
		d.debug("comparing array exhaustively", prefix)
		d.CompareArrayExhaustive(prefix, expected, actual, result)
	}
}

func (d *DefaultComparator) debug(msg, path string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Debug(msg, append([]any{slog.String("path", path)}, args...)...)
}
