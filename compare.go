package jsoncompare

import (
	"fmt"
	"log/slog"
	"strings"
)

// CompareConfig holds the settings for a comparison
type CompareConfig struct {
	// Mode selects the default comparison rules. Defaults to Strict
	Mode Mode
	// Comparator, when set, is used in place of one built from Mode and
	// Customizations
	Comparator Comparator
	// Customizations bind ValueMatchers to paths
	Customizations []Customization
	// Provide a non-nil stats pointer & Compare will populate it with counts
	// from the comparison
	Stats *Stats
	// Logger receives debug output. nil is silent
	Logger *slog.Logger
}

// CompareOption adjusts a CompareConfig. zero or more CompareOptions can be
// passed to the Compare functions
type CompareOption func(cfg *CompareConfig)

// OptionMode sets the comparison mode
func OptionMode(mode Mode) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Mode = mode
	}
}

// OptionComparator sets the comparator, overriding mode and customizations
func OptionComparator(c Comparator) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Comparator = c
	}
}

// OptionCustomizations adds path customizations, after any already set
func OptionCustomizations(cs ...Customization) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Customizations = append(cfg.Customizations, cs...)
	}
}

// OptionSetStats will set the passed-in stats pointer when a comparison runs
func OptionSetStats(st *Stats) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Stats = st
	}
}

// OptionLogger sets a logger for debug output
func OptionLogger(logger *slog.Logger) CompareOption {
	return func(cfg *CompareConfig) {
		cfg.Logger = logger
	}
}

func newConfig(opts []CompareOption) *CompareConfig {
	cfg := &CompareConfig{Mode: Strict}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// comparator returns the configured comparator, or builds one
func (cfg *CompareConfig) comparator() Comparator {
	if cfg.Comparator != nil {
		return cfg.Comparator
	}
	opts := []ComparatorOption{WithLogger(cfg.Logger)}
	if len(cfg.Customizations) > 0 {
		return NewCustomComparator(cfg.Mode, cfg.Customizations, opts...)
	}
	return NewDefaultComparator(cfg.Mode, opts...)
}

// CompareJSON parses two JSON documents and compares them. Documents that
// don't start with '{' or '[' are literals, compared by their text. An object
// compared with an array, or either with a literal, is a single Failure.
// A document that fails to parse returns a *ParseError and no result
func CompareJSON(expected, actual string, opts ...CompareOption) (*Result, error) {
	cfg := newConfig(opts)
	expShape, actShape := ShapeOf(expected), ShapeOf(actual)

	var expValue, actValue Value
	var err error
	if expShape != ShapeLiteral {
		if expValue, err = parseInput("expected", expected); err != nil {
			return nil, err
		}
	}
	if actShape != ShapeLiteral {
		if actValue, err = parseInput("actual", actual); err != nil {
			return nil, err
		}
	}

	result := NewResult()
	switch {
	case expShape == ShapeLiteral && actShape == ShapeLiteral:
		exp, act := strings.TrimSpace(expected), strings.TrimSpace(actual)
		if exp != act {
			result.AddFailure("", fmt.Sprintf("Expected: %s got: %s", exp, act))
		}
	case expShape != actShape:
		result.AddFailure("", shapeMismatch(expShape, actShape))
	default:
		compareTrees(cfg.comparator(), expValue, actValue, result)
	}

	cfg.finish(expValue, actValue, result)
	return result, nil
}

// Compare compares two value trees. Two objects or two arrays are compared in
// full, two scalars by value. Any other pairing is a single Failure.
//
// CompareJSON compares top-level literals by their text instead, so "1" and
// "1.0" differ there while NewNumber(1) and a parsed 1.0 are equal here
func Compare(expected, actual Value, opts ...CompareOption) *Result {
	cfg := newConfig(opts)
	result := NewResult()
	if expected == nil {
		expected = Null{}
	}
	if actual == nil {
		actual = Null{}
	}

	expShape, actShape := shapeOfValue(expected), shapeOfValue(actual)
	switch {
	case expShape == ShapeLiteral && actShape == ShapeLiteral:
		if !scalarEqual(expected, actual) {
			result.AddFailure("", fmt.Sprintf("Expected: %s got: %s", describe(expected), describe(actual)))
		}
	case expShape != actShape:
		result.AddFailure("", shapeMismatch(expShape, actShape))
	default:
		compareTrees(cfg.comparator(), expected, actual, result)
	}

	cfg.finish(expected, actual, result)
	return result
}

// CompareYAML parses two YAML documents and compares them like Compare
func CompareYAML(expected, actual []byte, opts ...CompareOption) (*Result, error) {
	expValue, err := ParseYAML(expected)
	if err != nil {
		return nil, named("expected", err)
	}
	actValue, err := ParseYAML(actual)
	if err != nil {
		return nil, named("actual", err)
	}
	return Compare(expValue, actValue, opts...), nil
}

func compareTrees(c Comparator, expected, actual Value, result *Result) {
	switch e := expected.(type) {
	case *Object:
		c.CompareObjects("", e, actual.(*Object), result)
	case *Array:
		c.CompareArrays("", e, actual.(*Array), result)
	}
}

func (cfg *CompareConfig) finish(expected, actual Value, result *Result) {
	if cfg.Stats != nil {
		*cfg.Stats = Stats{}
		if expected != nil {
			cfg.Stats.Expected = CountNodes(expected)
		}
		if actual != nil {
			cfg.Stats.Actual = CountNodes(actual)
		}
		result.Tally(cfg.Stats)
	}
	if cfg.Logger != nil {
		cfg.Logger.Debug("comparison finished",
			slog.String("mode", cfg.Mode.String()),
			slog.Bool("failed", result.Failed()),
			slog.Int("entries", result.Len()))
	}
}

func shapeOfValue(v Value) Shape {
	switch v.(type) {
	case *Object:
		return ShapeObject
	case *Array:
		return ShapeArray
	default:
		return ShapeLiteral
	}
}

func shapeMismatch(expected, actual Shape) string {
	return fmt.Sprintf("Expected and actual must have the same shape: expected %s %s but got %s %s",
		article(expected), expected, article(actual), actual)
}

func article(s Shape) string {
	if s == ShapeObject || s == ShapeArray {
		return "an"
	}
	return "a"
}

func parseInput(name, text string) (Value, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, named(name, err)
	}
	return v, nil
}

func named(name string, err error) error {
	if pe, ok := err.(*ParseError); ok {
		return &ParseError{Input: name, Err: pe.Err}
	}
	return &ParseError{Input: name, Err: err}
}
