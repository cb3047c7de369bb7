package jsoncompare

import (
	"log/slog"

	"github.com/pkg/errors"
)

// CustomComparator is a DefaultComparator with ValueMatchers bound to paths.
// Before comparing two values it looks for the first customization, in
// registration order, that applies to the path. If one applies its matcher
// decides the comparison, otherwise the default rules do
type CustomComparator struct {
	*DefaultComparator
	customizations []Customization
}

var _ Comparator = (*CustomComparator)(nil)

// NewCustomComparator creates a comparator for mode with customizations
func NewCustomComparator(mode Mode, customizations []Customization, opts ...ComparatorOption) *CustomComparator {
	c := &CustomComparator{
		customizations: append([]Customization(nil), customizations...),
	}
	c.DefaultComparator = newDefaultComparator(mode, c, opts)
	return c
}

// Customizations returns the registered customizations in order
func (c *CustomComparator) Customizations() []Customization {
	return append([]Customization(nil), c.customizations...)
}

// CompareValues applies the first customization matching prefix, falling
// back to the default comparison
func (c *CustomComparator) CompareValues(prefix string, expected, actual Value, result *Result) {
	cust, ok := c.customization(prefix)
	if !ok {
		c.DefaultComparator.CompareValues(prefix, expected, actual, result)
		return
	}
	c.debug("applying customization", prefix, slog.String("pattern", cust.pattern))

	if expected == nil {
		expected = Null{}
	}
	if actual == nil {
		actual = Null{}
	}

	res, err := cust.matcher.Match(prefix, actual, expected, result)
	if err != nil {
		var me *MatchError
		if errors.As(err, &me) {
			result.AddFailure(prefix, me.Error())
			return
		}
		result.AddFailure(prefix, err.Error())
		return
	}
	if res == NotMatched {
		result.AddMismatch(prefix, expected, actual)
	}
}

func (c *CustomComparator) customization(path string) (Customization, bool) {
	for _, cust := range c.customizations {
		if cust.AppliesTo(path) {
			return cust, true
		}
	}
	return Customization{}, false
}
