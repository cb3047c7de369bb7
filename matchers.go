package jsoncompare

import (
	"fmt"
	"math"
	"regexp"
)

// ArrayValueMatcher checks the elements of an actual array against the
// elements of an expected array, cycling through the expected elements. With
// a single expected element every actual element in range must match it; with
// N expected elements actual elements are checked against them in turn.
// A non-array expected value acts as a one element array.
//
// Elements are compared with the matcher's comparator, so differences are
// reported at each element's own path
type ArrayValueMatcher struct {
	comparator Comparator
	from, to   int
}

var _ ValueMatcher = (*ArrayValueMatcher)(nil)

// NewArrayValueMatcher checks every element of the actual array
func NewArrayValueMatcher(comparator Comparator) *ArrayValueMatcher {
	return NewArrayValueMatcherRange(comparator, 0, math.MaxInt)
}

// NewArrayValueMatcherAt checks only the element at index
func NewArrayValueMatcherAt(comparator Comparator, index int) *ArrayValueMatcher {
	return NewArrayValueMatcherRange(comparator, index, index)
}

// NewArrayValueMatcherRange checks actual elements with indexes from through
// to, inclusive
func NewArrayValueMatcherRange(comparator Comparator, from, to int) *ArrayValueMatcher {
	if comparator == nil {
		panic("jsoncompare: ArrayValueMatcher requires a comparator")
	}
	return &ArrayValueMatcher{comparator: comparator, from: from, to: to}
}

// Match implements ValueMatcher. it panics when actual isn't an array
func (m *ArrayValueMatcher) Match(path string, actual, expected Value, result *Result) (MatchResult, error) {
	actualArray, ok := actual.(*Array)
	if !ok {
		panic(fmt.Sprintf("jsoncompare: ArrayValueMatcher applied to non-array actual value at %q", path))
	}
	expectedArray, ok := expected.(*Array)
	if !ok {
		expectedArray = NewArray(expected)
	}
	if expectedArray.Len() == 0 {
		return NotMatched, &MatchError{
			Message:  "ArrayValueMatcher has no expected elements",
			Expected: expected.String(),
			Actual:   actual.String(),
		}
	}

	first := m.from
	if first < 0 {
		first = 0
	}
	last := m.to
	if last > actualArray.Len()-1 {
		last = actualArray.Len() - 1
	}

	for i := first; i <= last; i++ {
		exp := expectedArray.At((i - first) % expectedArray.Len())
		m.comparator.CompareValues(indexPath(path, i), exp, actualArray.At(i), result)
	}
	// any differences are already in result
	return MatchedRecorded, nil
}

// RegexValueMatcher matches the text of actual values against a regular
// expression. The whole text must match. With an empty pattern the expected
// value's text is used as the pattern
type RegexValueMatcher struct {
	re *regexp.Regexp
}

var _ ValueMatcher = (*RegexValueMatcher)(nil)

// NewRegexValueMatcher creates a matcher for pattern, which may be empty.
// It panics if pattern doesn't compile
func NewRegexValueMatcher(pattern string) *RegexValueMatcher {
	m := &RegexValueMatcher{}
	if pattern != "" {
		m.re = regexp.MustCompile(anchor(pattern))
	}
	return m
}

// Match implements ValueMatcher
func (m *RegexValueMatcher) Match(path string, actual, expected Value, result *Result) (MatchResult, error) {
	text := keyText(actual)
	if m.re != nil {
		if !m.re.MatchString(text) {
			return NotMatched, &MatchError{
				Message:  "Constant expected pattern did not match value",
				Expected: m.re.String(),
				Actual:   text,
			}
		}
		return Matched, nil
	}

	pattern := keyText(expected)
	re, err := regexp.Compile(anchor(pattern))
	if err != nil {
		return NotMatched, &MatchError{
			Message:  "Dynamic expected pattern invalid: " + err.Error(),
			Expected: pattern,
			Actual:   text,
		}
	}
	if !re.MatchString(text) {
		return NotMatched, &MatchError{
			Message:  "Dynamic expected pattern did not match value",
			Expected: pattern,
			Actual:   text,
		}
	}
	return Matched, nil
}

func anchor(pattern string) string {
	return "^(?:" + pattern + ")$"
}

// AnyValue matches whatever it is given. Useful for fields like timestamps and
// generated ids that only need to be present
var AnyValue ValueMatcher = MatcherFunc(func(actual, expected Value) bool {
	return true
})

// NumberTolerance matches two numbers differing by at most epsilon. Other
// kinds never match
func NumberTolerance(epsilon float64) ValueMatcher {
	return MatcherFunc(func(actual, expected Value) bool {
		a, ok := actual.(Number)
		if !ok {
			return false
		}
		e, ok := expected.(Number)
		if !ok {
			return false
		}
		return math.Abs(a.f-e.f) <= epsilon
	})
}
