package jsoncompare

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchResult is the outcome of a ValueMatcher
type MatchResult uint8

const (
	// NotMatched means the values aren't equivalent. The caller records a
	// ValueMismatch
	NotMatched MatchResult = iota
	// Matched means the values are equivalent
	Matched
	// MatchedRecorded means the matcher handled the comparison and already
	// recorded any differences it found. The caller records nothing
	MatchedRecorded
)

func (m MatchResult) String() string {
	switch m {
	case Matched:
		return "matched"
	case MatchedRecorded:
		return "matched (recorded)"
	default:
		return "not matched"
	}
}

// ValueMatcher decides equivalence of two values at a path, in place of the
// comparator's own rules. A matcher may return a *MatchError to explain why
// values don't match
type ValueMatcher interface {
	Match(path string, actual, expected Value, result *Result) (MatchResult, error)
}

// MatcherFunc adapts a plain equality func to a ValueMatcher
type MatcherFunc func(actual, expected Value) bool

// Match implements ValueMatcher
func (f MatcherFunc) Match(path string, actual, expected Value, result *Result) (MatchResult, error) {
	if f(actual, expected) {
		return Matched, nil
	}
	return NotMatched, nil
}

// MatchError carries a diagnostic from a ValueMatcher, recorded as a Failure
// entry at the matched path
type MatchError struct {
	Message  string
	Expected string
	Actual   string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s Expected: %s got: %s", e.Message, e.Expected, e.Actual)
}

// Customization binds a ValueMatcher to the paths matching a pattern
type Customization struct {
	pattern string
	re      *regexp.Regexp
	matcher ValueMatcher
}

// NewCustomization creates a customization for paths matching pattern. In a
// pattern:
//   "**." matches any number of leading path segments, including none
//   "**" matches any text
//   "*" matches a single key
// everything else matches literally, so "items[0].id" matches only itself.
// NewCustomization panics on a nil matcher
func NewCustomization(pattern string, matcher ValueMatcher) Customization {
	if matcher == nil {
		panic("jsoncompare: nil ValueMatcher for customization " + pattern)
	}
	return Customization{
		pattern: pattern,
		re:      regexp.MustCompile("^" + patternLevel1(pattern) + "$"),
		matcher: matcher,
	}
}

// Pattern returns the path pattern
func (c Customization) Pattern() string { return c.pattern }

// Matcher returns the bound matcher
func (c Customization) Matcher() ValueMatcher { return c.matcher }

// AppliesTo reports whether the customization matches path
func (c Customization) AppliesTo(path string) bool {
	return c.re != nil && c.re.MatchString(path)
}

func patternLevel1(p string) string {
	return joinPattern(p, "**.", "(?:.+\\.)?", patternLevel2)
}

func patternLevel2(p string) string {
	return joinPattern(p, "**", ".+", patternLevel3)
}

func patternLevel3(p string) string {
	return joinPattern(p, "*", "[^\\.]+", regexp.QuoteMeta)
}

// joinPattern splits p on sep, converts each part with next, and joins the
// parts with replacement
func joinPattern(p, sep, replacement string, next func(string) string) string {
	parts := strings.Split(p, sep)
	for i, part := range parts {
		parts[i] = next(part)
	}
	return strings.Join(parts, replacement)
}
