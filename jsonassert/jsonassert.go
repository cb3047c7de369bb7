// Package jsonassert reports JSON comparison failures through testify, so a
// test can assert that output is equivalent to an expected document:
//
//   jsonassert.Equal(t, `{"id":1}`, string(body), jsoncompare.Lenient)
package jsonassert

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qri-io/jsoncompare"
)

// Equal asserts that actual is equivalent to expected under mode. The failure
// message lists every difference
func Equal(t assert.TestingT, expected, actual string, mode jsoncompare.Mode, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualWith(t, expected, actual, jsoncompare.NewDefaultComparator(mode), msgAndArgs...)
}

// EqualWith asserts that actual is equivalent to expected according to
// comparator
func EqualWith(t assert.TestingT, expected, actual string, comparator jsoncompare.Comparator, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	result, err := jsoncompare.CompareJSON(expected, actual, jsoncompare.OptionComparator(comparator))
	if err != nil {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}
	if result.Failed() {
		return assert.Fail(t, "JSON documents are not equivalent:\n"+result.Message(), msgAndArgs...)
	}
	return true
}

// NotEqual asserts that actual is not equivalent to expected under mode
func NotEqual(t assert.TestingT, expected, actual string, mode jsoncompare.Mode, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	result, err := jsoncompare.CompareJSON(expected, actual, jsoncompare.OptionMode(mode))
	if err != nil {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}
	if result.Passed() {
		return assert.Fail(t, fmt.Sprintf("JSON documents should not be equivalent under %s mode:\n%s", mode, actual), msgAndArgs...)
	}
	return true
}

// RequireEqual is Equal that stops the test on failure
func RequireEqual(t require.TestingT, expected, actual string, mode jsoncompare.Mode, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !Equal(t, expected, actual, mode, msgAndArgs...) {
		t.FailNow()
	}
}

// RequireEqualWith is EqualWith that stops the test on failure
func RequireEqualWith(t require.TestingT, expected, actual string, comparator jsoncompare.Comparator, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !EqualWith(t, expected, actual, comparator, msgAndArgs...) {
		t.FailNow()
	}
}
