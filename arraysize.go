package jsoncompare

import (
	"fmt"
	"math"
)

// ArraySizeComparator checks only the length of arrays. Each expected array
// holds the allowed size: [n] for exactly n elements, [min, max] for a range.
// Objects and other values compare like a DefaultComparator with the same
// mode.
//
// An expected array in any other form panics
type ArraySizeComparator struct {
	*DefaultComparator
}

var _ Comparator = (*ArraySizeComparator)(nil)

// NewArraySizeComparator creates an ArraySizeComparator for mode
func NewArraySizeComparator(mode Mode, opts ...ComparatorOption) *ArraySizeComparator {
	c := &ArraySizeComparator{}
	c.DefaultComparator = newDefaultComparator(mode, c, opts)
	return c
}

// CompareArrays records a Failure when the actual length is outside the
// range expected describes
func (c *ArraySizeComparator) CompareArrays(prefix string, expected, actual *Array, result *Result) {
	path := arrayPath(prefix)
	lo, hi := sizeRange(path, expected)

	n := actual.Len()
	if n >= lo && n <= hi {
		return
	}

	want := fmt.Sprintf("%d", lo)
	if lo != hi {
		want = fmt.Sprintf("%d to %d", lo, hi)
	}
	result.Add(DiffEntry{
		Kind:     Failure,
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("Expected array size of %s elements, got: %d elements", want, n),
	})
}

func sizeRange(path string, expected *Array) (lo, hi int) {
	if expected.Len() < 1 || expected.Len() > 2 {
		panic(fmt.Sprintf("%s: invalid expectation: expected array should contain either 1 or 2 elements but contains %d elements", path, expected.Len()))
	}
	lo = sizeBound(path, expected.At(0))
	hi = lo
	if expected.Len() == 2 {
		hi = sizeBound(path, expected.At(1))
		if hi < lo {
			panic(fmt.Sprintf("%s: invalid expectation: maximum size %d is less than minimum size %d", path, hi, lo))
		}
	}
	return lo, hi
}

func sizeBound(path string, v Value) int {
	n, ok := v.(Number)
	if !ok || n.f < 0 || n.f >= math.MaxInt || n.f != math.Trunc(n.f) {
		panic(fmt.Sprintf("%s: invalid expectation: expected array size '%s' not a non-negative integer", path, describe(v)))
	}
	return int(n.f)
}
