package jsoncompare

import (
	"fmt"
	"log/slog"
)

// CompareArrayByPosition compares expected[i] to actual[i] for every index.
// arrays must be the same length
func (d *DefaultComparator) CompareArrayByPosition(prefix string, expected, actual *Array, result *Result) {
	for i, el := range expected.elems {
		d.self.CompareValues(indexPath(prefix, i), el, actual.elems[i], result)
	}
}

// CompareArrayOfScalars compares arrays as multisets of values. Each distinct
// value that occurs fewer times in actual than in expected is reported as
// Missing, each distinct value that occurs more often (or only) in actual is
// reported as Unexpected. entries are ordered by first appearance
func (d *DefaultComparator) CompareArrayOfScalars(prefix string, expected, actual *Array, result *Result) {
	path := arrayPath(prefix)
	expCounts, expOrder := cardinality(expected)
	actCounts, actOrder := cardinality(actual)

	for _, v := range expOrder {
		key := scalarKey(v)
		want, got := expCounts[key], actCounts[key]
		switch {
		case got == 0:
			result.AddMissing(path, v)
		case got < want:
			result.Add(DiffEntry{
				Kind:     Missing,
				Path:     path,
				Expected: v,
				Message:  occurrences(want, v, got),
			})
		}
	}

	for _, v := range actOrder {
		key := scalarKey(v)
		want, got := expCounts[key], actCounts[key]
		switch {
		case want == 0:
			result.AddUnexpected(path, v)
		case got > want:
			result.Add(DiffEntry{
				Kind:    Unexpected,
				Path:    path,
				Actual:  v,
				Message: occurrences(want, v, got),
			})
		}
	}
}

func occurrences(want int, v Value, got int) string {
	return fmt.Sprintf("Expected %d occurrence(s) of %s but got %d occurrence(s)", want, v, got)
}

// cardinality counts occurrences of each distinct value, returning the
// distinct values in order of first appearance
func cardinality(arr *Array) (counts map[string]int, order []Value) {
	counts = make(map[string]int, len(arr.elems))
	for _, el := range arr.elems {
		key := scalarKey(el)
		if counts[key] == 0 {
			order = append(order, el)
		}
		counts[key]++
	}
	return counts, order
}

// CompareArrayOfObjects pairs expected and actual objects by the value of a
// field that uniquely identifies elements on both sides, then compares the
// pairs as objects. Without such a field it falls back to
// CompareArrayExhaustive
func (d *DefaultComparator) CompareArrayOfObjects(prefix string, expected, actual *Array, result *Result) {
	key, ok := findUniqueKey(expected)
	if !ok || !isUsableAsUniqueKey(key, actual) {
		d.debug("no unique key, comparing exhaustively", prefix)
		d.CompareArrayExhaustive(prefix, expected, actual, result)
		return
	}
	d.debug("correlating array elements", prefix, slog.String("key", key))

	actualByKey := make(map[string]*Object, len(actual.elems))
	for _, el := range actual.elems {
		obj := el.(*Object)
		id, _ := obj.Get(key)
		actualByKey[scalarKey(id)] = obj
	}

	expectedKeys := make(map[string]bool, len(expected.elems))
	for _, el := range expected.elems {
		obj := el.(*Object)
		id, _ := obj.Get(key)
		idKey := scalarKey(id)
		expectedKeys[idKey] = true

		path := keyedPath(prefix, key, id)
		match, ok := actualByKey[idKey]
		if !ok {
			result.AddMissing(path, obj)
			continue
		}
		d.self.CompareValues(path, obj, match, result)
	}

	for _, el := range actual.elems {
		obj := el.(*Object)
		id, _ := obj.Get(key)
		if !expectedKeys[scalarKey(id)] {
			result.AddUnexpected(keyedPath(prefix, key, id), obj)
		}
	}
}

// findUniqueKey searches the keys of the first object in arr for a field that
// can identify every element
func findUniqueKey(arr *Array) (string, bool) {
	if arr.Len() == 0 {
		return "", false
	}
	first, ok := arr.elems[0].(*Object)
	if !ok {
		return "", false
	}
	for _, candidate := range first.keys {
		if isUsableAsUniqueKey(candidate, arr) {
			return candidate, true
		}
	}
	return "", false
}

// isUsableAsUniqueKey is true when every element of arr is an object holding
// candidate with a non-null scalar value, and no two values are equal
func isUsableAsUniqueKey(candidate string, arr *Array) bool {
	seen := make(map[string]bool, len(arr.elems))
	for _, el := range arr.elems {
		obj, ok := el.(*Object)
		if !ok {
			return false
		}
		id, ok := obj.Get(candidate)
		if !ok || !isScalar(id) {
			return false
		}
		if _, isNull := id.(Null); isNull {
			return false
		}
		key := scalarKey(id)
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// CompareArrayExhaustive matches each expected element, in order, with the
// first unused actual element that compares equal to it. The first expected
// element without a match records a Failure and ends the comparison of this
// array. Matching is greedy: an earlier element can claim an actual element a
// later one needed, so this can fail when some other pairing would succeed
func (d *DefaultComparator) CompareArrayExhaustive(prefix string, expected, actual *Array, result *Result) {
	used := make([]bool, len(actual.elems))
	for i, exp := range expected.elems {
		found := false
		for j, act := range actual.elems {
			if used[j] {
				continue
			}
			if d.elementsMatch(indexPath(prefix, i), exp, act) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			result.AddFailure(indexPath(prefix, i), "Could not find match for element "+describe(exp))
			return
		}
	}
}

func (d *DefaultComparator) elementsMatch(path string, expected, actual Value) bool {
	if expected == actual {
		return true
	}
	if expected.Kind() != actual.Kind() {
		return false
	}
	if expected.Kind() == KindNull {
		return true
	}
	sub := NewResult()
	d.self.CompareValues(path, expected, actual, sub)
	return sub.Passed()
}

func allScalars(arr *Array) bool {
	for _, el := range arr.elems {
		if !isScalar(el) {
			return false
		}
	}
	return true
}

func allObjects(arr *Array) bool {
	for _, el := range arr.elems {
		if _, ok := el.(*Object); !ok {
			return false
		}
	}
	return true
}
