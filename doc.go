// Package jsoncompare checks two JSON documents for semantic equivalence and
// reports every difference it finds, each addressed by a path into the
// document. It's intended to back test assertions of the form "this output is
// equivalent to this expected JSON" where byte-exact equality is too strict.
//
// How strict a comparison is depends on a Mode, a pair of independent rules:
//   extensible:   actual objects may carry keys the expected objects lack
//   strict order: array elements must appear in the same order
// There are four modes: Strict, Lenient, NonExtensible and StrictOrder.
//
// Documents are parsed into an immutable Value tree that keeps object key
// order. Comparison walks the expected tree, recording Missing, Unexpected,
// ValueMismatch and Failure entries into a Result. Paths use the form:
//   a.b          object keys
//   a[2]         array positions
//   a[]          an array as a whole
//   a[id=5]      an array element found by a unique key
//
// Arrays whose order doesn't matter are compared one of three ways. Arrays of
// scalars compare as multisets. Arrays of objects pair up elements by a field
// whose values are unique on both sides. Anything else falls back to matching
// each expected element against the first unused equal actual element, which
// is greedy and can report a failure when a different pairing would succeed.
//
// Path-scoped rules are supplied as Customizations, binding a ValueMatcher to
// a path pattern. The first customization matching a path decides the
// comparison of the value there.
//
// Numbers compare as float64, so very large integers that differ only beyond
// float64 precision are equal. Recursion follows document nesting without a
// depth limit.
package jsoncompare
