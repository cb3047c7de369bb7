package jsoncompare

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// DiffKind classifies a DiffEntry
type DiffKind uint8

const (
	// Missing means a value present in expected is absent from actual
	Missing DiffKind = iota
	// Unexpected means actual holds a value expected does not allow
	Unexpected
	// ValueMismatch is a value present on both sides that is not equivalent
	ValueMismatch
	// Failure is a structural problem described only by a message, like an
	// array length mismatch
	Failure
)

func (k DiffKind) String() string {
	switch k {
	case Missing:
		return "missing"
	case Unexpected:
		return "unexpected"
	case ValueMismatch:
		return "mismatch"
	case Failure:
		return "failure"
	default:
		return "unknown"
	}
}

// MarshalText writes the kind name
func (k DiffKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// DiffEntry is a single discrepancy between expected and actual, addressed by
// path. Expected and Actual are nil when they don't apply to the entry kind
type DiffEntry struct {
	Kind     DiffKind
	Path     string
	Expected Value
	Actual   Value
	// Message overrides the default rendering of the entry detail
	Message string
}

// Detail describes the entry without its path
func (e DiffEntry) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Kind {
	case Missing:
		return fmt.Sprintf("Expected: %s but none found", describe(e.Expected))
	case Unexpected:
		return fmt.Sprintf("Unexpected: %s", describe(e.Actual))
	case ValueMismatch:
		return fmt.Sprintf("Expected: %s got: %s", describe(e.Expected), describe(e.Actual))
	default:
		return "comparison failed"
	}
}

func (e DiffEntry) String() string {
	if e.Path == "" {
		return e.Detail()
	}
	return e.Path + ": " + e.Detail()
}

// MarshalJSON encodes an entry as a compact array:
//   [kind, path, expected, actual, message]
func (e DiffEntry) MarshalJSON() ([]byte, error) {
	var exp, act interface{}
	if e.Expected != nil {
		exp = e.Expected
	}
	if e.Actual != nil {
		act = e.Actual
	}
	return json.Marshal([]interface{}{e.Kind, e.Path, exp, act, e.Message})
}

func describe(v Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// Result accumulates the entries of a single comparison, in the order the
// comparison found them. A Result is owned by one comparison at a time
type Result struct {
	entries []DiffEntry
}

// NewResult creates an empty result
func NewResult() *Result {
	return &Result{}
}

// Entries returns recorded entries in traversal order
func (r *Result) Entries() []DiffEntry {
	cp := make([]DiffEntry, len(r.entries))
	copy(cp, r.entries)
	return cp
}

// Len is the number of recorded entries
func (r *Result) Len() int { return len(r.entries) }

// Failed is true when at least one entry was recorded
func (r *Result) Failed() bool { return len(r.entries) > 0 }

// Passed is the opposite of Failed
func (r *Result) Passed() bool { return len(r.entries) == 0 }

// Message joins every entry, one per line, as "<path>: <detail>". A passing
// result has an empty message
func (r *Result) Message() string {
	lines := make([]string, len(r.entries))
	for i, e := range r.entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}

func (r *Result) String() string { return r.Message() }

// Add records an entry
func (r *Result) Add(e DiffEntry) {
	r.entries = append(r.entries, e)
}

// AddMissing records an expected value absent from actual
func (r *Result) AddMissing(path string, expected Value) {
	r.Add(DiffEntry{Kind: Missing, Path: path, Expected: expected})
}

// AddUnexpected records an actual value expected does not allow
func (r *Result) AddUnexpected(path string, actual Value) {
	r.Add(DiffEntry{Kind: Unexpected, Path: path, Actual: actual})
}

// AddMismatch records two values that are not equivalent
func (r *Result) AddMismatch(path string, expected, actual Value) {
	r.Add(DiffEntry{Kind: ValueMismatch, Path: path, Expected: expected, Actual: actual})
}

// AddFailure records a failure described by a message
func (r *Result) AddFailure(path, message string) {
	r.Add(DiffEntry{Kind: Failure, Path: path, Message: message})
}

// Missing lists Missing entries
func (r *Result) Missing() []DiffEntry { return r.filter(Missing) }

// Unexpected lists Unexpected entries
func (r *Result) Unexpected() []DiffEntry { return r.filter(Unexpected) }

// Mismatches lists ValueMismatch entries
func (r *Result) Mismatches() []DiffEntry { return r.filter(ValueMismatch) }

// Failures lists Failure entries
func (r *Result) Failures() []DiffEntry { return r.filter(Failure) }

func (r *Result) filter(kind DiffKind) []DiffEntry {
	var es []DiffEntry
	for _, e := range r.entries {
		if e.Kind == kind {
			es = append(es, e)
		}
	}
	return es
}

// MarshalJSON encodes the entry list
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.entries)
}
