package jsoncompare

// Stats holds statistical metadata about a comparison
type Stats struct {
	Expected int `json:"expectedNodes"` // count of values in the expected tree
	Actual   int `json:"actualNodes"`   // count of values in the actual tree

	Missing    int `json:"missing,omitempty"`    // number of Missing entries
	Unexpected int `json:"unexpected,omitempty"` // number of Unexpected entries
	Mismatches int `json:"mismatches,omitempty"` // number of ValueMismatch entries
	Failures   int `json:"failures,omitempty"`   // number of Failure entries
}

// NodeChange returns the difference in value count between the actual &
// expected trees
func (s Stats) NodeChange() int {
	return s.Actual - s.Expected
}

// Entries is the total count of recorded entries
func (s Stats) Entries() int {
	return s.Missing + s.Unexpected + s.Mismatches + s.Failures
}

// Tally adds the result's entry counts to st
func (r *Result) Tally(st *Stats) {
	for _, e := range r.entries {
		switch e.Kind {
		case Missing:
			st.Missing++
		case Unexpected:
			st.Unexpected++
		case ValueMismatch:
			st.Mismatches++
		case Failure:
			st.Failures++
		}
	}
}
