package jsoncompare

import "testing"

func TestFormatPretty(t *testing.T) {
	result := NewResult()
	result.AddMissing("a", NewNumber(5))
	result.AddUnexpected("b", String("x"))
	result.AddMismatch("c[0]", Bool(true), Null{})
	result.AddFailure("d[]", "Expected 2 values but got 1")

	str, err := FormatPrettyString(result, false)
	if err != nil {
		t.Fatal(err)
	}
	expect := `- a: Expected: 5 but none found
+ b: Unexpected: "x"
~ c[0]: Expected: true got: null
! d[]: Expected 2 values but got 1
`
	if str != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, str)
	}

	colored, err := FormatPrettyString(result, true)
	if err != nil {
		t.Fatal(err)
	}
	if colored == str {
		t.Error("expected colored output to differ from plain output")
	}
}

func TestFormatPrettyPassing(t *testing.T) {
	str, err := FormatPrettyString(NewResult(), false)
	if err != nil {
		t.Fatal(err)
	}
	if str != "" {
		t.Errorf("expected empty output for a passing result, got: %q", str)
	}
}

func TestFormatStatsPretty(t *testing.T) {
	cases := []struct {
		description string
		input       *Stats
		expect      string
	}{
		{"all plural",
			&Stats{Expected: 2, Actual: 6, Missing: 6, Unexpected: 2, Mismatches: 2, Failures: 2},
			"+4 values. 6 missing. 2 unexpected. 2 mismatches. 2 failures.\n",
		},
		{"all singular",
			&Stats{Expected: 2, Actual: 1, Missing: 1, Unexpected: 1, Mismatches: 1, Failures: 1},
			"-1 value. 1 missing. 1 unexpected. 1 mismatch. 1 failure.\n",
		},
		{"no change",
			&Stats{Expected: 3, Actual: 3},
			"0 values. 0 missing. 0 unexpected. 0 mismatches. 0 failures.\n",
		},
	}

	for i, c := range cases {
		got := FormatPrettyStats(c.input)
		if got != c.expect {
			t.Errorf("%d %s\nwant:\n%s\ngot:\n%s", i, c.description, c.expect, got)
		}
	}
}

func TestFormatStatsNull(t *testing.T) {
	got := FormatPrettyStats(nil)
	expect := `<nil>`
	if got != expect {
		t.Errorf("want:\n%s\ngot:\n%s", expect, got)
	}
}
