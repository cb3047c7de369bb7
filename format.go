package jsoncompare

import (
	"bytes"
	"fmt"
	"io"
)

const colorClose = "\x1b[0m"

var entryColors = map[DiffKind]string{
	Missing:       "\x1b[31m", // red
	Unexpected:    "\x1b[32m", // green
	ValueMismatch: "\x1b[34m", // blue
	Failure:       "\x1b[31m", // red
}

var entrySigns = map[DiffKind]string{
	Missing:       "-",
	Unexpected:    "+",
	ValueMismatch: "~",
	Failure:       "!",
}

// FormatPrettyString is a convenience wrapper that outputs to a string instead
// of an io.Writer
func FormatPrettyString(result *Result, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, result, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per entry. if colorTTY is
// true lines are colored:
// red "-" for missing values
// green "+" for unexpected values
// blue "~" for mismatched values
// red "!" for failures
func FormatPretty(w io.Writer, result *Result, colorTTY bool) error {
	if result == nil {
		return nil
	}
	for _, e := range result.entries {
		begin, end := "", ""
		if colorTTY {
			begin, end = entryColors[e.Kind], colorClose
		}
		if _, err := fmt.Fprintf(w, "%s%s %s%s\n", begin, entrySigns[e.Kind], e.String(), end); err != nil {
			return err
		}
	}
	return nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, color bool) string {
	var (
		neutralColor, missingColor, unexpectedColor, mismatchColor, closeColor string
	)

	if st == nil {
		return "<nil>"
	}

	if color {
		neutralColor = "\x1b[37m"
		missingColor = entryColors[Missing]
		unexpectedColor = entryColors[Unexpected]
		mismatchColor = entryColors[ValueMismatch]
		closeColor = colorClose
	}

	buf := &bytes.Buffer{}

	change := st.NodeChange()
	elementsWord := "values"
	sign := "+"
	if change <= 0 {
		sign = ""
	}
	if change == 1 || change == -1 {
		elementsWord = "value"
	}
	buf.WriteString(fmt.Sprintf("%s%s%d %s%s.", neutralColor, sign, change, elementsWord, closeColor))

	buf.WriteString(fmt.Sprintf(" %s%d missing.%s", missingColor, st.Missing, closeColor))
	buf.WriteString(fmt.Sprintf(" %s%d unexpected.%s", unexpectedColor, st.Unexpected, closeColor))

	mismatchesWord := "mismatches"
	if st.Mismatches == 1 {
		mismatchesWord = "mismatch"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", mismatchColor, st.Mismatches, mismatchesWord, closeColor))

	failuresWord := "failures"
	if st.Failures == 1 {
		failuresWord = "failure"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", missingColor, st.Failures, failuresWord, closeColor))

	buf.WriteRune('\n')

	return buf.String()
}
