package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qri-io/jsoncompare"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"a":1,"items":[{"id":1,"v":"x"},{"id":2,"v":"y"}]}`)
	reordered := writeFile(t, dir, "reordered.json", `{"items":[{"id":2,"v":"y"},{"id":1,"v":"x"}],"a":1}`)
	extra := writeFile(t, dir, "extra.json", `{"a":1,"b":2,"items":[{"id":1,"v":"x"},{"id":2,"v":"z"}]}`)
	asYAML := writeFile(t, dir, "base.yaml", "a: 1\nitems:\n  - {id: 2, v: y}\n  - {id: 1, v: x}\n")
	broken := writeFile(t, dir, "broken.json", `{"a":`)

	cases := []struct {
		description string
		args        []string
		exit        int
		stdout      string
	}{
		{"equivalent", []string{"-mode", "lenient", base, reordered}, exitPass, ""},
		{"strict order", []string{base, reordered}, exitDiff,
			"~ items[0].id: Expected: 1 got: 2\n" +
				"~ items[0].v: Expected: \"x\" got: \"y\"\n" +
				"~ items[1].id: Expected: 2 got: 1\n" +
				"~ items[1].v: Expected: \"y\" got: \"x\"\n"},
		{"differences", []string{"-mode", "non_extensible", base, extra}, exitDiff,
			"~ items[id=2].v: Expected: \"y\" got: \"z\"\n" +
				"+ b: Unexpected: 2\n"},
		{"stats", []string{"-mode", "lenient", "-stats", base, extra}, exitDiff,
			"~ items[id=2].v: Expected: \"y\" got: \"z\"\n" +
				"+1 value. 0 missing. 0 unexpected. 1 mismatch. 0 failures.\n"},
		{"yaml against json", []string{"-mode", "non-extensible", asYAML, base}, exitPass, ""},
		{"sub path", []string{"-path", "items[id=1]", base, extra}, exitPass, ""},
		{"missing sub path", []string{"-path", "nope", base, extra}, exitUsage, ""},
		{"one file", []string{base}, exitUsage, ""},
		{"unknown mode", []string{"-mode", "sloppy", base, base}, exitUsage, ""},
		{"unknown flag", []string{"-nope", base, base}, exitUsage, ""},
		{"parse error", []string{base, broken}, exitUsage, ""},
		{"missing file", []string{base, filepath.Join(dir, "none.json")}, exitUsage, ""},
	}

	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			exit := run(c.args, stdout, stderr)
			assert.Equal(t, c.exit, exit, "stderr: %s", stderr.String())
			assert.Equal(t, c.stdout, stdout.String())
		})
	}
}

func TestRunColor(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"a":1}`)
	b := writeFile(t, dir, "b.json", `{}`)

	stdout := &bytes.Buffer{}
	exit := run([]string{"-color", a, b}, stdout, &bytes.Buffer{})
	assert.Equal(t, exitDiff, exit)
	assert.Equal(t, "\x1b[31m- a: Expected: 1 but none found\x1b[0m\n", stdout.String())
}

func TestRunVerboseLogs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `[1,2]`)

	stderr := &bytes.Buffer{}
	exit := run([]string{"-v", "-mode", "lenient", a, a}, &bytes.Buffer{}, stderr)
	assert.Equal(t, exitPass, exit)
	assert.Contains(t, stderr.String(), "comparing array as multiset")
	assert.Contains(t, stderr.String(), "comparison finished")
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	expected := writeFile(t, dir, "expected.json", `{"id":"any","created":"\\d{4}-\\d{2}-\\d{2}","price":10,"rows":{"t":"row"}}`)
	actual := writeFile(t, dir, "actual.json", `{"id":"5f2b","created":"2021-06-01","price":10.004,"rows":[{"t":"row"},{"t":"row"}],"extra":1}`)
	config := writeFile(t, dir, "config.yaml", strings.Join([]string{
		"mode: non_extensible",
		"customizations:",
		"  - path: id",
		"    matcher: any",
		"  - path: created",
		"    matcher: regex",
		"  - path: price",
		"    matcher: tolerance",
		"    epsilon: 0.01",
		"  - path: rows",
		"    matcher: array",
		"",
	}, "\n"))

	stdout := &bytes.Buffer{}
	exit := run([]string{"-config", config, expected, actual}, stdout, &bytes.Buffer{})
	assert.Equal(t, exitDiff, exit)
	assert.Equal(t, "+ extra: Unexpected: 1\n", stdout.String())

	// the -mode flag takes precedence over the config file
	stdout.Reset()
	exit = run([]string{"-config", config, "-mode", "lenient", expected, actual}, stdout, &bytes.Buffer{})
	assert.Equal(t, exitPass, exit)
	assert.Empty(t, stdout.String())
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte("mode: lenient\narraySize: true\n"))
	require.NoError(t, err)
	c, mode, err := cfg.comparator("")
	require.NoError(t, err)
	assert.Equal(t, jsoncompare.Lenient, mode)
	assert.IsType(t, &jsoncompare.ArraySizeComparator{}, c)

	cfg, err = parseConfig(nil)
	require.NoError(t, err)
	c, mode, err = cfg.comparator("")
	require.NoError(t, err)
	assert.Equal(t, jsoncompare.Strict, mode)
	assert.IsType(t, &jsoncompare.DefaultComparator{}, c)

	cfg, err = parseConfig([]byte("customizations:\n  - path: a\n    matcher: array\n    from: 1\n    to: 2\n"))
	require.NoError(t, err)
	c, _, err = cfg.comparator("strict_order")
	require.NoError(t, err)
	require.IsType(t, &jsoncompare.CustomComparator{}, c)
	custs := c.(*jsoncompare.CustomComparator).Customizations()
	require.Len(t, custs, 1)
	assert.Equal(t, "a", custs[0].Pattern())
	assert.IsType(t, &jsoncompare.ArrayValueMatcher{}, custs[0].Matcher())

	_, err = parseConfig([]byte("mode: lenient\nunknown: 1\n"))
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	cases := []struct {
		description string
		yaml        string
	}{
		{"unknown mode", "mode: sloppy\n"},
		{"array size with customizations", "arraySize: true\ncustomizations:\n  - {path: a, matcher: any}\n"},
		{"unknown matcher", "customizations:\n  - {path: a, matcher: fuzzy}\n"},
		{"missing matcher", "customizations:\n  - {path: a}\n"},
		{"missing path", "customizations:\n  - {matcher: any}\n"},
		{"negative epsilon", "customizations:\n  - {path: a, matcher: tolerance, epsilon: -1}\n"},
	}
	for _, c := range cases {
		t.Run(c.description, func(t *testing.T) {
			cfg, err := parseConfig([]byte(c.yaml))
			require.NoError(t, err)
			_, _, err = cfg.comparator("")
			assert.Error(t, err)
		})
	}
}
