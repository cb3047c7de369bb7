package main

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/qri-io/jsoncompare"
)

// config is the YAML file read with -config:
//
//   mode: lenient
//   arraySize: false
//   customizations:
//     - path: "**.updatedAt"
//       matcher: regex
//       pattern: "\\d{4}-\\d{2}-\\d{2}T.*"
//     - path: "items"
//       matcher: array
//       from: 0
//       to: 2
type config struct {
	Mode           string          `yaml:"mode"`
	ArraySize      bool            `yaml:"arraySize"`
	Customizations []customization `yaml:"customizations"`
}

type customization struct {
	Path    string  `yaml:"path"`
	Matcher string  `yaml:"matcher"`
	Pattern string  `yaml:"pattern"`
	Epsilon float64 `yaml:"epsilon"`
	From    *int    `yaml:"from"`
	To      *int    `yaml:"to"`
}

func readConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*config, error) {
	cfg := &config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// comparator builds the comparator a config describes. flagMode, when not
// empty, takes precedence over the config file's mode
func (c *config) comparator(flagMode string, opts ...jsoncompare.ComparatorOption) (jsoncompare.Comparator, jsoncompare.Mode, error) {
	name := c.Mode
	if flagMode != "" {
		name = flagMode
	}
	mode := jsoncompare.Strict
	if name != "" {
		m, err := jsoncompare.ParseMode(name)
		if err != nil {
			return nil, mode, err
		}
		mode = m
	}

	if c.ArraySize {
		if len(c.Customizations) > 0 {
			return nil, mode, errors.New("arraySize can't be combined with customizations")
		}
		return jsoncompare.NewArraySizeComparator(mode, opts...), mode, nil
	}
	if len(c.Customizations) == 0 {
		return jsoncompare.NewDefaultComparator(mode, opts...), mode, nil
	}

	custs := make([]jsoncompare.Customization, 0, len(c.Customizations))
	for i, cc := range c.Customizations {
		m, err := cc.matcher(mode)
		if err != nil {
			return nil, mode, errors.Wrapf(err, "customization %d (%s)", i, cc.Path)
		}
		custs = append(custs, jsoncompare.NewCustomization(cc.Path, m))
	}
	return jsoncompare.NewCustomComparator(mode, custs, opts...), mode, nil
}

func (cc customization) matcher(mode jsoncompare.Mode) (jsoncompare.ValueMatcher, error) {
	if cc.Path == "" {
		return nil, errors.New("path is required")
	}
	switch cc.Matcher {
	case "any":
		return jsoncompare.AnyValue, nil
	case "regex":
		return jsoncompare.NewRegexValueMatcher(cc.Pattern), nil
	case "tolerance":
		if cc.Epsilon < 0 {
			return nil, errors.Errorf("epsilon must not be negative, got %v", cc.Epsilon)
		}
		return jsoncompare.NumberTolerance(cc.Epsilon), nil
	case "array":
		from, to := 0, math.MaxInt
		if cc.From != nil {
			from = *cc.From
		}
		if cc.To != nil {
			to = *cc.To
		}
		return jsoncompare.NewArrayValueMatcherRange(jsoncompare.NewDefaultComparator(mode), from, to), nil
	case "":
		return nil, errors.New("matcher is required")
	}
	return nil, errors.Errorf("unknown matcher %q", cc.Matcher)
}
