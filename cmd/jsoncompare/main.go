// Command jsoncompare compares two JSON or YAML documents and prints the
// differences. It exits 0 when the documents are equivalent, 1 when they
// differ and 2 on bad input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/qri-io/jsoncompare"
)

const (
	exitPass  = 0
	exitDiff  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(fs.Output(), "jsoncompare\n\nUsage:\n  jsoncompare [flags] expected actual\n\nFiles ending in .yaml or .yml are read as YAML, anything else as JSON.\n\nFlags:")
		fs.PrintDefaults()
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsoncompare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs)

	var (
		mode       string
		configPath string
		subPath    string
		color      bool
		stats      bool
		verbose    bool
	)
	fs.StringVar(&mode, "mode", "", "comparison mode: strict, lenient, non_extensible or strict_order (default strict)")
	fs.StringVar(&configPath, "config", "", "YAML file with mode and path customizations")
	fs.StringVar(&subPath, "path", "", "compare only the values at this path in both documents")
	fs.BoolVar(&color, "color", false, "color output")
	fs.BoolVar(&stats, "stats", false, "print a summary line")
	fs.BoolVar(&verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := &config{}
	if configPath != "" {
		var err error
		if cfg, err = readConfig(configPath); err != nil {
			logger.Error("loading config", slog.String("path", configPath), slog.Any("err", err))
			return exitUsage
		}
	}
	comparator, m, err := cfg.comparator(mode, jsoncompare.WithLogger(logger))
	if err != nil {
		logger.Error("building comparator", slog.Any("err", err))
		return exitUsage
	}

	expected, err := readDocument(fs.Arg(0), subPath)
	if err != nil {
		logger.Error("reading expected document", slog.String("file", fs.Arg(0)), slog.Any("err", err))
		return exitUsage
	}
	actual, err := readDocument(fs.Arg(1), subPath)
	if err != nil {
		logger.Error("reading actual document", slog.String("file", fs.Arg(1)), slog.Any("err", err))
		return exitUsage
	}

	st := &jsoncompare.Stats{}
	result := jsoncompare.Compare(expected, actual,
		jsoncompare.OptionMode(m),
		jsoncompare.OptionComparator(comparator),
		jsoncompare.OptionSetStats(st),
		jsoncompare.OptionLogger(logger),
	)

	if err := jsoncompare.FormatPretty(stdout, result, color); err != nil {
		logger.Error("writing report", slog.Any("err", err))
		return exitUsage
	}
	if stats {
		if color {
			fmt.Fprint(stdout, jsoncompare.FormatPrettyStatsColor(st))
		} else {
			fmt.Fprint(stdout, jsoncompare.FormatPrettyStats(st))
		}
	}

	if result.Failed() {
		return exitDiff
	}
	return exitPass
}

// readDocument parses a file and, when subPath is set, returns the value at
// that path
func readDocument(file, subPath string) (jsoncompare.Value, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var v jsoncompare.Value
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		v, err = jsoncompare.ParseYAML(data)
	default:
		v, err = jsoncompare.Parse(string(data))
	}
	if err != nil {
		return nil, err
	}

	if subPath == "" {
		return v, nil
	}
	v, err = jsoncompare.Lookup(v, subPath)
	if err != nil {
		return nil, errors.Wrap(err, "selecting -path")
	}
	return v, nil
}
