package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/clinscore/edsscalc/internal/dataset"
	"github.com/clinscore/edsscalc/internal/fieldmap"
	"github.com/clinscore/edsscalc/internal/phi"
	"github.com/clinscore/edsscalc/internal/render"
	"github.com/clinscore/edsscalc/internal/report"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type batchFlags struct {
	dict    string
	suffix  string
	format  string
	out     string
	failOn  string
	verbose bool
}

func newBatchCmd() *cobra.Command {
	f := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch <data-file>",
		Short: "Score every record in a CSV, JSON, or NDJSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(args[0], f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.dict, "dict", "default", "Field dictionary: built-in name or YAML file path")
	flags.StringVar(&f.suffix, "suffix", "", "Suffix appended to every field key before lookup")
	flags.StringVar(&f.format, "format", "json", "Output format: json, md, or csv")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if any row has this status: malformed or out-of-range")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")

	return cmd
}

func runBatch(dataPath string, f *batchFlags) error {
	logger := newLogger(f.verbose)

	logger.Debug("loading dictionary", "dict", f.dict)
	dict, err := loadDictionary(f.dict)
	if err != nil {
		return exitError(3, "failed to load dictionary: %v", err)
	}

	logger.Debug("loading data", "path", dataPath)
	ds, err := dataset.Load(dataPath)
	if err != nil {
		return exitError(3, "failed to load data: %v", err)
	}
	logger.Debug("data loaded", "records", len(ds.Records), "hash", ds.Hash)

	rep := report.Build(ds, dict, f.suffix)
	rep.Tool = "edsscalc"
	rep.Version = version

	// Record contents reach the log only through phi masking.
	for _, res := range rep.Results {
		switch res.Status {
		case report.StatusMalformed, report.StatusOutOfRange:
			logger.Warn("row not scored", "row", res.Row, "status", string(res.Status), "detail", res.Detail)
			logger.Debug("offending record", "row", res.Row, "record", phi.MaskRecord(ds.Records[res.Row-1]))
		case report.StatusIncomplete:
			logger.Debug("incomplete record", "row", res.Row, "record", phi.MaskRecord(ds.Records[res.Row-1]))
		}
	}
	logger.Debug("scoring finished",
		"scored", rep.Summary.Scored,
		"incomplete", rep.Summary.Incomplete,
		"malformed", rep.Summary.Malformed,
		"out_of_range", rep.Summary.OutOfRange)

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	case "csv":
		output = render.CSV(rep)
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		logger.Debug("writing output", "path", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	if f.failOn != "" {
		status, err := failOnStatus(f.failOn)
		if err != nil {
			return exitError(3, "%v", err)
		}
		if n := countStatus(rep.Results, status); n > 0 {
			return exitError(2, "%d rows with status %s meet fail threshold", n, status)
		}
	}

	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

// loadDictionary treats anything that looks like a path as a user
// dictionary file and everything else as a built-in name.
func loadDictionary(name string) (*fieldmap.Dictionary, error) {
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return fieldmap.Load(name)
	}
	return fieldmap.LoadBuiltin(name)
}

func failOnStatus(s string) (report.Status, error) {
	switch strings.ToLower(s) {
	case "malformed":
		return report.StatusMalformed, nil
	case "out-of-range", "out_of_range":
		return report.StatusOutOfRange, nil
	default:
		return "", fmt.Errorf("unknown --fail-on value: %s", s)
	}
}

func countStatus(results []report.Result, status report.Status) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}
