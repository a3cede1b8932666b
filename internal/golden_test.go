package internal

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/clinscore/edsscalc/internal/dataset"
	"github.com/clinscore/edsscalc/internal/edss"
	"github.com/clinscore/edsscalc/internal/fieldmap"
	"github.com/clinscore/edsscalc/internal/report"
	"github.com/clinscore/edsscalc/internal/schema"
)

func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(filename))
}

// TestGoldenVisits runs the full pipeline over the committed NDJSON
// dataset and checks every row against the expected outcome.
func TestGoldenVisits(t *testing.T) {
	ds, err := dataset.Load(filepath.Join(projectRoot(), "testdata", "datasets", "visits.ndjson"))
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}

	dict, err := fieldmap.LoadBuiltin("default")
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}

	rep := report.Build(ds, dict, "")
	rep.Tool = "edsscalc"
	rep.Version = "test"

	expected := []struct {
		status report.Status
		score  edss.Score
	}{
		{report.StatusScored, edss.Score0},
		{report.StatusScored, edss.Score4},
		{report.StatusScored, edss.Score5},
		{report.StatusScored, edss.Score1_5},
		{report.StatusScored, edss.Score8_5},
		{report.StatusIncomplete, ""},
		{report.StatusMalformed, ""},
		{report.StatusOutOfRange, ""},
	}
	if len(rep.Results) != len(expected) {
		t.Fatalf("expected %d results, got %d", len(expected), len(rep.Results))
	}
	for i, want := range expected {
		got := rep.Results[i]
		if got.Status != want.status {
			t.Errorf("row %d: status = %s, want %s", got.Row, got.Status, want.status)
		}
		if got.Score != want.score {
			t.Errorf("row %d: score = %q, want %q", got.Row, got.Score, want.score)
		}
	}

	if errs := schema.Validate(rep); len(errs) > 0 {
		for _, e := range errs {
			t.Errorf("validation error: %s", e)
		}
	}
}
