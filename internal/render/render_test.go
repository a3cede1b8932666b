package render

import (
	"strings"
	"testing"

	"github.com/clinscore/edsscalc/internal/edss"
	"github.com/clinscore/edsscalc/internal/report"
)

func sampleReport() *report.Report {
	results := []report.Result{
		{Row: 1, Status: report.StatusScored, Score: edss.Score4_5},
		{Row: 2, Status: report.StatusScored, Score: edss.Score4_5},
		{Row: 3, Status: report.StatusScored, Score: edss.Score0},
		{Row: 4, Status: report.StatusIncomplete},
		{Row: 5, Status: report.StatusMalformed, Detail: `key "visual": value high is not an integer score`},
		{Row: 6, Status: report.StatusOutOfRange, Detail: "edss: ambulation score 99 out of range 0-16"},
	}
	return &report.Report{
		Tool:    "edsscalc",
		Version: "1.0",
		Input: report.Input{
			DataFile:   "visits.csv",
			DataHash:   "sha256:abc",
			Dictionary: "default",
			Suffix:     "_v2",
			Records:    6,
		},
		Summary: report.ComputeSummary(results),
		Results: results,
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleReport())

	checks := []string{
		"# EDSS Batch Report",
		"visits.csv (sha256:abc)",
		"**Dictionary:** default",
		`suffix "_v2"`,
		"## Score Distribution",
		"| 4.5 | 2 |",
		"| 0 | 1 |",
		"## Rows Needing Attention",
		"row 5 [MALFORMED]",
		"row 6 [OUT_OF_RANGE]",
		"## Incomplete Rows",
		"Rows 4 are missing",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownNothingScored(t *testing.T) {
	results := []report.Result{{Row: 1, Status: report.StatusIncomplete}}
	r := &report.Report{
		Input:   report.Input{DataFile: "x.csv", Records: 1},
		Summary: report.ComputeSummary(results),
		Results: results,
	}
	md := Markdown(r)
	if !strings.Contains(md, "No records could be scored") {
		t.Error("expected 'No records could be scored' notice")
	}
	if strings.Contains(md, "## Score Distribution") {
		t.Error("distribution section should be omitted when nothing scored")
	}
}

func TestCSV(t *testing.T) {
	out := CSV(sampleReport())
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header + 6 rows, got %d lines", len(lines))
	}
	if lines[0] != "row,status,score,detail" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "1,SCORED,4.5," {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if !strings.Contains(lines[5], `"key ""visual""`) {
		t.Errorf("detail with quotes not escaped: %s", lines[5])
	}
}
