// Package render produces Markdown and CSV output from a batch report.
package render

import (
	"fmt"
	"strings"

	"github.com/clinscore/edsscalc/internal/edss"
	"github.com/clinscore/edsscalc/internal/report"
)

// Markdown renders a report as a human-readable Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	b.WriteString("# EDSS Batch Report\n\n")
	fmt.Fprintf(&b, "**Data:** %s (%s)\n", r.Input.DataFile, r.Input.DataHash)
	fmt.Fprintf(&b, "**Dictionary:** %s", r.Input.Dictionary)
	if r.Input.Suffix != "" {
		fmt.Fprintf(&b, " (suffix %q)", r.Input.Suffix)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Records:** %d scored %d, incomplete %d, malformed %d, out of range %d\n\n",
		r.Input.Records, r.Summary.Scored, r.Summary.Incomplete,
		r.Summary.Malformed, r.Summary.OutOfRange)

	if len(r.Summary.Distribution) > 0 {
		b.WriteString("## Score Distribution\n\n")
		b.WriteString("| EDSS | Records |\n|---|---|\n")
		for _, score := range edss.AllScores() {
			if n := r.Summary.Distribution[score]; n > 0 {
				fmt.Fprintf(&b, "| %s | %d |\n", score, n)
			}
		}
		b.WriteString("\n")
	}

	problems := filterResults(r.Results, report.StatusMalformed, report.StatusOutOfRange)
	if len(problems) > 0 {
		b.WriteString("## Rows Needing Attention\n\n")
		for _, res := range problems {
			fmt.Fprintf(&b, "- row %d [%s]: %s\n", res.Row, res.Status, res.Detail)
		}
		b.WriteString("\n")
	}

	incomplete := filterResults(r.Results, report.StatusIncomplete)
	if len(incomplete) > 0 {
		b.WriteString("## Incomplete Rows\n\n")
		rows := make([]string, 0, len(incomplete))
		for _, res := range incomplete {
			rows = append(rows, fmt.Sprintf("%d", res.Row))
		}
		fmt.Fprintf(&b, "Rows %s are missing one or more of the eight required values.\n\n", strings.Join(rows, ", "))
	}

	if r.Summary.Scored == 0 {
		b.WriteString("No records could be scored.\n")
	}

	return b.String()
}

// CSV renders the per-row results as a row,status,score,detail table.
func CSV(r *report.Report) string {
	var b strings.Builder
	b.WriteString("row,status,score,detail\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "%d,%s,%s,%s\n", res.Row, res.Status, res.Score, csvEscape(res.Detail))
	}
	return b.String()
}

func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func filterResults(results []report.Result, statuses ...report.Status) []report.Result {
	var out []report.Result
	for _, res := range results {
		for _, s := range statuses {
			if res.Status == s {
				out = append(out, res)
				break
			}
		}
	}
	return out
}
