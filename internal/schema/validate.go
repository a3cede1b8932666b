// Package schema validates a batch report for structural consistency.
package schema

import (
	"fmt"

	"github.com/clinscore/edsscalc/internal/report"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural validity: valid statuses,
// canonical scores on scored rows, row numbers within the record
// count, and a summary that matches the results.
func Validate(r *report.Report) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if len(r.Results) != r.Input.Records {
		errs = append(errs, ValidationError{"results", fmt.Sprintf("expected %d results, got %d", r.Input.Records, len(r.Results))})
	}

	seenRows := make(map[int]bool)
	for i, res := range r.Results {
		prefix := fmt.Sprintf("results[%d]", i)
		if res.Row < 1 || res.Row > r.Input.Records {
			errs = append(errs, ValidationError{prefix + ".row", fmt.Sprintf("row %d out of range 1-%d", res.Row, r.Input.Records)})
		} else if seenRows[res.Row] {
			errs = append(errs, ValidationError{prefix + ".row", fmt.Sprintf("duplicate row %d", res.Row)})
		} else {
			seenRows[res.Row] = true
		}
		if !res.Status.Valid() {
			errs = append(errs, ValidationError{prefix + ".status", fmt.Sprintf("invalid status: %q", res.Status)})
			continue
		}
		if res.Status == report.StatusScored {
			if !res.Score.Valid() {
				errs = append(errs, ValidationError{prefix + ".score", fmt.Sprintf("not a canonical score: %q", res.Score)})
			}
		} else if res.Score != "" {
			errs = append(errs, ValidationError{prefix + ".score", fmt.Sprintf("unexpected score %q on %s row", res.Score, res.Status)})
		}
		if (res.Status == report.StatusMalformed || res.Status == report.StatusOutOfRange) && res.Detail == "" {
			errs = append(errs, ValidationError{prefix + ".detail", "required for " + string(res.Status)})
		}
	}

	// Verify summary consistency against a recomputation.
	expected := report.ComputeSummary(r.Results)
	if r.Summary.Scored != expected.Scored {
		errs = append(errs, ValidationError{"summary.scored", fmt.Sprintf("expected %d, got %d", expected.Scored, r.Summary.Scored)})
	}
	if r.Summary.Incomplete != expected.Incomplete {
		errs = append(errs, ValidationError{"summary.incomplete", fmt.Sprintf("expected %d, got %d", expected.Incomplete, r.Summary.Incomplete)})
	}
	if r.Summary.Malformed != expected.Malformed {
		errs = append(errs, ValidationError{"summary.malformed", fmt.Sprintf("expected %d, got %d", expected.Malformed, r.Summary.Malformed)})
	}
	if r.Summary.OutOfRange != expected.OutOfRange {
		errs = append(errs, ValidationError{"summary.out_of_range", fmt.Sprintf("expected %d, got %d", expected.OutOfRange, r.Summary.OutOfRange)})
	}
	for score, n := range expected.Distribution {
		if r.Summary.Distribution[score] != n {
			errs = append(errs, ValidationError{"summary.distribution", fmt.Sprintf("score %s: expected %d, got %d", score, n, r.Summary.Distribution[score])})
		}
	}
	for score := range r.Summary.Distribution {
		if _, ok := expected.Distribution[score]; !ok {
			errs = append(errs, ValidationError{"summary.distribution", fmt.Sprintf("score %s not present in results", score)})
		}
	}

	return errs
}
