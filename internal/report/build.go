package report

import (
	"path/filepath"

	"github.com/samber/lo"

	"github.com/clinscore/edsscalc/internal/dataset"
	"github.com/clinscore/edsscalc/internal/edss"
	"github.com/clinscore/edsscalc/internal/fieldmap"
)

// Build scores every record in the dataset with the given dictionary
// and suffix and assembles the report. Tool and Version are left for
// the caller to fill.
func Build(ds *dataset.Dataset, dict *fieldmap.Dictionary, suffix string) *Report {
	results := make([]Result, 0, len(ds.Records))
	for i, rec := range ds.Records {
		results = append(results, scoreRecord(i+1, rec, dict, suffix))
	}
	return &Report{
		Input: Input{
			DataFile:   filepath.Base(ds.FilePath),
			DataHash:   ds.Hash,
			Dictionary: dict.Name,
			Suffix:     suffix,
			Records:    len(ds.Records),
		},
		Summary: ComputeSummary(results),
		Results: results,
	}
}

func scoreRecord(row int, rec dataset.Record, dict *fieldmap.Dictionary, suffix string) Result {
	raw, ok, err := fieldmap.Extract(rec, dict, suffix)
	if err != nil {
		return Result{Row: row, Status: StatusMalformed, Detail: err.Error()}
	}
	if !ok {
		return Result{Row: row, Status: StatusIncomplete}
	}
	score, err := edss.Calculate(raw)
	if err != nil {
		return Result{Row: row, Status: StatusOutOfRange, Detail: err.Error()}
	}
	return Result{Row: row, Status: StatusScored, Score: score}
}

// ComputeSummary derives the per-status counts and the score
// distribution from results.
func ComputeSummary(results []Result) Summary {
	scored := lo.Filter(results, func(r Result, _ int) bool { return r.Status == StatusScored })

	s := Summary{
		Scored:     len(scored),
		Incomplete: lo.CountBy(results, func(r Result) bool { return r.Status == StatusIncomplete }),
		Malformed:  lo.CountBy(results, func(r Result) bool { return r.Status == StatusMalformed }),
		OutOfRange: lo.CountBy(results, func(r Result) bool { return r.Status == StatusOutOfRange }),
	}
	if len(scored) > 0 {
		s.Distribution = lo.CountValuesBy(scored, func(r Result) edss.Score { return r.Score })
	}
	return s
}
