// Package report defines the output object for batch scoring runs.
package report

import "github.com/clinscore/edsscalc/internal/edss"

// Report is the top-level output object for one batch run.
type Report struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Input   Input    `json:"input"`
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Input describes the data file and mapping settings used for the run.
type Input struct {
	DataFile   string `json:"data_file"`
	DataHash   string `json:"data_hash"`
	Dictionary string `json:"dictionary"`
	Suffix     string `json:"suffix,omitempty"`
	Records    int    `json:"records"`
}

// Result is the outcome for a single record. Row numbers are 1-based
// in record order.
type Result struct {
	Row    int        `json:"row"`
	Status Status     `json:"status"`
	Score  edss.Score `json:"score,omitempty"`
	Detail string     `json:"detail,omitempty"`
}

// Summary holds per-status counts and the score distribution over the
// scored records.
type Summary struct {
	Scored       int                `json:"scored"`
	Incomplete   int                `json:"incomplete"`
	Malformed    int                `json:"malformed"`
	OutOfRange   int                `json:"out_of_range"`
	Distribution map[edss.Score]int `json:"distribution,omitempty"`
}
