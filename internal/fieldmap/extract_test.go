package fieldmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinscore/edsscalc/internal/edss"
	"github.com/clinscore/edsscalc/internal/fieldmap"
)

func defaultDict(t *testing.T) *fieldmap.Dictionary {
	t.Helper()
	d, err := fieldmap.LoadBuiltin("default")
	require.NoError(t, err)
	return d
}

func fullRecord() map[string]any {
	return map[string]any{
		"visual":        "1",
		"brainstem":     "2",
		"pyramidal":     "1",
		"cerebellar":    "3",
		"sensory":       "1",
		"bowel_bladder": "4",
		"cerebral":      "2",
		"ambulation":    "1",
	}
}

func TestExtractStringValues(t *testing.T) {
	rq := require.New(t)

	raw, ok, err := fieldmap.Extract(fullRecord(), defaultDict(t), "")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal(edss.RawScores{
		Visual: 1, Brainstem: 2, Pyramidal: 1, Cerebellar: 3,
		Sensory: 1, BowelBladder: 4, Cerebral: 2, Ambulation: 1,
	}, raw)
}

func TestExtractNumericValues(t *testing.T) {
	rq := require.New(t)

	rec := map[string]any{
		"visual": float64(2), "brainstem": 0, "pyramidal": float64(1),
		"cerebellar": 0, "sensory": int64(1), "bowel_bladder": 0,
		"cerebral": 0, "ambulation": float64(3),
	}
	raw, ok, err := fieldmap.Extract(rec, defaultDict(t), "")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal(edss.RawScores{Visual: 2, Pyramidal: 1, Sensory: 1, Ambulation: 3}, raw)
}

func TestExtractSuffix(t *testing.T) {
	rq := require.New(t)

	rec := map[string]any{}
	for k, v := range fullRecord() {
		rec[k+"_v2"] = v
	}

	// Suffixed keys resolve.
	raw, ok, err := fieldmap.Extract(rec, defaultDict(t), "_v2")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal(3, raw.Cerebellar)

	// Without the suffix the record is incomplete, not an error.
	_, ok, err = fieldmap.Extract(rec, defaultDict(t), "")
	rq.NoError(err)
	rq.False(ok)
}

func TestExtractIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rec map[string]any)
	}{
		{"missing key", func(rec map[string]any) { delete(rec, "sensory") }},
		{"empty string", func(rec map[string]any) { rec["sensory"] = "" }},
		{"blank string", func(rec map[string]any) { rec["sensory"] = "  " }},
		{"null value", func(rec map[string]any) { rec["sensory"] = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			rec := fullRecord()
			tt.mutate(rec)
			_, ok, err := fieldmap.Extract(rec, defaultDict(t), "")
			rq.NoError(err, "incomplete input is routine, never an error")
			rq.False(ok)
		})
	}
}

func TestExtractMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"non-numeric string", "high"},
		{"decimal string", "2.5"},
		{"fractional number", 2.5},
		{"bool", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rq := require.New(t)

			rec := fullRecord()
			rec["cerebral"] = tt.value
			_, ok, err := fieldmap.Extract(rec, defaultDict(t), "")
			rq.False(ok)

			var pe *fieldmap.ParseError
			rq.ErrorAs(err, &pe)
			rq.Equal("cerebral", pe.Key)
		})
	}
}

func TestExtractNegativePassesThrough(t *testing.T) {
	rq := require.New(t)

	// Range checking belongs to the engine, not extraction.
	rec := fullRecord()
	rec["visual"] = "-1"
	raw, ok, err := fieldmap.Extract(rec, defaultDict(t), "")
	rq.NoError(err)
	rq.True(ok)
	rq.Equal(-1, raw.Visual)
}
