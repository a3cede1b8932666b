package fieldmap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/clinscore/edsscalc/internal/edss"
)

// ParseError reports a field that is present but whose value cannot be
// used as an integer score. It is kept distinct from a missing field:
// a malformed value is a data-quality problem, while an absent one is
// routine in partially collected clinical data and yields no result.
type ParseError struct {
	Key   string
	Value any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fieldmap: key %q: value %v is not an integer score", e.Key, e.Value)
}

// Extract resolves the eight raw scores from rec using the dictionary's
// keys, with suffix appended to every key before lookup (longitudinal
// exports repeat the same fields per visit, e.g. "_v2"). It returns
// ok=false with a nil error when any required key is absent, null, or
// holds an empty string, and a *ParseError when a present value is not
// an integer.
func Extract(rec map[string]any, d *Dictionary, suffix string) (edss.RawScores, bool, error) {
	var raw edss.RawScores
	fields := []struct {
		key string
		dst *int
	}{
		{d.Keys.Visual, &raw.Visual},
		{d.Keys.Brainstem, &raw.Brainstem},
		{d.Keys.Pyramidal, &raw.Pyramidal},
		{d.Keys.Cerebellar, &raw.Cerebellar},
		{d.Keys.Sensory, &raw.Sensory},
		{d.Keys.BowelBladder, &raw.BowelBladder},
		{d.Keys.Cerebral, &raw.Cerebral},
		{d.Keys.Ambulation, &raw.Ambulation},
	}
	for _, f := range fields {
		key := f.key + suffix
		v, ok := rec[key]
		if !ok {
			return edss.RawScores{}, false, nil
		}
		n, present, err := toInt(v)
		if err != nil {
			return edss.RawScores{}, false, &ParseError{Key: key, Value: v}
		}
		if !present {
			return edss.RawScores{}, false, nil
		}
		*f.dst = n
	}
	return raw, true, nil
}

// toInt accepts the value shapes the record loaders produce: strings
// (CSV), float64 (JSON numbers), and Go integer types. present=false
// marks values that count as "not collected".
func toInt(v any) (n int, present bool, err error) {
	switch t := v.(type) {
	case nil:
		return 0, false, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, err
		}
		return n, true, nil
	case int:
		return t, true, nil
	case int64:
		return int(t), true, nil
	case float64:
		if t != math.Trunc(t) {
			return 0, false, fmt.Errorf("non-integral number %v", t)
		}
		return int(t), true, nil
	default:
		return 0, false, fmt.Errorf("unsupported value type %T", v)
	}
}
