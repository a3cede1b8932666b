package edss

import "fmt"

// DomainError reports a raw score outside its documented range.
// Out-of-range input is rejected rather than clamped so that clinical
// miscoding is never masked by a plausible-looking result.
type DomainError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("edss: %s score %d out of range %d-%d", e.Field, e.Value, e.Min, e.Max)
}

// rawField pairs a field name with its value and valid range for the
// pre-normalization check.
type rawField struct {
	name     string
	value    int
	min, max int
}

func (r RawScores) validate() error {
	fields := []rawField{
		{"visual", r.Visual, 0, 6},
		{"brainstem", r.Brainstem, 0, 5},
		{"pyramidal", r.Pyramidal, 0, 5},
		{"cerebellar", r.Cerebellar, 0, 5},
		{"sensory", r.Sensory, 0, 5},
		{"bowel_bladder", r.BowelBladder, 0, 6},
		{"cerebral", r.Cerebral, 0, 5},
		{"ambulation", r.Ambulation, 0, 16},
	}
	for _, f := range fields {
		if f.value < f.min || f.value > f.max {
			return &DomainError{Field: f.name, Value: f.value, Min: f.min, Max: f.max}
		}
	}
	return nil
}
