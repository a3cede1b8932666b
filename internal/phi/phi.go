// Package phi masks patient-identifying values in records with
// [MASKED] before they are logged or echoed.
package phi

import "regexp"

// identifierKey matches record keys that carry direct identifiers,
// with or without a visit suffix.
var identifierKey = regexp.MustCompile(
	`(?i)^(patient[_-]?id|subject[_-]?id|mrn|ssn|nhs[_-]?number|` +
		`(first|last|full)?[_-]?name|dob|(date[_-]?of[_-]?)?birth[_-]?date|` +
		`email|phone|address)([_-].*)?$`)

var patterns []*regexp.Regexp

func init() {
	raw := []string{
		// US social security numbers
		`\b\d{3}-\d{2}-\d{4}\b`,
		// Email addresses
		`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`,
		// ISO and slash-separated calendar dates
		`\b\d{4}-\d{2}-\d{2}\b`,
		`\b\d{1,2}/\d{1,2}/\d{4}\b`,
		// Phone numbers with separators
		`\b\+?\d{1,3}[-. ]\d{3}[-. ]\d{3,4}[-. ]?\d{0,4}\b`,
	}
	for _, r := range raw {
		patterns = append(patterns, regexp.MustCompile(r))
	}
}

// Mask replaces identifying patterns in free text with [MASKED].
func Mask(text string) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, "[MASKED]")
	}
	return text
}

// MaskRecord returns a copy of rec safe for logging: values under
// identifier keys are replaced wholesale, and remaining string values
// are pattern-masked.
func MaskRecord(rec map[string]any) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		switch {
		case identifierKey.MatchString(k):
			out[k] = "[MASKED]"
		default:
			if s, ok := v.(string); ok {
				out[k] = Mask(s)
			} else {
				out[k] = v
			}
		}
	}
	return out
}
