package phi

import (
	"strings"
	"testing"
)

func TestMaskSSN(t *testing.T) {
	got := Mask("patient ssn 123-45-6789 on file")
	if strings.Contains(got, "123-45-6789") {
		t.Error("SSN should be masked")
	}
	if !strings.Contains(got, "[MASKED]") {
		t.Error("expected [MASKED] replacement")
	}
}

func TestMaskEmail(t *testing.T) {
	got := Mask("contact jane.doe@example.org for follow-up")
	if strings.Contains(got, "jane.doe@example.org") {
		t.Error("email should be masked")
	}
}

func TestMaskDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"iso", "visit on 2024-01-15"},
		{"slash", "born 4/12/1968"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mask(tt.input)
			if !strings.Contains(got, "[MASKED]") {
				t.Errorf("expected masking for %q, got: %s", tt.name, got)
			}
		})
	}
}

func TestMaskPreservesPlainText(t *testing.T) {
	input := "ambulation improved since last visit"
	if got := Mask(input); got != input {
		t.Errorf("non-identifying text was modified: %s", got)
	}
}

func TestMaskRecord(t *testing.T) {
	rec := map[string]any{
		"patient_id": "P-0042",
		"name":       "Jane Doe",
		"dob_v2":     "1968-04-12",
		"note":       "seen 2024-01-15, stable",
		"visual":     "2",
		"ambulation": 3,
	}
	got := MaskRecord(rec)

	for _, key := range []string{"patient_id", "name", "dob_v2"} {
		if got[key] != "[MASKED]" {
			t.Errorf("%s = %v, want [MASKED]", key, got[key])
		}
	}
	if note := got["note"].(string); strings.Contains(note, "2024-01-15") {
		t.Errorf("date in note not masked: %s", note)
	}
	if got["visual"] != "2" {
		t.Errorf("score value modified: %v", got["visual"])
	}
	if got["ambulation"] != 3 {
		t.Errorf("numeric value modified: %v", got["ambulation"])
	}

	// Input record untouched.
	if rec["name"] != "Jane Doe" {
		t.Error("MaskRecord mutated its input")
	}
}
