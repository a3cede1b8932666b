package report

// Status classifies the outcome for one record.
type Status string

const (
	// StatusScored means all eight values resolved and the engine
	// produced a score.
	StatusScored Status = "SCORED"
	// StatusIncomplete means a required field was absent or empty; a
	// routine condition in partially collected data, not an error.
	StatusIncomplete Status = "INCOMPLETE"
	// StatusMalformed means a field was present but not parseable as an
	// integer score.
	StatusMalformed Status = "MALFORMED"
	// StatusOutOfRange means a parsed value violated its documented
	// score range.
	StatusOutOfRange Status = "OUT_OF_RANGE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScored, StatusIncomplete, StatusMalformed, StatusOutOfRange:
		return true
	}
	return false
}
