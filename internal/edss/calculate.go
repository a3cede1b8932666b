package edss

// Calculate maps the eight raw sub-scores to the final EDSS value.
// Raw values are range-checked first (*DomainError on violation). An
// Ambulation score of 3 or greater determines the result on its own;
// below that the seven normalized Functional System scores are ranked
// and the rating table decides.
func Calculate(raw RawScores) (Score, error) {
	if err := raw.validate(); err != nil {
		return "", err
	}
	if raw.Ambulation >= 3 {
		return ambulationScores[raw.Ambulation], nil
	}
	return resolve(raw.normalized(), raw.Ambulation), nil
}
