package edss

// rankSummary is the ranked view of the seven normalized Functional
// System scores that the rating table branches on: the largest value,
// its multiplicity, and (on demand) the runner-up and its multiplicity.
type rankSummary struct {
	fs         functionalSystems
	ambulation int
	max        int
	maxCount   int
}

func newRankSummary(fs functionalSystems, ambulation int) rankSummary {
	r := rankSummary{fs: fs, ambulation: ambulation, max: -1}
	for _, v := range fs {
		switch {
		case v > r.max:
			r.max = v
			r.maxCount = 1
		case v == r.max:
			r.maxCount++
		}
	}
	return r
}

// secondMax returns the largest value strictly below the max and how
// many of the seven scores equal it. Both are zero when all seven
// scores tie at the max.
func (r rankSummary) secondMax() (value, count int) {
	for _, v := range r.fs {
		if v >= r.max {
			continue
		}
		switch {
		case v > value:
			value = v
			count = 1
		case v == value:
			count++
		}
	}
	return value, count
}
