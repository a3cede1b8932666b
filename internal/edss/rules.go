package edss

// ambulationScores determines the EDSS directly for Ambulation 3-16,
// independent of every Functional System score.
var ambulationScores = map[int]Score{
	3:  Score5,
	4:  Score5_5,
	5:  Score6,
	6:  Score6,
	7:  Score6,
	8:  Score6_5,
	9:  Score6_5,
	10: Score7,
	11: Score7_5,
	12: Score8,
	13: Score8_5,
	14: Score9,
	15: Score9_5,
	16: Score10,
}

// resolveRule is one guarded step of the rating table. apply returns
// the score and true when the rule decides the case; false hands the
// case to the next rule.
type resolveRule struct {
	name  string
	apply func(r rankSummary) (Score, bool)
}

// resolveRules encodes the rating table as a decision list. The order
// is part of the contract: several guards overlap, and the first rule
// that decides a case is authoritative. A single grade-4 system with a
// low runner-up may decline to decide and fall through to the
// ambulation-2 rule below it.
var resolveRules = []resolveRule{
	{
		name: "fs-severe",
		apply: func(r rankSummary) (Score, bool) {
			if r.max >= 5 {
				return Score5, true
			}
			return "", false
		},
	},
	{
		name: "fs4-multi",
		apply: func(r rankSummary) (Score, bool) {
			if r.max == 4 && r.maxCount >= 2 {
				return Score5, true
			}
			return "", false
		},
	},
	{
		name: "fs4-single",
		apply: func(r rankSummary) (Score, bool) {
			if r.max != 4 || r.maxCount != 1 {
				return "", false
			}
			second, count := r.secondMax()
			switch {
			case second == 3 && count > 2:
				return Score5, true
			case second == 3 || second == 2:
				return Score4_5, true
			case r.ambulation < 2 && second < 2:
				return Score4, true
			}
			// second is 0 or 1 with ambulation 2: not decided here.
			return "", false
		},
	},
	{
		name: "fs3-six",
		apply: func(r rankSummary) (Score, bool) {
			if r.max == 3 && r.maxCount >= 6 {
				return Score5, true
			}
			return "", false
		},
	},
	{
		name: "ambulation-two",
		apply: func(r rankSummary) (Score, bool) {
			if r.ambulation == 2 {
				return Score4_5, true
			}
			return "", false
		},
	},
	{
		name: "fs3-five",
		apply: func(r rankSummary) (Score, bool) {
			if r.max == 3 && r.maxCount == 5 {
				return Score4_5, true
			}
			return "", false
		},
	},
	{
		name: "fs3-multi",
		apply: func(r rankSummary) (Score, bool) {
			if r.max != 3 || r.maxCount < 2 {
				return "", false
			}
			if r.maxCount == 2 {
				if second, _ := r.secondMax(); second <= 1 {
					return Score3_5, true
				}
			}
			return Score4, true
		},
	},
	{
		name: "fs3-single",
		apply: func(r rankSummary) (Score, bool) {
			if r.max != 3 {
				return "", false
			}
			second, count := r.secondMax()
			if second == 2 {
				if count >= 3 {
					return Score4, true
				}
				return Score3_5, true
			}
			return Score3, true
		},
	},
	{
		name: "fs2",
		apply: func(r rankSummary) (Score, bool) {
			if r.max != 2 {
				return "", false
			}
			switch {
			case r.maxCount >= 6:
				return Score4, true
			case r.maxCount == 5:
				return Score3_5, true
			case r.maxCount >= 3:
				return Score3, true
			case r.maxCount == 2:
				return Score2_5, true
			default:
				return Score2, true
			}
		},
	},
	{
		name: "ambulation-one",
		apply: func(r rankSummary) (Score, bool) {
			if r.ambulation == 1 {
				return Score2, true
			}
			return "", false
		},
	},
	{
		name: "fs1",
		apply: func(r rankSummary) (Score, bool) {
			if r.max != 1 {
				return "", false
			}
			if r.maxCount >= 2 {
				return Score1_5, true
			}
			return Score1, true
		},
	},
	{
		name: "no-disability",
		apply: func(r rankSummary) (Score, bool) {
			return Score0, true
		},
	},
}

// resolve runs the decision list over the seven normalized Functional
// System scores. Callers have already handled Ambulation >= 3.
func resolve(fs functionalSystems, ambulation int) Score {
	summary := newRankSummary(fs, ambulation)
	for _, rule := range resolveRules {
		if score, ok := rule.apply(summary); ok {
			return score
		}
	}
	return Score0 // unreachable: the final rule always decides
}
