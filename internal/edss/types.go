// Package edss computes the Expanded Disability Status Scale from eight
// raw sub-scores: seven Functional System scores and an Ambulation score.
// Every function in this package is pure; it is safe to call from any
// number of goroutines.
package edss

// RawScores holds the eight caller-supplied integers before conversion.
// Visual and BowelBladder use their native 0-6 scales; the other five
// Functional Systems are 0-5 and Ambulation is 0-16.
type RawScores struct {
	Visual       int `json:"visual"`
	Brainstem    int `json:"brainstem"`
	Pyramidal    int `json:"pyramidal"`
	Cerebellar   int `json:"cerebellar"`
	Sensory      int `json:"sensory"`
	BowelBladder int `json:"bowel_bladder"`
	Cerebral     int `json:"cerebral"`
	Ambulation   int `json:"ambulation"`
}

// functionalSystems is the ordered vector of the seven Functional System
// scores after Visual and BowelBladder conversion.
type functionalSystems [7]int

// normalized converts the raw Functional System scores onto the ranges
// used by the rating table. Ambulation is carried separately.
func (r RawScores) normalized() functionalSystems {
	return functionalSystems{
		NormalizeVisual(r.Visual),
		r.Brainstem,
		r.Pyramidal,
		r.Cerebellar,
		r.Sensory,
		NormalizeBowelBladder(r.BowelBladder),
		r.Cerebral,
	}
}

// Score is a discrete EDSS value, kept as its canonical decimal text:
// whole numbers carry no decimal point ("4", never "4.0") and half
// points carry exactly one decimal place.
type Score string

const (
	Score0   Score = "0"
	Score1   Score = "1"
	Score1_5 Score = "1.5"
	Score2   Score = "2"
	Score2_5 Score = "2.5"
	Score3   Score = "3"
	Score3_5 Score = "3.5"
	Score4   Score = "4"
	Score4_5 Score = "4.5"
	Score5   Score = "5"
	Score5_5 Score = "5.5"
	Score6   Score = "6"
	Score6_5 Score = "6.5"
	Score7   Score = "7"
	Score7_5 Score = "7.5"
	Score8   Score = "8"
	Score8_5 Score = "8.5"
	Score9   Score = "9"
	Score9_5 Score = "9.5"
	Score10  Score = "10"
)

// AllScores lists every canonical EDSS value in ascending order.
func AllScores() []Score {
	return []Score{
		Score0, Score1, Score1_5, Score2, Score2_5,
		Score3, Score3_5, Score4, Score4_5, Score5,
		Score5_5, Score6, Score6_5, Score7, Score7_5,
		Score8, Score8_5, Score9, Score9_5, Score10,
	}
}

func (s Score) Valid() bool {
	switch s {
	case Score0, Score1, Score1_5, Score2, Score2_5,
		Score3, Score3_5, Score4, Score4_5, Score5,
		Score5_5, Score6, Score6_5, Score7, Score7_5,
		Score8, Score8_5, Score9, Score9_5, Score10:
		return true
	}
	return false
}

func (s Score) String() string { return string(s) }
