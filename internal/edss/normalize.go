package edss

// NormalizeVisual compresses a raw Visual (optic) score 0-6 onto the
// 0-4 range used by the rating table:
//
//	0→0, 1→1, 2→2, 3→2, 4→3, 5→3, 6→4
//
// Behavior outside 0-6 is undefined; Calculate rejects such input
// before this function runs.
func NormalizeVisual(raw int) int {
	switch {
	case raw == 6:
		return 4
	case raw >= 4:
		return 3
	case raw >= 2:
		return 2
	default:
		return raw
	}
}

// NormalizeBowelBladder compresses a raw Bowel&Bladder score 0-6 onto
// the 0-5 range used by the rating table:
//
//	0→0, 1→1, 2→2, 3→3, 4→3, 5→4, 6→5
//
// Behavior outside 0-6 is undefined; Calculate rejects such input
// before this function runs.
func NormalizeBowelBladder(raw int) int {
	switch {
	case raw == 6:
		return 5
	case raw == 5:
		return 4
	case raw >= 3:
		return 3
	default:
		return raw
	}
}
