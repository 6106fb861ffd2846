package domain

// GrowingTwelfths counts the twelfths whose average temperature falls
// inside the growth band, inclusive on both ends.
func (t Tuning) GrowingTwelfths(loc Location) int {
	count := 0
	for twelfth := 0; twelfth < t.TwelfthsPerYear; twelfth++ {
		avg := t.TwelfthAverage(loc, twelfth)
		if avg >= t.GrowthMinTemp && avg <= t.GrowthMaxTemp {
			count++
		}
	}
	return count
}

// GrowingDays returns the tile's growing season length in days: the
// number of growing twelfths times the twelfth length. Always a
// multiple of DaysPerTwelfth in [0, DaysPerYear].
func (t Tuning) GrowingDays(loc Location) int {
	return t.GrowingTwelfths(loc) * t.DaysPerTwelfth()
}

// YearRound is the cheap min/max shortcut for "grows all year": true
// when both seasonal extremes sit inside the growth band. It assumes
// the extremes bound every twelfth average, which the cosine model
// does not formally guarantee for arbitrary curves; callers wanting
// the exact answer use GrowingDays.
func (t Tuning) YearRound(minTemp, maxTemp float64) bool {
	return minTemp >= t.GrowthMinTemp && maxTemp <= t.GrowthMaxTemp
}
