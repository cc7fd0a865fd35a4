package services

import "math"

// Derived metrics are computed here, from raw grouped facts returned by
// the repositories. An empty group yields nil, never 0: a class nobody
// registered for has no attendance percentage, and an unrated course has
// no average.

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AttendancePercent derives the report-based attendance percentage from a
// present count and the live registered-student count, rounded to one
// decimal. Nil when nobody is registered.
func AttendancePercent(present, registered int) *float64 {
	if registered <= 0 {
		return nil
	}
	pct := round1(float64(present) / float64(registered) * 100)
	return &pct
}

// PresentPercent derives the mark-based attendance percentage from
// student attendance tallies, rounded to two decimals. Nil when no marks
// exist. This figure is independent of the lecturer's self-reported
// present count and is never reconciled with it.
func PresentPercent(presentMarks, totalMarks int) *float64 {
	if totalMarks <= 0 {
		return nil
	}
	pct := round2(float64(presentMarks) / float64(totalMarks) * 100)
	return &pct
}

// AverageRating derives the mean rating from a sum and count, rounded to
// two decimals. Nil when no ratings exist.
func AverageRating(sum, count int) *float64 {
	if count <= 0 {
		return nil
	}
	avg := round2(float64(sum) / float64(count))
	return &avg
}

// AveragePresent derives the mean self-reported present count per report,
// rounded to one decimal. Nil when no reports exist.
func AveragePresent(sumPresent, reportCount int) *float64 {
	if reportCount <= 0 {
		return nil
	}
	avg := round1(float64(sumPresent) / float64(reportCount))
	return &avg
}
