package domain

// RatingLabel is one of the six bands the 0-10 rating scale partitions into.
type RatingLabel string

const (
	RatingExcellent        RatingLabel = "Excellent"
	RatingVeryGood         RatingLabel = "Very Good"
	RatingGood             RatingLabel = "Good"
	RatingSatisfactory     RatingLabel = "Satisfactory"
	RatingNeedsImprovement RatingLabel = "Needs Improvement"
	RatingPoor             RatingLabel = "Poor"
)

// Single ordered threshold table. Every call site classifies through
// ClassifyRating; the bands must never be redefined elsewhere.
var ratingBands = []struct {
	min   float64
	label RatingLabel
}{
	{9, RatingExcellent},
	{8, RatingVeryGood},
	{7, RatingGood},
	{6, RatingSatisfactory},
	{5, RatingNeedsImprovement},
}

// ClassifyRating maps a rating to its band. Boundaries are closed on the
// lower end: 8.0 is Very Good, not Good. Anything below 5 is Poor.
func ClassifyRating(value float64) RatingLabel {
	for _, band := range ratingBands {
		if value >= band.min {
			return band.label
		}
	}
	return RatingPoor
}
