package scoring

// Band groups scores for colouring: high >= 80, mid >= 60, low otherwise.
type Band int

const (
	BandLow Band = iota
	BandMid
	BandHigh
)

// BandOf returns the colour band for a percentage score.
func BandOf(score int) Band {
	switch {
	case score >= 80:
		return BandHigh
	case score >= 60:
		return BandMid
	default:
		return BandLow
	}
}

// Label returns the qualitative label for a percentage score.
func Label(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Average"
	default:
		return "Below Average"
	}
}
