package scoring

// The three label mappings below use deliberately different thresholds.
// Category drives the report wording, Class drives gauge coloring, and
// Level drives the recommendation priority ordering. They are kept as
// separate tables because the UI consumes all three independently.

// Category maps a score to a report category at 85/70/50/30 cut points.
func Category(score int) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "average"
	case score >= 30:
		return "poor"
	}
	return "bad"
}

// Class maps a score to a display class at 70/50 cut points.
func Class(score int) string {
	switch {
	case score >= 70:
		return "good"
	case score >= 50:
		return "average"
	}
	return "poor"
}

// Level maps a score to a severity level at 80/70/50/30 cut points.
func Level(score int) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "medium"
	case score >= 30:
		return "low"
	}
	return "critical"
}
