package pain

// Severity buckets a pain level for display. The same mapping drives both the
// selector labels and the body diagram fill, so it must stay in one place.
type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

// SeverityFor maps a pain level in [1,10] to its severity bucket.
func SeverityFor(level int) Severity {
	if level <= 3 {
		return SeverityMild
	}
	if level <= 6 {
		return SeverityModerate
	}
	return SeveritySevere
}

// SeverityColor returns the highlight color for a pain level.
func SeverityColor(level int) string {
	switch SeverityFor(level) {
	case SeverityMild:
		return "#EAB308" // yellow
	case SeverityModerate:
		return "#F97316" // orange
	default:
		return "#EF4444" // red
	}
}
