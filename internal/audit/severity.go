package audit

import "math"

// PriorityForSeverities maps the severities present in a deviation group to a
// task priority: any critical makes the group P1, any warning without a
// critical makes it P2, and everything else is P3. This is the single place
// the severity-to-priority policy lives.
func PriorityForSeverities(severities []Severity) TaskPriority {
	sawWarning := false
	for _, severity := range severities {
		switch severity {
		case SeverityCritical:
			return TaskPriorityP1
		case SeverityWarning:
			sawWarning = true
		}
	}
	if sawWarning {
		return TaskPriorityP2
	}
	return TaskPriorityP3
}

// PriorityForDeviations applies PriorityForSeverities to a deviation group.
func PriorityForDeviations(deviations []Deviation) TaskPriority {
	severities := make([]Severity, 0, len(deviations))
	for _, deviation := range deviations {
		severities = append(severities, deviation.Severity)
	}
	return PriorityForSeverities(severities)
}

// SeverityForRatio grades a fuzzy-match ratio against the configured
// thresholds. The boolean reports whether a deviation should be emitted at
// all; an exact match (ratio == 1) produces none.
func SeverityForRatio(ratio float64, criticalBelow float64, warningBelow float64) (Severity, bool) {
	switch {
	case ratio >= 1.0:
		return "", false
	case ratio < criticalBelow:
		return SeverityCritical, true
	case ratio < warningBelow:
		return SeverityWarning, true
	default:
		return SeverityInfo, true
	}
}

// ClampScore bounds a score to the [0,100] range.
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RoundScore rounds a score to one decimal place.
func RoundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
