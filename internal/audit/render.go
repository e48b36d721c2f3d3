package audit

import (
	"fmt"
	"strings"
)

const (
	scoreBarWidthConstant          = 20
	scoreBarFilledRuneConstant     = "#"
	scoreBarEmptyRuneConstant      = "-"
	checkLineCleanSuffixConstant   = "  (clean)"
	severityMarkerCriticalConstant = "!!!"
	severityMarkerWarningConstant  = " ! "
	severityMarkerInfoConstant     = " . "
	bannerRuleWidthConstant        = 60
	bannerRuleRuneConstant         = "="
)

// ScoreBar renders a 20-character progress bar for a 0-100 score.
func ScoreBar(score float64) string {
	filled := int(ClampScore(score) / 5)
	return strings.Repeat(scoreBarFilledRuneConstant, filled) + strings.Repeat(scoreBarEmptyRuneConstant, scoreBarWidthConstant-filled)
}

// RenderCheckLine formats one company's category result as a console line with
// score, bar, and severity tallies.
func RenderCheckLine(displayName string, result CategoryResult) string {
	line := fmt.Sprintf("  %-20s  %5.1f/100  [%s]", displayName, result.Score, ScoreBar(result.Score))

	counts := CountSeverities(result.Deviations)
	if counts.Total() == 0 {
		return line + checkLineCleanSuffixConstant
	}

	parts := make([]string, 0, 3)
	if counts.Critical > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", counts.Critical, SeverityCritical))
	}
	if counts.Warning > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", counts.Warning, SeverityWarning))
	}
	if counts.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", counts.Info, SeverityInfo))
	}
	return line + fmt.Sprintf("  (%s)", strings.Join(parts, ", "))
}

// SeverityMarker returns the console marker for a severity.
func SeverityMarker(severity Severity) string {
	switch severity {
	case SeverityCritical:
		return severityMarkerCriticalConstant
	case SeverityWarning:
		return severityMarkerWarningConstant
	case SeverityInfo:
		return severityMarkerInfoConstant
	default:
		return "   "
	}
}

// RenderBanner formats a section heading framed by rule lines.
func RenderBanner(title string) string {
	rule := strings.Repeat(bannerRuleRuneConstant, bannerRuleWidthConstant)
	return fmt.Sprintf("\n%s\n  %s\n%s\n", rule, title, rule)
}
