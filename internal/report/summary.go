package report

import (
	"fmt"
	"strings"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

const (
	summaryRuleWidth      = 70
	sectionRuleWidth      = 50
	gradeABoundary        = 90.0
	gradeBBoundary        = 80.0
	gradeCBoundary        = 70.0
	gradeDBoundary        = 60.0
	listedStatusConstant  = "LISTED"
	missingStatusConstant = "MISSING"
	accuracyUnknownConstant = "N/A"
)

// Grade maps a numeric score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= gradeABoundary:
		return "A"
	case score >= gradeBBoundary:
		return "B"
	case score >= gradeCBoundary:
		return "C"
	case score >= gradeDBoundary:
		return "D"
	default:
		return "F"
	}
}

// RenderSummary formats a report as a human-readable console summary.
func RenderSummary(auditReport audit.AuditReport) string {
	rule := strings.Repeat("=", summaryRuleWidth)
	sectionRule := "  " + strings.Repeat("-", sectionRuleWidth)

	displayName := auditReport.CompanyName
	if len(displayName) == 0 {
		displayName = auditReport.Company
	}

	lines := make([]string, 0)
	lines = append(lines, rule)
	lines = append(lines, fmt.Sprintf("  BRAND CONSISTENCY AUDIT: %s", displayName))
	lines = append(lines, fmt.Sprintf("  Timestamp: %s", auditReport.AuditTimestamp))
	lines = append(lines, rule)
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("  OVERALL SCORE: %.0f/100  [%s]  Grade: %s",
		auditReport.OverallScore, audit.ScoreBar(auditReport.OverallScore), Grade(auditReport.OverallScore)))
	lines = append(lines, "")

	lines = append(lines, "  SECTION SCORES:")
	lines = append(lines, sectionRule)
	for _, category := range audit.Categories() {
		sectionResult, found := auditReport.Sections[category]
		if !found {
			continue
		}
		lines = append(lines, fmt.Sprintf("    %-12s  %5.1f/100  [%s]",
			strings.ToUpper(string(category)), sectionResult.Score, audit.ScoreBar(sectionResult.Score)))
	}
	lines = append(lines, "")

	severityCounts := audit.CountSeverities(auditReport.Issues)
	lines = append(lines, fmt.Sprintf("  ISSUES: %d total", len(auditReport.Issues)))
	lines = append(lines, fmt.Sprintf("    Critical: %d  |  Warnings: %d  |  Info: %d",
		severityCounts.Critical, severityCounts.Warning, severityCounts.Info))
	lines = append(lines, "")

	if len(auditReport.Platforms) > 0 {
		lines = append(lines, "  DIRECTORY LISTINGS:")
		lines = append(lines, sectionRule)
		for _, listing := range auditReport.Platforms {
			status := missingStatusConstant
			accuracy := accuracyUnknownConstant
			if listing.HasListing {
				status = listedStatusConstant
				if listing.AccuracyScore != nil {
					accuracy = fmt.Sprintf("%.0f%%", *listing.AccuracyScore)
				}
			}
			lines = append(lines, fmt.Sprintf("    %-20s  %-8s  Accuracy: %s", listing.Name, status, accuracy))
		}
		lines = append(lines, "")
	}

	if len(auditReport.Recommendations) > 0 {
		lines = append(lines, "  RECOMMENDATIONS:")
		lines = append(lines, sectionRule)
		for recommendationIndex, recommendation := range auditReport.Recommendations {
			lines = append(lines, fmt.Sprintf("    %d. %s", recommendationIndex+1, recommendation))
		}
		lines = append(lines, "")
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
