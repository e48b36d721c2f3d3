package report

import (
	"fmt"
	"time"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/directory"
	"github.com/uscmarketing/brandaudit/internal/nap"
	"github.com/uscmarketing/brandaudit/internal/provider"
	"github.com/uscmarketing/brandaudit/internal/visual"
	"github.com/uscmarketing/brandaudit/internal/voice"
)

const unknownCompanyRecommendationTemplateConstant = "Unknown company: %s"

// Generator runs every category audit and assembles the weighted
// brand health report.
type Generator struct {
	registry     *brand.Registry
	dataProvider provider.DataProvider
	clock        audit.Clock

	napAuditor       *nap.Auditor
	visualAuditor    *visual.Auditor
	voiceAuditor     *voice.Auditor
	directoryScanner *directory.Scanner
}

// NewGenerator builds a Generator. A nil clock falls back to the system
// clock.
func NewGenerator(registry *brand.Registry, dataProvider provider.DataProvider, clock audit.Clock) *Generator {
	if clock == nil {
		clock = audit.SystemClock{}
	}
	return &Generator{
		registry:         registry,
		dataProvider:     dataProvider,
		clock:            clock,
		napAuditor:       nap.NewAuditor(registry),
		visualAuditor:    visual.NewAuditor(registry),
		voiceAuditor:     voice.NewAuditor(registry),
		directoryScanner: directory.NewScanner(registry),
	}
}

// Generate runs all four audits for one company and produces the full
// report. An unknown company yields a zero-score report carrying a single
// explanatory recommendation.
func (generator *Generator) Generate(companySlug string) audit.AuditReport {
	timestamp := generator.clock.Now().UTC().Format(time.RFC3339)

	standard, found := generator.registry.Company(companySlug)
	if !found {
		return audit.AuditReport{
			Company:         companySlug,
			OverallScore:    0,
			Recommendations: []string{fmt.Sprintf(unknownCompanyRecommendationTemplateConstant, companySlug)},
			AuditTimestamp:  timestamp,
		}
	}

	pageSignals, _ := generator.dataProvider.PageSignals(companySlug)
	contentAnalysis, _ := generator.dataProvider.ContentAnalysis(companySlug)
	directoryListings := generator.dataProvider.DirectoryListings(companySlug)

	sections := map[audit.Category]audit.CategoryResult{
		audit.CategoryNAP:       generator.napAuditor.Audit(companySlug, generator.dataProvider.NAPListings(companySlug)),
		audit.CategoryVisual:    generator.visualAuditor.Audit(companySlug, pageSignals),
		audit.CategoryVoice:     generator.voiceAuditor.Audit(companySlug, contentAnalysis),
		audit.CategoryDirectory: generator.directoryScanner.Scan(companySlug, directoryListings),
	}

	allIssues := make([]audit.Deviation, 0)
	for _, category := range audit.Categories() {
		allIssues = append(allIssues, sections[category].Deviations...)
	}

	return audit.AuditReport{
		Company:         companySlug,
		CompanyName:     standard.OfficialName,
		OverallScore:    weightedScore(sections, generator.registry.Weights()),
		Sections:        sections,
		Issues:          allIssues,
		Recommendations: Recommendations(sections),
		Platforms:       directoryListings,
		AuditTimestamp:  timestamp,
	}
}

// GenerateAll produces reports for the given slugs in order.
func (generator *Generator) GenerateAll(companySlugs []string) []audit.AuditReport {
	reports := make([]audit.AuditReport, 0, len(companySlugs))
	for _, companySlug := range companySlugs {
		reports = append(reports, generator.Generate(companySlug))
	}
	return reports
}

// weightedScore averages the category scores weighted by their configured
// shares. Only categories present in the section map contribute, and the
// result is normalized by the weights actually used.
func weightedScore(sections map[audit.Category]audit.CategoryResult, weights brand.Weights) float64 {
	weightFor := map[audit.Category]int{
		audit.CategoryNAP:       weights.NAP,
		audit.CategoryVisual:    weights.Visual,
		audit.CategoryVoice:     weights.Voice,
		audit.CategoryDirectory: weights.Directories,
	}

	total := 0.0
	weightSum := 0
	for category, result := range sections {
		weight := weightFor[category]
		total += result.Score * float64(weight)
		weightSum += weight
	}
	if weightSum == 0 {
		return 0.0
	}
	return audit.RoundScore(total / float64(weightSum))
}
