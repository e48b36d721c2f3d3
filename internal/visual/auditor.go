package visual

import (
	"fmt"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/match"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	primaryColorMissingDeduction = 25.0
	accentColorMissingDeduction  = 15.0
	offBrandColorDeduction       = 5.0
	missingFontDeduction         = 20.0
	extraFontDeduction           = 5.0
	colorSubScoreWeight          = 0.6
	fontSubScoreWeight           = 0.4

	websitePlatformLabelConstant         = "website"
	notDetectedValueConstant             = "not detected"
	brandPaletteExpectationConstant      = "brand palette only"
	brandFontsExpectationConstant        = "brand fonts only"
	unknownCompanyDetailTemplateConstant = "Unknown company: %s"
	pendingCompanyDetailTemplateConstant = "%s is marked pending; visual audit skipped."
	auditDetailTemplateConstant          = "Visual audit for %s: score %.0f/100 (%d pages scanned, %d with issues, %d total findings)"
)

// Auditor scores visual identity signals against the brand standard.
type Auditor struct {
	registry *brand.Registry
}

// NewAuditor builds an Auditor bound to the given registry.
func NewAuditor(registry *brand.Registry) *Auditor {
	return &Auditor{registry: registry}
}

// Audit scores one company's page signals. A zero-value PageSignals reports
// both brand colors as undetected.
func (auditor *Auditor) Audit(companySlug string, signals provider.PageSignals) audit.CategoryResult {
	standard, found := auditor.registry.Company(companySlug)
	if !found {
		return audit.CategoryResult{
			Category: audit.CategoryVisual,
			Score:    0,
			Details:  fmt.Sprintf(unknownCompanyDetailTemplateConstant, companySlug),
		}
	}
	if standard.Status == brand.StatusPending {
		return audit.CategoryResult{
			Category: audit.CategoryVisual,
			Score:    0,
			Details:  fmt.Sprintf(pendingCompanyDetailTemplateConstant, standard.OfficialName),
		}
	}

	colorScore, colorDeviations := auditor.scoreColors(standard.AccentColor, signals)
	fontScore, fontDeviations := auditor.scoreFonts(signals)

	deviations := append(colorDeviations, fontDeviations...)
	finalScore := audit.RoundScore(colorScore*colorSubScoreWeight + fontScore*fontSubScoreWeight)

	details := fmt.Sprintf(auditDetailTemplateConstant,
		standard.OfficialName, finalScore, signals.PagesScanned, signals.PagesWithIssues, len(deviations))

	return audit.CategoryResult{
		Category:   audit.CategoryVisual,
		Score:      finalScore,
		Details:    details,
		Deviations: deviations,
	}
}

func (auditor *Auditor) scoreColors(accentColor string, signals provider.PageSignals) (float64, []audit.Deviation) {
	deviations := make([]audit.Deviation, 0)
	score := 100.0

	if !signals.HasPrimaryColor {
		score -= primaryColorMissingDeduction
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldPrimaryColor,
			Expected: auditor.registry.PrimaryColor(),
			Found:    notDetectedValueConstant,
			Severity: audit.SeverityCritical,
			Platform: websitePlatformLabelConstant,
		})
	}

	accentPresent := false
	for _, observedColor := range signals.HexColorsFound {
		if match.NormalizeHex(observedColor) == match.NormalizeHex(accentColor) {
			accentPresent = true
			break
		}
	}
	if !accentPresent {
		score -= accentColorMissingDeduction
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldAccentColor,
			Expected: accentColor,
			Found:    notDetectedValueConstant,
			Severity: audit.SeverityWarning,
			Platform: websitePlatformLabelConstant,
		})
	}

	for _, offBrandColor := range signals.OffBrandColors {
		score -= offBrandColorDeduction
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldOffBrandColor,
			Expected: brandPaletteExpectationConstant,
			Found:    offBrandColor,
			Severity: audit.SeverityInfo,
			Platform: websitePlatformLabelConstant,
		})
	}

	return audit.ClampScore(score), deviations
}

func (auditor *Auditor) scoreFonts(signals provider.PageSignals) (float64, []audit.Deviation) {
	deviations := make([]audit.Deviation, 0)
	score := 100.0

	for _, missingFont := range signals.MissingFonts {
		score -= missingFontDeduction
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldFontMissing,
			Expected: missingFont,
			Found:    notDetectedValueConstant,
			Severity: audit.SeverityCritical,
			Platform: websitePlatformLabelConstant,
		})
	}

	for _, extraFont := range signals.ExtraFonts {
		score -= extraFontDeduction
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldFontExtra,
			Expected: brandFontsExpectationConstant,
			Found:    extraFont,
			Severity: audit.SeverityInfo,
			Platform: websitePlatformLabelConstant,
		})
	}

	return audit.ClampScore(score), deviations
}
