package nap

import (
	"fmt"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/match"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	criticalDeductionPoints = 15
	warningDeductionPoints  = 8
	infoDeductionPoints     = 2

	unknownCompanyDetailTemplateConstant = "Unknown company: %s"
	pendingCompanyDetailTemplateConstant = "%s is marked pending; NAP audit skipped."
	auditDetailTemplateConstant          = "NAP audit for %s: %d issues found across %d platforms (%d critical, %d warnings, %d info)"
)

// Auditor checks observed name, address, and phone values against the brand
// standard. It is stateless apart from the injected registry and the
// precompiled address normalizer.
type Auditor struct {
	registry   *brand.Registry
	normalizer *match.AddressNormalizer
}

// NewAuditor builds an Auditor bound to the given registry.
func NewAuditor(registry *brand.Registry) *Auditor {
	return &Auditor{
		registry:   registry,
		normalizer: match.NewAddressNormalizer(registry.Abbreviations()),
	}
}

// CheckName fuzzy-compares a business name against the canonical name.
func (auditor *Auditor) CheckName(expected string, found string, platform string) []audit.Deviation {
	return auditor.fuzzyCompare(audit.FieldName, expected, expected, found, found, platform)
}

// CheckAddress compares an observed address against the canonical address
// lines after both sides are normalized.
func (auditor *Auditor) CheckAddress(expectedLine1 string, expectedLine2 string, found string, platform string) []audit.Deviation {
	canonical := expectedLine1 + " " + expectedLine2
	normalizedExpected := auditor.normalizer.Normalize(canonical)
	normalizedFound := auditor.normalizer.Normalize(found)
	return auditor.fuzzyCompare(audit.FieldAddress, canonical, normalizedExpected, found, normalizedFound, platform)
}

// CheckPhone compares phone numbers by digit equality. Differing digits are
// critical; matching digits with different formatting rate an info-severity
// phone_format deviation.
func (auditor *Auditor) CheckPhone(expected string, found string, platform string) []audit.Deviation {
	normalizedExpected := match.NormalizePhone(expected)
	normalizedFound := match.NormalizePhone(found)

	if normalizedExpected != normalizedFound {
		return []audit.Deviation{{
			Field:    audit.FieldPhone,
			Expected: expected,
			Found:    found,
			Severity: audit.SeverityCritical,
			Platform: platform,
		}}
	}
	if expected != found {
		return []audit.Deviation{{
			Field:    audit.FieldPhoneFormat,
			Expected: expected,
			Found:    found,
			Severity: audit.SeverityInfo,
			Platform: platform,
		}}
	}
	return nil
}

func (auditor *Auditor) fuzzyCompare(field audit.FieldKind, reportedExpected string, comparedExpected string, reportedFound string, comparedFound string, platform string) []audit.Deviation {
	thresholds := auditor.registry.Thresholds()
	ratio := match.Ratio(comparedExpected, comparedFound)

	severity, emit := audit.SeverityForRatio(ratio, thresholds.CriticalBelow, thresholds.WarningBelow)
	if !emit {
		return nil
	}

	return []audit.Deviation{{
		Field:    field,
		Expected: reportedExpected,
		Found:    reportedFound,
		Severity: severity,
		Platform: platform,
	}}
}

// Audit runs the full NAP check for one company over the observed platform
// listings. Unknown and pending companies yield zero-score results without
// deviations.
func (auditor *Auditor) Audit(companySlug string, observations []provider.NAPObservation) audit.CategoryResult {
	standard, found := auditor.registry.Company(companySlug)
	if !found {
		return audit.CategoryResult{
			Category: audit.CategoryNAP,
			Score:    0,
			Details:  fmt.Sprintf(unknownCompanyDetailTemplateConstant, companySlug),
		}
	}
	if standard.Status == brand.StatusPending {
		return audit.CategoryResult{
			Category: audit.CategoryNAP,
			Score:    0,
			Details:  fmt.Sprintf(pendingCompanyDetailTemplateConstant, standard.OfficialName),
		}
	}

	deviations := make([]audit.Deviation, 0)
	for _, observation := range observations {
		deviations = append(deviations, auditor.CheckName(standard.OfficialName, observation.Name, observation.Platform)...)
		deviations = append(deviations, auditor.CheckAddress(standard.AddressLine1, standard.AddressLine2, observation.Address, observation.Platform)...)
		deviations = append(deviations, auditor.CheckPhone(standard.Phone, observation.Phone, observation.Platform)...)
	}

	counts := audit.CountSeverities(deviations)
	totalDeduction := counts.Critical*criticalDeductionPoints + counts.Warning*warningDeductionPoints + counts.Info*infoDeductionPoints
	score := audit.ClampScore(100 - float64(totalDeduction))

	details := fmt.Sprintf(auditDetailTemplateConstant,
		standard.OfficialName, len(deviations), len(observations), counts.Critical, counts.Warning, counts.Info)

	return audit.CategoryResult{
		Category:   audit.CategoryNAP,
		Score:      score,
		Details:    details,
		Deviations: deviations,
	}
}
