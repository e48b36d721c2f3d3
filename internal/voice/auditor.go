package voice

import (
	"fmt"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/match"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	keywordSubScoreWeight     = 0.30
	readabilitySubScoreWeight = 0.20
	toneSubScoreWeight        = 0.30
	taglineSubScoreWeight     = 0.20

	readabilityTargetFloor    = 8.0
	readabilityTargetCeiling  = 12.0
	readabilityGradePenalty   = 15.0
	keywordWarningBelowShare  = 0.5
	toneWarningBelowValue     = 0.5

	websitePlatformLabelConstant            = "website"
	keywordExpectationTemplateConstant      = ">= 50%% of %d brand keywords"
	keywordFoundTemplateConstant            = "%d/%d (%.0f%%)"
	readabilityExpectationConstant          = "Grade 8-12 (B2B appropriate)"
	readabilityTooSimpleTemplateConstant    = "Grade %.1f (too simple)"
	readabilityTooComplexTemplateConstant   = "Grade %.1f (too complex)"
	toneExpectationTemplateConstant         = "%s >= 0.50"
	toneFoundTemplateConstant               = "%.2f"
	taglineExpectationConstant              = "Brand tagline present on website"
	taglineNotDetectedConstant              = "not detected"
	unknownCompanyDetailTemplateConstant    = "Unknown company: %s"
	pendingCompanyDetailTemplateConstant    = "%s is marked pending; voice audit skipped."
	auditDetailTemplateConstant             = "Voice audit for %s: score %.0f/100 (keywords %d/%d, readability grade %.1f, %d pages analyzed, %d findings)"
)

// Auditor scores content analysis results against brand voice guidelines.
type Auditor struct {
	registry *brand.Registry
}

// NewAuditor builds an Auditor bound to the given registry.
func NewAuditor(registry *brand.Registry) *Auditor {
	return &Auditor{registry: registry}
}

// Audit scores one company's content analysis. A zero-value ContentAnalysis
// means no content could be analyzed and scores as the worst case, with the
// keyword total taken from the company's configured keyword list.
func (auditor *Auditor) Audit(companySlug string, analysis provider.ContentAnalysis) audit.CategoryResult {
	standard, found := auditor.registry.Company(companySlug)
	if !found {
		return audit.CategoryResult{
			Category: audit.CategoryVoice,
			Score:    0,
			Details:  fmt.Sprintf(unknownCompanyDetailTemplateConstant, companySlug),
		}
	}
	if standard.Status == brand.StatusPending {
		return audit.CategoryResult{
			Category: audit.CategoryVoice,
			Score:    0,
			Details:  fmt.Sprintf(pendingCompanyDetailTemplateConstant, standard.OfficialName),
		}
	}

	if analysis.KeywordTotal == 0 {
		analysis.KeywordTotal = len(standard.VoiceKeywords)
	}

	finalScore, deviations := computeVoiceScore(analysis)

	details := fmt.Sprintf(auditDetailTemplateConstant,
		standard.OfficialName, finalScore,
		analysis.KeywordHits, analysis.KeywordTotal,
		analysis.ReadabilityGrade, analysis.PagesAnalyzed, len(deviations))

	return audit.CategoryResult{
		Category:   audit.CategoryVoice,
		Score:      finalScore,
		Details:    details,
		Deviations: deviations,
	}
}

func computeVoiceScore(analysis provider.ContentAnalysis) (float64, []audit.Deviation) {
	deviations := make([]audit.Deviation, 0)

	keywordShare := 0.0
	if analysis.KeywordTotal > 0 {
		keywordShare = float64(analysis.KeywordHits) / float64(analysis.KeywordTotal)
	}
	keywordScore := keywordShare * 100

	if keywordShare < keywordWarningBelowShare {
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldKeywordUsage,
			Expected: fmt.Sprintf(keywordExpectationTemplateConstant, analysis.KeywordTotal),
			Found:    fmt.Sprintf(keywordFoundTemplateConstant, analysis.KeywordHits, analysis.KeywordTotal, keywordShare*100),
			Severity: audit.SeverityWarning,
			Platform: websitePlatformLabelConstant,
		})
	}

	readabilityScore := 100.0
	switch {
	case analysis.ReadabilityGrade < readabilityTargetFloor:
		readabilityScore = audit.ClampScore(100 - (readabilityTargetFloor-analysis.ReadabilityGrade)*readabilityGradePenalty)
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldReadability,
			Expected: readabilityExpectationConstant,
			Found:    fmt.Sprintf(readabilityTooSimpleTemplateConstant, analysis.ReadabilityGrade),
			Severity: audit.SeverityInfo,
			Platform: websitePlatformLabelConstant,
		})
	case analysis.ReadabilityGrade > readabilityTargetCeiling:
		readabilityScore = audit.ClampScore(100 - (analysis.ReadabilityGrade-readabilityTargetCeiling)*readabilityGradePenalty)
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldReadability,
			Expected: readabilityExpectationConstant,
			Found:    fmt.Sprintf(readabilityTooComplexTemplateConstant, analysis.ReadabilityGrade),
			Severity: audit.SeverityWarning,
			Platform: websitePlatformLabelConstant,
		})
	}

	toneScore := analysis.Tone.Average() * 100
	for _, toneDimension := range toneDimensions(analysis.Tone) {
		if toneDimension.value < toneWarningBelowValue {
			deviations = append(deviations, audit.Deviation{
				Field:    audit.ToneField(toneDimension.name),
				Expected: fmt.Sprintf(toneExpectationTemplateConstant, toneDimension.name),
				Found:    fmt.Sprintf(toneFoundTemplateConstant, toneDimension.value),
				Severity: audit.SeverityWarning,
				Platform: websitePlatformLabelConstant,
			})
		}
	}

	taglineScore := 0.0
	if analysis.TaglinePresent {
		taglineScore = 100.0
	} else {
		deviations = append(deviations, audit.Deviation{
			Field:    audit.FieldTagline,
			Expected: taglineExpectationConstant,
			Found:    taglineNotDetectedConstant,
			Severity: audit.SeverityWarning,
			Platform: websitePlatformLabelConstant,
		})
	}

	finalScore := keywordScore*keywordSubScoreWeight +
		readabilityScore*readabilitySubScoreWeight +
		toneScore*toneSubScoreWeight +
		taglineScore*taglineSubScoreWeight

	return audit.RoundScore(audit.ClampScore(finalScore)), deviations
}

type toneDimensionValue struct {
	name  string
	value float64
}

func toneDimensions(tone match.ToneScores) []toneDimensionValue {
	return []toneDimensionValue{
		{name: "professional", value: tone.Professional},
		{name: "authoritative", value: tone.Authoritative},
		{name: "approachable", value: tone.Approachable},
	}
}
