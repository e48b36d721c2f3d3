package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

const (
	lowSectionScoreThreshold = 70.0

	urgentPrefixConstant = "URGENT"

	criticalNAPRecommendationTemplateConstant = "URGENT: Fix critical NAP inconsistencies on %s. Incorrect business name or phone number directly harms local SEO rankings."
	nameVariantsRecommendationTemplateConstant = "Standardize business name across directories. Found variants: %s. Use the exact official name without LLC/Inc suffixes or periods."
	phoneFormatRecommendationConstant          = "Standardize phone number format to (XXX) XXX-XXXX across all platforms."
	lowNAPScoreRecommendationConstant          = "NAP score is below 70. Consider a dedicated NAP cleanup sprint: update all directory listings to match brand standards exactly."
	missingFontsRecommendationTemplateConstant = "Add missing brand fonts to website: %s. Import via Google Fonts or self-host for consistency."
	offBrandColorsRecommendationTemplateConstant = "Replace off-brand colors (%s) with approved palette. Create a CSS variables file with brand colors for easy maintenance."
	lowVisualScoreRecommendationConstant       = "Visual identity score is below 70. Conduct a full CSS audit to enforce brand color palette and font family standards across all pages."
	taglineRecommendationConstant              = "Add the official brand tagline to the website header or hero section. Consistent tagline usage reinforces brand positioning."
	keywordRecommendationConstant              = "Increase brand keyword density in website copy. Ensure core service terms and differentiators appear naturally in page content."
	readabilityRecommendationConstant          = "Adjust content readability to Grade 8-12 level for B2B audience. Avoid overly complex or overly simplified language."
	missingListingsRecommendationTemplateConstant = "Create business listings on: %s. Missing directory listings reduce online visibility and local SEO authority."
	lowDirectoryScoreRecommendationConstant    = "Directory presence score is below 70. Prioritize claiming and verifying business listings across all major directories."
)

// Recommendations derives prioritized, actionable recommendations from the
// section results. URGENT recommendations sort first; the rest sort
// alphabetically so output stays deterministic.
func Recommendations(sections map[audit.Category]audit.CategoryResult) []string {
	recommendations := make([]string, 0)

	if napSection, found := sections[audit.CategoryNAP]; found {
		recommendations = append(recommendations, napRecommendations(napSection)...)
	}
	if visualSection, found := sections[audit.CategoryVisual]; found {
		recommendations = append(recommendations, visualRecommendations(visualSection)...)
	}
	if voiceSection, found := sections[audit.CategoryVoice]; found {
		recommendations = append(recommendations, voiceRecommendations(voiceSection)...)
	}
	if directorySection, found := sections[audit.CategoryDirectory]; found {
		recommendations = append(recommendations, directoryRecommendations(directorySection)...)
	}

	sort.SliceStable(recommendations, func(firstIndex, secondIndex int) bool {
		firstUrgent := strings.HasPrefix(recommendations[firstIndex], urgentPrefixConstant)
		secondUrgent := strings.HasPrefix(recommendations[secondIndex], urgentPrefixConstant)
		if firstUrgent != secondUrgent {
			return firstUrgent
		}
		return recommendations[firstIndex] < recommendations[secondIndex]
	})

	return recommendations
}

func napRecommendations(section audit.CategoryResult) []string {
	recommendations := make([]string, 0)

	criticalPlatforms := make([]string, 0)
	nameVariants := make([]string, 0)
	phoneFormatIssueSeen := false
	for _, deviation := range section.Deviations {
		if deviation.Severity == audit.SeverityCritical && len(deviation.Platform) > 0 {
			criticalPlatforms = append(criticalPlatforms, deviation.Platform)
		}
		if deviation.Field == audit.FieldName && deviation.Severity == audit.SeverityWarning {
			nameVariants = append(nameVariants, deviation.Found)
		}
		if deviation.Field == audit.FieldPhoneFormat {
			phoneFormatIssueSeen = true
		}
	}

	if len(criticalPlatforms) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf(criticalNAPRecommendationTemplateConstant, strings.Join(sortedUnique(criticalPlatforms), ", ")))
	}
	if len(nameVariants) > 0 {
		quotedVariants := make([]string, 0, len(nameVariants))
		for _, variant := range sortedUnique(nameVariants) {
			quotedVariants = append(quotedVariants, fmt.Sprintf("%q", variant))
		}
		recommendations = append(recommendations,
			fmt.Sprintf(nameVariantsRecommendationTemplateConstant, strings.Join(quotedVariants, ", ")))
	}
	if phoneFormatIssueSeen {
		recommendations = append(recommendations, phoneFormatRecommendationConstant)
	}
	if section.Score < lowSectionScoreThreshold {
		recommendations = append(recommendations, lowNAPScoreRecommendationConstant)
	}

	return recommendations
}

func visualRecommendations(section audit.CategoryResult) []string {
	recommendations := make([]string, 0)

	missingFonts := make([]string, 0)
	offBrandColors := make([]string, 0)
	for _, deviation := range section.Deviations {
		switch deviation.Field {
		case audit.FieldFontMissing:
			missingFonts = append(missingFonts, deviation.Expected)
		case audit.FieldOffBrandColor:
			offBrandColors = append(offBrandColors, deviation.Found)
		}
	}

	if len(missingFonts) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf(missingFontsRecommendationTemplateConstant, strings.Join(missingFonts, ", ")))
	}
	if len(offBrandColors) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf(offBrandColorsRecommendationTemplateConstant, strings.Join(offBrandColors, ", ")))
	}
	if section.Score < lowSectionScoreThreshold {
		recommendations = append(recommendations, lowVisualScoreRecommendationConstant)
	}

	return recommendations
}

func voiceRecommendations(section audit.CategoryResult) []string {
	recommendations := make([]string, 0)

	taglineIssueSeen := false
	keywordIssueSeen := false
	readabilityIssueSeen := false
	for _, deviation := range section.Deviations {
		switch deviation.Field {
		case audit.FieldTagline:
			taglineIssueSeen = true
		case audit.FieldKeywordUsage:
			keywordIssueSeen = true
		case audit.FieldReadability:
			readabilityIssueSeen = true
		}
	}

	if taglineIssueSeen {
		recommendations = append(recommendations, taglineRecommendationConstant)
	}
	if keywordIssueSeen {
		recommendations = append(recommendations, keywordRecommendationConstant)
	}
	if readabilityIssueSeen {
		recommendations = append(recommendations, readabilityRecommendationConstant)
	}

	return recommendations
}

func directoryRecommendations(section audit.CategoryResult) []string {
	recommendations := make([]string, 0)

	missingPlatforms := make([]string, 0)
	for _, deviation := range section.Deviations {
		if deviation.Field == audit.FieldListing && deviation.Severity == audit.SeverityCritical {
			missingPlatforms = append(missingPlatforms, deviation.Platform)
		}
	}

	if len(missingPlatforms) > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf(missingListingsRecommendationTemplateConstant, strings.Join(sortedUnique(missingPlatforms), ", ")))
	}
	if section.Score < lowSectionScoreThreshold {
		recommendations = append(recommendations, lowDirectoryScoreRecommendationConstant)
	}

	return recommendations
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	sort.Strings(unique)
	return unique
}
