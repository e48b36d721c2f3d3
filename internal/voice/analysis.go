package voice

import (
	"strings"

	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/match"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

// AnalysisFromText derives a content analysis from raw page text using the
// company's configured keywords and tagline. The result covers one page.
func AnalysisFromText(pageText string, standard brand.BrandStandard) provider.ContentAnalysis {
	keywordHits, keywordTotal := match.KeywordPresence(pageText, standard.VoiceKeywords)

	taglinePresent := false
	if standard.Tagline != "" {
		taglinePresent = strings.Contains(strings.ToLower(pageText), strings.ToLower(standard.Tagline))
	}

	return provider.ContentAnalysis{
		SampleText:       pageText,
		KeywordHits:      keywordHits,
		KeywordTotal:     keywordTotal,
		ReadabilityGrade: match.FleschKincaidGrade(pageText),
		Tone:             match.AnalyzeTone(pageText),
		TaglinePresent:   taglinePresent,
		PagesAnalyzed:    1,
	}
}
