package match

import "strings"

// toneScaleFactor calibrates lexicon hit density into a 0-1 tone score; the
// cap at 1.0 keeps short keyword-dense fragments from overflowing.
const toneScaleFactor = 15.0

var professionalLexicon = lexiconSet(
	"expertise", "professional", "solutions", "deliver", "quality",
	"precision", "standards", "compliance", "ensure", "industry",
	"certified", "management", "strategic", "performance", "efficiency",
)

var authoritativeLexicon = lexiconSet(
	"leading", "largest", "premier", "proven", "trusted",
	"nationwide", "established", "recognized", "guarantee", "standard",
	"excellence", "superior", "comprehensive", "definitive", "authority",
)

var approachableLexicon = lexiconSet(
	"partner", "team", "together", "help", "support",
	"community", "family", "care", "welcome", "friendly",
	"accessible", "easy", "simple", "understand", "guide",
)

func lexiconSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// ToneScores carries the three lexical tone dimensions, each in [0,1].
type ToneScores struct {
	Professional  float64 `json:"professional"`
	Authoritative float64 `json:"authoritative"`
	Approachable  float64 `json:"approachable"`
}

// Average returns the mean of the three dimensions.
func (scores ToneScores) Average() float64 {
	return (scores.Professional + scores.Authoritative + scores.Approachable) / 3.0
}

// KeywordPresence counts how many of the brand keywords occur in the text as
// case-insensitive substrings. Returns hits and the keyword total.
func KeywordPresence(text string, keywords []string) (int, int) {
	loweredText := strings.ToLower(text)
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(loweredText, strings.ToLower(keyword)) {
			hits++
		}
	}
	return hits, len(keywords)
}

// AnalyzeTone scores the text on the professional, authoritative, and
// approachable dimensions from lexicon hit density.
func AnalyzeTone(text string) ToneScores {
	words := wordScanPattern.FindAllString(strings.ToLower(text), -1)
	totalWords := len(words)
	if totalWords == 0 {
		totalWords = 1
	}

	professionalHits := 0
	authoritativeHits := 0
	approachableHits := 0
	for _, word := range words {
		if _, found := professionalLexicon[word]; found {
			professionalHits++
		}
		if _, found := authoritativeLexicon[word]; found {
			authoritativeHits++
		}
		if _, found := approachableLexicon[word]; found {
			approachableHits++
		}
	}

	return ToneScores{
		Professional:  scaleToneDensity(professionalHits, totalWords),
		Authoritative: scaleToneDensity(authoritativeHits, totalWords),
		Approachable:  scaleToneDensity(approachableHits, totalWords),
	}
}

func scaleToneDensity(hitCount int, totalWords int) float64 {
	scaled := float64(hitCount) / float64(totalWords) * toneScaleFactor
	if scaled > 1.0 {
		return 1.0
	}
	return scaled
}
