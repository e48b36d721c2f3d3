package match

import (
	"math"
	"regexp"
	"strings"
)

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	wordScanPattern      = regexp.MustCompile(`\b[a-zA-Z]+\b`)
)

const (
	fleschKincaidSentenceFactor = 0.39
	fleschKincaidSyllableFactor = 11.8
	fleschKincaidBaseDeduction  = 15.59
)

// CountSyllables estimates the syllable count of an English word using a
// vowel-group heuristic with a silent trailing-e adjustment. Non-empty words
// count at least one syllable.
func CountSyllables(word string) int {
	cleaned := strings.ToLower(strings.TrimSpace(word))
	if len(cleaned) == 0 {
		return 0
	}

	syllableCount := 0
	previousWasVowel := false
	for _, character := range cleaned {
		isVowel := strings.ContainsRune("aeiouy", character)
		if isVowel && !previousWasVowel {
			syllableCount++
		}
		previousWasVowel = isVowel
	}

	if strings.HasSuffix(cleaned, "e") && syllableCount > 1 {
		syllableCount--
	}

	if syllableCount < 1 {
		return 1
	}
	return syllableCount
}

// FleschKincaidGrade computes the simplified Flesch-Kincaid grade level:
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59, floored at zero
// and rounded to one decimal. Empty input grades 0.0.
func FleschKincaidGrade(text string) float64 {
	sentenceCount := 0
	for _, sentenceCandidate := range sentenceSplitPattern.Split(text, -1) {
		if len(strings.TrimSpace(sentenceCandidate)) > 0 {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		return 0.0
	}

	words := wordScanPattern.FindAllString(text, -1)
	if len(words) == 0 {
		return 0.0
	}

	totalSyllables := 0
	for _, word := range words {
		totalSyllables += CountSyllables(word)
	}

	grade := fleschKincaidSentenceFactor*(float64(len(words))/float64(sentenceCount)) +
		fleschKincaidSyllableFactor*(float64(totalSyllables)/float64(len(words))) -
		fleschKincaidBaseDeduction

	if grade < 0 {
		return 0.0
	}
	return math.Round(grade*10) / 10
}
