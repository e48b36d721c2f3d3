package match

import (
	"regexp"
	"sort"
	"strings"
)

var (
	nonDigitPattern   = regexp.MustCompile(`\D`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// NormalizePhone strips a phone number to its digits. Two phones match when
// their digit strings are equal.
func NormalizePhone(phone string) string {
	return nonDigitPattern.ReplaceAllString(phone, "")
}

// AddressNormalizer rewrites postal addresses into a comparable form: commas
// and periods removed, known abbreviations expanded to full words, and
// whitespace collapsed. Normalization is idempotent.
type AddressNormalizer struct {
	replacements []abbreviationReplacement
}

type abbreviationReplacement struct {
	pattern  *regexp.Regexp
	fullWord string
}

// NewAddressNormalizer compiles whole-word patterns for the abbreviation
// table. Abbreviations are applied in sorted order so results do not depend
// on map iteration.
func NewAddressNormalizer(abbreviations map[string]string) *AddressNormalizer {
	abbreviationKeys := make([]string, 0, len(abbreviations))
	for abbreviation := range abbreviations {
		abbreviationKeys = append(abbreviationKeys, abbreviation)
	}
	sort.Strings(abbreviationKeys)

	replacements := make([]abbreviationReplacement, 0, len(abbreviationKeys))
	for _, abbreviation := range abbreviationKeys {
		replacements = append(replacements, abbreviationReplacement{
			pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(abbreviation) + `\b`),
			fullWord: abbreviations[abbreviation],
		})
	}

	return &AddressNormalizer{replacements: replacements}
}

// Normalize rewrites one address string.
func (normalizer *AddressNormalizer) Normalize(address string) string {
	result := strings.NewReplacer(",", " ", ".", " ").Replace(address)

	for _, replacement := range normalizer.replacements {
		result = replacement.pattern.ReplaceAllString(result, replacement.fullWord)
	}

	result = whitespacePattern.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
