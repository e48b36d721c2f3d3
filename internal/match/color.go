package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorScanPattern   = regexp.MustCompile(`#[0-9A-Fa-f]{3,8}\b`)
	fontFamilyScanPattern = regexp.MustCompile(`(?i)font-family:\s*([^;]+);`)
)

// maxRGBDistance is the Euclidean distance between black and white in RGB
// space, used to normalize HexDistance into [0,1].
var maxRGBDistance = math.Sqrt(3 * 255 * 255)

// NormalizeHex lowercases and trims a hex color for comparison.
func NormalizeHex(hexColor string) string {
	return strings.ToLower(strings.TrimSpace(hexColor))
}

// HexDistance returns the normalized Euclidean RGB distance between two hex
// colors: 0.0 for identical colors, approaching 1.0 for black versus white.
// Unparseable input counts as maximally distant.
func HexDistance(first string, second string) float64 {
	firstRed, firstGreen, firstBlue, firstOK := decodeHexColor(first)
	secondRed, secondGreen, secondBlue, secondOK := decodeHexColor(second)
	if !firstOK || !secondOK {
		return 1.0
	}

	distance := math.Sqrt(
		square(firstRed-secondRed) + square(firstGreen-secondGreen) + square(firstBlue-secondBlue),
	)
	return distance / maxRGBDistance
}

func square(value float64) float64 {
	return value * value
}

func decodeHexColor(hexColor string) (float64, float64, float64, bool) {
	cleaned := strings.TrimPrefix(NormalizeHex(hexColor), "#")
	if len(cleaned) < 6 {
		return 0, 0, 0, false
	}

	channels := make([]float64, 3)
	for channelIndex := 0; channelIndex < 3; channelIndex++ {
		channelValue, parseError := strconv.ParseUint(cleaned[channelIndex*2:channelIndex*2+2], 16, 8)
		if parseError != nil {
			return 0, 0, 0, false
		}
		channels[channelIndex] = float64(channelValue)
	}

	return channels[0], channels[1], channels[2], true
}

// ExtractHexColors pulls every hex color literal from a CSS document.
func ExtractHexColors(cssText string) []string {
	return hexColorScanPattern.FindAllString(cssText, -1)
}

// ExtractFontFamilies pulls the distinct font families named by font-family
// declarations, in first-seen order.
func ExtractFontFamilies(cssText string) []string {
	fontFamilies := make([]string, 0)
	seenFamilies := make(map[string]struct{})

	for _, declarationMatch := range fontFamilyScanPattern.FindAllStringSubmatch(cssText, -1) {
		for _, familyCandidate := range strings.Split(declarationMatch[1], ",") {
			cleaned := strings.Trim(strings.TrimSpace(familyCandidate), `'"`)
			if len(cleaned) == 0 {
				continue
			}
			if _, alreadySeen := seenFamilies[cleaned]; alreadySeen {
				continue
			}
			seenFamilies[cleaned] = struct{}{}
			fontFamilies = append(fontFamilies, cleaned)
		}
	}

	return fontFamilies
}
