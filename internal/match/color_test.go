package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/match"
)

func TestHexDistance(testInstance *testing.T) {
	testCases := []struct {
		name             string
		first            string
		second           string
		expectedDistance float64
	}{
		{name: "identical_colors", first: "#1B2A4A", second: "#1B2A4A", expectedDistance: 0.0},
		{name: "case_insensitive_identity", first: "#4A90D9", second: "#4a90d9", expectedDistance: 0.0},
		{name: "black_versus_white_is_maximal", first: "#000000", second: "#FFFFFF", expectedDistance: 1.0},
		{name: "unparseable_input_is_maximal", first: "#GGGGGG", second: "#000000", expectedDistance: 1.0},
		{name: "short_form_is_maximal", first: "#FFF", second: "#FFFFFF", expectedDistance: 1.0},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.InDelta(subtestInstance, testCase.expectedDistance, match.HexDistance(testCase.first, testCase.second), 0.0001)
		})
	}
}

func TestExtractHexColors(testInstance *testing.T) {
	cssText := ".hero { color: #1B2A4A; background: #f5f5f5; border: 1px solid #4A90D9; }"
	require.Equal(testInstance, []string{"#1B2A4A", "#f5f5f5", "#4A90D9"}, match.ExtractHexColors(cssText))
}

func TestExtractFontFamilies(testInstance *testing.T) {
	testCases := []struct {
		name             string
		cssText          string
		expectedFamilies []string
	}{
		{
			name:             "quoted_families_with_fallbacks",
			cssText:          `h1 { font-family: 'Playfair Display', serif; } body { font-family: "Inter", sans-serif; }`,
			expectedFamilies: []string{"Playfair Display", "serif", "Inter", "sans-serif"},
		},
		{
			name:             "duplicates_keep_first_seen_order",
			cssText:          "p { font-family: Inter, sans-serif; } span { font-family: Inter; }",
			expectedFamilies: []string{"Inter", "sans-serif"},
		},
		{
			name:             "no_declarations",
			cssText:          ".empty { color: #FFFFFF; }",
			expectedFamilies: []string{},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedFamilies, match.ExtractFontFamilies(testCase.cssText))
		})
	}
}
