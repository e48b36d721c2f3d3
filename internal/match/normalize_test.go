package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/match"
)

func TestNormalizePhone(testInstance *testing.T) {
	testCases := []struct {
		name           string
		phone          string
		expectedDigits string
	}{
		{name: "formatted_number", phone: "(502) 276-0284", expectedDigits: "5022760284"},
		{name: "dashed_number", phone: "502-276-0284", expectedDigits: "5022760284"},
		{name: "bare_digits", phone: "5022760284", expectedDigits: "5022760284"},
		{name: "empty_input", phone: "", expectedDigits: ""},
		{name: "letters_are_stripped", phone: "phone: 502.276.0284", expectedDigits: "5022760284"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedDigits, match.NormalizePhone(testCase.phone))
		})
	}
}

func TestAddressNormalizer(testInstance *testing.T) {
	abbreviations := map[string]string{
		"Rd":  "Road",
		"Ste": "Suite",
		"Hwy": "Highway",
	}
	normalizer := match.NewAddressNormalizer(abbreviations)

	testCases := []struct {
		name               string
		address            string
		expectedNormalized string
	}{
		{
			name:               "abbreviations_expand_to_full_words",
			address:            "4700 Shelbyville Rd Ste 200",
			expectedNormalized: "4700 Shelbyville Road Suite 200",
		},
		{
			name:               "commas_and_periods_become_spaces",
			address:            "P.O. Box 710, Pewee Valley KY 40056",
			expectedNormalized: "P O Box 710 Pewee Valley KY 40056",
		},
		{
			name:               "whitespace_collapses",
			address:            "  4965  US  Hwy 42  ",
			expectedNormalized: "4965 US Highway 42",
		},
		{
			name:               "abbreviation_inside_word_is_untouched",
			address:            "Rodeo Street",
			expectedNormalized: "Rodeo Street",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			normalized := normalizer.Normalize(testCase.address)
			require.Equal(subtestInstance, testCase.expectedNormalized, normalized)
			require.Equal(subtestInstance, normalized, normalizer.Normalize(normalized))
		})
	}
}
