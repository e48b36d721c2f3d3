package audit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
)

func buildTestRegistry(testInstance *testing.T) *brand.Registry {
	testInstance.Helper()

	registry, registryError := brand.NewRegistry(brand.Configuration{
		PrimaryColor: "#1B2A4A",
		Fonts:        brand.FontConfiguration{Heading: "Playfair Display", Body: "Inter"},
		Weights:      brand.WeightsConfiguration{NAP: 30, Visual: 25, Voice: 25, Directories: 20},
		Companies: map[string]brand.CompanyConfiguration{
			"us_framing": {
				OfficialName: "US Framing",
				AccentColor:  "#4A90D9",
				Status:       "active",
			},
			"us_interiors": {
				OfficialName: "US Interiors",
				AccentColor:  "#8B5E3C",
				Status:       "pending",
			},
		},
	})
	require.NoError(testInstance, registryError)
	return registry
}

func TestResolveCompanies(testInstance *testing.T) {
	registry := buildTestRegistry(testInstance)

	testCases := []struct {
		name             string
		requestedCompany string
		expectedSlugs    []string
		expectedError    string
	}{
		{
			name:             "empty_request_resolves_active_companies",
			requestedCompany: "",
			expectedSlugs:    []string{"us_framing"},
		},
		{
			name:             "explicit_slug_resolves_even_when_pending",
			requestedCompany: "us_interiors",
			expectedSlugs:    []string{"us_interiors"},
		},
		{
			name:             "unknown_slug_lists_valid_choices",
			requestedCompany: "us_roofing",
			expectedError:    `unknown company "us_roofing" (valid: us_framing, us_interiors)`,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			resolvedSlugs, resolveError := audit.ResolveCompanies(registry, testCase.requestedCompany)
			if len(testCase.expectedError) > 0 {
				require.EqualError(subtestInstance, resolveError, testCase.expectedError)
				return
			}
			require.NoError(subtestInstance, resolveError)
			require.Equal(subtestInstance, testCase.expectedSlugs, resolvedSlugs)
		})
	}
}

func TestResolveCompaniesRequiresRegistry(testInstance *testing.T) {
	_, resolveError := audit.ResolveCompanies(nil, "us_framing")
	require.EqualError(testInstance, resolveError, "brand registry not initialized")
}

func TestDisplayName(testInstance *testing.T) {
	registry := buildTestRegistry(testInstance)
	require.Equal(testInstance, "US Framing", audit.DisplayName(registry, "us_framing"))
	require.Equal(testInstance, "us_roofing", audit.DisplayName(registry, "us_roofing"))
	require.Equal(testInstance, "us_framing", audit.DisplayName(nil, "us_framing"))
}
