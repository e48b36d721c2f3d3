package directory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/directory"
)

func buildScanner(testInstance *testing.T) *directory.Scanner {
	testInstance.Helper()

	registry, registryError := brand.NewRegistry(brand.Configuration{
		PrimaryColor: "#1B2A4A",
		Fonts:        brand.FontConfiguration{Heading: "Playfair Display", Body: "Inter"},
		Weights:      brand.WeightsConfiguration{NAP: 30, Visual: 25, Voice: 25, Directories: 20},
		Directories:  []string{"Google Business", "Yelp", "Facebook", "BBB", "Houzz"},
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
	return directory.NewScanner(registry)
}

func accuracy(value float64) *float64 {
	return &value
}

func TestScanEqualShareScoring(testInstance *testing.T) {
	scanner := buildScanner(testInstance)

	listings := []audit.ListingRecord{
		{Name: "Google Business", HasListing: true, AccuracyScore: accuracy(100)},
		{Name: "Yelp", HasListing: true, AccuracyScore: accuracy(80)},
		{Name: "Facebook", HasListing: true, AccuracyScore: accuracy(90)},
		{Name: "BBB", HasListing: false},
	}

	result := scanner.Scan("us_framing", listings)

	// 25 + 20 + 22.5 + 0
	require.Equal(testInstance, 67.5, result.Score)
	require.Len(testInstance, result.Deviations, 1)
	require.Equal(testInstance, audit.FieldListing, result.Deviations[0].Field)
	require.Equal(testInstance, audit.SeverityCritical, result.Deviations[0].Severity)
	require.Equal(testInstance, "BBB", result.Deviations[0].Platform)
	require.Equal(testInstance, "No listing found", result.Deviations[0].Found)
	require.Equal(testInstance,
		"Directory scan for US Framing: score 68/100 (3/4 directories listed, 1 critical, 0 warnings, 1 total issues)",
		result.Details)
}

func TestScanKeepsRecordedIssuesWithoutDuplicating(testInstance *testing.T) {
	scanner := buildScanner(testInstance)

	recordedGap := audit.Deviation{
		Field:    audit.FieldListing,
		Expected: "Active listing",
		Found:    "No listing found",
		Severity: audit.SeverityCritical,
		Platform: "Houzz",
	}
	nameIssue := audit.Deviation{
		Field:    audit.FieldName,
		Expected: "US Framing",
		Found:    "U.S. Framing",
		Severity: audit.SeverityWarning,
		Platform: "Yelp",
	}

	listings := []audit.ListingRecord{
		{Name: "Yelp", HasListing: true, AccuracyScore: accuracy(85), Issues: []audit.Deviation{nameIssue}},
		{Name: "Houzz", HasListing: false, Issues: []audit.Deviation{recordedGap}},
	}

	result := scanner.Scan("us_framing", listings)

	require.Equal(testInstance, []audit.Deviation{nameIssue, recordedGap}, result.Deviations)
	require.Equal(testInstance, 42.5, result.Score)
}

func TestScanListedWithoutAccuracyContributesNothing(testInstance *testing.T) {
	scanner := buildScanner(testInstance)

	listings := []audit.ListingRecord{
		{Name: "Google Business", HasListing: true, AccuracyScore: accuracy(100)},
		{Name: "Yelp", HasListing: true},
	}

	result := scanner.Scan("us_framing", listings)
	require.Equal(testInstance, 50.0, result.Score)
	require.Empty(testInstance, result.Deviations)
}

func TestScanEmptyListingsScoreZero(testInstance *testing.T) {
	scanner := buildScanner(testInstance)

	result := scanner.Scan("us_framing", nil)
	require.Equal(testInstance, 0.0, result.Score)
	require.Empty(testInstance, result.Deviations)
}

func TestScanUnknownAndPendingCompanies(testInstance *testing.T) {
	scanner := buildScanner(testInstance)

	result := scanner.Scan("us_roofing", nil)
	require.Equal(testInstance, 0.0, result.Score)
	require.Equal(testInstance, "Unknown company: us_roofing", result.Details)

	result = scanner.Scan("us_interiors", nil)
	require.Equal(testInstance, 0.0, result.Score)
	require.Equal(testInstance, "US Interiors is marked pending; directory scan skipped.", result.Details)
}
