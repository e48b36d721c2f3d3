package visual_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
	"github.com/uscmarketing/brandaudit/internal/visual"
)

func buildRegistry(testInstance *testing.T) *brand.Registry {
	testInstance.Helper()

	registry, registryError := brand.NewRegistry(brand.Configuration{
		PrimaryColor:  "#1B2A4A",
		NeutralColors: []string{"#FFFFFF", "#F5F5F5", "#333333"},
		Fonts:         brand.FontConfiguration{Heading: "Playfair Display", Body: "Inter"},
		Weights:       brand.WeightsConfiguration{NAP: 30, Visual: 25, Voice: 25, Directories: 20},
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

func TestAuditScoring(testInstance *testing.T) {
	auditor := visual.NewAuditor(buildRegistry(testInstance))

	testCases := []struct {
		name               string
		signals            provider.PageSignals
		expectedScore      float64
		expectedFindings   int
		expectedSeverities audit.SeverityCounts
	}{
		{
			name: "on_brand_pages_score_perfectly",
			signals: provider.PageSignals{
				HexColorsFound:  []string{"#1B2A4A", "#4A90D9", "#FFFFFF"},
				HasPrimaryColor: true,
				PagesScanned:    3,
			},
			expectedScore:    100.0,
			expectedFindings: 0,
		},
		{
			name: "missing_primary_color_is_critical",
			signals: provider.PageSignals{
				HexColorsFound:  []string{"#4A90D9"},
				HasPrimaryColor: false,
				PagesScanned:    2,
				PagesWithIssues: 2,
			},
			expectedScore:      85.0,
			expectedFindings:   1,
			expectedSeverities: audit.SeverityCounts{Critical: 1},
		},
		{
			name: "missing_accent_color_is_a_warning",
			signals: provider.PageSignals{
				HexColorsFound:  []string{"#1B2A4A", "#FFFFFF"},
				HasPrimaryColor: true,
				PagesScanned:    2,
			},
			expectedScore:      91.0,
			expectedFindings:   1,
			expectedSeverities: audit.SeverityCounts{Warning: 1},
		},
		{
			name: "off_brand_colors_deduct_per_color",
			signals: provider.PageSignals{
				HexColorsFound:  []string{"#1B2A4A", "#4A90D9"},
				HasPrimaryColor: true,
				OffBrandColors:  []string{"#FF0000", "#00FF00"},
				PagesScanned:    2,
				PagesWithIssues: 1,
			},
			expectedScore:      94.0,
			expectedFindings:   2,
			expectedSeverities: audit.SeverityCounts{Info: 2},
		},
		{
			name: "missing_and_extra_fonts_hit_the_font_subscore",
			signals: provider.PageSignals{
				HexColorsFound:  []string{"#1B2A4A", "#4A90D9"},
				HasPrimaryColor: true,
				MissingFonts:    []string{"Playfair Display"},
				ExtraFonts:      []string{"Comic Sans MS"},
				PagesScanned:    1,
				PagesWithIssues: 1,
			},
			expectedScore:      90.0,
			expectedFindings:   2,
			expectedSeverities: audit.SeverityCounts{Critical: 1, Info: 1},
		},
		{
			name:               "empty_signals_miss_both_brand_colors",
			signals:            provider.PageSignals{},
			expectedScore:      76.0,
			expectedFindings:   2,
			expectedSeverities: audit.SeverityCounts{Critical: 1, Warning: 1},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			result := auditor.Audit("us_framing", testCase.signals)
			require.Equal(subtestInstance, testCase.expectedScore, result.Score)
			require.Len(subtestInstance, result.Deviations, testCase.expectedFindings)
			require.Equal(subtestInstance, testCase.expectedSeverities, audit.CountSeverities(result.Deviations))
		})
	}
}

func TestAuditUnknownAndPendingCompanies(testInstance *testing.T) {
	auditor := visual.NewAuditor(buildRegistry(testInstance))

	result := auditor.Audit("us_roofing", provider.PageSignals{})
	require.Equal(testInstance, 0.0, result.Score)
	require.Equal(testInstance, "Unknown company: us_roofing", result.Details)

	result = auditor.Audit("us_interiors", provider.PageSignals{})
	require.Equal(testInstance, 0.0, result.Score)
	require.Equal(testInstance, "US Interiors is marked pending; visual audit skipped.", result.Details)
}

func TestSignalsFromCSS(testInstance *testing.T) {
	registry := buildRegistry(testInstance)
	standard, found := registry.Company("us_framing")
	require.True(testInstance, found)

	cssText := `
		body { background: #FFFFFF; color: #1B2A4A; font-family: "Inter", sans-serif; }
		h1 { color: #4A90D9; font-family: "Playfair Display", serif; }
		.promo { color: #FF6B35; font-family: "Comic Sans MS"; }
	`

	signals := visual.SignalsFromCSS(cssText, standard, registry)

	require.True(testInstance, signals.HasPrimaryColor)
	require.Equal(testInstance, []string{"#FF6B35"}, signals.OffBrandColors)
	require.Empty(testInstance, signals.MissingFonts)
	require.Equal(testInstance, []string{"Comic Sans MS"}, signals.ExtraFonts)
	require.Equal(testInstance, 1, signals.PagesScanned)
	require.Equal(testInstance, 1, signals.PagesWithIssues)
}

func TestSignalsFromCSSCleanPage(testInstance *testing.T) {
	registry := buildRegistry(testInstance)
	standard, found := registry.Company("us_framing")
	require.True(testInstance, found)

	cssText := `body { color: #1B2A4A; font-family: "Playfair Display", "Inter", serif; }`

	signals := visual.SignalsFromCSS(cssText, standard, registry)

	require.True(testInstance, signals.HasPrimaryColor)
	require.Empty(testInstance, signals.OffBrandColors)
	require.Empty(testInstance, signals.MissingFonts)
	require.Empty(testInstance, signals.ExtraFonts)
	require.Equal(testInstance, 0, signals.PagesWithIssues)
}
