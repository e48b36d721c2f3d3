package audit_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

func TestScoreBar(testInstance *testing.T) {
	testCases := []struct {
		name        string
		score       float64
		expectedBar string
	}{
		{
			name:        "full_score_fills_the_bar",
			score:       100,
			expectedBar: strings.Repeat("#", 20),
		},
		{
			name:        "zero_score_leaves_the_bar_empty",
			score:       0,
			expectedBar: strings.Repeat("-", 20),
		},
		{
			name:        "mid_score_fills_proportionally",
			score:       48,
			expectedBar: strings.Repeat("#", 9) + strings.Repeat("-", 11),
		},
		{
			name:        "negative_score_is_clamped",
			score:       -30,
			expectedBar: strings.Repeat("-", 20),
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedBar, audit.ScoreBar(testCase.score))
		})
	}
}

func TestRenderCheckLine(testInstance *testing.T) {
	testInstance.Run("0_clean_result", func(subtestInstance *testing.T) {
		line := audit.RenderCheckLine("US Framing", audit.CategoryResult{Score: 100})
		require.Contains(subtestInstance, line, "US Framing")
		require.Contains(subtestInstance, line, "100.0/100")
		require.Contains(subtestInstance, line, "(clean)")
	})

	testInstance.Run("1_tallies_by_severity", func(subtestInstance *testing.T) {
		result := audit.CategoryResult{
			Score: 48,
			Deviations: []audit.Deviation{
				{Severity: audit.SeverityCritical},
				{Severity: audit.SeverityCritical},
				{Severity: audit.SeverityWarning},
				{Severity: audit.SeverityInfo},
			},
		}
		line := audit.RenderCheckLine("US Framing", result)
		require.Contains(subtestInstance, line, "48.0/100")
		require.Contains(subtestInstance, line, "(2 critical, 1 warning, 1 info)")
		require.NotContains(subtestInstance, line, "(clean)")
	})
}

func TestSeverityMarker(testInstance *testing.T) {
	require.Equal(testInstance, "!!!", audit.SeverityMarker(audit.SeverityCritical))
	require.Equal(testInstance, " ! ", audit.SeverityMarker(audit.SeverityWarning))
	require.Equal(testInstance, " . ", audit.SeverityMarker(audit.SeverityInfo))
}

func TestCountSeverities(testInstance *testing.T) {
	counts := audit.CountSeverities([]audit.Deviation{
		{Severity: audit.SeverityCritical},
		{Severity: audit.SeverityWarning},
		{Severity: audit.SeverityWarning},
		{Severity: audit.SeverityInfo},
	})
	require.Equal(testInstance, 1, counts.Critical)
	require.Equal(testInstance, 2, counts.Warning)
	require.Equal(testInstance, 1, counts.Info)
	require.Equal(testInstance, 4, counts.Total())
}

func TestToneFieldHelpers(testInstance *testing.T) {
	toneField := audit.ToneField("professional")
	require.Equal(testInstance, audit.FieldKind("tone_professional"), toneField)
	require.True(testInstance, toneField.IsToneField())
	require.Equal(testInstance, "professional", toneField.ToneDimension())
	require.False(testInstance, audit.FieldTagline.IsToneField())
	require.Empty(testInstance, audit.FieldTagline.ToneDimension())
}
