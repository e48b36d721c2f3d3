package audit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

func TestPriorityForSeverities(testInstance *testing.T) {
	testCases := []struct {
		name             string
		severities       []audit.Severity
		expectedPriority audit.TaskPriority
	}{
		{
			name:             "critical_anywhere_forces_p1",
			severities:       []audit.Severity{audit.SeverityInfo, audit.SeverityWarning, audit.SeverityCritical},
			expectedPriority: audit.TaskPriorityP1,
		},
		{
			name:             "warning_without_critical_is_p2",
			severities:       []audit.Severity{audit.SeverityInfo, audit.SeverityWarning},
			expectedPriority: audit.TaskPriorityP2,
		},
		{
			name:             "info_only_is_p3",
			severities:       []audit.Severity{audit.SeverityInfo, audit.SeverityInfo},
			expectedPriority: audit.TaskPriorityP3,
		},
		{
			name:             "empty_group_is_p3",
			severities:       nil,
			expectedPriority: audit.TaskPriorityP3,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			require.Equal(subtestInstance, testCase.expectedPriority, audit.PriorityForSeverities(testCase.severities))
		})
	}
}

func TestPriorityForDeviations(testInstance *testing.T) {
	deviations := []audit.Deviation{
		{Field: audit.FieldName, Severity: audit.SeverityWarning},
		{Field: audit.FieldPhone, Severity: audit.SeverityCritical},
	}
	require.Equal(testInstance, audit.TaskPriorityP1, audit.PriorityForDeviations(deviations))
}

func TestSeverityForRatio(testInstance *testing.T) {
	testCases := []struct {
		name             string
		ratio            float64
		expectedSeverity audit.Severity
		expectEmitted    bool
	}{
		{
			name:          "exact_match_emits_nothing",
			ratio:         1.0,
			expectEmitted: false,
		},
		{
			name:             "below_critical_threshold",
			ratio:            0.70,
			expectedSeverity: audit.SeverityCritical,
			expectEmitted:    true,
		},
		{
			name:             "between_thresholds_is_warning",
			ratio:            0.90,
			expectedSeverity: audit.SeverityWarning,
			expectEmitted:    true,
		},
		{
			name:             "near_match_is_info",
			ratio:            0.97,
			expectedSeverity: audit.SeverityInfo,
			expectEmitted:    true,
		},
		{
			name:             "warning_boundary_is_info",
			ratio:            0.95,
			expectedSeverity: audit.SeverityInfo,
			expectEmitted:    true,
		},
		{
			name:             "critical_boundary_is_warning",
			ratio:            0.85,
			expectedSeverity: audit.SeverityWarning,
			expectEmitted:    true,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subtestInstance *testing.T) {
			severity, emitted := audit.SeverityForRatio(testCase.ratio, 0.85, 0.95)
			require.Equal(subtestInstance, testCase.expectEmitted, emitted)
			if testCase.expectEmitted {
				require.Equal(subtestInstance, testCase.expectedSeverity, severity)
			}
		})
	}
}

func TestClampScore(testInstance *testing.T) {
	require.Equal(testInstance, 0.0, audit.ClampScore(-12.5))
	require.Equal(testInstance, 100.0, audit.ClampScore(131.0))
	require.Equal(testInstance, 48.0, audit.ClampScore(48.0))
}

func TestRoundScore(testInstance *testing.T) {
	require.Equal(testInstance, 90.8, audit.RoundScore(90.84))
	require.Equal(testInstance, 77.1, audit.RoundScore(77.14))
	require.Equal(testInstance, 100.0, audit.RoundScore(99.96))
}
