package remediation

import (
	"fmt"
	"strings"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

const planRuleWidth = 70

// RenderPlanSummary formats a task list as a human-readable remediation plan
// grouped by priority.
func RenderPlanSummary(tasks []audit.RemediationTask) string {
	rule := strings.Repeat("=", planRuleWidth)

	priorityGroups := map[audit.TaskPriority][]audit.RemediationTask{}
	totalEffort := 0
	for _, task := range tasks {
		priorityGroups[task.Priority] = append(priorityGroups[task.Priority], task)
		totalEffort += task.EffortMinutes
	}

	lines := make([]string, 0)
	lines = append(lines, rule)
	lines = append(lines, "  REMEDIATION PLAN")
	lines = append(lines, rule)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Total Tasks: %d", len(tasks)))
	lines = append(lines, fmt.Sprintf("  Total Effort: %d minutes", totalEffort))
	lines = append(lines, fmt.Sprintf("  P1 (Critical): %d  |  P2 (Important): %d  |  P3 (Minor): %d",
		len(priorityGroups[audit.TaskPriorityP1]),
		len(priorityGroups[audit.TaskPriorityP2]),
		len(priorityGroups[audit.TaskPriorityP3])))
	lines = append(lines, "")

	sections := []struct {
		label    string
		priority audit.TaskPriority
	}{
		{label: "P1 - CRITICAL", priority: audit.TaskPriorityP1},
		{label: "P2 - IMPORTANT", priority: audit.TaskPriorityP2},
		{label: "P3 - MINOR", priority: audit.TaskPriorityP3},
	}
	for _, section := range sections {
		sectionTasks := priorityGroups[section.priority]
		if len(sectionTasks) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("  --- %s ---", section.label))
		for taskIndex, task := range sectionTasks {
			lines = append(lines, fmt.Sprintf("    %d. [%dmin] %s", taskIndex+1, task.EffortMinutes, task.Description))
			for stepIndex, step := range task.Steps {
				lines = append(lines, fmt.Sprintf("       %d. %s", stepIndex+1, step))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
