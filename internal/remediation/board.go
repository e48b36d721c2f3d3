package remediation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

const (
	boardNameConstant             = "Brand Consistency Remediation"
	boardGroupSuffixConstant      = "_fixes"
	boardInitialStatusConstant    = "To Do"
	boardFilePermissions          = 0o644
	marshalBoardErrorTemplate     = "marshal remediation board: %w"
	writeBoardErrorTemplate       = "write remediation board to %s: %w"
)

// BoardLabel wraps a task-board column label.
type BoardLabel struct {
	Label string `json:"label"`
}

// BoardColumnValues carries the column values of one board item.
type BoardColumnValues struct {
	Priority      BoardLabel `json:"priority"`
	Status        BoardLabel `json:"status"`
	EffortMinutes int        `json:"effort_minutes"`
	Company       string     `json:"company"`
	Platform      string     `json:"platform"`
	Category      string     `json:"category"`
}

// BoardSubitem is one step of a task as a board subitem.
type BoardSubitem struct {
	Name string `json:"name"`
}

// BoardItem is one remediation task in board form.
type BoardItem struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Group        string            `json:"group"`
	ColumnValues BoardColumnValues `json:"column_values"`
	Subitems     []BoardSubitem    `json:"subitems"`
}

// PriorityBreakdown counts tasks per priority.
type PriorityBreakdown struct {
	P1 int `json:"P1"`
	P2 int `json:"P2"`
	P3 int `json:"P3"`
}

// BoardExport is the task-board import document for a remediation plan.
type BoardExport struct {
	BoardName          string            `json:"board_name"`
	Items              []BoardItem       `json:"items"`
	TotalTasks         int               `json:"total_tasks"`
	TotalEffortMinutes int               `json:"total_effort_minutes"`
	PriorityBreakdown  PriorityBreakdown `json:"priority_breakdown"`
}

// BuildBoard converts a task list into the board import document. Item IDs
// are 1-based positions in the given order.
func BuildBoard(tasks []audit.RemediationTask) BoardExport {
	items := make([]BoardItem, 0, len(tasks))
	totalEffort := 0
	breakdown := PriorityBreakdown{}

	for taskIndex, task := range tasks {
		items = append(items, BoardItem{
			ID:    taskIndex + 1,
			Name:  task.Description,
			Group: string(task.Category) + boardGroupSuffixConstant,
			ColumnValues: BoardColumnValues{
				Priority:      BoardLabel{Label: string(task.Priority)},
				Status:        BoardLabel{Label: boardInitialStatusConstant},
				EffortMinutes: task.EffortMinutes,
				Company:       task.Company,
				Platform:      task.Platform,
				Category:      string(task.Category),
			},
			Subitems: boardSubitems(task.Steps),
		})

		totalEffort += task.EffortMinutes
		switch task.Priority {
		case audit.TaskPriorityP1:
			breakdown.P1++
		case audit.TaskPriorityP2:
			breakdown.P2++
		case audit.TaskPriorityP3:
			breakdown.P3++
		}
	}

	return BoardExport{
		BoardName:          boardNameConstant,
		Items:              items,
		TotalTasks:         len(tasks),
		TotalEffortMinutes: totalEffort,
		PriorityBreakdown:  breakdown,
	}
}

// ExportBoardJSON serializes a task list as an indented board document.
func ExportBoardJSON(tasks []audit.RemediationTask) ([]byte, error) {
	encoded, marshalError := json.MarshalIndent(BuildBoard(tasks), "", "  ")
	if marshalError != nil {
		return nil, fmt.Errorf(marshalBoardErrorTemplate, marshalError)
	}
	return encoded, nil
}

// WriteBoardJSON serializes a task list and writes the board document to the
// given path.
func WriteBoardJSON(tasks []audit.RemediationTask, outputPath string) error {
	encoded, exportError := ExportBoardJSON(tasks)
	if exportError != nil {
		return exportError
	}
	if writeError := os.WriteFile(outputPath, encoded, boardFilePermissions); writeError != nil {
		return fmt.Errorf(writeBoardErrorTemplate, outputPath, writeError)
	}
	return nil
}

func boardSubitems(steps []string) []BoardSubitem {
	subitems := make([]BoardSubitem, 0, len(steps))
	for _, step := range steps {
		subitems = append(subitems, BoardSubitem{Name: step})
	}
	return subitems
}
