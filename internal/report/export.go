package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uscmarketing/brandaudit/internal/audit"
)

const (
	reportFilePermissions           = 0o644
	marshalErrorTemplateConstant    = "marshal report for %s: %w"
	writeReportErrorTemplateConstant = "write report to %s: %w"
)

// ExportJSON serializes a report as indented JSON.
func ExportJSON(auditReport audit.AuditReport) ([]byte, error) {
	encoded, marshalError := json.MarshalIndent(auditReport, "", "  ")
	if marshalError != nil {
		return nil, fmt.Errorf(marshalErrorTemplateConstant, auditReport.Company, marshalError)
	}
	return encoded, nil
}

// WriteJSON serializes a report and writes it to the given path.
func WriteJSON(auditReport audit.AuditReport, outputPath string) error {
	encoded, exportError := ExportJSON(auditReport)
	if exportError != nil {
		return exportError
	}
	if writeError := os.WriteFile(outputPath, encoded, reportFilePermissions); writeError != nil {
		return fmt.Errorf(writeReportErrorTemplateConstant, outputPath, writeError)
	}
	return nil
}
