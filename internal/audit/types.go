package audit

import (
	"time"

	"go.uber.org/zap"
)

// Severity grades how urgent a detected deviation is.
type Severity string

// Supported severity values, ordered from most to least urgent.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Category identifies a top-level audit section.
type Category string

// Supported audit categories.
const (
	CategoryNAP       Category = "nap"
	CategoryVisual    Category = "visual"
	CategoryVoice     Category = "voice"
	CategoryDirectory Category = "directory"
)

// Categories returns every audit category in report order.
func Categories() []Category {
	return []Category{CategoryNAP, CategoryVisual, CategoryVoice, CategoryDirectory}
}

// FieldKind enumerates every deviation kind an auditor may emit. Remediation
// templates switch exhaustively over these values, so adding a kind forces a
// compile-time visible decision instead of a silently ignored string.
type FieldKind string

// Deviation kinds grouped by the auditor that produces them.
const (
	FieldName          FieldKind = "name"
	FieldAddress       FieldKind = "address"
	FieldPhone         FieldKind = "phone"
	FieldPhoneFormat   FieldKind = "phone_format"
	FieldPrimaryColor  FieldKind = "primary_color"
	FieldAccentColor   FieldKind = "accent_color"
	FieldOffBrandColor FieldKind = "off_brand_color"
	FieldFontMissing   FieldKind = "font_missing"
	FieldFontExtra     FieldKind = "font_extra"
	FieldKeywordUsage  FieldKind = "keyword_coverage"
	FieldReadability   FieldKind = "readability"
	FieldToneDimension FieldKind = "tone"
	FieldTagline       FieldKind = "tagline"
	FieldListing       FieldKind = "listing"
)

// ToneField builds the deviation kind for one tone dimension (for example
// "tone_professional").
func ToneField(dimension string) FieldKind {
	return FieldKind(string(FieldToneDimension) + "_" + dimension)
}

// IsToneField reports whether the kind names a tone dimension.
func (kind FieldKind) IsToneField() bool {
	prefix := string(FieldToneDimension) + "_"
	return len(kind) > len(prefix) && string(kind[:len(prefix)]) == prefix
}

// ToneDimension returns the dimension suffix of a tone deviation kind.
func (kind FieldKind) ToneDimension() string {
	if !kind.IsToneField() {
		return ""
	}
	return string(kind[len(FieldToneDimension)+1:])
}

// Deviation records a single mismatch between the brand standard and an
// observed value. Deviations are immutable value objects.
type Deviation struct {
	Field    FieldKind `json:"field"`
	Expected string    `json:"expected"`
	Found    string    `json:"found"`
	Severity Severity  `json:"severity"`
	Platform string    `json:"platform"`
}

// CategoryResult is the outcome of one category audit for one company.
type CategoryResult struct {
	Category   Category    `json:"category"`
	Score      float64     `json:"score"`
	Details    string      `json:"details"`
	Deviations []Deviation `json:"inconsistencies"`
}

// SeverityCounts tallies deviations per severity.
type SeverityCounts struct {
	Critical int
	Warning  int
	Info     int
}

// CountSeverities tallies the severities present in a deviation list.
func CountSeverities(deviations []Deviation) SeverityCounts {
	counts := SeverityCounts{}
	for _, deviation := range deviations {
		switch deviation.Severity {
		case SeverityCritical:
			counts.Critical++
		case SeverityWarning:
			counts.Warning++
		case SeverityInfo:
			counts.Info++
		}
	}
	return counts
}

// Total returns the number of counted deviations.
func (counts SeverityCounts) Total() int {
	return counts.Critical + counts.Warning + counts.Info
}

// ListingRecord describes one company's presence on one directory platform.
// Records are supplied by the data provider, never built by the auditors.
type ListingRecord struct {
	Name          string      `json:"name"`
	URL           string      `json:"url"`
	HasListing    bool        `json:"has_listing"`
	AccuracyScore *float64    `json:"accuracy_score"`
	Issues        []Deviation `json:"issues"`
}

// AuditReport aggregates every category result for one company. The report is
// immutable after construction and regenerable from the same inputs.
type AuditReport struct {
	Company         string                      `json:"company"`
	CompanyName     string                      `json:"company_name"`
	OverallScore    float64                     `json:"overall_score"`
	Sections        map[Category]CategoryResult `json:"sections"`
	Issues          []Deviation                 `json:"issues"`
	Recommendations []string                    `json:"recommendations"`
	Platforms       []ListingRecord             `json:"platforms"`
	AuditTimestamp  string                      `json:"audit_timestamp"`
}

// TaskPriority ranks remediation tasks.
type TaskPriority string

// Supported priorities, P1 being the most urgent.
const (
	TaskPriorityP1 TaskPriority = "P1"
	TaskPriorityP2 TaskPriority = "P2"
	TaskPriorityP3 TaskPriority = "P3"
)

// Rank returns the sort rank of a priority (lower sorts first).
func (priority TaskPriority) Rank() int {
	switch priority {
	case TaskPriorityP1:
		return 0
	case TaskPriorityP2:
		return 1
	case TaskPriorityP3:
		return 2
	default:
		return 9
	}
}

// RemediationTask is a prioritized, step-by-step fix derived from deviations.
type RemediationTask struct {
	Priority      TaskPriority `json:"priority"`
	EffortMinutes int          `json:"effort_minutes"`
	Description   string       `json:"description"`
	Steps         []string     `json:"steps"`
	Company       string       `json:"company"`
	Category      Category     `json:"category"`
	Platform      string       `json:"platform,omitempty"`
}

// Clock abstracts time retrieval so report timestamps stay deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ResolveLogger unwraps a LoggerProvider, falling back to a no-op logger.
func ResolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
