// Package report aggregates the four category audits into a weighted brand
// health report with recommendations, a console summary, and JSON export.
package report
