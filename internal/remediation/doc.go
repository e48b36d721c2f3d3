// Package remediation turns audit deviations into prioritized, step-by-step
// fix tasks with effort estimates, plus a task-board JSON export and a
// console plan summary.
package remediation
