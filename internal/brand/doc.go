// Package brand holds the immutable brand-standard registry: per-company
// canonical identity records, the shared visual identity, fuzzy-match
// thresholds, category scoring weights, monitored directories, and the
// address-abbreviation table. The registry is built once from configuration
// and passed explicitly into every auditor.
package brand
