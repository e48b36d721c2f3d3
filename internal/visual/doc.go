// Package visual audits visual identity compliance: presence of the primary
// and accent brand colors, off-brand palette usage, and required font
// families. Color and font sub-scores blend 60/40 into the category score.
package visual
