// Package match provides the pure normalization and similarity primitives the
// category auditors build on: phone and address normalization, a
// case-insensitive sequence-similarity ratio, RGB color distance, CSS color
// and font extraction, readability grading, and lexical keyword and tone
// analysis. Every function is deterministic and side-effect free.
package match
