// Package audit defines the shared brand-audit domain: deviation and
// severity vocabulary, per-category results, aggregated reports,
// remediation tasks, and the severity-to-priority policy.
//
// The concrete category auditors live in sibling packages (nap, visual,
// voice, directory); this package holds the types they exchange and the
// console rendering helpers the CLI commands share.
package audit
