// Package voice audits website copy against brand voice guidelines. The
// category score blends keyword coverage, Flesch-Kincaid readability, tone
// dimension scores, and tagline presence.
package voice
