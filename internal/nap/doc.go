// Package nap audits Name, Address, Phone consistency: each platform's
// observed identity data is fuzzy-compared against the brand standard and
// scored by severity-weighted deductions.
package nap
