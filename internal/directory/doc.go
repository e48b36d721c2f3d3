// Package directory scores a company's presence across business directories.
// Every configured directory carries an equal share of the category score; a
// missing listing contributes nothing and raises a critical finding.
package directory
