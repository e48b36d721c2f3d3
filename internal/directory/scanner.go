package directory

import (
	"fmt"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
)

const (
	activeListingExpectationConstant     = "Active listing"
	noListingFoundConstant               = "No listing found"
	unknownCompanyDetailTemplateConstant = "Unknown company: %s"
	pendingCompanyDetailTemplateConstant = "%s is marked pending; directory scan skipped."
	scanDetailTemplateConstant           = "Directory scan for %s: score %.0f/100 (%d/%d directories listed, %d critical, %d warnings, %d total issues)"
)

// Scanner scores directory listing records against the brand standard.
type Scanner struct {
	registry *brand.Registry
}

// NewScanner builds a Scanner bound to the given registry.
func NewScanner(registry *brand.Registry) *Scanner {
	return &Scanner{registry: registry}
}

// Scan scores one company's directory listings. Each record carries an equal
// share of 100; a present listing contributes its accuracy score scaled into
// that share, a missing listing contributes zero. A missing listing without a
// recorded issue gains a synthesized critical finding so the gap is never
// silent.
func (scanner *Scanner) Scan(companySlug string, listings []audit.ListingRecord) audit.CategoryResult {
	standard, found := scanner.registry.Company(companySlug)
	if !found {
		return audit.CategoryResult{
			Category: audit.CategoryDirectory,
			Score:    0,
			Details:  fmt.Sprintf(unknownCompanyDetailTemplateConstant, companySlug),
		}
	}
	if standard.Status == brand.StatusPending {
		return audit.CategoryResult{
			Category: audit.CategoryDirectory,
			Score:    0,
			Details:  fmt.Sprintf(pendingCompanyDetailTemplateConstant, standard.OfficialName),
		}
	}

	deviations := make([]audit.Deviation, 0)
	listedCount := 0
	for _, listing := range listings {
		if listing.HasListing {
			listedCount++
		} else if !hasMissingListingIssue(listing) {
			deviations = append(deviations, audit.Deviation{
				Field:    audit.FieldListing,
				Expected: activeListingExpectationConstant,
				Found:    noListingFoundConstant,
				Severity: audit.SeverityCritical,
				Platform: listing.Name,
			})
		}
		deviations = append(deviations, listing.Issues...)
	}

	score := scoreListings(listings)
	severityCounts := audit.CountSeverities(deviations)

	details := fmt.Sprintf(scanDetailTemplateConstant,
		standard.OfficialName, score, listedCount, len(listings),
		severityCounts.Critical, severityCounts.Warning, len(deviations))

	return audit.CategoryResult{
		Category:   audit.CategoryDirectory,
		Score:      score,
		Details:    details,
		Deviations: deviations,
	}
}

func scoreListings(listings []audit.ListingRecord) float64 {
	if len(listings) == 0 {
		return 0.0
	}

	perListingShare := 100.0 / float64(len(listings))
	score := 0.0
	for _, listing := range listings {
		if listing.HasListing && listing.AccuracyScore != nil {
			score += (*listing.AccuracyScore / 100.0) * perListingShare
		}
	}
	return audit.RoundScore(score)
}

func hasMissingListingIssue(listing audit.ListingRecord) bool {
	for _, issue := range listing.Issues {
		if issue.Field == audit.FieldListing {
			return true
		}
	}
	return false
}
