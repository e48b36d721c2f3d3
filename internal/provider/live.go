package provider

import "github.com/uscmarketing/brandaudit/internal/audit"

// LiveProvider is the placeholder for a real collection pipeline. It returns
// no observations, so audits running against it degrade to zero scores
// instead of failing; a deployment wires scraped data in behind this
// interface.
type LiveProvider struct{}

// NewLiveProvider constructs the empty live provider.
func NewLiveProvider() *LiveProvider {
	return &LiveProvider{}
}

// NAPListings returns no observations.
func (provider *LiveProvider) NAPListings(companySlug string) []NAPObservation {
	return nil
}

// PageSignals reports that no page signals are available.
func (provider *LiveProvider) PageSignals(companySlug string) (PageSignals, bool) {
	return PageSignals{}, false
}

// ContentAnalysis reports that no content analysis is available.
func (provider *LiveProvider) ContentAnalysis(companySlug string) (ContentAnalysis, bool) {
	return ContentAnalysis{}, false
}

// DirectoryListings returns no listing records.
func (provider *LiveProvider) DirectoryListings(companySlug string) []audit.ListingRecord {
	return nil
}
