package provider

import (
	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/match"
)

// NAPObservation is one platform's observed name, address, and phone for a
// company.
type NAPObservation struct {
	Platform string
	Name     string
	Address  string
	Phone    string
}

// PageSignals summarizes the visual identity signals extracted from a
// company's web pages. The extraction itself happens upstream; a zero value
// means nothing was detected.
type PageSignals struct {
	HexColorsFound    []string
	FontFamiliesFound []string
	HasPrimaryColor   bool
	OffBrandColors    []string
	MissingFonts      []string
	ExtraFonts        []string
	PagesScanned      int
	PagesWithIssues   int
}

// ContentAnalysis summarizes the voice and tone signals for a company's
// marketing copy.
type ContentAnalysis struct {
	SampleText       string
	KeywordHits      int
	KeywordTotal     int
	ReadabilityGrade float64
	Tone             match.ToneScores
	TaglinePresent   bool
	PagesAnalyzed    int
}

// DataProvider supplies already-fetched observed brand data per company. All
// methods tolerate unknown companies by returning empty results.
type DataProvider interface {
	NAPListings(companySlug string) []NAPObservation
	PageSignals(companySlug string) (PageSignals, bool)
	ContentAnalysis(companySlug string) (ContentAnalysis, bool)
	DirectoryListings(companySlug string) []audit.ListingRecord
}

/// Resolve returns the provider selected by the live toggle: the embedded
// fixture dataset by default, the live placeholder otherwise.
func Resolve(useLive bool) (DataProvider, error) {
	if useLive {
		return NewLiveProvider(), nil
	}
	return NewFixtureProvider()
}
