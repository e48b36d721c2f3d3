package provider

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/match"
)

//go:embed fixtures.yaml
var embeddedFixtureData []byte

const fixtureParseErrorTemplateConstant = "unable to parse fixture dataset: %w"

type fixtureDocument struct {
	Companies map[string]fixtureCompany `yaml:"companies"`
}

type fixtureCompany struct {
	NAPListings       []fixtureNAPListing     `yaml:"nap_listings"`
	PageSignals       *fixturePageSignals     `yaml:"page_signals"`
	ContentAnalysis   *fixtureContentAnalysis `yaml:"content_analysis"`
	DirectoryListings []fixtureListing        `yaml:"directory_listings"`
}

type fixtureNAPListing struct {
	Platform string `yaml:"platform"`
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
}

type fixturePageSignals struct {
	HexColorsFound    []string `yaml:"hex_colors_found"`
	FontFamiliesFound []string `yaml:"font_families_found"`
	HasPrimaryColor   bool     `yaml:"has_primary_color"`
	OffBrandColors    []string `yaml:"off_brand_colors"`
	MissingFonts      []string `yaml:"missing_fonts"`
	ExtraFonts        []string `yaml:"extra_fonts"`
	PagesScanned      int      `yaml:"pages_scanned"`
	PagesWithIssues   int      `yaml:"pages_with_issues"`
}

type fixtureContentAnalysis struct {
	SampleText       string            `yaml:"sample_text"`
	KeywordHits      int               `yaml:"keyword_hits"`
	KeywordTotal     int               `yaml:"keyword_total"`
	ReadabilityGrade float64           `yaml:"readability_grade"`
	ToneScores       fixtureToneScores `yaml:"tone_scores"`
	TaglinePresent   bool              `yaml:"tagline_present"`
	PagesAnalyzed    int               `yaml:"pages_analyzed"`
}

type fixtureToneScores struct {
	Professional  float64 `yaml:"professional"`
	Authoritative float64 `yaml:"authoritative"`
	Approachable  float64 `yaml:"approachable"`
}

type fixtureListing struct {
	Name          string             `yaml:"name"`
	URL           string             `yaml:"url"`
	HasListing    bool               `yaml:"has_listing"`
	AccuracyScore *float64           `yaml:"accuracy_score"`
	Issues        []fixtureDeviation `yaml:"issues"`
}

type fixtureDeviation struct {
	Field    string `yaml:"field"`
	Expected string `yaml:"expected"`
	Found    string `yaml:"found"`
	Severity string `yaml:"severity"`
	Platform string `yaml:"platform"`
}

// FixtureProvider serves the embedded demo dataset. It backs the default
// demo mode of every audit command.
type FixtureProvider struct {
	companies map[string]fixtureCompany
}

// NewFixtureProvider parses the embedded dataset into a provider.
func NewFixtureProvider() (*FixtureProvider, error) {
	return NewFixtureProviderFromYAML(embeddedFixtureData)
}

// NewFixtureProviderFromYAML builds a provider from caller-supplied fixture
// data, primarily for tests.
func NewFixtureProviderFromYAML(fixtureData []byte) (*FixtureProvider, error) {
	document := fixtureDocument{}
	if unmarshalError := yaml.Unmarshal(fixtureData, &document); unmarshalError != nil {
		return nil, fmt.Errorf(fixtureParseErrorTemplateConstant, unmarshalError)
	}

	return &FixtureProvider{companies: document.Companies}, nil
}

// NAPListings returns the fixture NAP observations in platform order.
func (provider *FixtureProvider) NAPListings(companySlug string) []NAPObservation {
	company, found := provider.companies[companySlug]
	if !found {
		return nil
	}

	observations := make([]NAPObservation, 0, len(company.NAPListings))
	for _, listing := range company.NAPListings {
		observations = append(observations, NAPObservation{
			Platform: listing.Platform,
			Name:     listing.Name,
			Address:  listing.Address,
			Phone:    listing.Phone,
		})
	}
	return observations
}

// PageSignals returns the fixture page-scan signals for a company.
func (provider *FixtureProvider) PageSignals(companySlug string) (PageSignals, bool) {
	company, found := provider.companies[companySlug]
	if !found || company.PageSignals == nil {
		return PageSignals{}, false
	}

	signals := PageSignals{
		HexColorsFound:    company.PageSignals.HexColorsFound,
		FontFamiliesFound: company.PageSignals.FontFamiliesFound,
		HasPrimaryColor:   company.PageSignals.HasPrimaryColor,
		OffBrandColors:    company.PageSignals.OffBrandColors,
		MissingFonts:      company.PageSignals.MissingFonts,
		ExtraFonts:        company.PageSignals.ExtraFonts,
		PagesScanned:      company.PageSignals.PagesScanned,
		PagesWithIssues:   company.PageSignals.PagesWithIssues,
	}
	return signals, true
}

// ContentAnalysis returns the fixture content analysis for a company.
func (provider *FixtureProvider) ContentAnalysis(companySlug string) (ContentAnalysis, bool) {
	company, found := provider.companies[companySlug]
	if !found || company.ContentAnalysis == nil {
		return ContentAnalysis{}, false
	}

	analysis := ContentAnalysis{
		SampleText:       company.ContentAnalysis.SampleText,
		KeywordHits:      company.ContentAnalysis.KeywordHits,
		KeywordTotal:     company.ContentAnalysis.KeywordTotal,
		ReadabilityGrade: company.ContentAnalysis.ReadabilityGrade,
		Tone: match.ToneScores{
			Professional:  company.ContentAnalysis.ToneScores.Professional,
			Authoritative: company.ContentAnalysis.ToneScores.Authoritative,
			Approachable:  company.ContentAnalysis.ToneScores.Approachable,
		},
		TaglinePresent: company.ContentAnalysis.TaglinePresent,
		PagesAnalyzed:  company.ContentAnalysis.PagesAnalyzed,
	}
	return analysis, true
}

// DirectoryListings returns the fixture listing records in directory order.
func (provider *FixtureProvider) DirectoryListings(companySlug string) []audit.ListingRecord {
	company, found := provider.companies[companySlug]
	if !found {
		return nil
	}

	records := make([]audit.ListingRecord, 0, len(company.DirectoryListings))
	for _, listing := range company.DirectoryListings {
		record := audit.ListingRecord{
			Name:          listing.Name,
			URL:           listing.URL,
			HasListing:    listing.HasListing,
			AccuracyScore: listing.AccuracyScore,
			Issues:        make([]audit.Deviation, 0, len(listing.Issues)),
		}
		for _, issue := range listing.Issues {
			record.Issues = append(record.Issues, audit.Deviation{
				Field:    audit.FieldKind(issue.Field),
				Expected: issue.Expected,
				Found:    issue.Found,
				Severity: audit.Severity(issue.Severity),
				Platform: issue.Platform,
			})
		}
		records = append(records, record)
	}
	return records
}
