package brand

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	weightTotalRequiredConstant              = 100
	defaultFuzzyMatchThresholdConstant       = 0.85
	defaultFuzzyWarningCeilingConstant       = 0.95
	weightSumErrorTemplateConstant           = "scoring weights must sum to %d, got %d"
	negativeWeightErrorTemplateConstant      = "scoring weight for %s must not be negative"
	invalidPrimaryColorErrorTemplateConstant = "primary color %q is not a #RRGGBB hex value"
	invalidAccentColorErrorTemplateConstant  = "company %s accent color %q is not a #RRGGBB hex value"
	missingOfficialNameErrorTemplateConstant = "company %s has no official name"
	invalidStatusErrorTemplateConstant       = "company %s has unsupported status %q"
	thresholdRangeErrorTemplateConstant      = "fuzzy thresholds must satisfy 0 < critical (%v) <= warning (%v) <= 1"
)

// Status marks a company's lifecycle stage.
type Status string

// Supported lifecycle statuses.
const (
	StatusActive  Status = "active"
	StatusPending Status = "pending"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// BrandStandard is the canonical, immutable identity record for one company.
type BrandStandard struct {
	OfficialName  string
	Tagline       string
	AccentColor   string
	AddressLine1  string
	AddressLine2  string
	Phone         string
	VoiceKeywords []string
	Status        Status
}

// CanonicalAddress joins the two canonical address lines.
func (standard BrandStandard) CanonicalAddress() string {
	return strings.TrimSpace(standard.AddressLine1 + " " + standard.AddressLine2)
}

// Thresholds configures the fuzzy-match severity cutoffs: a ratio below
// CriticalBelow is critical, below WarningBelow a warning, below 1.0 info.
type Thresholds struct {
	CriticalBelow float64
	WarningBelow  float64
}

// Weights assigns each audit category its share of the overall score.
type Weights struct {
	NAP         int
	Visual      int
	Voice       int
	Directories int
}

// Total sums all category weights.
func (weights Weights) Total() int {
	return weights.NAP + weights.Visual + weights.Voice + weights.Directories
}

// FontSet names the required heading and body font families.
type FontSet struct {
	Heading string
	Body    string
}

// Families lists the required font families in heading, body order.
func (fonts FontSet) Families() []string {
	families := make([]string, 0, 2)
	if len(fonts.Heading) > 0 {
		families = append(families, fonts.Heading)
	}
	if len(fonts.Body) > 0 {
		families = append(families, fonts.Body)
	}
	return families
}

// Registry is the immutable brand-standard lookup built once from
// configuration and injected into every auditor.
type Registry struct {
	companies     map[string]BrandStandard
	slugs         []string
	primaryColor  string
	neutralColors []string
	fonts         FontSet
	thresholds    Thresholds
	weights       Weights
	directories   []string
	abbreviations map[string]string
}

// NewRegistry validates the configuration and builds a Registry. Invariant
// violations (weights not summing to 100, malformed colors, unknown statuses)
// are programmer or configuration errors and fail loudly here.
func NewRegistry(configuration Configuration) (*Registry, error) {
	weights := Weights{
		NAP:         configuration.Weights.NAP,
		Visual:      configuration.Weights.Visual,
		Voice:       configuration.Weights.Voice,
		Directories: configuration.Weights.Directories,
	}
	for categoryName, weightValue := range map[string]int{
		"nap":         weights.NAP,
		"visual":      weights.Visual,
		"voice":       weights.Voice,
		"directories": weights.Directories,
	} {
		if weightValue < 0 {
			return nil, fmt.Errorf(negativeWeightErrorTemplateConstant, categoryName)
		}
	}
	if weights.Total() != weightTotalRequiredConstant {
		return nil, fmt.Errorf(weightSumErrorTemplateConstant, weightTotalRequiredConstant, weights.Total())
	}

	if !hexColorPattern.MatchString(configuration.PrimaryColor) {
		return nil, fmt.Errorf(invalidPrimaryColorErrorTemplateConstant, configuration.PrimaryColor)
	}

	thresholds := Thresholds{
		CriticalBelow: configuration.FuzzyMatchThreshold,
		WarningBelow:  configuration.FuzzyWarningCeiling,
	}
	if thresholds.CriticalBelow == 0 {
		thresholds.CriticalBelow = defaultFuzzyMatchThresholdConstant
	}
	if thresholds.WarningBelow == 0 {
		thresholds.WarningBelow = defaultFuzzyWarningCeilingConstant
	}
	if thresholds.CriticalBelow <= 0 || thresholds.CriticalBelow > thresholds.WarningBelow || thresholds.WarningBelow > 1 {
		return nil, fmt.Errorf(thresholdRangeErrorTemplateConstant, thresholds.CriticalBelow, thresholds.WarningBelow)
	}

	companies := make(map[string]BrandStandard, len(configuration.Companies))
	slugs := make([]string, 0, len(configuration.Companies))
	for companySlug, companyConfiguration := range configuration.Companies {
		standard, standardError := buildStandard(companySlug, companyConfiguration)
		if standardError != nil {
			return nil, standardError
		}
		companies[companySlug] = standard
		slugs = append(slugs, companySlug)
	}
	sort.Strings(slugs)

	registry := &Registry{
		companies:     companies,
		slugs:         slugs,
		primaryColor:  configuration.PrimaryColor,
		neutralColors: append([]string(nil), configuration.NeutralColors...),
		fonts: FontSet{
			Heading: configuration.Fonts.Heading,
			Body:    configuration.Fonts.Body,
		},
		thresholds:    thresholds,
		weights:       weights,
		directories:   append([]string(nil), configuration.Directories...),
		abbreviations: copyStringMap(configuration.AddressAbbreviations),
	}

	return registry, nil
}

func buildStandard(companySlug string, configuration CompanyConfiguration) (BrandStandard, error) {
	if len(strings.TrimSpace(configuration.OfficialName)) == 0 {
		return BrandStandard{}, fmt.Errorf(missingOfficialNameErrorTemplateConstant, companySlug)
	}
	if !hexColorPattern.MatchString(configuration.AccentColor) {
		return BrandStandard{}, fmt.Errorf(invalidAccentColorErrorTemplateConstant, companySlug, configuration.AccentColor)
	}

	status := Status(configuration.Status)
	if len(status) == 0 {
		status = StatusActive
	}
	if status != StatusActive && status != StatusPending {
		return BrandStandard{}, fmt.Errorf(invalidStatusErrorTemplateConstant, companySlug, configuration.Status)
	}

	standard := BrandStandard{
		OfficialName:  configuration.OfficialName,
		Tagline:       configuration.Tagline,
		AccentColor:   configuration.AccentColor,
		AddressLine1:  configuration.AddressLine1,
		AddressLine2:  configuration.AddressLine2,
		Phone:         configuration.Phone,
		VoiceKeywords: append([]string(nil), configuration.VoiceKeywords...),
		Status:        status,
	}
	return standard, nil
}

func copyStringMap(source map[string]string) map[string]string {
	duplicated := make(map[string]string, len(source))
	for key, value := range source {
		duplicated[key] = value
	}
	return duplicated
}

// Company looks up a brand standard by company slug.
func (registry *Registry) Company(companySlug string) (BrandStandard, bool) {
	standard, found := registry.companies[companySlug]
	return standard, found
}

// Slugs returns every registered company slug in sorted order.
func (registry *Registry) Slugs() []string {
	return append([]string(nil), registry.slugs...)
}

// ActiveSlugs returns the sorted slugs of companies with active status.
func (registry *Registry) ActiveSlugs() []string {
	activeSlugs := make([]string, 0, len(registry.slugs))
	for _, companySlug := range registry.slugs {
		if registry.companies[companySlug].Status == StatusActive {
			activeSlugs = append(activeSlugs, companySlug)
		}
	}
	return activeSlugs
}

// PrimaryColor returns the shared primary brand color.
func (registry *Registry) PrimaryColor() string {
	return registry.primaryColor
}

// NeutralColors returns palette colors that never count as off-brand.
func (registry *Registry) NeutralColors() []string {
	return append([]string(nil), registry.neutralColors...)
}

// Fonts returns the required brand font families.
func (registry *Registry) Fonts() FontSet {
	return registry.fonts
}

// Thresholds returns the fuzzy-match severity cutoffs.
func (registry *Registry) Thresholds() Thresholds {
	return registry.thresholds
}

// Weights returns the category scoring weights.
func (registry *Registry) Weights() Weights {
	return registry.weights
}

// Directories returns the monitored directory platforms in configured order.
func (registry *Registry) Directories() []string {
	return append([]string(nil), registry.directories...)
}

// Abbreviations returns the address-abbreviation expansion table.
func (registry *Registry) Abbreviations() map[string]string {
	return copyStringMap(registry.abbreviations)
}
