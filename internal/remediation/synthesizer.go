package remediation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
)

const (
	napEffortSmall            = 15
	napEffortLarge            = 25
	napEffortLargeAboveIssues = 2
	fontMissingEffort         = 30
	offBrandColorEffort       = 45
	fontExtraEffort           = 20
	primaryColorEffort        = 30
	taglineEffort             = 15
	keywordEffort             = 60
	readabilityEffort         = 45
	toneEffort                = 30
	missingListingEffort      = 30
)

// Synthesizer derives remediation tasks from audit reports using the brand
// standards for canonical values in task steps.
type Synthesizer struct {
	registry *brand.Registry
}

// NewSynthesizer builds a Synthesizer bound to the given registry.
func NewSynthesizer(registry *brand.Registry) *Synthesizer {
	return &Synthesizer{registry: registry}
}

// Synthesize produces the full remediation plan for one report, sorted P1
// first. Synthesis is pure: the same report always yields the same tasks.
func (synthesizer *Synthesizer) Synthesize(auditReport audit.AuditReport) []audit.RemediationTask {
	standard, found := synthesizer.registry.Company(auditReport.Company)
	if !found {
		return nil
	}

	tasks := make([]audit.RemediationTask, 0)
	if napSection, present := auditReport.Sections[audit.CategoryNAP]; present {
		tasks = append(tasks, synthesizer.napTasks(auditReport.Company, standard, napSection.Deviations)...)
	}
	if visualSection, present := auditReport.Sections[audit.CategoryVisual]; present {
		tasks = append(tasks, synthesizer.visualTasks(auditReport.Company, standard, visualSection.Deviations)...)
	}
	if voiceSection, present := auditReport.Sections[audit.CategoryVoice]; present {
		tasks = append(tasks, synthesizer.voiceTasks(auditReport.Company, standard, voiceSection.Deviations)...)
	}
	if directorySection, present := auditReport.Sections[audit.CategoryDirectory]; present {
		tasks = append(tasks, synthesizer.directoryTasks(auditReport.Company, standard, directorySection.Deviations)...)
	}

	sort.SliceStable(tasks, func(firstIndex, secondIndex int) bool {
		return tasks[firstIndex].Priority.Rank() < tasks[secondIndex].Priority.Rank()
	})
	return tasks
}

// napTasks groups NAP deviations by platform and emits one fix task per
// affected platform.
func (synthesizer *Synthesizer) napTasks(companySlug string, standard brand.BrandStandard, deviations []audit.Deviation) []audit.RemediationTask {
	platformDeviations := make(map[string][]audit.Deviation)
	platformOrder := make([]string, 0)
	for _, deviation := range deviations {
		if len(deviation.Platform) == 0 {
			continue
		}
		if _, seen := platformDeviations[deviation.Platform]; !seen {
			platformOrder = append(platformOrder, deviation.Platform)
		}
		platformDeviations[deviation.Platform] = append(platformDeviations[deviation.Platform], deviation)
	}
	sort.Strings(platformOrder)

	tasks := make([]audit.RemediationTask, 0, len(platformOrder))
	for _, platform := range platformOrder {
		grouped := platformDeviations[platform]

		var firstName, firstAddress, firstPhone *audit.Deviation
		for deviationIndex := range grouped {
			deviation := &grouped[deviationIndex]
			switch deviation.Field {
			case audit.FieldName:
				if firstName == nil {
					firstName = deviation
				}
			case audit.FieldAddress:
				if firstAddress == nil {
					firstAddress = deviation
				}
			case audit.FieldPhone, audit.FieldPhoneFormat:
				if firstPhone == nil {
					firstPhone = deviation
				}
			}
		}

		steps := make([]string, 0)
		steps = append(steps, fmt.Sprintf("Log in to %s business manager / owner portal.", platform))
		if firstName != nil {
			steps = append(steps, fmt.Sprintf("Update business name to exactly: '%s' (currently showing: '%s').",
				standard.OfficialName, firstName.Found))
		}
		if firstAddress != nil {
			steps = append(steps, fmt.Sprintf("Update address to: '%s, %s' (currently showing: '%s').",
				standard.AddressLine1, standard.AddressLine2, firstAddress.Found))
		}
		if firstPhone != nil {
			steps = append(steps, fmt.Sprintf("Update phone number to: '%s' (currently showing: '%s').",
				standard.Phone, firstPhone.Found))
		}
		steps = append(steps, "Save changes and verify the listing displays correctly.")
		steps = append(steps, "Take a screenshot for documentation.")

		effort := napEffortSmall
		if len(grouped) > napEffortLargeAboveIssues {
			effort = napEffortLarge
		}

		fieldNames := make([]string, 0, len(grouped))
		for _, deviation := range grouped {
			fieldNames = append(fieldNames, string(deviation.Field))
		}
		fieldNames = sortedUnique(fieldNames)

		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(grouped),
			EffortMinutes: effort,
			Description:   fmt.Sprintf("Fix %s on %s for %s", strings.Join(fieldNames, ", "), platform, standard.OfficialName),
			Steps:         steps,
			Company:       companySlug,
			Category:      audit.CategoryNAP,
			Platform:      platform,
		})
	}
	return tasks
}

// visualTasks groups visual deviations by kind and emits one task per kind.
func (synthesizer *Synthesizer) visualTasks(companySlug string, standard brand.BrandStandard, deviations []audit.Deviation) []audit.RemediationTask {
	grouped := groupByField(deviations)
	fonts := synthesizer.registry.Fonts()
	tasks := make([]audit.RemediationTask, 0)

	if missingFonts := grouped[audit.FieldFontMissing]; len(missingFonts) > 0 {
		fontNames := make([]string, 0, len(missingFonts))
		for _, deviation := range missingFonts {
			fontNames = append(fontNames, deviation.Expected)
		}
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(missingFonts),
			EffortMinutes: fontMissingEffort,
			Description:   fmt.Sprintf("Add missing brand fonts (%s) to %s website", strings.Join(fontNames, ", "), standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Open the website CSS / theme configuration for %s.", standard.OfficialName),
				fmt.Sprintf("Add Google Fonts import for: %s.", strings.Join(fontNames, ", ")),
				fmt.Sprintf("Update heading selectors to use '%s' as the primary font.", fonts.Heading),
				fmt.Sprintf("Update body text selectors to use '%s' as the primary font.", fonts.Body),
				"Verify font rendering across homepage, about, and service pages.",
				"Take before/after screenshots.",
			},
			Company:  companySlug,
			Category: audit.CategoryVisual,
		})
	}

	if offBrand := grouped[audit.FieldOffBrandColor]; len(offBrand) > 0 {
		colors := make([]string, 0, len(offBrand))
		for _, deviation := range offBrand {
			colors = append(colors, deviation.Found)
		}
		neutrals := synthesizer.registry.NeutralColors()
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(offBrand),
			EffortMinutes: offBrandColorEffort,
			Description:   fmt.Sprintf("Replace %d off-brand color(s) on %s website", len(colors), standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Search CSS files for the following off-brand hex values: %s.", strings.Join(colors, ", ")),
				"Replace with appropriate brand palette colors:",
				fmt.Sprintf("  - Primary: %s", synthesizer.registry.PrimaryColor()),
				fmt.Sprintf("  - Accent: %s", standard.AccentColor),
				fmt.Sprintf("  - Neutrals: %s", strings.Join(neutrals, ", ")),
				"Create a CSS custom properties file (:root variables) for brand colors.",
				"Update all color references to use CSS variables.",
				"Verify visual appearance on key pages.",
			},
			Company:  companySlug,
			Category: audit.CategoryVisual,
		})
	}

	if extraFonts := grouped[audit.FieldFontExtra]; len(extraFonts) > 0 {
		fontNames := make([]string, 0, len(extraFonts))
		for _, deviation := range extraFonts {
			fontNames = append(fontNames, deviation.Found)
		}
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(extraFonts),
			EffortMinutes: fontExtraEffort,
			Description:   fmt.Sprintf("Remove non-brand fonts (%s) from %s website", strings.Join(fontNames, ", "), standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Search CSS for font-family declarations containing: %s.", strings.Join(fontNames, ", ")),
				"Replace with the appropriate brand font:",
				fmt.Sprintf("  - Headings: '%s', serif", fonts.Heading),
				fmt.Sprintf("  - Body: '%s', sans-serif", fonts.Body),
				"Remove any unused @import or <link> tags for non-brand fonts.",
				"Verify font rendering across all pages.",
			},
			Company:  companySlug,
			Category: audit.CategoryVisual,
		})
	}

	if primaryMissing := grouped[audit.FieldPrimaryColor]; len(primaryMissing) > 0 {
		primaryColor := synthesizer.registry.PrimaryColor()
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(primaryMissing),
			EffortMinutes: primaryColorEffort,
			Description:   fmt.Sprintf("Add primary brand color (%s) to %s website", primaryColor, standard.OfficialName),
			Steps: []string{
				"Open the main CSS / theme file.",
				fmt.Sprintf("Add %s as the primary brand color in CSS variables.", primaryColor),
				"Apply to: header background, footer background, primary text, CTA buttons.",
				"Ensure sufficient contrast with text elements (WCAG AA minimum).",
				"Verify across homepage, about, services, and contact pages.",
			},
			Company:  companySlug,
			Category: audit.CategoryVisual,
		})
	}

	return tasks
}

// voiceTasks groups voice deviations by kind, collapsing tone dimensions
// into one task.
func (synthesizer *Synthesizer) voiceTasks(companySlug string, standard brand.BrandStandard, deviations []audit.Deviation) []audit.RemediationTask {
	grouped := groupByField(deviations)
	tasks := make([]audit.RemediationTask, 0)

	if taglineIssues := grouped[audit.FieldTagline]; len(taglineIssues) > 0 && len(standard.Tagline) > 0 {
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(taglineIssues),
			EffortMinutes: taglineEffort,
			Description:   fmt.Sprintf("Add brand tagline to %s website", standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Add the tagline '%s' to the website header or hero section.", standard.Tagline),
				"Ensure it appears on the homepage above the fold.",
				"Consider adding it to the meta description for SEO.",
				"Verify it renders correctly on desktop and mobile.",
			},
			Company:  companySlug,
			Category: audit.CategoryVoice,
		})
	}

	if keywordIssues := grouped[audit.FieldKeywordUsage]; len(keywordIssues) > 0 {
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(keywordIssues),
			EffortMinutes: keywordEffort,
			Description:   fmt.Sprintf("Improve brand keyword density for %s website copy", standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Review the following brand keywords: %s.", strings.Join(standard.VoiceKeywords, ", ")),
				"Audit homepage, about page, and service pages for keyword usage.",
				"Naturally integrate missing keywords into page headings and body copy.",
				"Aim for at least 50% keyword coverage across main pages.",
				"Do not keyword-stuff; maintain natural, professional tone.",
				"Review and approve copy changes with marketing team.",
			},
			Company:  companySlug,
			Category: audit.CategoryVoice,
		})
	}

	if readabilityIssues := grouped[audit.FieldReadability]; len(readabilityIssues) > 0 {
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(readabilityIssues),
			EffortMinutes: readabilityEffort,
			Description:   fmt.Sprintf("Adjust content readability for %s", standard.OfficialName),
			Steps: []string{
				"Target Grade 8-12 reading level for B2B construction audience.",
				"Shorten sentences longer than 25 words.",
				"Replace jargon with clear, industry-standard terms.",
				"Use active voice and concrete examples.",
				"Re-test readability after edits using Flesch-Kincaid.",
			},
			Company:  companySlug,
			Category: audit.CategoryVoice,
		})
	}

	toneIssues := make([]audit.Deviation, 0)
	toneDimensions := make([]string, 0)
	for _, deviation := range deviations {
		if deviation.Field.IsToneField() {
			toneIssues = append(toneIssues, deviation)
			toneDimensions = append(toneDimensions, deviation.Field.ToneDimension())
		}
	}
	if len(toneIssues) > 0 {
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForDeviations(toneIssues),
			EffortMinutes: toneEffort,
			Description:   fmt.Sprintf("Strengthen %s tone for %s", strings.Join(toneDimensions, ", "), standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Low scores detected in: %s.", strings.Join(toneDimensions, ", ")),
				"Review website copy for tone alignment.",
				"Professional: Use industry terms, cite certifications, reference project scale.",
				"Authoritative: Include stats, leadership claims, track record evidence.",
				"Approachable: Add partnership language, team references, client testimonials.",
				"Apply changes to homepage, about page, and service pages.",
			},
			Company:  companySlug,
			Category: audit.CategoryVoice,
		})
	}

	return tasks
}

// directoryTasks emits one listing-creation task per missing directory.
func (synthesizer *Synthesizer) directoryTasks(companySlug string, standard brand.BrandStandard, deviations []audit.Deviation) []audit.RemediationTask {
	tasks := make([]audit.RemediationTask, 0)
	for _, deviation := range deviations {
		if deviation.Field != audit.FieldListing || deviation.Severity != audit.SeverityCritical {
			continue
		}
		tasks = append(tasks, audit.RemediationTask{
			Priority:      audit.PriorityForSeverities([]audit.Severity{deviation.Severity}),
			EffortMinutes: missingListingEffort,
			Description:   fmt.Sprintf("Create %s listing for %s", deviation.Platform, standard.OfficialName),
			Steps: []string{
				fmt.Sprintf("Go to %s and create a new business listing.", deviation.Platform),
				fmt.Sprintf("Business Name: %s", standard.OfficialName),
				fmt.Sprintf("Address: %s, %s", standard.AddressLine1, standard.AddressLine2),
				fmt.Sprintf("Phone: %s", standard.Phone),
				"Upload brand-consistent logo and cover photo.",
				"Add business description using brand tagline and voice keywords.",
				"Select appropriate business categories.",
				"Verify ownership if required.",
				"Take a screenshot of the completed listing.",
			},
			Company:  companySlug,
			Category: audit.CategoryDirectory,
			Platform: deviation.Platform,
		})
	}
	return tasks
}

func groupByField(deviations []audit.Deviation) map[audit.FieldKind][]audit.Deviation {
	grouped := make(map[audit.FieldKind][]audit.Deviation)
	for _, deviation := range deviations {
		grouped[deviation.Field] = append(grouped[deviation.Field], deviation)
	}
	return grouped
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, duplicate := seen[value]; duplicate {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	sort.Strings(unique)
	return unique
}
