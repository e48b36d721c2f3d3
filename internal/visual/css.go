package visual

import (
	"strings"

	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/match"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

// genericFontFamilies are CSS fallback keywords that never count as
// off-brand typography.
var genericFontFamilies = map[string]struct{}{
	"sans-serif": {},
	"serif":      {},
	"monospace":  {},
	"inherit":    {},
}

// SignalsFromCSS derives page signals from a single page's stylesheet text.
// The result covers one scanned page; callers merging multiple pages are
// responsible for accumulating counts.
func SignalsFromCSS(cssText string, standard brand.BrandStandard, registry *brand.Registry) provider.PageSignals {
	observedColors := match.ExtractHexColors(cssText)
	observedFonts := match.ExtractFontFamilies(cssText)

	allowedColors := map[string]struct{}{
		match.NormalizeHex(registry.PrimaryColor()): {},
		match.NormalizeHex(standard.AccentColor):    {},
	}
	for _, neutralColor := range registry.NeutralColors() {
		allowedColors[match.NormalizeHex(neutralColor)] = struct{}{}
	}

	hasPrimary := false
	offBrandColors := make([]string, 0)
	for _, observedColor := range observedColors {
		normalizedColor := match.NormalizeHex(observedColor)
		if normalizedColor == match.NormalizeHex(registry.PrimaryColor()) {
			hasPrimary = true
		}
		if _, allowed := allowedColors[normalizedColor]; !allowed {
			offBrandColors = append(offBrandColors, observedColor)
		}
	}

	brandFonts := registry.Fonts().Families()
	missingFonts := make([]string, 0)
	for _, brandFont := range brandFonts {
		present := false
		for _, observedFont := range observedFonts {
			if strings.Contains(strings.ToLower(observedFont), strings.ToLower(brandFont)) {
				present = true
				break
			}
		}
		if !present {
			missingFonts = append(missingFonts, brandFont)
		}
	}

	extraFonts := make([]string, 0)
	for _, observedFont := range observedFonts {
		if _, generic := genericFontFamilies[strings.ToLower(observedFont)]; generic {
			continue
		}
		matchesBrand := false
		for _, brandFont := range brandFonts {
			if strings.Contains(strings.ToLower(observedFont), strings.ToLower(brandFont)) {
				matchesBrand = true
				break
			}
		}
		if !matchesBrand {
			extraFonts = append(extraFonts, observedFont)
		}
	}

	pagesWithIssues := 0
	if !hasPrimary || len(offBrandColors) > 0 || len(missingFonts) > 0 || len(extraFonts) > 0 {
		pagesWithIssues = 1
	}

	return provider.PageSignals{
		HexColorsFound:    observedColors,
		FontFamiliesFound: observedFonts,
		HasPrimaryColor:   hasPrimary,
		OffBrandColors:    offBrandColors,
		MissingFonts:      missingFonts,
		ExtraFonts:        extraFonts,
		PagesScanned:      1,
		PagesWithIssues:   pagesWithIssues,
	}
}
