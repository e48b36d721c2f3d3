package audit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/utils/flags"
)

const (
	companyFlagNameConstant            = "company"
	companyFlagShorthandConstant       = "c"
	companyFlagUsageConstant           = "Company slug to audit (default: all active companies)."
	liveFlagNameConstant               = "live"
	liveFlagUsageConstant              = "Use the live data provider instead of the bundled demo dataset."
	verboseFlagNameConstant            = "verbose"
	verboseFlagShorthandConstant       = "v"
	verboseFlagUsageConstant           = "Print individual deviations."
	outputFlagNameConstant             = "output"
	outputFlagShorthandConstant        = "o"
	outputFlagUsageConstant            = "Write JSON output to this file path."
	unknownCompanyErrorTemplateConstant = "unknown company %q (valid: %s)"
	registryUnavailableErrorConstant   = "brand registry not initialized"
)

// CommandFlags carries the flag values shared by every audit subcommand.
type CommandFlags struct {
	Company    string
	UseLive    bool
	Verbose    bool
	OutputPath string
}

// RegisterCommandFlags wires the shared --company, --live, and --verbose
// flags onto a command.
func RegisterCommandFlags(command *cobra.Command, commandFlags *CommandFlags) {
	command.Flags().StringVarP(&commandFlags.Company, companyFlagNameConstant, companyFlagShorthandConstant, "", companyFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), &commandFlags.UseLive, liveFlagNameConstant, "", false, liveFlagUsageConstant)
	command.Flags().BoolVarP(&commandFlags.Verbose, verboseFlagNameConstant, verboseFlagShorthandConstant, false, verboseFlagUsageConstant)
}

// RegisterOutputFlag wires the --output flag onto report-producing commands.
func RegisterOutputFlag(command *cobra.Command, commandFlags *CommandFlags) {
	command.Flags().StringVarP(&commandFlags.OutputPath, outputFlagNameConstant, outputFlagShorthandConstant, "", outputFlagUsageConstant)
}

// ResolveCompanies expands the --company flag into the slugs to audit: the
// requested slug when set, otherwise every active company.
func ResolveCompanies(registry *brand.Registry, requestedCompany string) ([]string, error) {
	if registry == nil {
		return nil, errors.New(registryUnavailableErrorConstant)
	}
	if len(requestedCompany) == 0 {
		return registry.ActiveSlugs(), nil
	}
	if _, found := registry.Company(requestedCompany); !found {
		return nil, fmt.Errorf(unknownCompanyErrorTemplateConstant, requestedCompany, strings.Join(registry.Slugs(), ", "))
	}
	return []string{requestedCompany}, nil
}

// DisplayName resolves a company slug to its official name when registered.
func DisplayName(registry *brand.Registry, companySlug string) string {
	if registry != nil {
		if standard, found := registry.Company(companySlug); found {
			return standard.OfficialName
		}
	}
	return companySlug
}

// VerboseStyle selects how a command prints individual deviations.
type VerboseStyle int

// Supported verbose styles.
const (
	// VerboseStyleMarker prefixes severity markers and platform labels.
	VerboseStyleMarker VerboseStyle = iota
	// VerboseStyleFields prints field, expected, and found values.
	VerboseStyleFields
	// VerboseStyleShort prints the marker, platform, field, and found value.
	VerboseStyleShort
)

// CategoryRunner executes one category audit across the resolved companies
// and renders results to the command's output writer.
type CategoryRunner struct {
	Banner   string
	Registry *brand.Registry
	Produce  func(companySlug string) CategoryResult
	Style    VerboseStyle
}

// Run resolves companies from flags, runs the audit per company, and prints
// one check line each, with per-deviation detail when verbose is set.
func (runner CategoryRunner) Run(writer io.Writer, commandFlags CommandFlags) error {
	companySlugs, resolveError := ResolveCompanies(runner.Registry, commandFlags.Company)
	if resolveError != nil {
		return resolveError
	}

	fmt.Fprint(writer, RenderBanner(runner.Banner))
	fmt.Fprintln(writer)

	for _, companySlug := range companySlugs {
		result := runner.Produce(companySlug)
		fmt.Fprintln(writer, RenderCheckLine(DisplayName(runner.Registry, companySlug), result))

		if commandFlags.Verbose && len(result.Deviations) > 0 {
			for _, deviation := range result.Deviations {
				fmt.Fprintln(writer, renderVerboseLine(runner.Style, deviation))
			}
			fmt.Fprintln(writer)
		}
	}

	fmt.Fprintln(writer)
	return nil
}

func renderVerboseLine(style VerboseStyle, deviation Deviation) string {
	switch style {
	case VerboseStyleMarker:
		return fmt.Sprintf("    %s [%s] %s: expected '%s' | found '%s'",
			SeverityMarker(deviation.Severity), deviation.Platform, deviation.Field, deviation.Expected, deviation.Found)
	case VerboseStyleShort:
		return fmt.Sprintf("    %s [%s] %s: %s",
			SeverityMarker(deviation.Severity), deviation.Platform, deviation.Field, deviation.Found)
	default:
		return fmt.Sprintf("      %s: expected '%s' | found '%s'",
			deviation.Field, deviation.Expected, deviation.Found)
	}
}
