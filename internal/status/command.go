// Package status prints the configured brand standards: companies with
// their lifecycle stage, scoring weights, monitored directories, and the
// fuzzy-match thresholds.
package status

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
)

const (
	commandNameConstant             = "status"
	commandShortDescriptionConstant = "Show configured companies and audit settings"
	commandLongDescriptionConstant  = "status lists every configured company with its lifecycle stage and prints the scoring weights, monitored directories, and fuzzy-match thresholds in effect."
	bannerTitleConstant             = "BRAND AUDIT CONFIGURATION"
	missingRegistryErrorConstant    = "registry provider not configured"
	activeStatusLabelConstant       = "ACTIVE"
	pendingStatusLabelConstant      = "PENDING"
)

// CommandBuilder assembles the status cobra command.
type CommandBuilder struct {
	RegistryProvider func() *brand.Registry
}

// Build constructs the status command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command)
		},
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command) error {
	if builder.RegistryProvider == nil {
		return errors.New(missingRegistryErrorConstant)
	}
	registry := builder.RegistryProvider()
	writer := command.OutOrStdout()

	fmt.Fprint(writer, audit.RenderBanner(bannerTitleConstant))
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "  COMPANIES:")
	for _, companySlug := range registry.Slugs() {
		standard, _ := registry.Company(companySlug)
		statusLabel := activeStatusLabelConstant
		if standard.Status == brand.StatusPending {
			statusLabel = pendingStatusLabelConstant
		}
		fmt.Fprintf(writer, "    %-16s  %-24s  %-8s  %s\n",
			companySlug, standard.OfficialName, statusLabel, standard.AccentColor)
	}
	fmt.Fprintln(writer)

	weights := registry.Weights()
	fmt.Fprintln(writer, "  SCORING WEIGHTS:")
	fmt.Fprintf(writer, "    NAP: %d  |  Visual: %d  |  Voice: %d  |  Directories: %d\n",
		weights.NAP, weights.Visual, weights.Voice, weights.Directories)
	fmt.Fprintln(writer)

	fmt.Fprintln(writer, "  DIRECTORIES:")
	fmt.Fprintf(writer, "    %s\n", strings.Join(registry.Directories(), ", "))
	fmt.Fprintln(writer)

	thresholds := registry.Thresholds()
	fmt.Fprintln(writer, "  FUZZY MATCH THRESHOLDS:")
	fmt.Fprintf(writer, "    critical below %.2f, warning below %.2f\n",
		thresholds.CriticalBelow, thresholds.WarningBelow)
	fmt.Fprintln(writer)

	return nil
}
