package directory

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	commandNameConstant             = "scan-directories"
	commandShortDescriptionConstant = "Scan business directories for listing presence and accuracy"
	commandLongDescriptionConstant  = "scan-directories checks each company's listings on the configured business directories and scores presence and accuracy against the brand standard."
	bannerTitleConstant             = "DIRECTORY PRESENCE SCAN"
	missingRegistryErrorConstant    = "registry provider not configured"
	commandStartedMessageConstant   = "directory scan started"
	logFieldCompanyConstant         = "company"
	logFieldLiveConstant            = "live"
)

// CommandBuilder assembles the scan-directories cobra command.
type CommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
}

// Build constructs the scan-directories command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	commandFlags := &audit.CommandFlags{}

	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, *commandFlags)
		},
	}

	audit.RegisterCommandFlags(command, commandFlags)
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, commandFlags audit.CommandFlags) error {
	if builder.RegistryProvider == nil {
		return errors.New(missingRegistryErrorConstant)
	}
	registry := builder.RegistryProvider()

	logger := audit.ResolveLogger(builder.LoggerProvider)
	logger.Info(commandStartedMessageConstant,
		zap.String(logFieldCompanyConstant, commandFlags.Company),
		zap.Bool(logFieldLiveConstant, commandFlags.UseLive),
	)

	dataProvider, providerError := builder.resolveProvider(commandFlags.UseLive)
	if providerError != nil {
		return providerError
	}

	scanner := NewScanner(registry)
	runner := audit.CategoryRunner{
		Banner:   bannerTitleConstant,
		Registry: registry,
		Style:    audit.VerboseStyleShort,
		Produce: func(companySlug string) audit.CategoryResult {
			return scanner.Scan(companySlug, dataProvider.DirectoryListings(companySlug))
		},
	}
	return runner.Run(command.OutOrStdout(), commandFlags)
}

func (builder *CommandBuilder) resolveProvider(useLive bool) (provider.DataProvider, error) {
	if builder.ProviderResolver != nil {
		return builder.ProviderResolver(useLive)
	}
	return provider.Resolve(useLive)
}
