package nap

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	commandNameConstant             = "audit-nap"
	commandShortDescriptionConstant = "Audit Name-Address-Phone consistency across platforms"
	commandLongDescriptionConstant  = "audit-nap fuzzy-compares each platform's listed business name, address, and phone against the canonical brand standard and scores the deviations."
	bannerTitleConstant             = "NAP CONSISTENCY AUDIT"
	missingRegistryErrorConstant    = "registry provider not configured"
	commandStartedMessageConstant   = "nap audit started"
	logFieldCompanyConstant         = "company"
	logFieldLiveConstant            = "live"
)

// CommandBuilder assembles the audit-nap cobra command.
type CommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
}

// Build constructs the audit-nap command.
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

	auditor := NewAuditor(registry)
	runner := audit.CategoryRunner{
		Banner:   bannerTitleConstant,
		Registry: registry,
		Style:    audit.VerboseStyleMarker,
		Produce: func(companySlug string) audit.CategoryResult {
			return auditor.Audit(companySlug, dataProvider.NAPListings(companySlug))
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
