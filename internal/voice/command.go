package voice

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	commandNameConstant             = "audit-voice"
	commandShortDescriptionConstant = "Audit brand voice and tone in website copy"
	commandLongDescriptionConstant  = "audit-voice scores each company's marketing copy on brand keyword coverage, readability, tone dimensions, and tagline presence."
	bannerTitleConstant             = "BRAND VOICE AUDIT"
	missingRegistryErrorConstant    = "registry provider not configured"
	commandStartedMessageConstant   = "voice audit started"
	logFieldCompanyConstant         = "company"
	logFieldLiveConstant            = "live"
)

// CommandBuilder assembles the audit-voice cobra command.
type CommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
}

// Build constructs the audit-voice command.
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
		Style:    audit.VerboseStyleFields,
		Produce: func(companySlug string) audit.CategoryResult {
			analysis, _ := dataProvider.ContentAnalysis(companySlug)
			return auditor.Audit(companySlug, analysis)
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
