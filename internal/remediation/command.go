package remediation

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
	"github.com/uscmarketing/brandaudit/internal/report"
)

const (
	commandNameConstant             = "remediate"
	commandShortDescriptionConstant = "Generate prioritized remediation tasks from a full audit"
	commandLongDescriptionConstant  = "remediate runs the full audit for each company, synthesizes prioritized fix tasks with step-by-step instructions and effort estimates, and prints the plan or exports a task-board JSON document with --output."
	missingRegistryErrorConstant    = "registry provider not configured"
	commandStartedMessageConstant   = "remediation planning started"
	boardWrittenMessageTemplate     = "Remediation board written to %s\n"
	logFieldCompanyConstant         = "company"
	logFieldLiveConstant            = "live"
	logFieldOutputConstant          = "output"
)

// CommandBuilder assembles the remediate cobra command.
type CommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
	Clock            audit.Clock
}

// Build constructs the remediate command.
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
	audit.RegisterOutputFlag(command, commandFlags)
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
		zap.String(logFieldOutputConstant, commandFlags.OutputPath),
	)

	companySlugs, resolveError := audit.ResolveCompanies(registry, commandFlags.Company)
	if resolveError != nil {
		return resolveError
	}

	dataProvider, providerError := builder.resolveProvider(commandFlags.UseLive)
	if providerError != nil {
		return providerError
	}

	generator := report.NewGenerator(registry, dataProvider, builder.Clock)
	synthesizer := NewSynthesizer(registry)

	allTasks := make([]audit.RemediationTask, 0)
	for _, companySlug := range companySlugs {
		auditReport := generator.Generate(companySlug)
		allTasks = append(allTasks, synthesizer.Synthesize(auditReport)...)
	}

	if len(commandFlags.OutputPath) > 0 {
		if writeError := WriteBoardJSON(allTasks, commandFlags.OutputPath); writeError != nil {
			return writeError
		}
		fmt.Fprintf(command.OutOrStdout(), boardWrittenMessageTemplate, commandFlags.OutputPath)
		return nil
	}

	fmt.Fprintln(command.OutOrStdout(), RenderPlanSummary(allTasks))
	return nil
}

func (builder *CommandBuilder) resolveProvider(useLive bool) (provider.DataProvider, error) {
	if builder.ProviderResolver != nil {
		return builder.ProviderResolver(useLive)
	}
	return provider.Resolve(useLive)
}
