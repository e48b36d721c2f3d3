package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/audit"
	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/provider"
)

const (
	fullAuditCommandNameConstant             = "full-audit"
	fullAuditShortDescriptionConstant        = "Run every audit category and print brand health summaries"
	fullAuditLongDescriptionConstant         = "full-audit runs the NAP, visual, voice, and directory audits for each company and prints a weighted brand health summary with recommendations."
	generateReportCommandNameConstant        = "generate-report"
	generateReportShortDescriptionConstant   = "Export full audit reports as JSON"
	generateReportLongDescriptionConstant    = "generate-report runs the full audit for each company and emits the report as indented JSON, to stdout or to the path given with --output."
	missingRegistryErrorConstant             = "registry provider not configured"
	fullAuditStartedMessageConstant          = "full audit started"
	reportExportStartedMessageConstant       = "report export started"
	reportWrittenMessageTemplateConstant     = "Report written to %s\n"
	logFieldCompanyConstant                  = "company"
	logFieldLiveConstant                     = "live"
	logFieldOutputConstant                   = "output"
	defaultReportFileExtensionConstant       = ".json"
)

// FullAuditCommandBuilder assembles the full-audit cobra command.
type FullAuditCommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
	Clock            audit.Clock
}

// Build constructs the full-audit command.
func (builder *FullAuditCommandBuilder) Build() (*cobra.Command, error) {
	commandFlags := &audit.CommandFlags{}

	command := &cobra.Command{
		Use:   fullAuditCommandNameConstant,
		Short: fullAuditShortDescriptionConstant,
		Long:  fullAuditLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, *commandFlags)
		},
	}

	audit.RegisterCommandFlags(command, commandFlags)
	return command, nil
}

func (builder *FullAuditCommandBuilder) run(command *cobra.Command, commandFlags audit.CommandFlags) error {
	if builder.RegistryProvider == nil {
		return errors.New(missingRegistryErrorConstant)
	}
	registry := builder.RegistryProvider()

	logger := audit.ResolveLogger(builder.LoggerProvider)
	logger.Info(fullAuditStartedMessageConstant,
		zap.String(logFieldCompanyConstant, commandFlags.Company),
		zap.Bool(logFieldLiveConstant, commandFlags.UseLive),
	)

	companySlugs, resolveError := audit.ResolveCompanies(registry, commandFlags.Company)
	if resolveError != nil {
		return resolveError
	}

	dataProvider, providerError := resolveProvider(builder.ProviderResolver, commandFlags.UseLive)
	if providerError != nil {
		return providerError
	}

	generator := NewGenerator(registry, dataProvider, builder.Clock)
	for _, companySlug := range companySlugs {
		auditReport := generator.Generate(companySlug)
		fmt.Fprintln(command.OutOrStdout(), RenderSummary(auditReport))
		fmt.Fprintln(command.OutOrStdout())
	}
	return nil
}

// GenerateReportCommandBuilder assembles the generate-report cobra command.
type GenerateReportCommandBuilder struct {
	LoggerProvider   audit.LoggerProvider
	RegistryProvider func() *brand.Registry
	ProviderResolver func(useLive bool) (provider.DataProvider, error)
	Clock            audit.Clock
}

// Build constructs the generate-report command.
func (builder *GenerateReportCommandBuilder) Build() (*cobra.Command, error) {
	commandFlags := &audit.CommandFlags{}

	command := &cobra.Command{
		Use:   generateReportCommandNameConstant,
		Short: generateReportShortDescriptionConstant,
		Long:  generateReportLongDescriptionConstant,
		RunE: func(command *cobra.Command, arguments []string) error {
			return builder.run(command, *commandFlags)
		},
	}

	audit.RegisterCommandFlags(command, commandFlags)
	audit.RegisterOutputFlag(command, commandFlags)
	return command, nil
}

func (builder *GenerateReportCommandBuilder) run(command *cobra.Command, commandFlags audit.CommandFlags) error {
	if builder.RegistryProvider == nil {
		return errors.New(missingRegistryErrorConstant)
	}
	registry := builder.RegistryProvider()

	logger := audit.ResolveLogger(builder.LoggerProvider)
	logger.Info(reportExportStartedMessageConstant,
		zap.String(logFieldCompanyConstant, commandFlags.Company),
		zap.Bool(logFieldLiveConstant, commandFlags.UseLive),
		zap.String(logFieldOutputConstant, commandFlags.OutputPath),
	)

	companySlugs, resolveError := audit.ResolveCompanies(registry, commandFlags.Company)
	if resolveError != nil {
		return resolveError
	}

	dataProvider, providerError := resolveProvider(builder.ProviderResolver, commandFlags.UseLive)
	if providerError != nil {
		return providerError
	}

	generator := NewGenerator(registry, dataProvider, builder.Clock)
	for _, companySlug := range companySlugs {
		auditReport := generator.Generate(companySlug)

		if len(commandFlags.OutputPath) == 0 {
			encoded, exportError := ExportJSON(auditReport)
			if exportError != nil {
				return exportError
			}
			fmt.Fprintln(command.OutOrStdout(), string(encoded))
			continue
		}

		outputPath := OutputPathFor(commandFlags.OutputPath, companySlug, len(companySlugs) > 1)
		if writeError := WriteJSON(auditReport, outputPath); writeError != nil {
			return writeError
		}
		fmt.Fprintf(command.OutOrStdout(), reportWrittenMessageTemplateConstant, outputPath)
	}
	return nil
}

// OutputPathFor derives the file path for one company's report. With multiple
// companies the slug is appended before the extension so reports never
// overwrite each other.
func OutputPathFor(requestedPath string, companySlug string, multipleCompanies bool) string {
	if !multipleCompanies {
		return requestedPath
	}
	extension := filepath.Ext(requestedPath)
	if len(extension) == 0 {
		extension = defaultReportFileExtensionConstant
		return requestedPath + "_" + companySlug + extension
	}
	base := strings.TrimSuffix(requestedPath, extension)
	return base + "_" + companySlug + extension
}

func resolveProvider(resolver func(useLive bool) (provider.DataProvider, error), useLive bool) (provider.DataProvider, error) {
	if resolver != nil {
		return resolver(useLive)
	}
	return provider.Resolve(useLive)
}
