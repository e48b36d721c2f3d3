package cli

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/uscmarketing/brandaudit/internal/brand"
	"github.com/uscmarketing/brandaudit/internal/directory"
	"github.com/uscmarketing/brandaudit/internal/nap"
	"github.com/uscmarketing/brandaudit/internal/remediation"
	"github.com/uscmarketing/brandaudit/internal/report"
	"github.com/uscmarketing/brandaudit/internal/status"
	"github.com/uscmarketing/brandaudit/internal/utils"
	"github.com/uscmarketing/brandaudit/internal/visual"
	"github.com/uscmarketing/brandaudit/internal/voice"
)

const (
	applicationNameConstant                 = "brand-audit"
	applicationShortDescriptionConstant     = "Brand consistency audit and remediation engine"
	applicationLongDescriptionConstant      = "brand-audit checks every portfolio company's online presence against the canonical brand standards: NAP consistency, visual identity, brand voice, and directory listings."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	environmentPrefixConstant               = "BRANDAUDIT"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationCompanyCountFieldConstant  = "company_count"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	registryBuildErrorTemplateConstant      = "invalid brand configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rootCommandInfoMessageConstant          = "brand-audit CLI executed"
	logFieldCommandNameConstant             = "command_name"
	logFieldArgumentCountConstant           = "argument_count"
	loggerNotInitializedMessageConstant     = "logger not initialized"
	defaultConfigurationSearchPathConstant  = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI
// entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Brand  brand.Configuration            `mapstructure:"brand"`
}

// ApplicationCommonConfiguration stores logging configuration shared across
// commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, brand
// registry, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	registry              *brand.Registry
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant},
	)
	embeddedConfiguration, embeddedConfigurationType := EmbeddedDefaultConfiguration()
	configurationLoader.SetEmbeddedConfiguration(embeddedConfiguration, embeddedConfigurationType)

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	application.registerSubcommands(cobraCommand)
	application.rootCommand = cobraCommand

	return application
}

func (application *Application) registerSubcommands(rootCommand *cobra.Command) {
	loggerProvider := func() *zap.Logger {
		return application.logger
	}
	registryProvider := func() *brand.Registry {
		return application.registry
	}

	napBuilder := nap.CommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if napCommand, buildError := napBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(napCommand)
	}

	visualBuilder := visual.CommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if visualCommand, buildError := visualBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(visualCommand)
	}

	voiceBuilder := voice.CommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if voiceCommand, buildError := voiceBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(voiceCommand)
	}

	directoryBuilder := directory.CommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if directoryCommand, buildError := directoryBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(directoryCommand)
	}

	fullAuditBuilder := report.FullAuditCommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if fullAuditCommand, buildError := fullAuditBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(fullAuditCommand)
	}

	generateReportBuilder := report.GenerateReportCommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if generateReportCommand, buildError := generateReportBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(generateReportCommand)
	}

	remediationBuilder := remediation.CommandBuilder{
		LoggerProvider:   loggerProvider,
		RegistryProvider: registryProvider,
	}
	if remediationCommand, buildError := remediationBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(remediationCommand)
	}

	statusBuilder := status.CommandBuilder{
		RegistryProvider: registryProvider,
	}
	if statusCommand, buildError := statusBuilder.Build(); buildError == nil {
		rootCommand.AddCommand(statusCommand)
	}
}

// Execute runs the configured Cobra command hierarchy and ensures logger
// flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command
// hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}
	application.configurationMetadata = loadedConfiguration

	registry, registryError := brand.NewRegistry(application.configuration.Brand)
	if registryError != nil {
		return fmt.Errorf(registryBuildErrorTemplateConstant, registryError)
	}
	application.registry = registry

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}
	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}
	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
		zap.Int(configurationCompanyCountFieldConstant, len(application.registry.Slugs())),
	)

	return nil
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Info(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	if len(arguments) == 0 {
		return command.Help()
	}
	return nil
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}
	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}
		if flagSet.Changed(flagName) {
			return true
		}
	}
	return false
}
