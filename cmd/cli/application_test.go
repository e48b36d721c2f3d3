package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/uscmarketing/brandaudit/cmd/cli"
	"github.com/uscmarketing/brandaudit/internal/brand"
)

const (
	embeddedDefaultLogLevelConstant     = "info"
	embeddedDefaultLogFormatConstant    = "structured"
	embeddedDefaultPrimaryColorConstant = "#1B2A4A"
	embeddedDefaultCompanyCountConstant = 5
	embeddedDefaultActiveCountConstant  = 4
	embeddedDefaultDirectoryCount       = 5
)

func decodeEmbeddedConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	embeddedConfiguration, embeddedConfigurationType := cli.EmbeddedDefaultConfiguration()
	require.NotEmpty(testInstance, embeddedConfiguration)

	viperInstance := viper.New()
	viperInstance.SetConfigType(embeddedConfigurationType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(embeddedConfiguration)))

	configuration := cli.ApplicationConfiguration{}
	decodeError := mapstructure.Decode(viperInstance.AllSettings(), &configuration)
	require.NoError(testInstance, decodeError)

	return configuration
}

func TestEmbeddedDefaultConfigurationDecodes(testInstance *testing.T) {
	configuration := decodeEmbeddedConfiguration(testInstance)

	require.Equal(testInstance, embeddedDefaultLogLevelConstant, configuration.Common.LogLevel)
	require.Equal(testInstance, embeddedDefaultLogFormatConstant, configuration.Common.LogFormat)

	require.Equal(testInstance, embeddedDefaultPrimaryColorConstant, configuration.Brand.PrimaryColor)
	require.Len(testInstance, configuration.Brand.Companies, embeddedDefaultCompanyCountConstant)
	require.Len(testInstance, configuration.Brand.Directories, embeddedDefaultDirectoryCount)
	require.Equal(testInstance, 30, configuration.Brand.Weights.NAP)
	require.Equal(testInstance, 25, configuration.Brand.Weights.Visual)
	require.Equal(testInstance, 25, configuration.Brand.Weights.Voice)
	require.Equal(testInstance, 20, configuration.Brand.Weights.Directories)
	require.InDelta(testInstance, 0.85, configuration.Brand.FuzzyMatchThreshold, 0.0001)
	require.InDelta(testInstance, 0.95, configuration.Brand.FuzzyWarningCeiling, 0.0001)

	pendingCompany, pendingPresent := configuration.Brand.Companies["us_interiors"]
	require.True(testInstance, pendingPresent)
	require.Equal(testInstance, "pending", pendingCompany.Status)
}

func TestEmbeddedDefaultConfigurationBuildsRegistry(testInstance *testing.T) {
	configuration := decodeEmbeddedConfiguration(testInstance)

	registry, registryError := brand.NewRegistry(configuration.Brand)
	require.NoError(testInstance, registryError)
	require.Len(testInstance, registry.Slugs(), embeddedDefaultCompanyCountConstant)
	require.Len(testInstance, registry.ActiveSlugs(), embeddedDefaultActiveCountConstant)

	framingStandard, framingPresent := registry.Company("us_framing")
	require.True(testInstance, framingPresent)
	require.Equal(testInstance, "US Framing", framingStandard.OfficialName)
	require.Equal(testInstance, "P.O. Box 710 Pewee Valley KY 40056", framingStandard.CanonicalAddress())
	require.Len(testInstance, framingStandard.VoiceKeywords, 8)
}

func TestNewApplicationConstructsRootCommand(testInstance *testing.T) {
	application := cli.NewApplication()
	require.NotNil(testInstance, application)
}
