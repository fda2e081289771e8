package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/redhat-cne/version-table/internal/utils"
)

const (
	loaderConfigurationNameConstant = "config"
	loaderConfigurationTypeConstant = "yaml"
	loaderEnvironmentPrefixConstant = "VERSIONTABLE"
	loaderEmbeddedDefaultsConstant  = "table:\n  release_limit: 10\n  tag_limit: 20\n"
	loaderConfigurationFileContent  = "table:\n  tag_limit: 5\n"
)

type loaderTestConfiguration struct {
	Table struct {
		ReleaseLimit int `mapstructure:"release_limit"`
		TagLimit     int `mapstructure:"tag_limit"`
	} `mapstructure:"table"`
}

func TestLoadConfigurationMergesEmbeddedDefaultsAndFile(testInstance *testing.T) {
	configurationFilePath := filepath.Join(testInstance.TempDir(), "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(loaderConfigurationFileContent), 0o644))

	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)
	loader.SetEmbeddedDefaults([]byte(loaderEmbeddedDefaultsConstant))

	var configuration loaderTestConfiguration
	loadedMetadata, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, configurationFilePath, loadedMetadata.ConfigFileUsed)
	require.Equal(testInstance, 10, configuration.Table.ReleaseLimit)
	require.Equal(testInstance, 5, configuration.Table.TagLimit)
}

func TestLoadConfigurationAppliesEnvironmentOverrides(testInstance *testing.T) {
	testInstance.Setenv("VERSIONTABLE_TABLE_TAG_LIMIT", "7")

	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	var configuration loaderTestConfiguration
	defaultValues := map[string]any{"table.release_limit": 10, "table.tag_limit": 20}
	_, loadError := loader.LoadConfiguration("", defaultValues, &configuration)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, 10, configuration.Table.ReleaseLimit)
	require.Equal(testInstance, 7, configuration.Table.TagLimit)
}

func TestLoadConfigurationRejectsMalformedFile(testInstance *testing.T) {
	configurationFilePath := filepath.Join(testInstance.TempDir(), "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte("table: ["), 0o644))

	loader := utils.NewConfigurationLoader(loaderConfigurationNameConstant, loaderConfigurationTypeConstant, loaderEnvironmentPrefixConstant, nil)

	var configuration loaderTestConfiguration
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &configuration)
	require.Error(testInstance, loadError)
}
