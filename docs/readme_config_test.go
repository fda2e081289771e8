package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeApplicationConfiguration struct {
	Common struct {
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"common"`
	Table struct {
		RepositoryURL      string `yaml:"repository_url"`
		NotesFile          string `yaml:"notes_file"`
		ReleaseLimit       int    `yaml:"release_limit"`
		TagLimit           int    `yaml:"tag_limit"`
		BranchPageSize     int    `yaml:"branch_page_size"`
		HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
		APIBaseURL         string `yaml:"api_base_url"`
	} `yaml:"table"`
}

func TestReadmeConfigurationExampleParses(testInstance *testing.T) {
	workingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)

	readmePath := filepath.Join(workingDirectory, parentDirectoryReferenceConstant, readmeFileNameConstant)
	contentBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)

	contentText := string(contentBytes)
	headerIndex := strings.Index(contentText, configHeaderMarkerConstant)
	require.NotEqual(testInstance, -1, headerIndex, missingHeaderMessageConstant)

	remainingText := contentText[headerIndex:]
	fenceEndRelativeIndex := strings.Index(remainingText, yamlFenceEndConstant)
	require.NotEqual(testInstance, -1, fenceEndRelativeIndex, missingEndFenceMessageConstant)

	exampleDocument := remainingText[:fenceEndRelativeIndex]

	var configuration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(exampleDocument), &configuration))

	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Equal(testInstance, "https://github.com/redhat-cne/cloud-event-proxy", configuration.Table.RepositoryURL)
	require.Equal(testInstance, "version-notes.txt", configuration.Table.NotesFile)
	require.Equal(testInstance, 10, configuration.Table.ReleaseLimit)
	require.Equal(testInstance, 20, configuration.Table.TagLimit)
	require.Equal(testInstance, 100, configuration.Table.BranchPageSize)
	require.Equal(testInstance, 30, configuration.Table.HTTPTimeoutSeconds)
	require.Empty(testInstance, configuration.Table.APIBaseURL)
}
