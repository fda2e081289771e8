package versiontable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigurationValuesCoverEveryKey(testInstance *testing.T) {
	defaultValues := DefaultConfigurationValues("table")

	require.Equal(testInstance, defaultRepositoryURLConstant, defaultValues["table.repository_url"])
	require.Equal(testInstance, defaultNotesFileConstant, defaultValues["table.notes_file"])
	require.Equal(testInstance, defaultReleaseLimitConstant, defaultValues["table.release_limit"])
	require.Equal(testInstance, defaultTagLimitConstant, defaultValues["table.tag_limit"])
	require.Equal(testInstance, defaultBranchPageSizeConstant, defaultValues["table.branch_page_size"])
	require.Equal(testInstance, defaultHTTPTimeoutSecondsConst, defaultValues["table.http_timeout_seconds"])
	require.Equal(testInstance, "", defaultValues["table.api_base_url"])
}

func TestSanitizeRestoresDefaults(testInstance *testing.T) {
	sanitized := Configuration{
		RepositoryURL:      "  ",
		NotesFile:          "",
		ReleaseLimit:       -1,
		TagLimit:           0,
		BranchPageSize:     0,
		HTTPTimeoutSeconds: 0,
		APIBaseURL:         " http://localhost:8080 ",
	}.sanitize()

	require.Equal(testInstance, DefaultConfiguration().RepositoryURL, sanitized.RepositoryURL)
	require.Equal(testInstance, defaultNotesFileConstant, sanitized.NotesFile)
	require.Equal(testInstance, defaultReleaseLimitConstant, sanitized.ReleaseLimit)
	require.Equal(testInstance, defaultTagLimitConstant, sanitized.TagLimit)
	require.Equal(testInstance, defaultBranchPageSizeConstant, sanitized.BranchPageSize)
	require.Equal(testInstance, defaultHTTPTimeoutSecondsConst, sanitized.HTTPTimeoutSeconds)
	require.Equal(testInstance, "http://localhost:8080", sanitized.APIBaseURL)
}

func TestSanitizePreservesExplicitValues(testInstance *testing.T) {
	configured := Configuration{
		RepositoryURL:      "https://github.com/redhat-cne/sdk-go",
		NotesFile:          "custom-notes.txt",
		ReleaseLimit:       3,
		TagLimit:           5,
		BranchPageSize:     50,
		HTTPTimeoutSeconds: 10,
	}

	require.Equal(testInstance, configured, configured.sanitize())
}
