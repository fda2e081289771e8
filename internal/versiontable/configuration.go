package versiontable

import "strings"

const (
	defaultRepositoryURLConstant     = "https://github.com/redhat-cne/cloud-event-proxy"
	defaultNotesFileConstant         = "version-notes.txt"
	defaultReleaseLimitConstant      = 10
	defaultTagLimitConstant          = 20
	defaultBranchPageSizeConstant    = 100
	defaultHTTPTimeoutSecondsConst   = 30
	repositoryURLConfigKeySuffix     = ".repository_url"
	notesFileConfigKeySuffixConstant = ".notes_file"
	releaseLimitConfigKeySuffix      = ".release_limit"
	tagLimitConfigKeySuffixConstant  = ".tag_limit"
	branchPageSizeConfigKeySuffix    = ".branch_page_size"
	httpTimeoutConfigKeySuffix       = ".http_timeout_seconds"
	apiBaseURLConfigKeySuffix        = ".api_base_url"
)

// Configuration captures the tunable inputs for table generation.
type Configuration struct {
	RepositoryURL      string `mapstructure:"repository_url"`
	NotesFile          string `mapstructure:"notes_file"`
	ReleaseLimit       int    `mapstructure:"release_limit"`
	TagLimit           int    `mapstructure:"tag_limit"`
	BranchPageSize     int    `mapstructure:"branch_page_size"`
	HTTPTimeoutSeconds int    `mapstructure:"http_timeout_seconds"`
	APIBaseURL         string `mapstructure:"api_base_url"`
}

// DefaultConfiguration provides the baseline generation settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		RepositoryURL:      defaultRepositoryURLConstant,
		NotesFile:          defaultNotesFileConstant,
		ReleaseLimit:       defaultReleaseLimitConstant,
		TagLimit:           defaultTagLimitConstant,
		BranchPageSize:     defaultBranchPageSizeConstant,
		HTTPTimeoutSeconds: defaultHTTPTimeoutSecondsConst,
	}
}

// DefaultConfigurationValues exposes defaults keyed for configuration loading.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		configurationKeyPrefix + repositoryURLConfigKeySuffix:     defaults.RepositoryURL,
		configurationKeyPrefix + notesFileConfigKeySuffixConstant: defaults.NotesFile,
		configurationKeyPrefix + releaseLimitConfigKeySuffix:      defaults.ReleaseLimit,
		configurationKeyPrefix + tagLimitConfigKeySuffixConstant:  defaults.TagLimit,
		configurationKeyPrefix + branchPageSizeConfigKeySuffix:    defaults.BranchPageSize,
		configurationKeyPrefix + httpTimeoutConfigKeySuffix:       defaults.HTTPTimeoutSeconds,
		configurationKeyPrefix + apiBaseURLConfigKeySuffix:        "",
	}
}

// sanitize trims textual values and restores defaults for unusable numbers.
func (configuration Configuration) sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.RepositoryURL = strings.TrimSpace(configuration.RepositoryURL)
	if len(sanitized.RepositoryURL) == 0 {
		sanitized.RepositoryURL = defaults.RepositoryURL
	}

	sanitized.NotesFile = strings.TrimSpace(configuration.NotesFile)
	if len(sanitized.NotesFile) == 0 {
		sanitized.NotesFile = defaults.NotesFile
	}

	sanitized.APIBaseURL = strings.TrimSpace(configuration.APIBaseURL)

	if sanitized.ReleaseLimit <= 0 {
		sanitized.ReleaseLimit = defaults.ReleaseLimit
	}
	if sanitized.TagLimit <= 0 {
		sanitized.TagLimit = defaults.TagLimit
	}
	if sanitized.BranchPageSize <= 0 {
		sanitized.BranchPageSize = defaults.BranchPageSize
	}
	if sanitized.HTTPTimeoutSeconds <= 0 {
		sanitized.HTTPTimeoutSeconds = defaults.HTTPTimeoutSeconds
	}

	return sanitized
}
