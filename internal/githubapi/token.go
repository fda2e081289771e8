package githubapi

import (
	"os"
	"strings"
)

const (
	githubTokenEnvironmentNameConstant   = "GITHUB_TOKEN"
	githubCLITokenEnvironmentNameConst   = "GH_TOKEN"
)

// EnvironmentLookup obtains an environment variable value.
type EnvironmentLookup func(key string) (string, bool)

// ResolveEnvironmentToken returns the first non-empty API token found in the
// conventional environment variables. An empty result disables authentication.
func ResolveEnvironmentToken(environmentLookup EnvironmentLookup) string {
	resolvedLookup := environmentLookup
	if resolvedLookup == nil {
		resolvedLookup = os.LookupEnv
	}

	for _, environmentName := range []string{githubTokenEnvironmentNameConstant, githubCLITokenEnvironmentNameConst} {
		tokenValue, tokenPresent := resolvedLookup(environmentName)
		trimmedToken := strings.TrimSpace(tokenValue)
		if tokenPresent && len(trimmedToken) > 0 {
			return trimmedToken
		}
	}

	return ""
}
