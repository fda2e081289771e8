package manifest

import "regexp"

const (
	golangDirectivePatternConstant = `(?m)^go\s+(\d+\.\d+(?:\.\d+)?)`
	restAPIModulePatternConstant   = `github\.com/redhat-cne/rest-api\s+(v[\d.]+)`
	sdkGoModulePatternConstant     = `github\.com/redhat-cne/sdk-go\s+(v[\d.]+)`
)

var (
	golangDirectivePattern = regexp.MustCompile(golangDirectivePatternConstant)
	restAPIModulePattern   = regexp.MustCompile(restAPIModulePatternConstant)
	sdkGoModulePattern     = regexp.MustCompile(sdkGoModulePatternConstant)
)

// Versions carries the dependency versions extracted from a single manifest.
type Versions struct {
	Golang  string
	RestAPI string
	SDKGo   string
}

// HasAny reports whether at least one version field was extracted.
func (versions Versions) HasAny() bool {
	return len(versions.Golang) > 0 || len(versions.RestAPI) > 0 || len(versions.SDKGo) > 0
}

// Parse applies the three extraction patterns to the provided manifest text.
// Fields without a matching line remain empty; empty input yields zero values.
func Parse(manifestText string) Versions {
	if len(manifestText) == 0 {
		return Versions{}
	}

	return Versions{
		Golang:  firstSubmatch(golangDirectivePattern, manifestText),
		RestAPI: firstSubmatch(restAPIModulePattern, manifestText),
		SDKGo:   firstSubmatch(sdkGoModulePattern, manifestText),
	}
}

func firstSubmatch(pattern *regexp.Regexp, manifestText string) string {
	matchGroups := pattern.FindStringSubmatch(manifestText)
	if len(matchGroups) < 2 {
		return ""
	}
	return matchGroups[1]
}
