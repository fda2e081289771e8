package versiontable

import "strings"

const versionPrefixConstant = "v"

// NormalizeRefName strips a single leading "v" from release and tag names for
// display. Branch names are never normalized.
func NormalizeRefName(refName string) string {
	if strings.HasPrefix(refName, versionPrefixConstant) {
		return refName[len(versionPrefixConstant):]
	}
	return refName
}
