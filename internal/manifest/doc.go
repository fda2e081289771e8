// Package manifest extracts dependency version strings from go.mod manifest
// text. It recognizes the Go language directive and the pinned versions of the
// redhat-cne rest-api and sdk-go modules; every field is independently
// optional and absence never produces an error.
package manifest
