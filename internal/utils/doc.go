// Package utils hosts the configuration and logging plumbing shared by the
// command-line entrypoint: a Viper-backed configuration loader with embedded
// defaults and environment overrides, and a zap logger factory that keeps
// diagnostics on the error stream so the rendered table owns standard output.
package utils
