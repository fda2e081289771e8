// Package cli constructs the version-table command-line interface, wiring the
// Cobra root command, configuration loader, and structured logging primitives
// around the table generation service.
package cli
