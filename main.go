package main

import (
	"fmt"
	"os"

	"github.com/redhat-cne/version-table/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the version-table command-line application.
func main() {
	if executionError := cli.Execute(); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
