package tests

import (
	"bytes"
	"context"
	"os/exec"
	"testing"
	"time"
)

const integrationCommandTimeoutConstant = 120 * time.Second

// runIntegrationCommand executes the CLI through the Go toolchain and returns
// stdout and stderr separately so table output can be asserted without
// structured log interleaving.
func runIntegrationCommand(testInstance *testing.T, repositoryRoot string, arguments []string) (string, string) {
	testInstance.Helper()

	executionContext, cancel := context.WithTimeout(context.Background(), integrationCommandTimeoutConstant)
	defer cancel()

	commandArguments := append([]string{"run", "."}, arguments...)
	command := exec.CommandContext(executionContext, "go", commandArguments...)
	command.Dir = repositoryRoot

	var standardOutput bytes.Buffer
	var standardError bytes.Buffer
	command.Stdout = &standardOutput
	command.Stderr = &standardError

	runError := command.Run()
	if runError != nil {
		testInstance.Fatalf("command failed: %v\nstdout:\n%s\nstderr:\n%s", runError, standardOutput.String(), standardError.String())
	}

	return standardOutput.String(), standardError.String()
}
