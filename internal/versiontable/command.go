package versiontable

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/redhat-cne/version-table/internal/githubapi"
	"github.com/redhat-cne/version-table/internal/notes"
)

const (
	commandExecutionErrorTemplateConstant = "version table generation failed: %w"
	generationStartedMessageConstant      = "generating version table"
	repositoryURLLogFieldConstant         = "repository_url"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandRunner executes table generation on behalf of the root command.
type CommandRunner struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
	EnvironmentLookup     githubapi.EnvironmentLookup
	OutputWriter          io.Writer
}

// Run resolves collaborators, generates the table, and writes it to the
// output stream. The optional positional argument overrides the configured
// repository URL.
func (runner *CommandRunner) Run(command *cobra.Command, arguments []string) error {
	logger := runner.resolveLogger()
	configuration := runner.resolveConfiguration().sanitize()

	repositoryURL := configuration.RepositoryURL
	if len(arguments) > 0 {
		providedURL := strings.TrimSpace(arguments[0])
		if len(providedURL) > 0 {
			repositoryURL = providedURL
		}
	}

	logger.Info(generationStartedMessageConstant, zap.String(repositoryURLLogFieldConstant, repositoryURL))

	client, clientError := githubapi.NewClient(logger, githubapi.ClientConfiguration{
		RepositoryURL:      repositoryURL,
		APIBaseURL:         configuration.APIBaseURL,
		BranchPageSize:     configuration.BranchPageSize,
		RequestTimeout:     time.Duration(configuration.HTTPTimeoutSeconds) * time.Second,
		AuthorizationToken: githubapi.ResolveEnvironmentToken(runner.EnvironmentLookup),
	})
	if clientError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, clientError)
	}

	annotations := notes.NewLoader(logger, nil).Load(configuration.NotesFile)

	service, serviceError := NewService(Dependencies{
		Logger:          logger,
		RefLister:       client,
		ManifestFetcher: client,
		Annotations:     annotations,
	})
	if serviceError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, serviceError)
	}

	renderedTable, generationError := service.Generate(command.Context(), Options{
		ReleaseLimit: configuration.ReleaseLimit,
		TagLimit:     configuration.TagLimit,
	})
	if generationError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, generationError)
	}

	outputWriter := runner.OutputWriter
	if outputWriter == nil {
		outputWriter = command.OutOrStdout()
	}
	_, writeError := fmt.Fprintln(outputWriter, renderedTable)
	return writeError
}

func (runner *CommandRunner) resolveLogger() *zap.Logger {
	if runner.LoggerProvider != nil {
		if providedLogger := runner.LoggerProvider(); providedLogger != nil {
			return providedLogger
		}
	}
	return zap.NewNop()
}

func (runner *CommandRunner) resolveConfiguration() Configuration {
	if runner.ConfigurationProvider != nil {
		return runner.ConfigurationProvider()
	}
	return DefaultConfiguration()
}
