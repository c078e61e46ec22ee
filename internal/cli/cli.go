// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/treedump/internal/commands"
	"github.com/temirov/treedump/internal/config"
	"github.com/temirov/treedump/internal/output"
	"github.com/temirov/treedump/internal/services/clipboard"
	"github.com/temirov/treedump/internal/tokenizer"
	"github.com/temirov/treedump/internal/utils"
)

const (
	versionFlagName      = "version"
	copyFlagName         = "copy"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	versionTemplate      = "treedump version: %s\n"
	rootUse              = "treedump"
	rootShortDescription = "snapshot the current directory into a single text file"
	rootLongDescription  = `treedump renders the directory tree of the current working directory and
concatenates the text of every included file into one document.
Excluded directories are skipped entirely and redacted files keep their place in the
tree while their content is withheld. The tree is echoed to standard output as it is
produced.`
	rootUsageExample = `  # Snapshot the current project
  treedump

  # Snapshot and copy the document to the clipboard
  treedump --copy

  # Include token estimates in the summary
  treedump --tokens --model gpt-4o`

	versionFlagDescription = "display application version"
	copyFlagDescription    = "copy the snapshot to the clipboard"
	tokensFlagDescription  = "estimate token counts for included files"
	modelFlagDescription   = "tokenizer model to use for token counting"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	warningTokenizerFormat      = "Warning: token counting disabled: %v"
	warningClipboardFormat      = "Warning: failed to copy %s to clipboard: %v"
	copiedMessageFormat         = "Copied %s to clipboard"
)

// dependencies carries the process-level collaborators of the root command.
type dependencies struct {
	fileSystem       afero.Fs
	workingDirectory func() (string, error)
	stdout           io.Writer
	logger           *zap.Logger
	copier           clipboard.Copier
	newCounter       func(tokenizer.Config) (tokenizer.Counter, string, error)
}

func defaultDependencies(logger *zap.Logger) dependencies {
	return dependencies{
		fileSystem:       afero.NewOsFs(),
		workingDirectory: os.Getwd,
		stdout:           os.Stdout,
		logger:           logger,
		copier:           clipboard.NewService(),
		newCounter:       tokenizer.NewCounter,
	}
}

type snapshotFlags struct {
	showVersion   bool
	copyToClip    bool
	tokensEnabled bool
	model         string
}

// Execute runs treedump in the current working directory.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootCommand := createRootCommand(defaultDependencies(logger))
	rootCommand.SetArgs(normalizeCopyFlagArguments(os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(deps dependencies) *cobra.Command {
	var flags snapshotFlags

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flags.showVersion {
				_, writeErr := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeErr
			}
			return runSnapshot(deps, flags)
		},
	}
	rootCommand.SetOut(deps.stdout)
	rootCommand.Flags().BoolVar(&flags.showVersion, versionFlagName, false, versionFlagDescription)
	registerCopyFlag(rootCommand.Flags(), &flags.copyToClip)
	rootCommand.Flags().BoolVar(&flags.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&flags.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runSnapshot snapshots the working directory and applies the optional clipboard copy.
func runSnapshot(deps dependencies, flags snapshotFlags) error {
	logger := deps.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workingDirectory, workingDirectoryError := deps.workingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	configuration, configurationError := config.LoadDefaultConfiguration()
	if configurationError != nil {
		return configurationError
	}

	var tokenCounter tokenizer.Counter
	var tokenModel string
	if flags.tokensEnabled && deps.newCounter != nil {
		createdCounter, resolvedModel, counterError := deps.newCounter(tokenizer.Config{Model: flags.model})
		if counterError != nil {
			logger.Warn(fmt.Sprintf(warningTokenizerFormat, counterError))
		} else {
			tokenCounter = createdCounter
			tokenModel = resolvedModel
		}
	}

	options := commands.SnapshotOptions{
		FileSystem:    deps.fileSystem,
		Root:          workingDirectory,
		Configuration: configuration,
		Console:       deps.stdout,
		TokenCounter:  tokenCounter,
		TokenModel:    tokenModel,
		Logger:        logger,
	}
	summary, snapshotError := commands.TakeSnapshot(options)
	if snapshotError != nil {
		return snapshotError
	}
	logger.Info(output.FormatSummaryLine(summary))

	if flags.copyToClip {
		copySnapshot(deps, options.OutputPath(), logger)
	}
	return nil
}

// copySnapshot places the written artifact on the clipboard. Failures are logged only.
func copySnapshot(deps dependencies, outputPath string, logger *zap.Logger) {
	if deps.copier == nil {
		return
	}
	artifact, readError := afero.ReadFile(deps.fileSystem, outputPath)
	if readError != nil {
		logger.Warn(fmt.Sprintf(warningClipboardFormat, outputPath, readError))
		return
	}
	if copyError := deps.copier.Copy(string(artifact)); copyError != nil {
		logger.Warn(fmt.Sprintf(warningClipboardFormat, outputPath, copyError))
		return
	}
	logger.Info(fmt.Sprintf(copiedMessageFormat, outputPath))
}
