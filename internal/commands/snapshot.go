package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/treedump/internal/config"
	"github.com/temirov/treedump/internal/output"
	"github.com/temirov/treedump/internal/tokenizer"
	"github.com/temirov/treedump/internal/types"
)

// SnapshotOptions configures one snapshot run.
type SnapshotOptions struct {
	FileSystem    afero.Fs
	Root          string
	Configuration config.Configuration
	Console       io.Writer
	TokenCounter  tokenizer.Counter
	TokenModel    string
	Logger        *zap.Logger
}

// OutputPath returns the absolute location of the artifact.
func (options SnapshotOptions) OutputPath() string {
	return filepath.Join(options.Root, options.Configuration.OutputFileName)
}

// TakeSnapshot writes the tree rendering followed by the content dump to the output file in
// options.Root and echoes the tree to options.Console. Unlistable directories and unreadable
// files are absorbed into the artifact; an error is returned only when the artifact itself
// cannot be created or written.
func TakeSnapshot(options SnapshotOptions) (types.SnapshotSummary, error) {
	fileSystem := options.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	warn := func(message string) {
		logger.Debug(message)
	}

	outputPath := options.OutputPath()
	outputFile, createErr := fileSystem.Create(outputPath)
	if createErr != nil {
		return types.SnapshotSummary{}, fmt.Errorf(errorCreateOutputFormat, outputPath, createErr)
	}
	outputClosed := false
	defer func() {
		if !outputClosed {
			_ = outputFile.Close()
		}
	}()

	renderer := output.NewSnapshotRenderer(outputFile, options.Console)

	var record types.VisitationRecord
	treeSummary, treeErr := StreamTree(TreeStreamOptions{
		FileSystem: fileSystem,
		Root:       options.Root,
		Excluded:   options.Configuration.IsExcludedName,
		Warn:       warn,
	}, func(event TreeEvent) error {
		switch event.Kind {
		case TreeEventRoot:
			renderer.WriteRoot(event.Entry.Name)
		case TreeEventDirectory:
			renderer.WriteEntry(*event.Entry)
		case TreeEventFile:
			renderer.WriteEntry(*event.Entry)
			record = append(record, event.Entry.Path)
		}
		return renderer.Err()
	})
	if treeErr != nil {
		return types.SnapshotSummary{}, fmt.Errorf(errorStreamTreeFormat, options.Root, treeErr)
	}

	renderer.WriteContentsBanner()

	summary := types.SnapshotSummary{Directories: treeSummary.Directories}
	contentErr := StreamContent(ContentOptions{
		FileSystem:   fileSystem,
		Root:         options.Root,
		Record:       record,
		IsRedacted:   options.Configuration.IsRedacted,
		TokenCounter: options.TokenCounter,
		Warn:         warn,
	}, func(fileOutput types.FileOutput) error {
		renderer.WriteFile(fileOutput)
		summary.Files++
		summary.TotalBytes += fileOutput.SizeBytes
		summary.TotalTokens += fileOutput.Tokens
		switch {
		case fileOutput.Redacted:
			summary.Redacted++
		case fileOutput.ReadError != nil:
			summary.Failed++
			warn(fmt.Sprintf(warningReadFileFormat, fileOutput.Path, fileOutput.ReadError))
		}
		return renderer.Err()
	})
	if contentErr != nil {
		return types.SnapshotSummary{}, fmt.Errorf(errorStreamFilesFormat, options.Root, contentErr)
	}

	if flushErr := renderer.Flush(); flushErr != nil {
		return types.SnapshotSummary{}, fmt.Errorf(errorWriteOutputFormat, outputPath, flushErr)
	}
	outputClosed = true
	if closeErr := outputFile.Close(); closeErr != nil {
		return types.SnapshotSummary{}, fmt.Errorf(errorCloseOutputFormat, outputPath, closeErr)
	}
	if summary.TotalTokens > 0 {
		summary.Model = options.TokenModel
	}
	renderer.WriteCompletion(options.Configuration.OutputFileName)
	return summary, nil
}
