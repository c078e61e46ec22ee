package commands

import (
	"github.com/spf13/afero"

	"github.com/temirov/treedump/internal/tokenizer"
	"github.com/temirov/treedump/internal/types"
	"github.com/temirov/treedump/internal/utils"
)

// ContentVisitor receives each FileOutput in visitation order.
type ContentVisitor func(types.FileOutput) error

// ContentOptions configures the content dump.
type ContentOptions struct {
	FileSystem   afero.Fs
	Root         string
	Record       types.VisitationRecord
	IsRedacted   func(relativePath string) bool
	TokenCounter tokenizer.Counter
	Warn         func(message string)
}

// StreamContent produces one FileOutput per recorded path, in record order. Redacted
// paths are never read. Read and decode failures are carried in FileOutput.ReadError;
// only visitor errors are returned.
func StreamContent(options ContentOptions, visitor ContentVisitor) error {
	fileSystem := options.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	for _, filePath := range options.Record {
		fileOutput := types.FileOutput{
			Path:         filePath,
			RelativePath: utils.NormalizeRelativePath(utils.RelativePathOrSelf(filePath, options.Root)),
		}

		if options.IsRedacted != nil && options.IsRedacted(fileOutput.RelativePath) {
			fileOutput.Redacted = true
		} else {
			result := inspectFile(fileSystem, filePath, fileInspectionConfig{
				TokenCounter: options.TokenCounter,
				Warn:         options.Warn,
			})
			fileOutput.Content = result.Content
			fileOutput.SizeBytes = result.SizeBytes
			fileOutput.Tokens = result.Tokens
			fileOutput.ReadError = result.ReadError
		}

		if visitor != nil {
			if visitErr := visitor(fileOutput); visitErr != nil {
				return visitErr
			}
		}
	}
	return nil
}
