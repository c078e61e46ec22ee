package commands

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/temirov/treedump/internal/tokenizer"
	"github.com/temirov/treedump/internal/utils"
)

type fileInspectionConfig struct {
	TokenCounter tokenizer.Counter
	Warn         func(string)
}

type fileInspectionResult struct {
	Content   string
	SizeBytes int64
	Tokens    int
	ReadError error
}

// inspectFile reads the file at path as UTF-8 text. Failures are returned in ReadError so
// the caller can render them inline.
func inspectFile(fileSystem afero.Fs, path string, config fileInspectionConfig) fileInspectionResult {
	warn := config.Warn
	if warn == nil {
		warn = func(string) {}
	}

	fileBytes, readErr := afero.ReadFile(fileSystem, path)
	if readErr != nil {
		return fileInspectionResult{ReadError: readErr}
	}
	content, decodeErr := utils.DecodeText(fileBytes)
	if decodeErr != nil {
		return fileInspectionResult{SizeBytes: int64(len(fileBytes)), ReadError: decodeErr}
	}

	result := fileInspectionResult{Content: content, SizeBytes: int64(len(fileBytes))}
	if config.TokenCounter != nil {
		countResult, tokenErr := tokenizer.CountBytes(config.TokenCounter, fileBytes)
		if tokenErr != nil {
			warn(fmt.Sprintf(WarningTokenCountFormat, path, tokenErr))
		} else if countResult.Counted {
			result.Tokens = countResult.Tokens
		}
	}
	return result
}
