// Package config decodes the compiled-in snapshot configuration.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/temirov/treedump/internal/utils"
)

const (
	configurationType = "yaml"

	errorReadDefaultsFormat   = "read default configuration: %w"
	errorDecodeDefaultsFormat = "decode default configuration: %w"
)

// ErrEmptyOutputFileName indicates that the configuration names no output artifact.
var ErrEmptyOutputFileName = errors.New("output file name is empty")

//go:embed defaults.yaml
var defaultConfiguration []byte

// Configuration holds the output file name and the static exclusion lists.
type Configuration struct {
	OutputFileName      string   `mapstructure:"output_file"`
	ExcludedDirectories []string `mapstructure:"exclude_directories"`
	RedactedPaths       []string `mapstructure:"redact_content"`

	excludedNames map[string]struct{}
	redactedPaths map[string]struct{}
}

// LoadDefaultConfiguration decodes the embedded defaults.
func LoadDefaultConfiguration() (Configuration, error) {
	return decodeConfiguration(defaultConfiguration)
}

func decodeConfiguration(document []byte) (Configuration, error) {
	reader := viper.New()
	reader.SetConfigType(configurationType)
	if readError := reader.ReadConfig(bytes.NewReader(document)); readError != nil {
		return Configuration{}, fmt.Errorf(errorReadDefaultsFormat, readError)
	}
	var configuration Configuration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return Configuration{}, fmt.Errorf(errorDecodeDefaultsFormat, decodeError)
	}
	return configuration.normalized()
}

func (configuration Configuration) normalized() (Configuration, error) {
	return New(configuration.OutputFileName, configuration.ExcludedDirectories, configuration.RedactedPaths)
}

// New builds a Configuration from explicit values. Entries are trimmed and deduplicated,
// redacted paths are normalized to forward slashes without a leading "./".
func New(outputFileName string, excludedDirectories []string, redactedPaths []string) (Configuration, error) {
	trimmedOutputFileName := strings.TrimSpace(outputFileName)
	if trimmedOutputFileName == "" {
		return Configuration{}, ErrEmptyOutputFileName
	}

	normalizedRedactedPaths := make([]string, 0, len(redactedPaths))
	for _, redactedPath := range redactedPaths {
		normalizedRedactedPaths = append(normalizedRedactedPaths, utils.NormalizeRelativePath(strings.TrimSpace(redactedPath)))
	}

	configuration := Configuration{
		OutputFileName:      trimmedOutputFileName,
		ExcludedDirectories: utils.DeduplicatePatterns(excludedDirectories),
		RedactedPaths:       utils.DeduplicatePatterns(normalizedRedactedPaths),
		excludedNames:       make(map[string]struct{}),
		redactedPaths:       make(map[string]struct{}),
	}
	for _, excludedName := range configuration.ExcludedDirectories {
		configuration.excludedNames[excludedName] = struct{}{}
	}
	for _, redactedPath := range configuration.RedactedPaths {
		configuration.redactedPaths[redactedPath] = struct{}{}
	}
	return configuration, nil
}

// IsExcludedName reports whether a directory entry with the given base name is left out of
// both the tree and the content dump. Matching is exact and case-sensitive; the output file
// is always excluded so the artifact never lists itself.
func (configuration Configuration) IsExcludedName(name string) bool {
	if name == configuration.OutputFileName {
		return true
	}
	_, excluded := configuration.excludedNames[name]
	return excluded
}

// IsRedacted reports whether the content of the file at relativePath is withheld.
func (configuration Configuration) IsRedacted(relativePath string) bool {
	_, redacted := configuration.redactedPaths[relativePath]
	return redacted
}
