// Package utils contains general helper functions used across treedump.
package utils

import (
	"path/filepath"
	"strings"
)

const (
	pathSegmentSeparator   = "/"
	currentDirectoryPrefix = "./"
)

// DeduplicatePatterns removes duplicate and blank entries from a slice while preserving order.
// Entries are trimmed of surrounding whitespace and the first occurrence of each is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		if _, exists := encounteredPatterns[trimmedPattern]; !exists {
			encounteredPatterns[trimmedPattern] = struct{}{}
			result = append(result, trimmedPattern)
		}
	}
	return result
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}

// NormalizeRelativePath converts a relative path into the form used by path headers
// and redaction lookups: forward slashes only and no leading "./".
func NormalizeRelativePath(relativePath string) string {
	normalizedPath := strings.ReplaceAll(filepath.ToSlash(relativePath), "\\", pathSegmentSeparator)
	return strings.TrimPrefix(normalizedPath, currentDirectoryPrefix)
}
