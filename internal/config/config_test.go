package config

import (
	"errors"
	"reflect"
	"testing"
)

// TestLoadDefaultConfiguration verifies the embedded defaults decode into the expected lists.
func TestLoadDefaultConfiguration(testingHandle *testing.T) {
	configuration, loadError := LoadDefaultConfiguration()
	if loadError != nil {
		testingHandle.Fatalf("LoadDefaultConfiguration failed: %v", loadError)
	}
	if configuration.OutputFileName != "tree.txt" {
		testingHandle.Fatalf("unexpected output file name %q", configuration.OutputFileName)
	}
	for _, excludedName := range []string{".git", "node_modules", "dist", "frontend"} {
		if !configuration.IsExcludedName(excludedName) {
			testingHandle.Fatalf("expected %s to be excluded", excludedName)
		}
	}
	for _, redactedPath := range []string{"go.sum", "README.md", "frontend/package.json"} {
		if !configuration.IsRedacted(redactedPath) {
			testingHandle.Fatalf("expected %s to be redacted", redactedPath)
		}
	}
}

// TestIsExcludedNameMatchesExactly verifies exclusion is by exact, case-sensitive name.
func TestIsExcludedNameMatchesExactly(testingHandle *testing.T) {
	configuration, newError := New("snapshot.txt", []string{"node_modules", "dist"}, nil)
	if newError != nil {
		testingHandle.Fatalf("New failed: %v", newError)
	}
	testCases := []struct {
		name     string
		entry    string
		excluded bool
	}{
		{name: "exact directory name", entry: "node_modules", excluded: true},
		{name: "output file", entry: "snapshot.txt", excluded: true},
		{name: "different case", entry: "Dist", excluded: false},
		{name: "prefix only", entry: "node_modules_backup", excluded: false},
		{name: "path is not a name", entry: "web/dist", excluded: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			if result := configuration.IsExcludedName(testCase.entry); result != testCase.excluded {
				subTest.Fatalf("IsExcludedName(%q) = %v, want %v", testCase.entry, result, testCase.excluded)
			}
		})
	}
}

// TestIsRedactedMatchesRelativePath verifies redaction matches whole relative paths only.
func TestIsRedactedMatchesRelativePath(testingHandle *testing.T) {
	configuration, newError := New("tree.txt", nil, []string{"./secrets/.env", "go.sum", "go.sum"})
	if newError != nil {
		testingHandle.Fatalf("New failed: %v", newError)
	}
	if !reflect.DeepEqual(configuration.RedactedPaths, []string{"secrets/.env", "go.sum"}) {
		testingHandle.Fatalf("unexpected redacted paths %v", configuration.RedactedPaths)
	}
	if !configuration.IsRedacted("secrets/.env") {
		testingHandle.Fatalf("expected secrets/.env to be redacted")
	}
	if configuration.IsRedacted("nested/go.sum") {
		testingHandle.Fatalf("nested/go.sum must not match the root-level go.sum entry")
	}
}

func TestNewRejectsEmptyOutputFileName(testingHandle *testing.T) {
	if _, newError := New("  ", nil, nil); !errors.Is(newError, ErrEmptyOutputFileName) {
		testingHandle.Fatalf("expected ErrEmptyOutputFileName, got %v", newError)
	}
}

func TestDecodeConfigurationRejectsMalformedDocument(testingHandle *testing.T) {
	if _, decodeError := decodeConfiguration([]byte("output_file: [unterminated")); decodeError == nil {
		testingHandle.Fatalf("expected malformed document to fail")
	}
}
