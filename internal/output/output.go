// Package output renders the snapshot artifact and its console echo.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/treedump/internal/types"
	"github.com/temirov/treedump/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	rootDirectorySuffix = "/"

	bannerRuleWidth     = 40
	bannerRuleCharacter = "="
	bannerLabel         = " FILE CONTENTS "
	blockPadding        = "\n\n\n"

	pathHeaderFormat       = "--- PATH: %s ---\n"
	redactionMarker        = ">>> [CONTENT IGNORED BY CONFIG]"
	readErrorMarkerFormat  = "[Error reading file: %v]"
	completionNoticeFormat = "\nTree printed above. Full content saved to: %s\n"
)

// TreeLinePrefix returns the text preceding an entry name and the prefix its children
// inherit. The last sibling gets the terminal connector and a blank continuation.
func TreeLinePrefix(prefix string, isLast bool) (string, string) {
	if isLast {
		return prefix + treeLastConnector, prefix + treeLastPadding
	}
	return prefix + treeBranchConnector, prefix + treeBranchPadding
}

// FormatTreeEntry renders one tree line without its trailing newline.
func FormatTreeEntry(entry types.TreeEntry) string {
	linePrefix, _ := TreeLinePrefix(entry.Prefix, entry.IsLast)
	return linePrefix + entry.Name
}

// FormatRootLine renders the first tree line for the root directory name.
func FormatRootLine(rootName string) string {
	return strings.TrimSuffix(rootName, rootDirectorySuffix) + rootDirectorySuffix
}

// ContentsBanner returns the block separating the tree from the file contents.
func ContentsBanner() string {
	rule := strings.Repeat(bannerRuleCharacter, bannerRuleWidth)
	return blockPadding + rule + "\n" + bannerLabel + "\n" + rule + blockPadding + "\n"
}

// FormatFileBlock renders the header, body and trailing padding of one file.
func FormatFileBlock(file types.FileOutput) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, pathHeaderFormat, file.RelativePath)
	switch {
	case file.Redacted:
		builder.WriteString(redactionMarker)
	case file.ReadError != nil:
		fmt.Fprintf(&builder, readErrorMarkerFormat, file.ReadError)
	default:
		builder.WriteString(file.Content)
	}
	builder.WriteString("\n")
	builder.WriteString(blockPadding + "\n")
	return builder.String()
}

// FormatSummaryLine formats a SnapshotSummary for the application log.
func FormatSummaryLine(summary types.SnapshotSummary) string {
	label := "files"
	if summary.Files == 1 {
		label = "file"
	}
	extra := ""
	if summary.Redacted > 0 {
		extra += fmt.Sprintf(", %d redacted", summary.Redacted)
	}
	if summary.Failed > 0 {
		extra += fmt.Sprintf(", %d unreadable", summary.Failed)
	}
	if summary.TotalTokens > 0 {
		extra += fmt.Sprintf(", %d tokens", summary.TotalTokens)
	}
	modelSuffix := ""
	if summary.Model != "" {
		modelSuffix = fmt.Sprintf(" (model: %s)", summary.Model)
	}
	return fmt.Sprintf("Summary: %d %s, %s%s%s", summary.Files, label, utils.FormatFileSize(summary.TotalBytes), extra, modelSuffix)
}
