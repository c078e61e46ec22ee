// Package types defines every cross-package data structure used by treedump.
package types

// TreeEntry is a single line of the tree rendering.
type TreeEntry struct {
	Name   string
	Path   string
	Prefix string
	Depth  int
	IsLast bool
	IsDir  bool
}

// VisitationRecord lists absolute file paths in the order the tree rendering produced them.
type VisitationRecord []string

// FileOutput represents one block of the content dump.
type FileOutput struct {
	Path         string
	RelativePath string
	Content      string
	Redacted     bool
	ReadError    error
	SizeBytes    int64
	Tokens       int
}

// SnapshotSummary aggregates the outcome of one snapshot run.
type SnapshotSummary struct {
	Directories int
	Files       int
	Redacted    int
	Failed      int
	TotalBytes  int64
	TotalTokens int
	Model       string
}
