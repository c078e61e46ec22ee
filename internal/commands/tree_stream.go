// Package commands contains the traversal and content collection behind a snapshot.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/treedump/internal/output"
	"github.com/temirov/treedump/internal/types"
)

type TreeEventKind int

const (
	TreeEventRoot TreeEventKind = iota
	TreeEventDirectory
	TreeEventFile
)

// TreeSummary counts the entries a traversal rendered below the root.
type TreeSummary struct {
	Directories int
	Files       int
}

type TreeEvent struct {
	Kind  TreeEventKind
	Entry *types.TreeEntry
}

type TreeStreamOptions struct {
	FileSystem afero.Fs
	Root       string
	Excluded   func(name string) bool
	Warn       func(message string)
}

type treeStreamContext struct {
	options TreeStreamOptions
	handler func(TreeEvent) error
}

var errNilTreeHandler = errors.New("tree stream handler is nil")

// StreamTree lists options.Root depth-first, siblings in byte-wise name order, and calls
// handler for the root and then for every entry that survives exclusion. Directories that
// cannot be listed are rendered as empty; only handler errors stop the traversal.
// Symbolic links are reported as files and never followed.
func StreamTree(options TreeStreamOptions, handler func(TreeEvent) error) (TreeSummary, error) {
	if handler == nil {
		return TreeSummary{}, errNilTreeHandler
	}
	if options.FileSystem == nil {
		options.FileSystem = afero.NewOsFs()
	}
	if options.Excluded == nil {
		options.Excluded = func(string) bool { return false }
	}
	if options.Warn == nil {
		options.Warn = func(string) {}
	}

	ctx := treeStreamContext{options: options, handler: handler}
	rootEntry := types.TreeEntry{
		Name:  filepath.Base(options.Root),
		Path:  options.Root,
		IsDir: true,
	}
	if err := handler(TreeEvent{Kind: TreeEventRoot, Entry: &rootEntry}); err != nil {
		return TreeSummary{}, err
	}
	return ctx.walkDirectory(options.Root, "", 1)
}

func (ctx *treeStreamContext) walkDirectory(path string, prefix string, depth int) (TreeSummary, error) {
	entries, readErr := afero.ReadDir(ctx.options.FileSystem, path)
	if readErr != nil {
		ctx.options.Warn(fmt.Sprintf(warningListDirectoryFormat, path, readErr))
		return TreeSummary{}, nil
	}

	visible := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if ctx.options.Excluded(entry.Name()) {
			continue
		}
		visible = append(visible, entry)
	}

	summary := TreeSummary{}
	for index, entry := range visible {
		isLast := index == len(visible)-1
		treeEntry := types.TreeEntry{
			Name:   entry.Name(),
			Path:   filepath.Join(path, entry.Name()),
			Prefix: prefix,
			Depth:  depth,
			IsLast: isLast,
			IsDir:  isDirectory(entry),
		}

		if !treeEntry.IsDir {
			if err := ctx.handler(TreeEvent{Kind: TreeEventFile, Entry: &treeEntry}); err != nil {
				return TreeSummary{}, err
			}
			summary.Files++
			continue
		}

		if err := ctx.handler(TreeEvent{Kind: TreeEventDirectory, Entry: &treeEntry}); err != nil {
			return TreeSummary{}, err
		}
		_, childPrefix := output.TreeLinePrefix(prefix, isLast)
		childSummary, err := ctx.walkDirectory(treeEntry.Path, childPrefix, depth+1)
		if err != nil {
			return TreeSummary{}, err
		}
		summary.Directories += childSummary.Directories + 1
		summary.Files += childSummary.Files
	}

	return summary, nil
}

// isDirectory reports whether the entry is a real directory. Entries come from an lstat-style
// listing, so a symbolic link to a directory is not one.
func isDirectory(entry os.FileInfo) bool {
	return entry.Mode()&os.ModeSymlink == 0 && entry.IsDir()
}
