package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/temirov/treedump/internal/types"
)

// SnapshotRenderer writes the artifact and echoes the tree rendering to the console.
// The first artifact write error is kept and every later artifact write becomes a no-op.
// Console write failures are ignored; the echo never prevents the artifact from being written.
type SnapshotRenderer struct {
	artifact *bufio.Writer
	console  io.Writer
	err      error
}

// NewSnapshotRenderer constructs a renderer writing the artifact to artifact and the
// tree echo to console. A nil console disables the echo.
func NewSnapshotRenderer(artifact io.Writer, console io.Writer) *SnapshotRenderer {
	if console == nil {
		console = io.Discard
	}
	return &SnapshotRenderer{artifact: bufio.NewWriter(artifact), console: console}
}

// WriteRoot writes the root line of the tree.
func (renderer *SnapshotRenderer) WriteRoot(rootName string) {
	renderer.writeTreeLine(FormatRootLine(rootName))
}

// WriteEntry writes one tree line.
func (renderer *SnapshotRenderer) WriteEntry(entry types.TreeEntry) {
	renderer.writeTreeLine(FormatTreeEntry(entry))
}

// WriteContentsBanner writes the banner introducing the content dump.
func (renderer *SnapshotRenderer) WriteContentsBanner() {
	renderer.writeArtifact(ContentsBanner())
}

// WriteFile writes one content block.
func (renderer *SnapshotRenderer) WriteFile(file types.FileOutput) {
	renderer.writeArtifact(FormatFileBlock(file))
}

// WriteCompletion prints the completion notice to the console only.
func (renderer *SnapshotRenderer) WriteCompletion(outputFileName string) {
	_, _ = fmt.Fprintf(renderer.console, completionNoticeFormat, outputFileName)
}

// Flush writes buffered artifact data and reports the first error encountered.
func (renderer *SnapshotRenderer) Flush() error {
	if renderer.err != nil {
		return renderer.err
	}
	renderer.err = renderer.artifact.Flush()
	return renderer.err
}

// Err reports the first write error encountered.
func (renderer *SnapshotRenderer) Err() error {
	return renderer.err
}

func (renderer *SnapshotRenderer) writeTreeLine(line string) {
	_, _ = fmt.Fprintln(renderer.console, line)
	renderer.writeArtifact(line + "\n")
}

func (renderer *SnapshotRenderer) writeArtifact(text string) {
	if renderer.err != nil {
		return
	}
	if _, err := renderer.artifact.WriteString(text); err != nil {
		renderer.err = err
	}
}
