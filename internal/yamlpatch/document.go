// Package yamlpatch edits the Suricata YAML configuration with line-oriented
// heuristics. It does not parse YAML: the documents it must handle are often
// structurally damaged, and the goal is to repair or conservatively mutate
// them while preserving everything it does not understand. Full validation is
// delegated to an external oracle (suricata -T).
package yamlpatch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is an ordered sequence of text lines. It owns its content
// exclusively and is mutated only through explicit transform passes.
type Document struct {
	lines []string

	// finalNewline records whether the source ended with a newline so a
	// round trip without mutations is byte-identical.
	finalNewline bool
}

// Snapshot is an opaque copy of document content, used for rollback.
type Snapshot struct {
	lines        []string
	finalNewline bool
}

// NewDocument creates a document from raw file content.
func NewDocument(data []byte) *Document {
	s := string(data)
	finalNewline := strings.HasSuffix(s, "\n")
	if finalNewline {
		s = strings.TrimSuffix(s, "\n")
	}

	var lines []string
	if s != "" || !finalNewline {
		lines = strings.Split(s, "\n")
	}
	if s == "" && finalNewline {
		lines = []string{""}
	}

	return &Document{lines: lines, finalNewline: finalNewline}
}

// LoadDocument reads a document from disk.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return NewDocument(data), nil
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Line returns line i. Callers must stay within [0, Len).
func (d *Document) Line(i int) string {
	return d.lines[i]
}

// SetLine replaces line i.
func (d *Document) SetLine(i int, s string) {
	d.lines[i] = s
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// SetLines replaces the whole content with the given lines.
func (d *Document) SetLines(lines []string) {
	d.lines = lines
}

// Bytes serializes the document back to file content.
func (d *Document) Bytes() []byte {
	s := strings.Join(d.lines, "\n")
	if d.finalNewline {
		s += "\n"
	}
	return []byte(s)
}

// String returns the document as a string.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Snapshot returns an opaque copy of the current content.
func (d *Document) Snapshot() Snapshot {
	lines := make([]string, len(d.lines))
	copy(lines, d.lines)
	return Snapshot{lines: lines, finalNewline: d.finalNewline}
}

// Restore atomically replaces the content with a previous snapshot.
func (d *Document) Restore(s Snapshot) {
	d.lines = make([]string, len(s.lines))
	copy(d.lines, s.lines)
	d.finalNewline = s.finalNewline
}

// WriteFile commits the document to path atomically: the content is staged
// in a temp file in the same directory and moved into place with rename, so
// a crash mid-write cannot leave a half-written file.
func (d *Document) WriteFile(path string) error {
	tmp, err := stageTemp(path, d.Bytes())
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

// stageTemp writes data to a fresh temp file next to path and returns its name.
func stageTemp(path string, data []byte) (string, error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".staged-*")
	if err != nil {
		return "", fmt.Errorf("failed to create staging file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close staging file: %w", err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to chmod staging file: %w", err)
	}
	return tmp, nil
}
