package yamlpatch

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/config"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
)

// Validator is the external oracle that judges whether a staged document is
// syntactically acceptable. A nil error means valid; otherwise the error
// text carries the diagnostic output.
type Validator interface {
	Validate(ctx context.Context, path string) error
}

// Step is one transform of a mutation pipeline.
type Step struct {
	Name  string
	Apply func(doc *Document) error
}

// Default repair scope: the section tags and keys that sed-era edits were
// known to duplicate.
var (
	DefaultDedupeTags = []string{"fast", "eve-log", "stats", "interface"}
	DefaultDedupeKeys = []string{"enabled", "filename", "append", "filetype", "interface"}
)

// Gate wraps a mutation pipeline in backup, validation, a single repair
// attempt, and commit-or-rollback. The on-disk document is replaced only by
// an atomic rename after the validator has accepted the staged content, so
// a failed pipeline leaves the file byte-identical to what it was.
type Gate struct {
	// Path is the on-disk document the gate manages.
	Path string

	// Validator judges staged content.
	Validator Validator

	// Backups, when set, records an on-disk versioned backup before every
	// pipeline run.
	Backups *config.BackupManager

	// Repairer runs once between a failed validation and the retry.
	Repairer *Repairer

	// DedupeTags and DedupeKeys scope the duplicate-elimination repair pass.
	DedupeTags []string
	DedupeKeys []string

	// ContextLines is the window printed around a failing line.
	ContextLines int

	log *logging.Logger
}

// NewGate creates a gate for the document at path.
func NewGate(path string, v Validator, backups *config.BackupManager) *Gate {
	return &Gate{
		Path:         path,
		Validator:    v,
		Backups:      backups,
		Repairer:     NewRepairer(),
		DedupeTags:   DefaultDedupeTags,
		DedupeKeys:   DefaultDedupeKeys,
		ContextLines: 2,
		log:          logging.WithComponent("gate"),
	}
}

// Run loads the document, applies the pipeline steps in order, validates
// the staged result, and commits or rolls back. At most one repair attempt
// is made; a second validation failure is surfaced as *ValidationError and
// the disk is left untouched.
func (g *Gate) Run(ctx context.Context, desc string, steps ...Step) error {
	runID := uuid.NewString()[:8]
	log := g.log.WithFields(map[string]any{"run": runID, "op": desc})

	doc, err := LoadDocument(g.Path)
	if err != nil {
		return err
	}

	// A pristine copy of the very first document state must exist before
	// any pipeline ever touches the file.
	if err := config.EnsureOriginalBackup(g.Path); err != nil {
		return err
	}
	if g.Backups != nil {
		if _, err := g.Backups.CreateBackup("Before "+desc, true); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	snap := doc.Snapshot()

	for _, step := range steps {
		if err := step.Apply(doc); err != nil {
			doc.Restore(snap)
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	tmp, err := stageTemp(g.Path, doc.Bytes())
	if err != nil {
		doc.Restore(snap)
		return err
	}

	verr := g.Validator.Validate(ctx, tmp)
	if verr == nil {
		return g.commit(log, tmp)
	}

	log.Warn("validator rejected mutation, attempting repair",
		"line", ExtractErrorLine(verr.Error()))

	dropped := DeduplicateKeys(doc, g.DedupeTags, g.DedupeKeys)
	fixed := g.Repairer.Repair(doc)
	log.Info("repair pass complete", "dropped", dropped, "fixed", fixed)

	if err := os.WriteFile(tmp, doc.Bytes(), 0644); err != nil {
		os.Remove(tmp)
		doc.Restore(snap)
		return fmt.Errorf("failed to restage document: %w", err)
	}

	verr = g.Validator.Validate(ctx, tmp)
	if verr == nil {
		return g.commit(log, tmp)
	}

	// One repair attempt only. Roll back: the disk was never touched, and
	// the in-memory model goes back to the pre-pipeline snapshot.
	os.Remove(tmp)

	vErr := &ValidationError{
		Line:   ExtractErrorLine(verr.Error()),
		Output: verr.Error(),
	}
	if vErr.Line > 0 {
		vErr.Context = ErrorContext(doc, vErr.Line, g.ContextLines)
	}

	doc.Restore(snap)
	log.Error("validation failed after repair, rolled back", "line", vErr.Line)
	return vErr
}

func (g *Gate) commit(log *logging.Logger, tmp string) error {
	if err := os.Rename(tmp, g.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit document: %w", err)
	}
	log.Info("document committed")
	return nil
}

// errorLineRe finds a 1-based line number in validator diagnostics, e.g.
// "at line 123" or "[ERRCODE: ...] ... line 123".
var errorLineRe = regexp.MustCompile(`(?i)\bline[:\s]+(\d+)`)

// ExtractErrorLine pulls a line number out of validator output, or 0.
func ExtractErrorLine(output string) int {
	m := errorLineRe.FindStringSubmatch(output)
	if m == nil {
		return 0
	}
	var line int
	fmt.Sscanf(m[1], "%d", &line)
	return line
}

// ErrorContext renders the failing line with n lines of context on each
// side, marking the failing line with an arrow.
func ErrorContext(doc *Document, line, n int) string {
	if line < 1 || line > doc.Len() {
		return ""
	}

	start := line - 1 - n
	if start < 0 {
		start = 0
	}
	end := line - 1 + n
	if end > doc.Len()-1 {
		end = doc.Len() - 1
	}

	var sb strings.Builder
	for i := start; i <= end; i++ {
		marker := "   "
		if i == line-1 {
			marker = ">> "
		}
		fmt.Fprintf(&sb, "%s%4d | %s\n", marker, i+1, doc.Line(i))
	}
	return sb.String()
}
