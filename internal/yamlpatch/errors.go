package yamlpatch

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRuleSet is returned by SyncRuleFiles when the rule directory
	// contains no rule files. The caller decides whether this is fatal.
	ErrEmptyRuleSet = errors.New("no rule files found in directory")

	// ErrNoManagedKey reports that the managed top-level key was absent and
	// could not be uncommented; SyncRuleFiles then appends it at the end of
	// the document instead of aborting.
	ErrNoManagedKey = errors.New("managed key not found in document")
)

// ValidationError is returned when the external validator rejects the
// document after both the initial mutation and the single repair attempt.
// The on-disk document has been left untouched.
type ValidationError struct {
	// Line is the 1-based line number extracted from the validator output,
	// or 0 if none could be found.
	Line int

	// Output is the validator's diagnostic text.
	Output string

	// Context is the failing line plus a small surrounding window, when
	// Line could be extracted.
	Context string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("validation failed at line %d", e.Line)
	}
	return "validation failed"
}
