// Package suricata wraps the external Suricata collaborators: the binary in
// test mode as a configuration oracle, the systemd unit, and the distro
// package manager.
package suricata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// DefaultValidateTimeout bounds a single validator invocation. The binary
// loads every rule file in test mode, which can take a while on slow hosts.
const DefaultValidateTimeout = 2 * time.Minute

// ValidateError carries the validator's diagnostic output.
type ValidateError struct {
	Output string
}

func (e *ValidateError) Error() string {
	return e.Output
}

// BinaryValidator judges a configuration by running `suricata -T` against
// it. Exit code 0 means valid.
type BinaryValidator struct {
	// Binary is the validator executable, default "suricata".
	Binary string

	// Timeout bounds one invocation; zero disables the bound entirely.
	Timeout time.Duration

	exec system.CommandExecutor
}

// NewBinaryValidator creates a validator using the given executor.
func NewBinaryValidator(exec system.CommandExecutor) *BinaryValidator {
	if exec == nil {
		exec = system.DefaultExecutor
	}
	return &BinaryValidator{
		Binary:  brand.ValidatorBinary,
		Timeout: DefaultValidateTimeout,
		exec:    exec,
	}
}

// Available reports whether the validator binary can be found.
func (v *BinaryValidator) Available() bool {
	_, err := v.exec.LookPath(v.Binary)
	return err == nil
}

// Validate runs the binary in test mode against path.
func (v *BinaryValidator) Validate(ctx context.Context, path string) error {
	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	output, err := v.exec.RunCommandContext(ctx, v.Binary, "-T", "-c", path)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("validator timed out after %s: %w", v.Timeout, ctx.Err())
	}
	return &ValidateError{Output: output + err.Error()}
}

// SyntaxValidator is a binary-free oracle that checks the document is
// well-formed YAML. It is used on hosts without Suricata installed and in
// tests; it cannot judge Suricata semantics.
type SyntaxValidator struct{}

// Validate parses the file as YAML and reports the first error.
func (SyntaxValidator) Validate(ctx context.Context, path string) error {
	doc, err := yamlpatch.LoadDocument(path)
	if err != nil {
		return err
	}

	var out map[string]interface{}
	if err := yaml.Unmarshal(doc.Bytes(), &out); err != nil {
		return &ValidateError{Output: err.Error()}
	}
	return nil
}

// SelectValidator returns the binary validator when the binary is present,
// falling back to the syntax-only oracle with a true second return when not.
func SelectValidator(exec system.CommandExecutor) (yamlpatch.Validator, bool) {
	bv := NewBinaryValidator(exec)
	if bv.Available() {
		return bv, false
	}
	return SyntaxValidator{}, true
}

// IsValidateError reports whether err is a validator rejection as opposed
// to an execution failure.
func IsValidateError(err error) bool {
	var ve *ValidateError
	return errors.As(err, &ve)
}
