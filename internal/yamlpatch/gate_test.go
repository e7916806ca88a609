package yamlpatch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/config"
)

// scriptValidator delegates to a func so tests can script accept/reject
// behavior per staged file.
type scriptValidator struct {
	fn func(path string) error
}

func (v scriptValidator) Validate(_ context.Context, path string) error {
	return v.fn(path)
}

func acceptAll() Validator {
	return scriptValidator{fn: func(string) error { return nil }}
}

func rejectAll(msg string) Validator {
	return scriptValidator{fn: func(string) error { return errors.New(msg) }}
}

// rejectSeparatorDamage fails any staged file still containing a doubled
// separator, which the repair pass is expected to fix.
func rejectSeparatorDamage() Validator {
	return scriptValidator{fn: func(path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if strings.Contains(string(data), "::") {
			return errors.New("invalid config at line 3")
		}
		return nil
	}}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suricata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func setEnabled(value string) Step {
	return Step{
		Name: "set-enabled",
		Apply: func(doc *Document) error {
			rw := NewRewriter()
			if n := rw.Rewrite(doc, "fast", "enabled", value); n == 0 {
				return ErrNoManagedKey
			}
			return nil
		},
	}
}

func TestGateCommitsValidMutation(t *testing.T) {
	original := "outputs:\n  - fast:\n      enabled: no\n"
	path := writeConfig(t, original)

	gate := NewGate(path, acceptAll(), config.NewBackupManager(path, 5))
	require.NoError(t, gate.Run(context.Background(), "enable fast log", setEnabled("yes")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "outputs:\n  - fast:\n      enabled: yes\n", string(data))

	// The pristine original was captured before the first mutation.
	orig, err := os.ReadFile(config.OriginalBackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, string(orig))

	// And a versioned backup was recorded.
	backups, err := config.NewBackupManager(path, 5).ListBackups()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.True(t, backups[0].IsAuto)
}

func TestGateOriginalBackupNeverOverwritten(t *testing.T) {
	original := "outputs:\n  - fast:\n      enabled: no\n"
	path := writeConfig(t, original)

	gate := NewGate(path, acceptAll(), nil)
	require.NoError(t, gate.Run(context.Background(), "first", setEnabled("yes")))
	require.NoError(t, gate.Run(context.Background(), "second", setEnabled("no")))

	orig, err := os.ReadFile(config.OriginalBackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, string(orig))
}

func TestGateRepairsThenCommits(t *testing.T) {
	path := writeConfig(t, "outputs:\n  - fast:\n      enabled:: no\n")

	gate := NewGate(path, rejectSeparatorDamage(), nil)
	require.NoError(t, gate.Run(context.Background(), "repair damage"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "outputs:\n  - fast:\n      enabled: no\n", string(data))
}

func TestGateRollsBackOnPersistentFailure(t *testing.T) {
	original := "outputs:\n  - fast:\n      enabled: no\n"
	path := writeConfig(t, original)

	gate := NewGate(path, rejectAll("parse error at line 2"), nil)
	err := gate.Run(context.Background(), "doomed change", setEnabled("yes"))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 2, vErr.Line)
	assert.Contains(t, vErr.Output, "parse error")
	assert.Contains(t, vErr.Context, ">> ")

	// The disk file is byte-identical to what it was.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))

	// No staging files left behind.
	entries, readErr := os.ReadDir(filepath.Dir(path))
	require.NoError(t, readErr)
	for _, e := range entries {
		assert.False(t, strings.Contains(e.Name(), ".staged-"), "stale staging file %s", e.Name())
	}
}

func TestGateStepFailureSkipsValidation(t *testing.T) {
	original := "outputs:\n"
	path := writeConfig(t, original)

	validated := false
	v := scriptValidator{fn: func(string) error {
		validated = true
		return nil
	}}

	gate := NewGate(path, v, nil)
	failing := Step{
		Name:  "broken",
		Apply: func(*Document) error { return fmt.Errorf("nothing to change") },
	}
	err := gate.Run(context.Background(), "failing pipeline", failing)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "step broken")
	assert.False(t, validated)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, original, string(data))
}

func TestExtractErrorLine(t *testing.T) {
	tests := []struct {
		output string
		want   int
	}{
		{"[ERRCODE: SC_ERR_CONF_YAML_ERROR(242)] - Failed to parse configuration file at line 361", 361},
		{"error at line: 42", 42},
		{"Line 7: bad mapping", 7},
		{"no numbers here", 0},
		{"pipeline broke", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractErrorLine(tt.output), "output %q", tt.output)
	}
}

func TestErrorContext(t *testing.T) {
	doc := docFromLines("a: 1", "b: 2", "c: 3", "d: 4", "e: 5")

	ctx := ErrorContext(doc, 3, 1)
	assert.Equal(t, "      2 | b: 2\n>>    3 | c: 3\n      4 | d: 4\n", ctx)

	// Window clamps at document edges.
	ctx = ErrorContext(doc, 1, 2)
	assert.True(t, strings.HasPrefix(ctx, ">>    1 | a: 1\n"))

	assert.Equal(t, "", ErrorContext(doc, 0, 2))
	assert.Equal(t, "", ErrorContext(doc, 99, 2))
}
