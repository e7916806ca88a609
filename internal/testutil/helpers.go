package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// RequireSuricata skips the test unless the SURICATA_SETUP_BIN_TEST
// environment variable is set. Tests behind this gate shell out to a real
// suricata binary and only make sense on hosts that have one.
func RequireSuricata(t *testing.T) {
	t.Helper()
	if os.Getenv("SURICATA_SETUP_BIN_TEST") == "" {
		t.Skip("Skipping test: requires SURICATA_SETUP_BIN_TEST environment")
	}
}

// WriteFile writes content into dir under name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
