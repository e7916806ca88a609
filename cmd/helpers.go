// Package cmd implements the suricata-setup subcommands.
package cmd

import (
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/config"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/i18n"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/suricata"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// Printer renders all user-facing CLI output in the host locale.
var Printer = i18n.NewCLIPrinter()

// newGate builds a validation gate for the given config file, preferring
// the real suricata binary and falling back to a YAML-syntax-only check
// when it is absent.
func newGate(configFile string) *yamlpatch.Gate {
	validator, syntaxOnly := suricata.SelectValidator(system.DefaultExecutor)
	if syntaxOnly {
		Printer.Fprintf(os.Stderr, "Warning: suricata binary not found, validating YAML syntax only\n")
	}
	backups := config.NewBackupManager(configFile, 20)
	return yamlpatch.NewGate(configFile, validator, backups)
}
