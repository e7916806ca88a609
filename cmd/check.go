package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/suricata"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// RunCheck validates the configuration file and prints a localized error
// report when the validator rejects it.
func RunCheck(configFile string) error {
	if configFile == "" {
		return fmt.Errorf("usage: suricata-setup check [-c <config-file>]")
	}

	validator, syntaxOnly := suricata.SelectValidator(system.DefaultExecutor)
	if syntaxOnly {
		Printer.Fprintf(os.Stderr, "Warning: suricata binary not found, validating YAML syntax only\n")
	}

	err := validator.Validate(context.Background(), configFile)
	if err == nil {
		Printer.Printf("Configuration valid: %s\n", configFile)
		return nil
	}

	Printer.Fprintf(os.Stderr, "Configuration invalid: %s\n", configFile)

	line := yamlpatch.ExtractErrorLine(err.Error())
	if line > 0 {
		if doc, lerr := yamlpatch.LoadDocument(configFile); lerr == nil {
			Printer.Fprintf(os.Stderr, "\n%s\n", yamlpatch.ErrorContext(doc, line, 2))
		}
	}
	Printer.Fprintf(os.Stderr, "%s\n", err.Error())

	return fmt.Errorf("configuration invalid")
}
