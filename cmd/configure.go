package cmd

import (
	"context"
	"fmt"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/validation"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// RunSetInterface updates the capture interface in every af-packet/pcap
// style interface section, then validates the result before committing.
func RunSetInterface(configFile, iface string) error {
	if err := validation.ValidateInterfaceName(iface); err != nil {
		return err
	}

	gate := newGate(configFile)

	var changed int
	step := yamlpatch.Step{
		Name: "set-interface",
		Apply: func(doc *yamlpatch.Document) error {
			rw := yamlpatch.NewRewriter()
			changed = rw.Rewrite(doc, "interface", "interface", iface)
			if changed == 0 {
				return fmt.Errorf("set interface: %w", yamlpatch.ErrNoManagedKey)
			}
			return nil
		},
	}

	if err := gate.Run(context.Background(), "interface change", step); err != nil {
		return err
	}
	Printer.Printf("Capture interface set to %s (%d lines updated)\n", iface, changed)
	return nil
}

// RunSetHomeNet rewrites the HOME_NET address group. The value is written
// quoted, matching the shipped suricata.yaml style.
func RunSetHomeNet(configFile, homeNet string) error {
	if err := validation.ValidateHomeNet(homeNet); err != nil {
		return err
	}

	gate := newGate(configFile)

	step := yamlpatch.Step{
		Name: "set-home-net",
		Apply: func(doc *yamlpatch.Document) error {
			rw := yamlpatch.NewRewriter()
			if n := rw.RewriteAnywhere(doc, "HOME_NET", fmt.Sprintf("%q", homeNet)); n == 0 {
				return fmt.Errorf("set HOME_NET: %w", yamlpatch.ErrNoManagedKey)
			}
			return nil
		},
	}

	if err := gate.Run(context.Background(), "HOME_NET change", step); err != nil {
		return err
	}
	Printer.Printf("HOME_NET set to %s\n", homeNet)
	return nil
}

// loggingSections are the output sections whose enabled flag the logging
// command toggles.
var loggingSections = []string{"fast", "eve-log", "stats"}

// RunSetLogging enables or disables the standard log outputs.
func RunSetLogging(configFile string, enabled bool) error {
	value := "no"
	if enabled {
		value = "yes"
	}

	gate := newGate(configFile)

	var total int
	step := yamlpatch.Step{
		Name: "set-logging",
		Apply: func(doc *yamlpatch.Document) error {
			rw := yamlpatch.NewRewriter()
			for _, tag := range loggingSections {
				total += rw.Rewrite(doc, tag, "enabled", value)
			}
			if total == 0 {
				return fmt.Errorf("set logging: %w", yamlpatch.ErrNoManagedKey)
			}
			return nil
		},
	}

	if err := gate.Run(context.Background(), "logging change", step); err != nil {
		return err
	}
	Printer.Printf("Log outputs set to enabled: %s (%d lines updated)\n", value, total)
	return nil
}
