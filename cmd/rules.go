package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// RunRulesSync regenerates the rule-files list from the rule directory and
// commits it through the validation gate.
func RunRulesSync(configFile, ruleDir string) error {
	gate := newGate(configFile)

	var result *yamlpatch.SyncResult
	step := yamlpatch.Step{
		Name: "sync-rule-files",
		Apply: func(doc *yamlpatch.Document) error {
			r, err := yamlpatch.SyncRuleFiles(doc, ruleDir, yamlpatch.DefaultRuleFilesKey)
			if err != nil {
				return err
			}
			result = r
			return nil
		},
	}

	err := gate.Run(context.Background(), "rule sync", step)
	if err != nil {
		if errors.Is(err, yamlpatch.ErrEmptyRuleSet) {
			Printer.Fprintf(os.Stderr, "Warning: no rule files in %s, configuration left unchanged\n", ruleDir)
			return nil
		}
		return err
	}

	Printer.Printf("Synchronized %d rule files from %s\n", len(result.Entries), ruleDir)
	if result.Uncommented {
		Printer.Printf("Note: the rule-files key was commented out and has been restored\n")
	}
	if result.CreatedKey {
		Printer.Printf("Note: the rule-files key was missing and has been appended\n")
	}
	return nil
}

// RunRulesList prints the entries currently under the managed key.
func RunRulesList(configFile string) error {
	doc, err := yamlpatch.LoadDocument(configFile)
	if err != nil {
		return err
	}

	entries := yamlpatch.ManagedEntries(doc, yamlpatch.DefaultRuleFilesKey)
	if len(entries) == 0 {
		Printer.Printf("No rule files configured\n")
		return nil
	}
	for _, name := range entries {
		Printer.Printf("%s\n", name)
	}
	return nil
}
