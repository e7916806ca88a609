package cmd

import (
	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
)

// RunVersion prints build information.
func RunVersion() {
	Printer.Printf("%s %s\n", brand.BinaryName, brand.Version)
	Printer.Printf("  commit: %s\n", brand.GitCommit)
	Printer.Printf("  built:  %s\n", brand.BuildTime)
}
