package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/network"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/suricata"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/tui"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/validation"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/yamlpatch"
)

// SetupOptions control the end-to-end setup flow.
type SetupOptions struct {
	ConfigFile string
	RuleDir    string
	Interface  string // empty means auto-detect
	HomeNet    string // empty means auto-suggest
	Yes        bool   // skip confirmations
}

// RunSetup performs the complete installation flow: install the package if
// missing, pick a capture interface and HOME_NET, patch the configuration
// through the validation gate, synchronize rule files, and enable the
// service.
func RunSetup(opts SetupOptions) error {
	ctx := context.Background()
	exec := system.DefaultExecutor

	if err := ensureInstalled(ctx, exec, opts.Yes); err != nil {
		return err
	}

	iface, homeNet, err := resolveNetwork(opts)
	if err != nil {
		return err
	}
	Printer.Printf("Using capture interface %s, HOME_NET %s\n", iface, homeNet)

	gate := newGate(opts.ConfigFile)
	var syncResult *yamlpatch.SyncResult
	steps := []yamlpatch.Step{
		{
			Name: "set-interface",
			Apply: func(doc *yamlpatch.Document) error {
				rw := yamlpatch.NewRewriter()
				if n := rw.Rewrite(doc, "interface", "interface", iface); n == 0 {
					return fmt.Errorf("set interface: %w", yamlpatch.ErrNoManagedKey)
				}
				return nil
			},
		},
		{
			Name: "set-home-net",
			Apply: func(doc *yamlpatch.Document) error {
				rw := yamlpatch.NewRewriter()
				if n := rw.RewriteAnywhere(doc, "HOME_NET", fmt.Sprintf("%q", homeNet)); n == 0 {
					return fmt.Errorf("set HOME_NET: %w", yamlpatch.ErrNoManagedKey)
				}
				return nil
			},
		},
		{
			Name: "sync-rule-files",
			Apply: func(doc *yamlpatch.Document) error {
				r, err := yamlpatch.SyncRuleFiles(doc, opts.RuleDir, yamlpatch.DefaultRuleFilesKey)
				if err != nil {
					if errors.Is(err, yamlpatch.ErrEmptyRuleSet) {
						Printer.Fprintf(os.Stderr, "Warning: no rule files in %s, keeping existing list\n", opts.RuleDir)
						return nil
					}
					return err
				}
				syncResult = r
				return nil
			},
		},
	}

	if err := gate.Run(ctx, "initial setup", steps...); err != nil {
		return err
	}
	if syncResult != nil {
		Printer.Printf("Synchronized %d rule files\n", len(syncResult.Entries))
	}

	svc := suricata.NewService(exec)
	if err := svc.Enable(ctx); err != nil {
		Printer.Fprintf(os.Stderr, "Warning: could not enable %s at boot: %v\n", svc.Name(), err)
	}
	if err := svc.Restart(ctx); err != nil {
		return fmt.Errorf("restart %s: %w", svc.Name(), err)
	}

	Printer.Printf("%s\n", tui.StyleStatusGood.Render("Setup complete"))
	printServiceStatus(svc.Status(ctx))
	return nil
}

func ensureInstalled(ctx context.Context, exec system.CommandExecutor, yes bool) error {
	installer := suricata.NewInstaller(exec)
	if installer.Installed() {
		return nil
	}

	mgr, err := installer.DetectPackageManager()
	if err != nil {
		return fmt.Errorf("%s is not installed and %w", brand.ValidatorBinary, err)
	}

	if !yes {
		ok, err := tui.Confirm(fmt.Sprintf("Install %s via %s?", brand.ValidatorBinary, mgr.Name))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("installation declined")
		}
	}

	Printer.Printf("Installing %s via %s...\n", brand.ValidatorBinary, mgr.Name)
	return installer.Install(ctx)
}

// resolveNetwork fills in the interface and HOME_NET, auto-detecting
// whatever was not given on the command line.
func resolveNetwork(opts SetupOptions) (iface, homeNet string, err error) {
	iface, homeNet = opts.Interface, opts.HomeNet
	if iface != "" && homeNet != "" {
		if err := validation.ValidateInterfaceName(iface); err != nil {
			return "", "", err
		}
		if err := validation.ValidateHomeNet(homeNet); err != nil {
			return "", "", err
		}
		return iface, homeNet, nil
	}

	hw, err := network.DetectHardware()
	if err != nil {
		return "", "", fmt.Errorf("detect network interfaces: %w", err)
	}
	picked, err := hw.PickCaptureInterface()
	if err != nil {
		return "", "", err
	}

	if iface == "" {
		iface = picked.Name
	}
	if homeNet == "" {
		homeNet = picked.SuggestHomeNet()
	}
	if err := validation.ValidateInterfaceName(iface); err != nil {
		return "", "", err
	}
	if err := validation.ValidateHomeNet(homeNet); err != nil {
		return "", "", err
	}
	return iface, homeNet, nil
}
