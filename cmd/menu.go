package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/tui"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/validation"
)

// RunMenu drives the interactive menu until the user quits.
func RunMenu() error {
	configFile := brand.GetConfigPath()
	ruleDir := brand.GetRuleDir()

	for {
		action, err := tui.RunMenu()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case tui.ActionSetup:
			err = RunSetup(SetupOptions{ConfigFile: configFile, RuleDir: ruleDir})
		case tui.ActionSyncRules:
			err = RunRulesSync(configFile, ruleDir)
		case tui.ActionInterface:
			err = menuSetInterface(configFile)
		case tui.ActionHomeNet:
			err = menuSetHomeNet(configFile)
		case tui.ActionCheck:
			err = RunCheck(configFile)
		case tui.ActionService:
			err = menuService()
		case tui.ActionBackups:
			err = menuBackups(configFile)
		case tui.ActionQuit:
			return nil
		}

		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			Printer.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func menuSetInterface(configFile string) error {
	iface, err := tui.Input("Capture interface", "eth0", validation.ValidateInterfaceName)
	if err != nil {
		return err
	}
	return RunSetInterface(configFile, iface)
}

func menuSetHomeNet(configFile string) error {
	homeNet, err := tui.Input("HOME_NET address group", "[192.168.0.0/16,10.0.0.0/8,172.16.0.0/12]", validation.ValidateHomeNet)
	if err != nil {
		return err
	}
	return RunSetHomeNet(configFile, homeNet)
}

func menuService() error {
	verb, err := tui.SelectString("Service action", []string{"status", "start", "stop", "restart", "reload", "enable"})
	if err != nil {
		return err
	}
	return RunService(verb)
}

func menuBackups(configFile string) error {
	choice, err := tui.SelectString("Backup action", []string{"list", "restore", "diff"})
	if err != nil {
		return err
	}
	switch choice {
	case "list":
		return RunBackupList(configFile)
	case "restore":
		version, err := tui.Input("Backup version", "1", nil)
		if err != nil {
			return err
		}
		ok, err := tui.Confirm("Overwrite the current configuration with this backup?")
		if err != nil || !ok {
			return err
		}
		return RunBackupRestore(configFile, version)
	case "diff":
		version, err := tui.Input("Backup version", "1", nil)
		if err != nil {
			return err
		}
		return RunBackupDiff(configFile, version)
	}
	return nil
}
