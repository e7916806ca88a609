package main

import (
	"flag"
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/cmd"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/i18n"
)

var printer = i18n.NewCLIPrinter()

func main() {
	if len(os.Args) < 2 {
		// No subcommand: drop into the interactive menu
		if err := cmd.RunMenu(); err != nil {
			printer.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch os.Args[1] {
	case "setup":
		setupFlags := flag.NewFlagSet("setup", flag.ExitOnError)
		configFile := setupFlags.String("config", brand.GetConfigPath(), "Configuration file")
		setupFlags.StringVar(configFile, "c", brand.GetConfigPath(), "Configuration file (short)")
		ruleDir := setupFlags.String("rule-dir", brand.GetRuleDir(), "Rule file directory")
		iface := setupFlags.String("interface", "", "Capture interface (default: auto-detect)")
		setupFlags.StringVar(iface, "i", "", "Capture interface (short)")
		homeNet := setupFlags.String("home-net", "", "HOME_NET address group (default: auto-suggest)")
		yes := setupFlags.Bool("yes", false, "Answer yes to all prompts")
		setupFlags.BoolVar(yes, "y", false, "Answer yes to all prompts (short)")
		setupFlags.Parse(os.Args[2:])

		if err := cmd.RunSetup(cmd.SetupOptions{
			ConfigFile: *configFile,
			RuleDir:    *ruleDir,
			Interface:  *iface,
			HomeNet:    *homeNet,
			Yes:        *yes,
		}); err != nil {
			printer.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}

	case "menu":
		if err := cmd.RunMenu(); err != nil {
			printer.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "rules":
		rulesFlags := flag.NewFlagSet("rules", flag.ExitOnError)
		configFile := rulesFlags.String("config", brand.GetConfigPath(), "Configuration file")
		rulesFlags.StringVar(configFile, "c", brand.GetConfigPath(), "Configuration file (short)")
		ruleDir := rulesFlags.String("rule-dir", brand.GetRuleDir(), "Rule file directory")

		if len(os.Args) < 3 {
			printer.Fprintf(os.Stderr, "Usage: %s rules <sync|list> [options]\n", brand.BinaryName)
			os.Exit(1)
		}
		verb := os.Args[2]
		rulesFlags.Parse(os.Args[3:])

		var err error
		switch verb {
		case "sync":
			err = cmd.RunRulesSync(*configFile, *ruleDir)
		case "list":
			err = cmd.RunRulesList(*configFile)
		default:
			printer.Fprintf(os.Stderr, "Unknown rules command: %s\n", verb)
			os.Exit(1)
		}
		if err != nil {
			printer.Fprintf(os.Stderr, "Rules %s failed: %v\n", verb, err)
			os.Exit(1)
		}

	case "config":
		configFlags := flag.NewFlagSet("config", flag.ExitOnError)
		configFile := configFlags.String("config", brand.GetConfigPath(), "Configuration file")
		configFlags.StringVar(configFile, "c", brand.GetConfigPath(), "Configuration file (short)")

		if len(os.Args) < 3 {
			printer.Fprintf(os.Stderr, "Usage: %s config <set-interface|set-home-net|logging> [options]\n", brand.BinaryName)
			os.Exit(1)
		}
		verb := os.Args[2]

		var err error
		switch verb {
		case "set-interface":
			configFlags.Parse(os.Args[3:])
			if configFlags.NArg() != 1 {
				printer.Fprintf(os.Stderr, "Usage: %s config set-interface <name>\n", brand.BinaryName)
				os.Exit(1)
			}
			err = cmd.RunSetInterface(*configFile, configFlags.Arg(0))
		case "set-home-net":
			configFlags.Parse(os.Args[3:])
			if configFlags.NArg() != 1 {
				printer.Fprintf(os.Stderr, "Usage: %s config set-home-net <cidr-group>\n", brand.BinaryName)
				os.Exit(1)
			}
			err = cmd.RunSetHomeNet(*configFile, configFlags.Arg(0))
		case "logging":
			enabled := configFlags.Bool("enabled", true, "Enable or disable log outputs")
			configFlags.Parse(os.Args[3:])
			err = cmd.RunSetLogging(*configFile, *enabled)
		default:
			printer.Fprintf(os.Stderr, "Unknown config command: %s\n", verb)
			os.Exit(1)
		}
		if err != nil {
			printer.Fprintf(os.Stderr, "Config %s failed: %v\n", verb, err)
			os.Exit(1)
		}

	case "check":
		checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
		configFile := checkFlags.String("config", brand.GetConfigPath(), "Configuration file")
		checkFlags.StringVar(configFile, "c", brand.GetConfigPath(), "Configuration file (short)")
		checkFlags.Parse(os.Args[2:])

		if err := cmd.RunCheck(*configFile); err != nil {
			os.Exit(1)
		}

	case "start", "stop", "restart", "reload", "status", "enable":
		if err := cmd.RunService(os.Args[1]); err != nil {
			printer.Fprintf(os.Stderr, "Service %s failed: %v\n", os.Args[1], err)
			os.Exit(1)
		}

	case "backup":
		backupFlags := flag.NewFlagSet("backup", flag.ExitOnError)
		configFile := backupFlags.String("config", brand.GetConfigPath(), "Configuration file")
		backupFlags.StringVar(configFile, "c", brand.GetConfigPath(), "Configuration file (short)")

		if len(os.Args) < 3 {
			printer.Fprintf(os.Stderr, "Usage: %s backup <list|restore|diff|pin|unpin> [options]\n", brand.BinaryName)
			os.Exit(1)
		}
		verb := os.Args[2]
		backupFlags.Parse(os.Args[3:])

		var err error
		switch verb {
		case "list":
			err = cmd.RunBackupList(*configFile)
		case "restore", "diff", "pin", "unpin":
			if backupFlags.NArg() != 1 {
				printer.Fprintf(os.Stderr, "Usage: %s backup %s <version>\n", brand.BinaryName, verb)
				os.Exit(1)
			}
			version := backupFlags.Arg(0)
			switch verb {
			case "restore":
				err = cmd.RunBackupRestore(*configFile, version)
			case "diff":
				err = cmd.RunBackupDiff(*configFile, version)
			case "pin":
				err = cmd.RunBackupPin(*configFile, version, true)
			case "unpin":
				err = cmd.RunBackupPin(*configFile, version, false)
			}
		default:
			printer.Fprintf(os.Stderr, "Unknown backup command: %s\n", verb)
			os.Exit(1)
		}
		if err != nil {
			printer.Fprintf(os.Stderr, "Backup %s failed: %v\n", verb, err)
			os.Exit(1)
		}

	case "version", "--version", "-v":
		cmd.RunVersion()

	case "help", "--help", "-h":
		printUsage()

	default:
		printer.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	printer.Printf(`%s - %s

Usage:
  %s <command> [options]
  %s            (no command opens the interactive menu)

Setup Commands:
  setup     Install and configure Suricata end to end
            Options: --interface (-i), --home-net, --rule-dir, --config (-c), --yes (-y)
  menu      Open the interactive menu

Configuration Commands:
  rules     Manage the rule-files list: sync, list
  config    Edit settings: set-interface, set-home-net, logging
  check     Validate the configuration file
  backup    Manage config backups: list, restore, diff, pin, unpin

Service Commands:
  start     Start the Suricata service
  stop      Stop the Suricata service
  restart   Restart the Suricata service
  reload    Reload rules without a full restart
  status    Show service status
  enable    Enable the service at boot

Other:
  version   Show version information
  help      Show this help

Most commands honor --config (-c) to target a non-default file.
`, brand.Name, brand.Description, brand.BinaryName, brand.BinaryName)
}
