package cmd

import (
	"fmt"
	"strconv"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/config"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/tui"
)

// RunBackupList prints the versioned backups for the config file, newest
// first.
func RunBackupList(configFile string) error {
	mgr := config.NewBackupManager(configFile, 20)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		Printer.Printf("No backups found\n")
		return nil
	}

	for _, b := range backups {
		kind := "manual"
		if b.IsAuto {
			kind = "auto"
		}
		pin := ""
		if b.Pinned {
			pin = " " + tui.StyleStatusGood.Render("[pinned]")
		}
		Printer.Printf("v%d  %s  %6d bytes  %s  %s%s\n",
			b.Version, b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, kind, b.Description, pin)
	}
	return nil
}

// RunBackupRestore restores the given backup version and returns the config
// file to its state at backup time. The current file is backed up first so
// the restore itself can be undone.
func RunBackupRestore(configFile, version string) error {
	v, err := parseVersion(version)
	if err != nil {
		return err
	}

	mgr := config.NewBackupManager(configFile, 20)
	if err := mgr.RestoreBackup(v); err != nil {
		return err
	}
	Printer.Printf("Restored backup v%d to %s\n", v, configFile)
	return nil
}

// RunBackupDiff prints a unified diff between a backup and the current file.
func RunBackupDiff(configFile, version string) error {
	v, err := parseVersion(version)
	if err != nil {
		return err
	}

	mgr := config.NewBackupManager(configFile, 20)
	diff, err := mgr.CompareWithCurrent(v)
	if err != nil {
		return err
	}
	fmt.Print(diff)
	return nil
}

// RunBackupPin pins or unpins a backup so pruning skips it.
func RunBackupPin(configFile, version string, pin bool) error {
	v, err := parseVersion(version)
	if err != nil {
		return err
	}

	mgr := config.NewBackupManager(configFile, 20)
	if pin {
		if err := mgr.PinBackup(v); err != nil {
			return err
		}
		Printer.Printf("Backup v%d pinned\n", v)
		return nil
	}
	if err := mgr.UnpinBackup(v); err != nil {
		return err
	}
	Printer.Printf("Backup v%d unpinned\n", v)
	return nil
}

func parseVersion(s string) (int, error) {
	if len(s) > 1 && s[0] == 'v' {
		s = s[1:]
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("invalid backup version %q", s)
	}
	return v, nil
}
