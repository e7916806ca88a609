package suricata

import (
	"context"
	"fmt"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
)

// PackageManager identifies a supported distro package manager.
type PackageManager struct {
	// Name is the binary, e.g. "apt-get".
	Name string

	// InstallArgs are the arguments for a non-interactive install of one
	// package, which is appended last.
	InstallArgs []string

	// UpdateArgs refresh the package index before installing; empty when
	// the manager does not need a separate refresh.
	UpdateArgs []string
}

// Known package managers in probe order.
var packageManagers = []PackageManager{
	{Name: "apt-get", InstallArgs: []string{"install", "-y"}, UpdateArgs: []string{"update"}},
	{Name: "dnf", InstallArgs: []string{"install", "-y"}},
	{Name: "yum", InstallArgs: []string{"install", "-y"}},
	{Name: "pacman", InstallArgs: []string{"-S", "--noconfirm"}},
	{Name: "zypper", InstallArgs: []string{"install", "-y"}},
}

// Installer installs the Suricata package through the distro package
// manager.
type Installer struct {
	// Package is the package name, default "suricata".
	Package string

	exec system.CommandExecutor
	log  *logging.Logger
}

// NewInstaller creates an installer.
func NewInstaller(exec system.CommandExecutor) *Installer {
	if exec == nil {
		exec = system.DefaultExecutor
	}
	return &Installer{
		Package: "suricata",
		exec:    exec,
		log:     logging.WithComponent("install"),
	}
}

// DetectPackageManager probes for a known package manager binary.
func (i *Installer) DetectPackageManager() (*PackageManager, error) {
	for _, pm := range packageManagers {
		if _, err := i.exec.LookPath(pm.Name); err == nil {
			found := pm
			return &found, nil
		}
	}
	return nil, fmt.Errorf("no supported package manager found")
}

// Installed reports whether the suricata binary is already on the PATH.
func (i *Installer) Installed() bool {
	_, err := i.exec.LookPath("suricata")
	return err == nil
}

// Install refreshes the package index when the manager needs it and then
// installs the package non-interactively.
func (i *Installer) Install(ctx context.Context) error {
	pm, err := i.DetectPackageManager()
	if err != nil {
		return err
	}

	i.log.Info("installing package", "manager", pm.Name, "package", i.Package)

	if len(pm.UpdateArgs) > 0 {
		if _, err := i.exec.RunCommandContext(ctx, pm.Name, pm.UpdateArgs...); err != nil {
			return fmt.Errorf("package index update failed: %w", err)
		}
	}

	args := append(append([]string{}, pm.InstallArgs...), i.Package)
	if _, err := i.exec.RunCommandContext(ctx, pm.Name, args...); err != nil {
		return fmt.Errorf("package install failed: %w", err)
	}

	return nil
}
