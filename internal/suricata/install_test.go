package suricata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
)

func TestDetectPackageManagerProbeOrder(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", "apt-get").Return("", errors.New("not found"))
	exec.On("LookPath", "dnf").Return("/usr/bin/dnf", nil)

	inst := NewInstaller(exec)
	pm, err := inst.DetectPackageManager()
	require.NoError(t, err)
	assert.Equal(t, "dnf", pm.Name)
	// apt-get was probed first.
	exec.AssertCalled(t, "LookPath", "apt-get")
}

func TestDetectPackageManagerNoneFound(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", mock.AnythingOfType("string")).Return("", errors.New("not found"))

	inst := NewInstaller(exec)
	_, err := inst.DetectPackageManager()
	assert.Error(t, err)
}

func TestInstallWithAptRefreshesIndexFirst(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", "apt-get").Return("/usr/bin/apt-get", nil)
	exec.On("RunCommand", "apt-get", "update").Return("", nil)
	exec.On("RunCommand", "apt-get", "install", "-y", "suricata").Return("", nil)

	inst := NewInstaller(exec)
	require.NoError(t, inst.Install(context.Background()))
	exec.AssertExpectations(t)
}

func TestInstallWithDnfSkipsRefresh(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", "apt-get").Return("", errors.New("not found"))
	exec.On("LookPath", "dnf").Return("/usr/bin/dnf", nil)
	exec.On("RunCommand", "dnf", "install", "-y", "suricata").Return("", nil)

	inst := NewInstaller(exec)
	require.NoError(t, inst.Install(context.Background()))
	exec.AssertNotCalled(t, "RunCommand", "dnf", "update")
}

func TestInstallFailureSurfaced(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", "apt-get").Return("/usr/bin/apt-get", nil)
	exec.On("RunCommand", "apt-get", "update").Return("", nil)
	exec.On("RunCommand", "apt-get", "install", "-y", "suricata").
		Return("E: Unable to locate package", errors.New("exit status 100"))

	inst := NewInstaller(exec)
	err := inst.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "install failed")
}

func TestInstalled(t *testing.T) {
	exec := new(system.MockCommandExecutor)
	exec.On("LookPath", "suricata").Return("/usr/bin/suricata", nil)
	assert.True(t, NewInstaller(exec).Installed())

	missing := new(system.MockCommandExecutor)
	missing.On("LookPath", "suricata").Return("", errors.New("not found"))
	assert.False(t, NewInstaller(missing).Installed())
}
