// Package system abstracts executing external commands so that callers can
// be exercised in tests and dry runs without shelling out.
package system

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// CommandExecutor is an interface that abstracts executing shell commands.
type CommandExecutor interface {
	RunCommand(name string, arg ...string) (string, error)
	RunCommandContext(ctx context.Context, name string, arg ...string) (string, error)
	LookPath(name string) (string, error)
}

// DefaultExecutor is the default RealCommandExecutor instance.
var DefaultExecutor CommandExecutor = &RealCommandExecutor{}

// RealCommandExecutor is a concrete implementation of CommandExecutor using os/exec.
type RealCommandExecutor struct{}

// RunCommand runs a command and returns its combined output.
func (r *RealCommandExecutor) RunCommand(name string, arg ...string) (string, error) {
	return r.RunCommandContext(context.Background(), name, arg...)
}

// RunCommandContext runs a command under the given context and returns its combined output.
func (r *RealCommandExecutor) RunCommandContext(ctx context.Context, name string, arg ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("command %s %v failed: %w, output: %s", name, arg, err, string(output))
	}
	return string(output), nil
}

// LookPath reports the path of the named binary, or an error if absent.
func (r *RealCommandExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// DryRunExecutor implements CommandExecutor but only records commands.
type DryRunExecutor struct {
	mu       sync.Mutex
	Commands []string
}

// NewDryRunExecutor creates a new dry run executor.
func NewDryRunExecutor() *DryRunExecutor {
	return &DryRunExecutor{
		Commands: make([]string, 0),
	}
}

// RunCommand records the command instead of executing it.
func (e *DryRunExecutor) RunCommand(name string, arg ...string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cmd := fmt.Sprintf("%s %s", name, strings.Join(arg, " "))
	e.Commands = append(e.Commands, cmd)
	return "", nil
}

// RunCommandContext records the command instead of executing it.
func (e *DryRunExecutor) RunCommandContext(ctx context.Context, name string, arg ...string) (string, error) {
	return e.RunCommand(name, arg...)
}

// LookPath pretends every binary exists.
func (e *DryRunExecutor) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}
