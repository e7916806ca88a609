package suricata

import (
	"context"
	"fmt"
	"strings"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/logging"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
)

// ServiceStatus represents the current state of the Suricata unit.
type ServiceStatus struct {
	Name    string `json:"name"`
	Running bool   `json:"running"`
	Enabled bool   `json:"enabled"`
	Error   string `json:"error,omitempty"`
}

// Service controls the Suricata systemd unit through an injected executor.
type Service struct {
	// Unit is the systemd unit name, default "suricata".
	Unit string

	exec system.CommandExecutor
	log  *logging.Logger
}

// NewService creates a service controller.
func NewService(exec system.CommandExecutor) *Service {
	if exec == nil {
		exec = system.DefaultExecutor
	}
	return &Service{
		Unit: brand.ServiceName,
		exec: exec,
		log:  logging.WithComponent("service"),
	}
}

// Name returns the unit name.
func (s *Service) Name() string {
	return s.Unit
}

// Start starts the unit.
func (s *Service) Start(ctx context.Context) error {
	return s.systemctl(ctx, "start")
}

// Stop stops the unit.
func (s *Service) Stop(ctx context.Context) error {
	return s.systemctl(ctx, "stop")
}

// Restart restarts the unit.
func (s *Service) Restart(ctx context.Context) error {
	return s.systemctl(ctx, "restart")
}

// Reload asks the unit to reload its configuration and rules.
func (s *Service) Reload(ctx context.Context) error {
	return s.systemctl(ctx, "reload-or-restart")
}

// Enable enables the unit at boot.
func (s *Service) Enable(ctx context.Context) error {
	return s.systemctl(ctx, "enable")
}

// Status returns the current status of the unit.
func (s *Service) Status(ctx context.Context) ServiceStatus {
	st := ServiceStatus{Name: s.Unit}

	out, err := s.exec.RunCommandContext(ctx, "systemctl", "is-active", s.Unit)
	state := strings.TrimSpace(out)
	st.Running = state == "active"
	if err != nil && state == "" {
		st.Error = err.Error()
	}

	out, _ = s.exec.RunCommandContext(ctx, "systemctl", "is-enabled", s.Unit)
	st.Enabled = strings.TrimSpace(out) == "enabled"

	return st
}

func (s *Service) systemctl(ctx context.Context, verb string) error {
	s.log.Info("systemctl", "verb", verb, "unit", s.Unit)
	if _, err := s.exec.RunCommandContext(ctx, "systemctl", verb, s.Unit); err != nil {
		return fmt.Errorf("systemctl %s %s: %w", verb, s.Unit, err)
	}
	return nil
}
