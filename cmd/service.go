package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/suricata"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/system"
	"github.com/atharva8303/Suricata-Automation-Setup/internal/tui"
)

// RunService dispatches a service verb (start, stop, restart, reload,
// enable, status) against the Suricata systemd unit.
func RunService(verb string) error {
	svc := suricata.NewService(system.DefaultExecutor)
	ctx := context.Background()

	switch verb {
	case "start":
		if err := svc.Start(ctx); err != nil {
			return err
		}
		Printer.Printf("Service %s started\n", svc.Name())
	case "stop":
		if err := svc.Stop(ctx); err != nil {
			return err
		}
		Printer.Printf("Service %s stopped\n", svc.Name())
	case "restart":
		if err := svc.Restart(ctx); err != nil {
			return err
		}
		Printer.Printf("Service %s restarted\n", svc.Name())
	case "reload":
		if err := svc.Reload(ctx); err != nil {
			return err
		}
		Printer.Printf("Service %s reloaded\n", svc.Name())
	case "enable":
		if err := svc.Enable(ctx); err != nil {
			return err
		}
		Printer.Printf("Service %s enabled\n", svc.Name())
	case "status":
		printServiceStatus(svc.Status(ctx))
	default:
		return fmt.Errorf("unknown service command %q", verb)
	}
	return nil
}

func printServiceStatus(st suricata.ServiceStatus) {
	state := tui.StyleStatusBad.Render("stopped")
	if st.Running {
		state = tui.StyleStatusGood.Render("running")
	}
	boot := "disabled"
	if st.Enabled {
		boot = "enabled"
	}
	Printer.Printf("%s: %s (%s at boot)\n", st.Name, state, boot)
	if st.Error != "" {
		Printer.Fprintf(os.Stderr, "Warning: %s\n", st.Error)
	}
}
