package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/atharva8303/Suricata-Automation-Setup/internal/brand"
)

// Action identifies a menu choice.
type Action string

const (
	ActionSetup     Action = "setup"
	ActionSyncRules Action = "rules"
	ActionInterface Action = "interface"
	ActionHomeNet   Action = "homenet"
	ActionCheck     Action = "check"
	ActionService   Action = "service"
	ActionBackups   Action = "backups"
	ActionQuit      Action = "quit"
)

// RunMenu shows the top-level interactive menu and returns the selection.
func RunMenu() (Action, error) {
	fmt.Println(StyleTitle.Render(brand.Name))
	fmt.Println(StyleSubtitle.Render(brand.Description))

	var action Action
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Full setup (install + configure + enable)", ActionSetup),
					huh.NewOption("Synchronize rule files", ActionSyncRules),
					huh.NewOption("Set capture interface", ActionInterface),
					huh.NewOption("Set HOME_NET", ActionHomeNet),
					huh.NewOption("Check configuration", ActionCheck),
					huh.NewOption("Service control", ActionService),
					huh.NewOption("Backups", ActionBackups),
					huh.NewOption("Quit", ActionQuit),
				).
				Value(&action),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return ActionQuit, err
	}
	return action, nil
}

// Confirm asks a yes/no question.
func Confirm(title string) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// SelectString shows a select of the given options and returns the choice.
func SelectString(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&choice),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

// Input prompts for a single string value with optional validation.
func Input(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	in := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		in = in.Validate(validate)
	}

	form := huh.NewForm(huh.NewGroup(in)).WithTheme(huh.ThemeBase16())
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
