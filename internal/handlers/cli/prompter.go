package cli

import (
	"github.com/pterm/pterm"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_prompter.go github.com/KirkDiggler/shipcaptaincrew/internal/handlers/cli Prompter

// Prompter collects decisions from whoever is playing
type Prompter interface {
	// Confirm asks a yes/no question
	Confirm(question string, defaultValue bool) (bool, error)

	// Ask asks for a line of free text
	Ask(question string) (string, error)
}

// TerminalPrompter asks questions with pterm interactive printers
type TerminalPrompter struct{}

func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

func (p *TerminalPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	return pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(defaultValue).
		Show()
}

func (p *TerminalPrompter) Ask(question string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(question).
		Show()
}

// AutoPrompter answers every question with its default, for unattended games
type AutoPrompter struct{}

func NewAutoPrompter() *AutoPrompter {
	return &AutoPrompter{}
}

func (p *AutoPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	return defaultValue, nil
}

func (p *AutoPrompter) Ask(question string) (string, error) {
	return "", nil
}
