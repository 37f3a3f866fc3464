// Package prompt implements the host prompt contract with an interactive
// terminal form.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/minc-org/minc-desktop/pkg/host"
)

// TerminalPrompt asks the user to pick a release in the terminal.
type TerminalPrompt struct{}

// New creates a TerminalPrompt.
func New() *TerminalPrompt {
	return &TerminalPrompt{}
}

// SelectRelease presents the release labels and returns the chosen one.
// Dismissing the form maps to host.ErrNoSelection.
func (p *TerminalPrompt) SelectRelease(
	ctx context.Context,
	title string,
	labels []string,
) (string, error) {
	if len(labels) == 0 {
		return "", host.ErrNoSelection
	}

	options := make([]huh.Option[string], 0, len(labels))
	for _, label := range labels {
		options = append(options, huh.NewOption(label, label))
	}

	var choice string

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&choice),
		),
	).RunWithContext(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", host.ErrNoSelection
		}

		return "", fmt.Errorf("release selection prompt failed: %w", err)
	}

	if choice == "" {
		return "", host.ErrNoSelection
	}

	return choice, nil
}
