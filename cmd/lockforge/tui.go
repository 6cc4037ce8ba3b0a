package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/tui"
)

// TUI launches the interactive terminal UI seeded with the loaded preferences.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	p := tea.NewProgram(tui.NewModel(r.prefs))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
