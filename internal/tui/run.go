package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Configuration errors returned by New and Run.
var (
	ErrNoLedger     = errors.New("ledger is required")
	ErrNoCategories = errors.New("no categories configured")
)

// New builds the form model from options.
func New(opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Ledger == nil {
		return Model{}, ErrNoLedger
	}
	if cfg.Ledger.Categories().Len() == 0 {
		return Model{}, ErrNoCategories
	}

	return newModel(cfg), nil
}

// Run shows the form until the user closes it or ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	m, err := New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.config.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if m.config.Input != nil {
		programOpts = append(programOpts, tea.WithInput(m.config.Input))
	}
	if m.config.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(m.config.Output))
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
