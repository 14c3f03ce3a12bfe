package tui

import (
	"io"

	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/tui/themes"
	"github.com/Veraticus/expense-tally/internal/tui/viewmodel"
)

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Input       io.Reader
	Output      io.Writer
	Ledger      *ledger.Ledger
	Formatter   viewmodel.Formatter
	Title       string
	Width       int
	Height      int
	ClearFields bool
	AltScreen   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:       themes.Default,
		Formatter:   viewmodel.NewFormatter("", ""),
		Title:       "Personal Expense Tracker",
		Width:       80,
		Height:      24,
		ClearFields: true,
		AltScreen:   true,
	}
}

// WithLedger sets the ledger the form records into.
func WithLedger(l *ledger.Ledger) Option {
	return func(c *Config) {
		c.Ledger = l
	}
}

// WithFormatter sets how amounts and timestamps are rendered.
func WithFormatter(f viewmodel.Formatter) Option {
	return func(c *Config) {
		c.Formatter = f
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClearFields toggles the clear-fields action.
func WithClearFields(enabled bool) Option {
	return func(c *Config) {
		c.ClearFields = enabled
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}

// WithIO overrides the terminal input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Config) {
		c.Input = in
		c.Output = out
	}
}
