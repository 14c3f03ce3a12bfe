package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Placeholder   lipgloss.Style
	Total         lipgloss.Style
	ListBox       lipgloss.Style
	DialogBox     lipgloss.Style
	DialogTitle   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#7c3aed"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#ef4444"),
	Info:       lipgloss.Color("#3b82f6"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Width(14),
	FocusedLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Bold(true).
		Width(14),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true).
		Padding(0, 1),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Total: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ef4444")),

	// Component styles
	ListBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	DialogBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(1, 3),
	DialogTitle: lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1),

	// Status styles
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")),
}
