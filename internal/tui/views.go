package tui

import (
	"fmt"

	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state == StateDialog {
		return m.renderDialog()
	}
	return m.renderForm()
}

func (m Model) renderForm() string {
	sections := []string{
		m.theme.Title.Render(m.config.Title),
		m.renderField(FocusDescription, "Description:", m.description.View()),
		m.renderField(FocusAmount, fmt.Sprintf("Amount (%s):", ledger.CurrencySymbol(m.formatter.Currency)), m.amount.View()),
		m.renderField(FocusCategory, "Category:", m.renderCategory()),
		"",
		m.help.View(m.keymap),
		"",
		m.theme.Subtitle.Render("Recorded expenses:"),
		m.theme.ListBox.Render(m.list.View()),
		m.theme.Total.Render(m.formatter.TotalLine(m.ledger.Total())),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderField(f Focus, label, value string) string {
	style := m.theme.Label
	if m.focus == f {
		style = m.theme.FocusedLabel
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
}

func (m Model) renderCategory() string {
	current := m.selectedCategory().String()
	if m.focus != FocusCategory {
		return m.theme.Normal.Render(current)
	}
	return m.theme.Placeholder.Render("‹ ") +
		m.theme.Selected.Render(current) +
		m.theme.Placeholder.Render(" ›")
}

func (m Model) renderDialog() string {
	titleStyle := m.theme.DialogTitle
	switch m.dialog.kind {
	case DialogInfo:
		titleStyle = titleStyle.Inherit(m.theme.StatusInfo)
	case DialogWarning:
		titleStyle = titleStyle.Inherit(m.theme.StatusWarning)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.dialog.title),
		m.theme.Normal.Render(m.dialog.body),
		"",
		m.theme.Placeholder.Render(m.keymap.Dismiss.Help().Key+" to close"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.DialogBox.Render(content),
	)
}
