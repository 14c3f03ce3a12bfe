package tui

import (
	"strings"

	"github.com/Veraticus/expense-tally/internal/common"
	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/Veraticus/expense-tally/internal/tui/themes"
	"github.com/Veraticus/expense-tally/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current state of the TUI.
type State int

const (
	StateForm State = iota
	StateDialog
)

// Focus identifies the active form field.
type Focus int

const (
	FocusDescription Focus = iota
	FocusAmount
	FocusCategory
	focusCount
)

// DialogKind selects the dialog styling.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
	DialogSummary
)

type dialog struct {
	title string
	body  string
	kind  DialogKind
}

// fixed rows around the expense list: title, three fields, help, list
// heading, list border, total and spacing.
const chromeHeight = 14

// Model holds the form state.
type Model struct {
	theme         themes.Theme
	ledger        *ledger.Ledger
	formatter     viewmodel.Formatter
	config        Config
	dialog        dialog
	keymap        KeyMap
	help          help.Model
	categories    []model.Category
	description   textinput.Model
	amount        textinput.Model
	list          viewport.Model
	categoryIndex int
	width         int
	height        int
	focus         Focus
	state         State
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	description := textinput.New()
	description.Placeholder = "e.g. Grocery shopping"
	description.CharLimit = 200
	description.Prompt = ""

	amount := textinput.New()
	amount.Placeholder = "e.g. 25.50"
	amount.CharLimit = 20
	amount.Prompt = ""

	keymap := DefaultKeyMap()
	keymap.Clear.SetEnabled(cfg.ClearFields)

	m := Model{
		theme:       cfg.Theme,
		ledger:      cfg.Ledger,
		formatter:   cfg.Formatter,
		config:      cfg,
		keymap:      keymap,
		help:        help.New(),
		categories:  cfg.Ledger.Categories().All(),
		description: description,
		amount:      amount,
		list:        viewport.New(cfg.Width, listHeight(cfg.Height)),
		width:       cfg.Width,
		height:      cfg.Height,
		state:       StateForm,
	}
	m.setFocus(FocusDescription)
	m.handleResize()

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m.quit()
		}
		if m.state == StateDialog {
			return m.updateDialog(msg)
		}
		return m.updateForm(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Dismiss) {
		m.state = StateForm
		m.dialog = dialog{}
		return m, m.setFocus(m.focus)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m.quit()

	case key.Matches(msg, m.keymap.Add):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keymap.Summary):
		m.showSummary()
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		return m, m.clearFields()

	case key.Matches(msg, m.keymap.NextField):
		return m, m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)

	case key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if m.focus == FocusCategory {
		if len(m.categories) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keymap.PrevOption):
			m.categoryIndex = (m.categoryIndex + len(m.categories) - 1) % len(m.categories)
		case key.Matches(msg, m.keymap.NextOption):
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused text field.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusDescription:
		m.description, cmd = m.description.Update(msg)
	case FocusAmount:
		m.amount, cmd = m.amount.Update(msg)
	}
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	common.LogInfo("expense form closed", common.Fields{
		"expenses": m.ledger.Len(),
	})
	return m, tea.Quit
}

// submit records the current form values.
func (m *Model) submit() {
	category := ""
	if len(m.categories) > 0 {
		category = m.categories[m.categoryIndex].String()
	}

	_, err := m.ledger.Add(m.description.Value(), m.amount.Value(), category)
	if err != nil {
		common.LogDebug("expense rejected", common.Fields{"reason": err.Error()})
		title, body := viewmodel.ValidationMessage(err)
		m.openDialog(DialogWarning, title, body)
		return
	}

	m.refreshList()
	m.clearFields()
	m.openDialog(DialogInfo, viewmodel.SuccessTitle, viewmodel.SuccessMessage)
}

func (m *Model) showSummary() {
	view, err := m.formatter.Summary(m.ledger)
	if err != nil {
		common.LogError(err, "failed to summarize expenses", nil)
		m.openDialog(DialogWarning, "Error", err.Error())
		return
	}
	m.openDialog(DialogSummary, view.Title(), view.Text())
}

// clearFields empties both inputs and resets the category selector.
func (m *Model) clearFields() tea.Cmd {
	m.description.Reset()
	m.amount.Reset()
	m.categoryIndex = 0
	return m.setFocus(FocusDescription)
}

func (m *Model) openDialog(kind DialogKind, title, body string) {
	m.description.Blur()
	m.amount.Blur()
	m.dialog = dialog{kind: kind, title: title, body: body}
	m.state = StateDialog
}

// setFocus moves the cursor to f.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.description.Blur()
	m.amount.Blur()

	switch f {
	case FocusDescription:
		return m.description.Focus()
	case FocusAmount:
		return m.amount.Focus()
	}
	return nil
}

func (m *Model) refreshList() {
	lines := m.formatter.EntryLines(m.ledger.List())
	if len(lines) == 0 {
		m.list.SetContent(m.theme.Placeholder.Render("No expenses recorded yet."))
		return
	}
	for i, line := range lines {
		lines[i] = viewmodel.TruncateString(line, m.list.Width)
	}
	m.list.SetContent(strings.Join(lines, "\n"))
	m.list.GotoBottom()
}

func (m *Model) handleResize() {
	m.list.Width = max(m.width-4, 10)
	m.list.Height = listHeight(m.height)
	m.help.Width = m.width
	m.description.Width = max(m.width-20, 10)
	m.amount.Width = max(m.width-20, 10)
	m.refreshList()
}

func listHeight(total int) int {
	return max(total-chromeHeight, 3)
}

// selectedCategory returns the category under the selector.
func (m Model) selectedCategory() model.Category {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.categoryIndex]
}
