package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyPress creates a key press message for testing.
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// KeyLeft creates a left arrow key message.
func KeyLeft() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyLeft}
}

// KeyRight creates a right arrow key message.
func KeyRight() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRight}
}

// KeyEnter creates an enter key message.
func KeyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// KeyEsc creates an escape key message.
func KeyEsc() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// KeyTab creates a tab key message.
func KeyTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

// KeyShiftTab creates a shift+tab key message.
func KeyShiftTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyShiftTab}
}

// KeyBackspace creates a backspace key message.
func KeyBackspace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}

// KeyCtrl creates a ctrl key combination message for a letter a-z.
func KeyCtrl(key rune) tea.KeyMsg {
	if key >= 'A' && key <= 'Z' {
		key += 'a' - 'A'
	}
	if key < 'a' || key > 'z' {
		panic("KeyCtrl requires a letter")
	}
	// tea.KeyCtrlA is 1, matching the ASCII control code.
	return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(key-'a')}
}

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}

// InputSequence represents a sequence of inputs for testing.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence creates a new input sequence.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Add adds an input to the sequence.
func (s *InputSequence) Add(inputs ...tea.Msg) *InputSequence {
	s.inputs = append(s.inputs, inputs...)
	return s
}

// Type adds a string of characters to the sequence, one key per rune.
func (s *InputSequence) Type(text string) *InputSequence {
	for _, r := range text {
		s.inputs = append(s.inputs, tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
	return s
}

// Apply feeds every input to model in order. Returned commands are dropped.
func (s *InputSequence) Apply(model tea.Model) tea.Model {
	result := model
	for _, input := range s.inputs {
		result, _ = result.Update(input)
	}
	return result
}

// Messages returns the queued inputs.
func (s *InputSequence) Messages() []tea.Msg {
	return s.inputs
}
