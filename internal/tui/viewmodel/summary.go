package viewmodel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/expense-tally/internal/ledger"
)

// Dialog titles and fixed messages.
const (
	SummaryTitle        = "Summary by category"
	EmptySummaryTitle   = "Summary"
	EmptySummaryMessage = "No expenses recorded."
	SuccessTitle        = "Success"
	SuccessMessage      = "Expense added successfully."
)

// SummaryView is the display form of ledger.Summary.
type SummaryView struct {
	Total string
	Lines []SummaryLine
	Empty bool
}

// SummaryLine is one category row.
type SummaryLine struct {
	Category string
	Amount   string
	Percent  string
}

// String renders "Category: $x.xx (y.y%)".
func (s SummaryLine) String() string {
	return fmt.Sprintf("%s: %s (%s)", s.Category, s.Amount, s.Percent)
}

// Summary summarizes l. An empty ledger yields a view with Empty set rather
// than an error.
func (f Formatter) Summary(l *ledger.Ledger) (SummaryView, error) {
	summary, err := l.Summarize()
	if errors.Is(err, ledger.ErrNoExpenses) {
		return SummaryView{Empty: true}, nil
	}
	if err != nil {
		return SummaryView{}, err
	}

	view := SummaryView{
		Total: f.TotalLine(summary.Total),
		Lines: make([]SummaryLine, len(summary.Lines)),
	}
	for i, line := range summary.Lines {
		view.Lines[i] = SummaryLine{
			Category: line.Category.String(),
			Amount:   f.Amount(line.Total),
			Percent:  ledger.FormatPercent(line.Percent),
		}
	}
	return view, nil
}

// Title returns the dialog title.
func (s SummaryView) Title() string {
	if s.Empty {
		return EmptySummaryTitle
	}
	return SummaryTitle
}

// Text returns the dialog body.
func (s SummaryView) Text() string {
	if s.Empty {
		return EmptySummaryMessage
	}

	lines := make([]string, 0, len(s.Lines)+2)
	for _, line := range s.Lines {
		lines = append(lines, line.String())
	}
	lines = append(lines, "", s.Total)
	return strings.Join(lines, "\n")
}

// ValidationMessage maps an Add error to a dialog title and body.
func ValidationMessage(err error) (title, body string) {
	switch {
	case errors.Is(err, ledger.ErrEmptyField):
		return "Incomplete fields", "Please fill in all fields."
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Invalid amount", "Please enter a valid amount greater than zero."
	case errors.Is(err, ledger.ErrUnknownCategory):
		return "Unknown category", "Please choose one of the listed categories."
	default:
		return "Error", err.Error()
	}
}
