// Package viewmodel turns ledger values into display strings shared by the
// terminal form and the CLI report.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/Veraticus/expense-tally/internal/ledger"
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultTimestampFormat matches config.DefaultTimestampFormat.
const DefaultTimestampFormat = "02/01/2006 15:04"

// Formatter renders expenses with a fixed currency and timestamp layout.
type Formatter struct {
	Currency        string
	TimestampFormat string
}

// NewFormatter returns a formatter, filling in defaults for empty values.
func NewFormatter(currency, timestampFormat string) Formatter {
	if currency == "" {
		currency = ledger.DefaultCurrency
	}
	if timestampFormat == "" {
		timestampFormat = DefaultTimestampFormat
	}
	return Formatter{Currency: currency, TimestampFormat: timestampFormat}
}

// Amount renders a currency amount with two decimals.
func (f Formatter) Amount(d decimal.Decimal) string {
	return ledger.FormatAmount(d, f.Currency)
}

// EntryLine renders one list row: "<time> - <description> - <amount> (<category>)".
func (f Formatter) EntryLine(e model.Expense) string {
	return fmt.Sprintf("%s - %s - %s (%s)",
		e.Timestamp.Format(f.TimestampFormat),
		SanitizeForDisplay(e.Description),
		f.Amount(e.Amount),
		e.Category,
	)
}

// EntryLines renders every expense in order.
func (f Formatter) EntryLines(expenses []model.Expense) []string {
	lines := make([]string, len(expenses))
	for i, e := range expenses {
		lines[i] = f.EntryLine(e)
	}
	return lines
}

// TotalLine renders the running total.
func (f Formatter) TotalLine(total decimal.Decimal) string {
	return "Total spent: " + f.Amount(total)
}

// Report bundles everything shown for a ledger.
type Report struct {
	Total   string
	Entries []string
	Summary SummaryView
}

// Report builds the full display for l.
func (f Formatter) Report(l *ledger.Ledger) (Report, error) {
	summary, err := f.Summary(l)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Entries: f.EntryLines(l.List()),
		Total:   f.TotalLine(l.Total()),
		Summary: summary,
	}, nil
}

// Markdown renders the report as a markdown document.
func (r Report) Markdown() string {
	var b strings.Builder

	b.WriteString("# Expenses\n\n")
	if len(r.Entries) == 0 {
		b.WriteString("_" + EmptySummaryMessage + "_\n")
		return b.String()
	}
	for _, entry := range r.Entries {
		b.WriteString("- " + escapeMarkdown(entry) + "\n")
	}
	b.WriteString("\n**" + r.Total + "**\n\n")

	b.WriteString("## " + SummaryTitle + "\n\n")
	b.WriteString("| Category | Amount | Share |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, line := range r.Summary.Lines {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escapeMarkdown(line.Category), line.Amount, line.Percent)
	}

	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
