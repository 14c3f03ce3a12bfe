package ledger

import (
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the aggregate for one category.
type CategoryTotal struct {
	Total    decimal.Decimal
	Percent  decimal.Decimal // share of the grand total, 0-100, unrounded
	Category model.Category
}

// Summary is the per-category breakdown of a non-empty ledger.
type Summary struct {
	Total decimal.Decimal
	Lines []CategoryTotal // first-seen order
}

// Summarize groups expenses by category. Categories appear in the order they
// were first recorded; categories with no expenses are omitted. An empty
// ledger returns ErrNoExpenses.
func (l *Ledger) Summarize() (Summary, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return Summary{}, ErrNoExpenses
	}

	pos := make(map[model.Category]int)
	var lines []CategoryTotal
	total := decimal.Zero

	for _, e := range l.entries {
		i, seen := pos[e.Category]
		if !seen {
			i = len(lines)
			pos[e.Category] = i
			lines = append(lines, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		lines[i].Total = lines[i].Total.Add(e.Amount)
		total = total.Add(e.Amount)
	}

	for i := range lines {
		lines[i].Percent = lines[i].Total.Mul(hundred).Div(total)
	}

	return Summary{Total: total, Lines: lines}, nil
}

// Line returns the aggregate for c, if any expense used it.
func (s Summary) Line(c model.Category) (CategoryTotal, bool) {
	for _, line := range s.Lines {
		if line.Category == c {
			return line, true
		}
	}
	return CategoryTotal{}, false
}
