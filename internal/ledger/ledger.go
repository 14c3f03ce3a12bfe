// Package ledger records expenses in memory and computes running totals and
// per-category summaries.
package ledger

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/expense-tally/internal/common"
	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/shopspring/decimal"
)

// Ledger is an append-only, insertion-ordered collection of expenses.
type Ledger struct {
	now        func() time.Time
	categories model.CategorySet
	entries    []model.Expense
	mu         sync.RWMutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the clock used to timestamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates an empty ledger that accepts only the given categories.
func New(categories model.CategorySet, opts ...Option) *Ledger {
	l := &Ledger{
		categories: categories,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Categories returns the configured category set.
func (l *Ledger) Categories() model.CategorySet {
	return l.categories
}

// Add validates the raw form input and appends a new expense.
//
// Checks run in order: empty description or amount text (ErrEmptyField),
// amount not a positive number (ErrInvalidAmount), category outside the
// configured set (ErrUnknownCategory). On any error the ledger is unchanged.
func (l *Ledger) Add(description, amountText, category string) (model.Expense, error) {
	description = strings.TrimSpace(description)
	amountText = strings.TrimSpace(amountText)

	if description == "" {
		return model.Expense{}, fmt.Errorf("%w: description", ErrEmptyField)
	}
	if amountText == "" {
		return model.Expense{}, fmt.Errorf("%w: amount", ErrEmptyField)
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		return model.Expense{}, err
	}

	cat, ok := l.categories.Lookup(category)
	if !ok {
		return model.Expense{}, fmt.Errorf("%w: %q (expected one of %s)",
			ErrUnknownCategory, category, strings.Join(l.categories.Strings(), ", "))
	}

	l.mu.Lock()
	expense := model.Expense{
		Sequence:    len(l.entries) + 1,
		Description: description,
		Amount:      amount,
		Category:    cat,
		Timestamp:   l.now(),
	}
	l.entries = append(l.entries, expense)
	l.mu.Unlock()

	common.LogDebug("expense recorded", common.Fields{
		"sequence": expense.Sequence,
		"category": expense.Category.String(),
		"amount":   expense.Amount.String(),
	})

	return expense, nil
}

// List returns every expense, oldest first.
func (l *Ledger) List() []model.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Expense, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Total returns the sum of all amounts.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, e := range l.entries {
		total = total.Add(e.Amount)
	}
	return total
}
