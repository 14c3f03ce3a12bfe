package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	set, err := model.PresetCategories(model.PresetStandard)
	require.NoError(t, err)

	base := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}
	return New(set, WithClock(clock))
}

func TestLedger_Add(t *testing.T) {
	tests := []struct {
		wantErr     error
		name        string
		description string
		amount      string
		category    string
		wantDesc    string
		wantAmount  string
	}{
		{
			name:        "valid expense",
			description: "Coffee",
			amount:      "4.50",
			category:    "Food",
			wantDesc:    "Coffee",
			wantAmount:  "4.5",
		},
		{
			name:        "trims input",
			description: "  Bus ticket ",
			amount:      " 2 ",
			category:    "Transport",
			wantDesc:    "Bus ticket",
			wantAmount:  "2",
		},
		{
			name:        "keeps extra precision",
			description: "Fuel",
			amount:      "10.005",
			category:    "Transport",
			wantDesc:    "Fuel",
			wantAmount:  "10.005",
		},
		{name: "empty description", description: "", amount: "5.00", category: "Food", wantErr: ErrEmptyField},
		{name: "whitespace description", description: "   ", amount: "5.00", category: "Food", wantErr: ErrEmptyField},
		{name: "empty amount", description: "Snack", amount: "", category: "Food", wantErr: ErrEmptyField},
		{name: "both empty", description: "", amount: "abc", category: "Food", wantErr: ErrEmptyField},
		{name: "negative amount", description: "Snack", amount: "-3", category: "Food", wantErr: ErrInvalidAmount},
		{name: "zero amount", description: "Snack", amount: "0", category: "Food", wantErr: ErrInvalidAmount},
		{name: "zero with decimals", description: "Snack", amount: "0.00", category: "Food", wantErr: ErrInvalidAmount},
		{name: "not a number", description: "Snack", amount: "abc", category: "Food", wantErr: ErrInvalidAmount},
		{name: "NaN", description: "Snack", amount: "NaN", category: "Food", wantErr: ErrInvalidAmount},
		{name: "unknown category", description: "Movie", amount: "12", category: "Entertainment", wantErr: ErrUnknownCategory},
		{name: "empty category", description: "Movie", amount: "12", category: "", wantErr: ErrUnknownCategory},
		{name: "invalid amount wins over category", description: "Movie", amount: "-1", category: "Nope", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)

			got, err := l.Add(tt.description, tt.amount, tt.category)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
				assert.Equal(t, 0, l.Len())
				assert.Empty(t, l.List())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.Equal(t, tt.wantAmount, got.Amount.String())
			assert.Equal(t, model.Category(tt.category), got.Category)
			assert.Equal(t, 1, got.Sequence)
			assert.False(t, got.Timestamp.IsZero())
			assert.Equal(t, 1, l.Len())
		})
	}
}

func TestLedger_ListPreservesInsertionOrder(t *testing.T) {
	l := newTestLedger(t)

	inputs := []struct {
		desc, amount, category string
	}{
		{"Coffee", "4.50", "Food"},
		{"Bus", "2.00", "Transport"},
		{"Bad", "-1", "Food"},
		{"Lunch", "10.00", "Food"},
		{"", "3", "Health"},
		{"Pharmacy", "7.25", "Health"},
	}

	var want []string
	for _, in := range inputs {
		if _, err := l.Add(in.desc, in.amount, in.category); err == nil {
			want = append(want, in.desc)
		}
	}

	list := l.List()
	require.Len(t, list, 4)
	for i, e := range list {
		assert.Equal(t, want[i], e.Description)
		assert.Equal(t, i+1, e.Sequence)
		if i > 0 {
			assert.True(t, e.Timestamp.After(list[i-1].Timestamp))
		}
	}
}

func TestLedger_ListReturnsCopy(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add("Coffee", "4.50", "Food")
	require.NoError(t, err)

	list := l.List()
	list[0].Description = "Tea"

	assert.Equal(t, "Coffee", l.List()[0].Description)
}

func TestLedger_Total(t *testing.T) {
	l := newTestLedger(t)
	assert.True(t, l.Total().IsZero())

	for _, amount := range []string{"4.50", "2.00", "10.00"} {
		_, err := l.Add("Item", amount, "Food")
		require.NoError(t, err)
	}

	assert.True(t, decimal.RequireFromString("16.50").Equal(l.Total()))
}

func TestLedger_UnknownCategoryListsChoices(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Add("Movie", "12", "Cinema")
	require.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), `"Cinema"`)
	assert.Contains(t, err.Error(), "Food, Transport, Health, Education, Other")
}

func TestLedger_RejectsOversizedAmounts(t *testing.T) {
	l := newTestLedger(t)

	for _, amount := range []string{"100000000000000000000", "92233720368547758.08", "1e5000", "1e2000000000"} {
		_, err := l.Add("House", amount, "Other")
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
	assert.Equal(t, 0, l.Len())

	for i := 0; i < 3; i++ {
		_, err := l.Add("House", "999999999999.99", "Other")
		require.NoError(t, err)
	}
	assert.Equal(t, "$2,999,999,999,999.97", FormatAmount(l.Total(), "USD"))
}

func TestLedger_WithClock(t *testing.T) {
	set, err := model.NewCategorySet("Food")
	require.NoError(t, err)

	fixed := time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)
	l := New(set, WithClock(func() time.Time { return fixed }), WithClock(nil))

	e, err := l.Add("Bread", "1.20", "Food")
	require.NoError(t, err)
	assert.Equal(t, fixed, e.Timestamp)
}

func TestLedger_ConcurrentAdds(t *testing.T) {
	l := newTestLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Add("Item", "1", "Other")
			_ = l.Total()
		}()
	}
	wg.Wait()

	list := l.List()
	require.Len(t, list, 50)
	for i, e := range list {
		assert.Equal(t, i+1, e.Sequence)
	}
}
