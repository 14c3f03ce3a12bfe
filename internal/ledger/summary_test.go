package ledger

import (
	"testing"

	"github.com/Veraticus/expense-tally/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_SummarizeEmpty(t *testing.T) {
	l := newTestLedger(t)

	summary, err := l.Summarize()
	require.ErrorIs(t, err, ErrNoExpenses)
	assert.Empty(t, summary.Lines)

	_, err = l.Add("", "1", "Food")
	require.Error(t, err)

	_, err = l.Summarize()
	assert.ErrorIs(t, err, ErrNoExpenses, "failed adds leave the ledger empty")
}

func TestLedger_SummarizeScenario(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Add("Coffee", "4.50", "Food")
	require.NoError(t, err)
	_, err = l.Add("Bus", "2.00", "Transport")
	require.NoError(t, err)
	_, err = l.Add("Lunch", "10.00", "Food")
	require.NoError(t, err)

	summary, err := l.Summarize()
	require.NoError(t, err)

	assert.Equal(t, "$16.50", FormatAmount(summary.Total, ""))
	require.Len(t, summary.Lines, 2)

	food := summary.Lines[0]
	assert.Equal(t, model.CategoryFood, food.Category)
	assert.Equal(t, "$14.50", FormatAmount(food.Total, "USD"))
	assert.Equal(t, "87.9%", FormatPercent(food.Percent))

	transport := summary.Lines[1]
	assert.Equal(t, model.CategoryTransport, transport.Category)
	assert.Equal(t, "$2.00", FormatAmount(transport.Total, "USD"))
	assert.Equal(t, "12.1%", FormatPercent(transport.Percent))

	_, ok := summary.Line(model.CategoryHealth)
	assert.False(t, ok, "unrecorded categories are not zero-filled")
}

func TestLedger_SummarizeFirstSeenOrder(t *testing.T) {
	l := newTestLedger(t)

	for _, c := range []string{"Health", "Food", "Health", "Other", "Food"} {
		_, err := l.Add("Item", "3", c)
		require.NoError(t, err)
	}

	summary, err := l.Summarize()
	require.NoError(t, err)

	var got []model.Category
	for _, line := range summary.Lines {
		got = append(got, line.Category)
	}
	assert.Equal(t, []model.Category{model.CategoryHealth, model.CategoryFood, model.CategoryOther}, got)
}

func TestLedger_SummarizeTotalsAndPercentages(t *testing.T) {
	l := newTestLedger(t)

	amounts := map[string][]string{
		"Food":      {"3.33", "1.01"},
		"Transport": {"7.77"},
		"Education": {"0.01", "120"},
		"Other":     {"9.99"},
	}
	sum := decimal.Zero
	for _, c := range []string{"Food", "Transport", "Education", "Other"} {
		for _, a := range amounts[c] {
			_, err := l.Add("Item", a, c)
			require.NoError(t, err)
			sum = sum.Add(decimal.RequireFromString(a))
		}
	}

	summary, err := l.Summarize()
	require.NoError(t, err)
	assert.True(t, sum.Equal(summary.Total))

	totals := decimal.Zero
	percents := decimal.Zero
	for _, line := range summary.Lines {
		totals = totals.Add(line.Total)
		percents = percents.Add(line.Percent)
	}
	assert.True(t, sum.Equal(totals))

	diff := percents.Sub(decimal.NewFromInt(100)).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.000001")), "percentages sum to %s", percents)
}

func TestLedger_SummarizeSingleCategory(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Add("Book", "25", "Education")
	require.NoError(t, err)

	summary, err := l.Summarize()
	require.NoError(t, err)
	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "100.0%", FormatPercent(summary.Lines[0].Percent))
}
