package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "two decimals", input: "25.50", want: "25.5"},
		{name: "integer", input: "7", want: "7"},
		{name: "surrounding spaces", input: "  3.10 ", want: "3.1"},
		{name: "exponent", input: "1e2", want: "100"},
		{name: "tiny positive", input: "0.001", want: "0.001"},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "letters", input: "twelve", wantErr: true},
		{name: "comma separator", input: "12,50", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "largest accepted", input: "999999999999.99", want: "999999999999.99"},
		{name: "largest exponent", input: "1e11", want: "100000000000"},
		{name: "finest accepted scale", input: "0.0000000001", want: "0.0000000001"},
		{name: "too many integer digits", input: "1000000000000", wantErr: true},
		{name: "past int64 cents", input: "92233720368547758.08", wantErr: true},
		{name: "twenty digits", input: "100000000000000000000", wantErr: true},
		{name: "large exponent", input: "1e5000", wantErr: true},
		{name: "huge exponent", input: "1e2000000000", wantErr: true},
		{name: "huge negative exponent", input: "1e-2000000000", wantErr: true},
		{name: "too many decimal places", input: "0.00000000001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		currency string
		want     string
	}{
		{name: "default currency", input: "16.5", currency: "", want: "$16.50"},
		{name: "rounds half up", input: "10.005", currency: "USD", want: "$10.01"},
		{name: "rounds down", input: "10.004", currency: "USD", want: "$10.00"},
		{name: "thousands", input: "1234.5", currency: "USD", want: "$1,234.50"},
		{name: "lowercase code", input: "3", currency: "eur", want: "\u20ac3.00"},
		{name: "unknown code", input: "3", currency: "ZZZ", want: "$3.00"},
		{name: "no minor unit", input: "1234.5", currency: "JPY", want: "\u00a51,235"},
		{name: "negative", input: "-5", currency: "USD", want: "-$5.00"},
		{name: "negative rounds to zero", input: "-0.001", currency: "USD", want: "$0.00"},
		{name: "past int64 cents", input: "92233720368547758.08", currency: "USD", want: "$92,233,720,368,547,758.08"},
		{name: "twenty digits", input: "100000000000000000000", currency: "USD", want: "$100,000,000,000,000,000,000.00"},
		{name: "exponent form", input: "1e15", currency: "USD", want: "$1,000,000,000,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.input), tt.currency))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "87.9%", FormatPercent(decimal.RequireFromString("87.87878787")))
	assert.Equal(t, "12.2%", FormatPercent(decimal.RequireFromString("12.15")))
	assert.Equal(t, "50.0%", FormatPercent(decimal.NewFromInt(50)))
}

func TestKnownCurrency(t *testing.T) {
	assert.True(t, KnownCurrency("USD"))
	assert.True(t, KnownCurrency("eur"))
	assert.False(t, KnownCurrency("ZZZ"))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol(""))
	assert.Equal(t, "\u20ac", CurrencySymbol("eur"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands("0", ","))
	assert.Equal(t, "999", groupThousands("999", ","))
	assert.Equal(t, "1,000", groupThousands("1000", ","))
	assert.Equal(t, "123,456", groupThousands("123456", ","))
	assert.Equal(t, "1.234.567", groupThousands("1234567", "."))
	assert.Equal(t, "1234567", groupThousands("1234567", ""))
}
