package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one recorded spending entry. Values are fixed at creation.
type Expense struct {
	Timestamp   time.Time
	Amount      decimal.Decimal
	Description string
	Category    Category
	Sequence    int // 1-based insertion index
}
