package ledger

import "errors"

// Validation errors returned by Add. The ledger is unchanged whenever one of
// these is returned.
var (
	ErrEmptyField      = errors.New("empty field")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownCategory = errors.New("unknown category")
)

// ErrNoExpenses is returned by Summarize when nothing has been recorded.
var ErrNoExpenses = errors.New("no expenses recorded")

// IsValidationError reports whether err came from input validation in Add.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrUnknownCategory)
}
