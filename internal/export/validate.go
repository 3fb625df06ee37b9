package export

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// ValidationError describes one bad transaction. Row is the CSV line number.
type ValidationError struct {
	Row         int
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("row %d [%s]: %s", e.Row, e.Field, e.Description)
}

// Validate checks the invariants every exported transaction must hold.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)

	for i, tx := range txns {
		row := i + 2

		if tx.Date.IsZero() {
			errs = append(errs, ValidationError{Row: row, Field: "date", Description: "missing date"})
		}

		if tx.Amount.IsNegative() {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "amount",
				Description: fmt.Sprintf("amount %s is negative", tx.Amount),
			})
		}
		if scaled := tx.Amount.Mul(hundred); !scaled.Equal(scaled.Floor()) {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "amount",
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", tx.Amount),
			})
		}

		if !tx.Direction.Valid() {
			errs = append(errs, ValidationError{
				Row:         row,
				Field:       "type",
				Description: fmt.Sprintf("unknown type %q", tx.Direction),
			})
		}

		if tx.Description == "" {
			errs = append(errs, ValidationError{Row: row, Field: "description", Description: "empty description"})
		}
	}
	return errs
}
