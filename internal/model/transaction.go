package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether money left or entered the account.
type Direction string

const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
	DirectionUnknown  Direction = "unknown"
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionOutbound, DirectionInbound, DirectionUnknown:
		return true
	}
	return false
}

// Transaction is one parsed statement line.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // always positive, see Direction
	Direction   Direction
	RawText     string // row text as it appeared in the PDF
	Page        int    // 0 when unknown (e.g. re-imported from CSV)
}

// Signed returns the amount negated for outbound transactions.
func (t Transaction) Signed() decimal.Decimal {
	if t.Direction == DirectionOutbound {
		return t.Amount.Neg()
	}
	return t.Amount
}
