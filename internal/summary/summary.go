// Package summary reports what a conversion produced.
package summary

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// Summary counts and totals transactions per direction.
type Summary struct {
	Total    int
	Outbound int
	Inbound  int
	Unknown  int
	Skipped  int

	OutboundSum decimal.Decimal
	InboundSum  decimal.Decimal
	UnknownSum  decimal.Decimal
	Net         decimal.Decimal // inbound minus outbound; unknown rows are left out
}

// Summarize tallies txns. skipped is the number of dropped amount rows.
func Summarize(txns []model.Transaction, skipped int) Summary {
	s := Summary{Total: len(txns), Skipped: skipped}
	for _, tx := range txns {
		switch tx.Direction {
		case model.DirectionOutbound:
			s.Outbound++
			s.OutboundSum = s.OutboundSum.Add(tx.Amount)
		case model.DirectionInbound:
			s.Inbound++
			s.InboundSum = s.InboundSum.Add(tx.Amount)
		default:
			s.Unknown++
			s.UnknownSum = s.UnknownSum.Add(tx.Amount)
			continue
		}
		s.Net = s.Net.Add(tx.Signed())
	}
	return s
}

// FormatAmount renders amount in the currency's display format.
func FormatAmount(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}

// Print writes the summary block.
func Print(w io.Writer, s Summary, currency string) {
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "- Total transactions: %d\n", s.Total)
	fmt.Fprintf(w, "- Outbound transactions: %d (%s)\n", s.Outbound, FormatAmount(s.OutboundSum, currency))
	fmt.Fprintf(w, "- Inbound transactions: %d (%s)\n", s.Inbound, FormatAmount(s.InboundSum, currency))
	fmt.Fprintf(w, "- Unknown type: %d\n", s.Unknown)
	fmt.Fprintf(w, "- Net: %s\n", FormatAmount(s.Net, currency))
	if s.Skipped > 0 {
		fmt.Fprintf(w, "- Skipped rows: %d\n", s.Skipped)
	}
}

// Preview writes the first n transactions.
func Preview(w io.Writer, txns []model.Transaction, n int, currency string) {
	if n <= 0 || len(txns) == 0 {
		return
	}
	fmt.Fprintf(w, "Found %d transactions:\n", len(txns))
	for i, tx := range txns {
		if i == n {
			fmt.Fprintf(w, "... and %d more transactions\n", len(txns)-n)
			break
		}
		fmt.Fprintf(w, "%d. %s  %-40s %16s  %s\n",
			i+1, tx.Date.Format("2006-01-02"), tx.Description, FormatAmount(tx.Amount, currency), tx.Direction)
	}
}
