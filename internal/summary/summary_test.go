package summary

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mutasi-dev/mutasi/internal/model"
)

func tx(amount string, dir model.Direction, desc string) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		Direction:   dir,
	}
}

func TestSummarize(t *testing.T) {
	txns := []model.Transaction{
		tx("100.00", model.DirectionOutbound, "a"),
		tx("50.25", model.DirectionOutbound, "b"),
		tx("1000", model.DirectionInbound, "c"),
		tx("7", model.DirectionUnknown, "d"),
	}

	s := Summarize(txns, 2)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Outbound)
	assert.Equal(t, 1, s.Inbound)
	assert.Equal(t, 1, s.Unknown)
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, "150.25", s.OutboundSum.StringFixed(2))
	assert.Equal(t, "1000.00", s.InboundSum.StringFixed(2))
	assert.Equal(t, "849.75", s.Net.StringFixed(2))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,500.50", FormatAmount(decimal.RequireFromString("1500.5"), "USD"))
	assert.Contains(t, FormatAmount(decimal.RequireFromString("150000"), "IDR"), "Rp")
	assert.Equal(t, "12.30 XYZ", FormatAmount(decimal.RequireFromString("12.3"), "XYZ"))
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, Summarize([]model.Transaction{tx("10", model.DirectionInbound, "x")}, 0), "USD")

	out := buf.String()
	assert.Contains(t, out, "- Total transactions: 1")
	assert.Contains(t, out, "- Inbound transactions: 1 ($10.00)")
	assert.Contains(t, out, "- Outbound transactions: 0 ($0.00)")
	assert.NotContains(t, out, "Skipped")
}

func TestPreview(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 7; i++ {
		txns = append(txns, tx("1", model.DirectionOutbound, "PAY"))
	}

	var buf bytes.Buffer
	Preview(&buf, txns, 5, "USD")
	out := buf.String()
	assert.Contains(t, out, "Found 7 transactions:")
	assert.Contains(t, out, "5. 2025-08-31")
	assert.NotContains(t, out, "6. ")
	assert.Contains(t, out, "... and 2 more transactions")

	buf.Reset()
	Preview(&buf, txns, 0, "USD")
	assert.Empty(t, buf.String())
}
