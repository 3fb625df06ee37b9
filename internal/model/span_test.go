package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#dc0d26", RGB{220, 13, 38}.Hex())
	assert.Equal(t, "#068c78", RGB{6, 140, 120}.Hex())
	assert.Equal(t, "#000000", Black.Hex())
}

func TestRowText(t *testing.T) {
	row := Row{Spans: []Span{{Text: "TRF"}, {Text: ""}, {Text: "BCA"}, {Text: "Rp 10,000.00"}}}
	assert.Equal(t, "TRF BCA Rp 10,000.00", row.Text())
	assert.Equal(t, "", Row{}.Text())
}

func TestDirectionValid(t *testing.T) {
	assert.True(t, DirectionOutbound.Valid())
	assert.True(t, DirectionInbound.Valid())
	assert.True(t, DirectionUnknown.Valid())
	assert.False(t, Direction("incoming").Valid())
	assert.False(t, Direction("").Valid())
}

func TestTransactionSigned(t *testing.T) {
	amt := decimal.RequireFromString("1500.50")
	out := Transaction{Amount: amt, Direction: DirectionOutbound}
	in := Transaction{Amount: amt, Direction: DirectionInbound}
	assert.Equal(t, "-1500.50", out.Signed().StringFixed(2))
	assert.Equal(t, "1500.50", in.Signed().StringFixed(2))
}
