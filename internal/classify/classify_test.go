package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mutasi-dev/mutasi/internal/config"
	"github.com/mutasi-dev/mutasi/internal/model"
)

var (
	red   = model.RGB{R: 220, G: 13, B: 38}
	green = model.RGB{R: 6, G: 140, B: 120}
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		c    model.RGB
		want bool
	}{
		{"exact", red, true},
		{"within tolerance", model.RGB{R: 239, G: 0, B: 57}, true},
		{"at tolerance is excluded", model.RGB{R: 240, G: 13, B: 38}, false},
		{"one channel off", model.RGB{R: 220, G: 60, B: 38}, false},
		{"black", model.Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.c, red, 20))
		})
	}
}

func TestColor(t *testing.T) {
	c := New(config.Default())

	assert.Equal(t, model.DirectionOutbound, c.Color(red))
	assert.Equal(t, model.DirectionInbound, c.Color(green))
	assert.Equal(t, model.DirectionInbound, c.Color(model.RGB{R: 10, G: 150, B: 110}))
	assert.Equal(t, model.DirectionUnknown, c.Color(model.Black))
	assert.Equal(t, model.DirectionUnknown, c.Color(model.RGB{R: 0, G: 0, B: 255}))
}

func TestRow_AmountSpanDecides(t *testing.T) {
	c := New(config.Default())
	row := model.Row{Spans: []model.Span{
		{Text: "TRF BCA", Color: green},
		{Text: "Rp 50,000.00", Color: red},
		{Text: "Rp 1,000,000.00", Color: model.Black},
	}}

	dir, tagged := c.Row(row)
	assert.Equal(t, model.DirectionOutbound, dir)
	assert.Equal(t, red, tagged.Color)
}

func TestRow_SkipsUncoloredAmountSpan(t *testing.T) {
	c := New(config.Default())
	row := model.Row{Spans: []model.Span{
		{Text: "Rp 1,000,000.00", Color: model.Black},
		{Text: "Rp 50,000.00", Color: green},
	}}

	dir, _ := c.Row(row)
	assert.Equal(t, model.DirectionInbound, dir)
}

func TestRow_FallsBackToLastSpan(t *testing.T) {
	c := New(config.Default())
	row := model.Row{Spans: []model.Span{
		{Text: "Rp", Color: model.Black},
		{Text: "50,000.00", Color: green},
	}}

	dir, tagged := c.Row(row)
	assert.Equal(t, model.DirectionInbound, dir)
	assert.Equal(t, green, tagged.Color)
}

func TestRow_Unknown(t *testing.T) {
	c := New(config.Default())
	row := model.Row{Spans: []model.Span{{Text: "Rp 50,000.00", Color: model.Black}}}

	dir, tagged := c.Row(row)
	assert.Equal(t, model.DirectionUnknown, dir)
	assert.Equal(t, model.Black, tagged.Color)

	dir, _ = c.Row(model.Row{})
	assert.Equal(t, model.DirectionUnknown, dir)
}
