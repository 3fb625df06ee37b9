// Package classify decides a transaction's direction from the color its
// amount is printed in.
package classify

import (
	"strings"

	"github.com/mutasi-dev/mutasi/internal/config"
	"github.com/mutasi-dev/mutasi/internal/model"
)

// Classifier maps text colors to directions.
type Classifier struct {
	Outbound  model.RGB
	Inbound   model.RGB
	Tolerance int    // per channel, exclusive
	Marker    string // currency marker identifying the amount span
}

// New builds a Classifier from a layout profile.
func New(cfg *config.Config) *Classifier {
	return &Classifier{
		Outbound:  cfg.Colors.Outbound.RGB(),
		Inbound:   cfg.Colors.Inbound.RGB(),
		Tolerance: cfg.Colors.Tolerance,
		Marker:    cfg.Currency.Marker,
	}
}

// Match reports whether every channel of c is strictly within tol of target.
func Match(c, target model.RGB, tol int) bool {
	return absDiff(c.R, target.R) < tol &&
		absDiff(c.G, target.G) < tol &&
		absDiff(c.B, target.B) < tol
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Color returns the direction for a single color, or DirectionUnknown.
func (c *Classifier) Color(rgb model.RGB) model.Direction {
	switch {
	case Match(rgb, c.Outbound, c.Tolerance):
		return model.DirectionOutbound
	case Match(rgb, c.Inbound, c.Tolerance):
		return model.DirectionInbound
	}
	return model.DirectionUnknown
}

// Row classifies a row and returns it with its color tag set.
//
// The first amount span with a recognised color decides. Otherwise the last
// span's color is tried.
func (c *Classifier) Row(row model.Row) (model.Direction, model.Row) {
	for _, s := range row.Spans {
		if c.Marker != "" && !strings.Contains(s.Text, c.Marker) {
			continue
		}
		if d := c.Color(s.Color); d != model.DirectionUnknown {
			row.Color = s.Color
			return d, row
		}
	}

	if n := len(row.Spans); n > 0 {
		last := row.Spans[n-1].Color
		if d := c.Color(last); d != model.DirectionUnknown {
			row.Color = last
			return d, row
		}
	}
	return model.DirectionUnknown, row
}
