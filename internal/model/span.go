package model

import (
	"fmt"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Black is the default PDF fill color.
var Black = RGB{}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Span is a run of text drawn with one position and one fill color.
type Span struct {
	Text  string
	X     float64 // from the left edge of the page
	Y     float64 // from the top edge of the page
	Size  float64 // font size in points, after scaling
	Color RGB
	Page  int
}

// Page holds the spans extracted from one PDF page, in content-stream order.
type Page struct {
	Number int
	Width  float64
	Height float64
	Spans  []Span
}

// Row is a set of spans sharing a baseline.
type Row struct {
	Page  int
	Y     float64
	Spans []Span // left to right
	Color RGB    // color that decided the row's direction, if any
}

// Text joins the row's spans with single spaces.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.Spans))
	for _, s := range r.Spans {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
