package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNoAmount   = errors.New("no amount found")
	errTooPrecise = errors.New("more than 2 decimal places")
	whitespace    = regexp.MustCompile(`\s+`)
)

// AmountParser reads "Rp 1,234,567.89" style amounts.
type AmountParser struct {
	marker string
	re     *regexp.Regexp
}

// NewAmountParser builds a parser for amounts prefixed by marker.
func NewAmountParser(marker string) *AmountParser {
	return &AmountParser{
		marker: marker,
		re:     regexp.MustCompile(regexp.QuoteMeta(marker) + `\s*([\d,]+\.?\d*)`),
	}
}

// HasMarker reports whether text mentions the currency marker at all.
func (a *AmountParser) HasMarker(text string) bool {
	return strings.Contains(text, a.marker)
}

// Find parses the first amount in text. Thousands separators are commas.
func (a *AmountParser) Find(text string) (decimal.Decimal, error) {
	m := a.re.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, errNoAmount
	}
	digits := strings.ReplaceAll(m[1], ",", "")
	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", m[0], err)
	}
	if !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", m[0], errTooPrecise)
	}
	return amount, nil
}

// Strip removes every amount from text.
func (a *AmountParser) Strip(text string) string {
	return a.re.ReplaceAllString(text, "")
}

// cleanDescription removes amounts and the given date substring, collapses
// whitespace and trims separator punctuation.
func (a *AmountParser) cleanDescription(text, date string) string {
	cleaned := a.Strip(text)
	if date != "" {
		cleaned = strings.Replace(cleaned, date, "", 1)
	}
	cleaned = whitespace.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, " -.:,")
}
