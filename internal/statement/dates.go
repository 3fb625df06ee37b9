package statement

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Candidate date substrings, tried in order.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}\s+\p{L}+\s+\d{4}`), // 31 August 2025, 31 Agustus 2025
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`),    // 31/08/2025, day first
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),        // 2025-08-31
}

// Indonesian month names and abbreviations that differ from English.
var indonesianMonths = map[string]string{
	"januari":  "January",
	"februari": "February",
	"pebruari": "February",
	"maret":    "March",
	"mei":      "May",
	"juni":     "June",
	"juli":     "July",
	"agustus":  "August",
	"oktober":  "October",
	"desember": "December",
	"peb":      "Feb",
	"agu":      "Aug",
	"agt":      "Aug",
	"okt":      "Oct",
	"des":      "Dec",
}

var errNoDate = errors.New("no date found")

// DateParser finds and parses statement dates.
type DateParser struct {
	layouts []string
}

// NewDateParser returns a parser trying layouts in order.
func NewDateParser(layouts []string) *DateParser {
	return &DateParser{layouts: layouts}
}

// Find returns the first parseable date in text and the substring it came from.
func (d *DateParser) Find(text string) (time.Time, string, error) {
	for _, re := range datePatterns {
		for _, m := range re.FindAllString(text, -1) {
			if t, err := d.Parse(m); err == nil {
				return t, m, nil
			}
		}
	}
	return time.Time{}, "", errNoDate
}

// Parse parses a single date string against the configured layouts.
func (d *DateParser) Parse(s string) (time.Time, error) {
	s = normalizeMonth(strings.Join(strings.Fields(s), " "))
	for _, layout := range d.layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: no layout matched", s)
}

// normalizeMonth swaps an Indonesian month word for its English name.
func normalizeMonth(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if en, ok := indonesianMonths[strings.ToLower(w)]; ok {
			words[i] = en
		}
	}
	return strings.Join(words, " ")
}
