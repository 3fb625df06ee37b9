// Package statement turns grouped statement rows into transactions.
//
// A PermataBank mutasi page lists a date header, then for each transaction
// an optional description line followed by a line carrying the amount in
// red (money out) or green (money in).
package statement

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mutasi-dev/mutasi/internal/classify"
	"github.com/mutasi-dev/mutasi/internal/config"
	"github.com/mutasi-dev/mutasi/internal/model"
	"github.com/mutasi-dev/mutasi/internal/rows"
)

// SkipReason says why an amount row produced no transaction.
type SkipReason string

const (
	SkipAmount      SkipReason = "unparsable amount"
	SkipDate        SkipReason = "no date"
	SkipDescription SkipReason = "no description"
)

// Skip records an amount row that was dropped.
type Skip struct {
	Page   int
	Text   string
	Reason SkipReason
}

// Result is the outcome of parsing one statement.
type Result struct {
	Transactions []model.Transaction
	Skipped      []Skip
	Rows         int // non-blank rows seen
	AmountRows   int // rows carrying the currency marker
}

// Parser holds the compiled layout rules.
type Parser struct {
	classifier   *classify.Classifier
	dates        *DateParser
	amounts      *AmountParser
	keywords     *KeywordMatcher
	rowTolerance float64
	log          logrus.FieldLogger
}

// New builds a Parser for the layout in cfg.
func New(cfg *config.Config) *Parser {
	return &Parser{
		classifier:   classify.New(cfg),
		dates:        NewDateParser(cfg.Layout.DateLayouts),
		amounts:      NewAmountParser(cfg.Currency.Marker),
		keywords:     NewKeywordMatcher(cfg.Keywords),
		rowTolerance: cfg.Layout.RowTolerance,
		log:          logrus.StandardLogger(),
	}
}

// WithLogger returns a copy of p that writes per-row debug output to l.
func (p *Parser) WithLogger(l logrus.FieldLogger) *Parser {
	c := *p
	c.log = l
	return &c
}

// Parse groups each page into rows and parses them.
func (p *Parser) Parse(pages []model.Page) Result {
	return p.ParseRows(rows.GroupPages(pages, p.rowTolerance))
}

// ParseRows runs the row state machine. The current date carries across
// pages; a pending description does not.
func (p *Parser) ParseRows(rs []model.Row) Result {
	var (
		res         Result
		currentDate time.Time
		pending     string
		page        = -1
	)

	for _, row := range rs {
		if row.Page != page {
			page = row.Page
			pending = ""
			p.log.WithField("page", page).Debug("processing page")
		}

		text := row.Text()
		if text == "" {
			continue
		}
		res.Rows++
		log := p.log.WithFields(logrus.Fields{"page": row.Page, "row": text})
		hasMarker := p.amounts.HasMarker(text)

		date, dateText, dateErr := p.dates.Find(text)
		if dateErr == nil && !hasMarker {
			currentDate = date
			pending = ""
			log.WithField("date", date.Format(time.DateOnly)).Debug("date header")
			continue
		}

		if !hasMarker {
			if p.keywords.Contains(text) {
				pending = text
				log.Debug("pending description")
			}
			continue
		}

		res.AmountRows++
		// A skipped amount row still uses up the pending description.
		skip := func(reason SkipReason) {
			res.Skipped = append(res.Skipped, Skip{Page: row.Page, Text: text, Reason: reason})
			pending = ""
			log.WithField("reason", string(reason)).Debug("skipped row")
		}

		amount, err := p.amounts.Find(text)
		if err != nil {
			skip(SkipAmount)
			continue
		}

		txDate := currentDate
		if dateErr == nil {
			txDate = date
		}
		if txDate.IsZero() {
			skip(SkipDate)
			continue
		}

		description := pending
		if description == "" {
			description = p.amounts.cleanDescription(text, dateText)
		}
		if description == "" {
			skip(SkipDescription)
			continue
		}

		direction, tagged := p.classifier.Row(row)
		tx := model.Transaction{
			Date:        txDate,
			Description: description,
			Amount:      amount,
			Direction:   direction,
			RawText:     text,
			Page:        row.Page,
		}
		res.Transactions = append(res.Transactions, tx)
		pending = ""
		log.WithFields(logrus.Fields{
			"amount":    amount.StringFixed(2),
			"direction": string(direction),
			"color":     tagged.Color.Hex(),
		}).Debug("added transaction")
	}
	return res
}
