package export

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// Header is the first line of every exported CSV.
const Header = "date,description,amount,type,raw_text"

// DefaultDateFormat is used when an exporter has no DateFormat.
const DefaultDateFormat = time.DateOnly

type csvRecord struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	RawText     string `csv:"raw_text"`
}

// CSVExporter writes the fixed five-column CSV.
type CSVExporter struct {
	DateFormat string
}

// Format returns the exporter name.
func (e *CSVExporter) Format() string { return "csv" }

// Extension returns the file extension without a dot.
func (e *CSVExporter) Extension() string { return "csv" }

// Export writes a header and one row per transaction.
func (e *CSVExporter) Export(w io.Writer, txns []model.Transaction) error {
	records := make([]csvRecord, 0, len(txns))
	for _, tx := range txns {
		records = append(records, marshalRecord(tx, dateFormat(e.DateFormat)))
	}
	if len(records) == 0 {
		if _, err := io.WriteString(w, Header+"\n"); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		return nil
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

func marshalRecord(tx model.Transaction, layout string) csvRecord {
	return csvRecord{
		Date:        tx.Date.Format(layout),
		Description: tx.Description,
		Amount:      tx.Amount.StringFixed(2),
		Type:        string(tx.Direction),
		RawText:     tx.RawText,
	}
}

// ReadCSV reads a CSV produced by CSVExporter back into transactions.
func ReadCSV(r io.Reader, layout string) ([]model.Transaction, error) {
	var records []csvRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	txns := make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := unmarshalRecord(rec, dateFormat(layout))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

func unmarshalRecord(rec csvRecord, layout string) (model.Transaction, error) {
	date, err := time.Parse(layout, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}

	return model.Transaction{
		Date:        date,
		Description: rec.Description,
		Amount:      amount,
		Direction:   model.Direction(rec.Type),
		RawText:     rec.RawText,
	}, nil
}

func dateFormat(layout string) string {
	if layout == "" {
		return DefaultDateFormat
	}
	return layout
}
