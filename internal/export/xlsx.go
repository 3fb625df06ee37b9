package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mutasi-dev/mutasi/internal/model"
)

// SheetName is the worksheet the XLSX exporter writes to.
const SheetName = "Transactions"

// XLSXExporter writes the CSV columns to a single worksheet, with amounts
// stored as numbers.
type XLSXExporter struct {
	DateFormat string
}

// Format returns the exporter name.
func (e *XLSXExporter) Format() string { return "xlsx" }

// Extension returns the file extension without a dot.
func (e *XLSXExporter) Extension() string { return "xlsx" }

// Export writes the workbook to w.
func (e *XLSXExporter) Export(w io.Writer, txns []model.Transaction) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, 0, 5)
	for _, h := range strings.Split(Header, ",") {
		header = append(header, h)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	layout := dateFormat(e.DateFormat)
	for i, tx := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		row := []interface{}{
			tx.Date.Format(layout),
			tx.Description,
			tx.Amount.InexactFloat64(),
			string(tx.Direction),
			tx.RawText,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "E", "E", 60); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}
