// Package writer exports canonical transaction tables to delimited text.
// Export sits on top of the core contract: the processing result itself is
// the in-memory table.
package writer

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/insightdelivered/statement-normalizer/internal/models"
)

// exportDateLayout is how parsed dates render in the export.
const exportDateLayout = "02/01/2006"

// csvRow is the flat export shape; gocsv derives the header row from it.
type csvRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Type        string `csv:"type"`
	SourceFile  string `csv:"source_file"`
}

// Write exports the table as CSV. Unparsed dates render as the raw matched
// text so nothing silently disappears from the export.
func Write(out io.Writer, table models.Table) error {
	rows := make([]csvRow, 0, len(table))
	for _, txn := range table {
		date := txn.RawDate
		if txn.HasDate() {
			date = txn.Date.Format(exportDateLayout)
		}
		rows = append(rows, csvRow{
			Date:        date,
			Description: txn.Description,
			Amount:      txn.Amount.StringFixed(2),
			Type:        string(txn.Type),
			SourceFile:  txn.SourceFile,
		})
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// WriteFile exports the table to a CSV file at path.
func WriteFile(path string, table models.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()
	return Write(f, table)
}
