package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVRenderer writes a Document as CSV: a short preamble with the title,
// generation date, and record count, then the table.
type CSVRenderer struct {
	W io.Writer
}

func (r CSVRenderer) Render(doc Document) error {
	w := csv.NewWriter(r.W)

	preamble := [][]string{
		{doc.Title},
		{fmt.Sprintf("Generated on: %s", doc.GeneratedAt.Format("2006-01-02"))},
		{fmt.Sprintf("Total Records: %d", doc.TotalRecords)},
	}
	for _, line := range preamble {
		if err := w.Write(line); err != nil {
			return fmt.Errorf("write preamble: %w", err)
		}
	}

	if err := w.Write(doc.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range doc.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
