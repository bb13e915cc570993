package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"regexp"
)

// Document is the finished export for one report date. Building it from an
// ExportUnit and rendering it are both pure; writing the response is the
// caller's concern.
type Document struct {
	Filename string
	Title    string
	Unit     ExportUnit
}

var filenameSeparators = regexp.MustCompile(`[/,: ]+`)

// ExportFileName derives a deterministic filename from the report prefix and
// date string, with separator characters normalized to underscores.
func ExportFileName(prefix, date string) string {
	return fmt.Sprintf("%s_%s.csv", prefix, filenameSeparators.ReplaceAllString(date, "_"))
}

// BuildDocument wraps an assembled export unit into a named document.
func BuildDocument(title, prefix string, unit ExportUnit) Document {
	return Document{
		Filename: ExportFileName(prefix, unit.Date),
		Title:    title,
		Unit:     unit,
	}
}

// RenderCSV serializes the document: a title and date line, the line-item
// table, then one line per computed grand total.
func RenderCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{doc.Title}); err != nil {
		return nil, fmt.Errorf("writing export title: %w", err)
	}
	if err := w.Write([]string{"Date", doc.Unit.Date}); err != nil {
		return nil, fmt.Errorf("writing export date: %w", err)
	}
	if err := w.Write(doc.Unit.Header); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, row := range doc.Unit.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing export row: %w", err)
		}
	}
	for _, total := range doc.Unit.Totals {
		if err := w.Write([]string{total.Label, total.Amount.StringFixed(2)}); err != nil {
			return nil, fmt.Errorf("writing export total: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), nil
}
