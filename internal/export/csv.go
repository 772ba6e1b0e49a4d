package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSink writes a table to a single CSV file, header row first. Fields
// containing commas or quotes get standard CSV quoting; nothing else is
// escaped.
type CSVSink struct {
	Path string
}

func (c *CSVSink) WriteTable(name string, columns []string, rows [][]string) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", c.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("error writing header to %s: %w", c.Path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("error writing %s rows to %s: %w", name, c.Path, err)
	}
	return nil
}
