// Package utils provides utility functions for the leaderboard-extractor
package utils

import (
	"fmt"
	"strings"
)

const maxColumnWidth = 30

// PrintRowsPreview prints the first limit rows of an extracted table with
// aligned columns, for eyeballing a run before loading the output anywhere.
func PrintRowsPreview(name string, columns []string, rows [][]string, limit int) {
	fmt.Printf("\n=========== %s (first %d of %d rows) ===========\n",
		strings.ToUpper(name), min(limit, len(rows)), len(rows))

	widths := columnWidths(columns, rows, limit)
	printRow(columns, widths)

	// Separator line under the header
	separators := make([]string, len(columns))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	printRow(separators, widths)

	for i, row := range rows {
		if i >= limit {
			break
		}
		printRow(row, widths)
	}

	fmt.Println(strings.Repeat("=", 78))
}

// columnWidths sizes each column to its widest previewed cell, capped so
// one long username cannot blow up the whole table.
func columnWidths(columns []string, rows [][]string, limit int) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for r, row := range rows {
		if r >= limit {
			break
		}
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if len(cell) > maxColumnWidth {
			cell = cell[:maxColumnWidth-3] + "..."
		}
		if i < len(widths) {
			cell = fmt.Sprintf("%-*s", widths[i], cell)
		}
		parts[i] = cell
	}
	fmt.Println(strings.Join(parts, " | "))
}
