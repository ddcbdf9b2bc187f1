package chart

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable lays rows out in display-width aligned columns under headers.
// Columns listed in rightAlign are padded on the left. A nil headers slice
// renders rows only.
func FormatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	all := rows
	if len(headers) > 0 {
		all = append([][]string{headers}, rows...)
	}
	widths := columnWidths(all)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, len(all))
	for i, row := range all {
		cells := make([]string, len(widths))
		for col, width := range widths {
			var cell string
			if col < len(row) {
				cell = row[col]
			}
			cells[col] = padCell(cell, width, rightAlign[col])
		}
		lines[i] = strings.Join(cells, " ")
	}
	return lines
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for col, cell := range row {
			if col >= len(widths) {
				widths = append(widths, 0)
			}
			if w := displayWidth(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}
	return widths
}

func padCell(value string, width int, rightAlign bool) string {
	if rightAlign {
		return runewidth.FillLeft(value, width)
	}
	return runewidth.FillRight(value, width)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}
