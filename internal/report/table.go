package report

import (
	"strings"
	"unicode/utf8"
)

// isNumeric reports whether a cell looks like a number once separators,
// decimal points and minus signs are removed.
func isNumeric(cell string) bool {
	stripped := strings.NewReplacer(",", "", ".", "", "-", "").Replace(cell)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatASCIITable renders headers and rows as a box-drawn table. Column
// widths fit the widest cell; numeric-looking cells are right-aligned.
// An empty title is omitted.
func FormatASCIITable(headers []string, rows [][]string, title string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	sep := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-utf8.RuneCountInString(cell))
			if isNumeric(cell) {
				parts[i] = pad + cell
			} else {
				parts[i] = cell + pad
			}
		}
		return "│ " + strings.Join(parts, " │ ") + " │"
	}

	var lines []string
	if title != "" {
		lines = append(lines, title)
	}
	lines = append(lines, sep("┌", "┬", "┐"), line(headers), sep("├", "┼", "┤"))
	for _, row := range rows {
		lines = append(lines, line(row))
	}
	lines = append(lines, sep("└", "┴", "┘"))
	return strings.Join(lines, "\n")
}
