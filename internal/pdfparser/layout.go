package pdfparser

import (
	"regexp"
	"strings"

	"fjacquet/budged/internal/models"
)

var (
	columnSeparator = regexp.MustCompile(`\s{2,}`)
	leadingDate     = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}(\s|$)`)
)

// PagesFromLayoutText rebuilds one table per page from `pdftotext -layout` output.
//
// Pages are separated by form feeds. A line starting with a DD.MM.YYYY date
// opens a row whose columns are split on runs of two or more spaces into
// date, amount, description and details. Indented lines that follow are
// wrapped details and are appended to the details cell with a newline.
// Any other non-blank line becomes a noise row of its own columns, which the
// row classifier later rejects.
func PagesFromLayoutText(text string) []models.Page {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rawPages := strings.Split(text, "\f")

	pages := make([]models.Page, 0, len(rawPages))
	for i, raw := range rawPages {
		if strings.TrimSpace(raw) == "" && i == len(rawPages)-1 && i > 0 {
			break
		}
		pages = append(pages, models.Page{
			Number: i + 1,
			Tables: []models.Table{tableFromLines(strings.Split(raw, "\n"))},
		})
	}
	return pages
}

func tableFromLines(lines []string) models.Table {
	table := models.Table{}
	current := -1

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if leadingDate.MatchString(trimmed) {
			table = append(table, splitRow(trimmed))
			current = len(table) - 1
			continue
		}

		indented := line != strings.TrimLeft(line, " \t")
		if indented && current >= 0 {
			row := table[current]
			if row[3] == "" {
				row[3] = trimmed
			} else {
				row[3] += "\n" + trimmed
			}
			continue
		}

		table = append(table, models.RawRow(columnSeparator.Split(trimmed, -1)))
		current = -1
	}
	return table
}

// splitRow splits a transaction line into exactly four cells. Extra columns
// are folded into the details cell.
func splitRow(line string) models.RawRow {
	cells := columnSeparator.Split(line, -1)
	row := make(models.RawRow, 4)
	for i := 0; i < len(cells) && i < 3; i++ {
		row[i] = cells[i]
	}
	if len(cells) > 3 {
		row[3] = strings.Join(cells[3:], " ")
	}
	return row
}
