package stock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Column header search terms, in report order. Worksheet headers are matched
// case-insensitively and a term matching a substring of a header cell is
// accepted (the warehouse sheet headers carry inconsistent punctuation).
var columns = []struct {
	name  string
	terms []string
}{
	{"sno", []string{"sno", "sno."}},
	{"uid", []string{"uid"}},
	{"bush", []string{"bush"}},
	{"group", []string{"group"}},
	{"lastioraised", []string{"last i. o. raised", "last i.o raised", "last io raised"}},
	{"category", []string{"category"}},
	{"stocklocation", []string{"stock location"}},
	{"minlvl", []string{"min lvl", "min. lvl", "min lv", "min. lv", "minimum level"}},
	{"opnbal", []string{"opn. bal", "opn bal", "opening balance"}},
}

const maxHeaderRows = 10

var whitespace = regexp.MustCompile(`\s+`)

// findHeaderRow identifies the header row by looking for 'Sno' together with
// either 'UID' or 'Item Name' in the first few rows (the warehouse sheet has
// a couple of title/banner rows above the header).
func findHeaderRow(rows [][]any) (int, []any, error) {
	N := min(maxHeaderRows, len(rows))

	for i := 0; i < N; i++ {
		row := rows[i]
		if len(row) == 0 {
			continue
		}

		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprintf("%v", v)
		}

		text := strings.ToLower(strings.Join(cells, " "))
		if strings.Contains(text, "sno") && (strings.Contains(text, "uid") || strings.Contains(text, "item name")) {
			return i, row, nil
		}
	}

	return 0, nil, fmt.Errorf("unable to find header row - expected a row with 'Sno' and 'UID' columns")
}

// findColumns maps the column names to worksheet column indices.
func findColumns(header []any) (map[string]int, error) {
	index := map[string]int{}

	for _, column := range columns {
		ix, ok := findColumn(header, column.terms)
		if !ok {
			return nil, fmt.Errorf("required column '%s' not found in header row (searched for: %s)", column.name, strings.Join(column.terms, ", "))
		}

		index[column.name] = ix
	}

	return index, nil
}

func findColumn(header []any, terms []string) (int, bool) {
	for ix, v := range header {
		cell := normalise(v)
		for _, term := range terms {
			t := normalise(term)
			if cell == t || strings.Contains(cell, t) {
				return ix, true
			}
		}
	}

	return 0, false
}

// normalise lowercases a cell value, trims it and collapses internal
// whitespace for comparison.
func normalise(v any) string {
	s := strings.ToLower(strings.TrimSpace(fmt.Sprintf("%v", v)))

	return whitespace.ReplaceAllString(s, " ")
}

func clean(v any) string {
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// safeFloat converts a cell value to a float, stripping any thousands
// separators first.
func safeFloat(v any) (float64, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(fmt.Sprintf("%v", v), ",", ""))
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func cell(row []any, ix int) any {
	if ix < len(row) {
		return row[ix]
	}

	return ""
}
