package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// sheetToTSV writes a retrieved worksheet range as-is to a TSV file. Cell
// values are stringified and trimmed but otherwise unvalidated - the range is
// whatever the user asked for.
func sheetToTSV(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("empty sheet/range")
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, row := range data.Values {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strings.TrimSpace(fmt.Sprintf("%v", v))
		}

		w.Write(record)
	}

	w.Flush()

	return w.Error()
}
