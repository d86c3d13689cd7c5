package stock

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the report as a comma separated file with the standard
// report header.
func (r *Report) WriteCSV(f io.Writer) error {
	w := csv.NewWriter(f)

	w.Write(Header)
	for _, item := range r.Items {
		w.Write(item.record())
	}

	w.Flush()

	return w.Error()
}
