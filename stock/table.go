package stock

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes the report to f as a bordered grid table. An empty report
// renders as a banner instead of an empty table.
func (r *Report) Render(f io.Writer) {
	if len(r.Items) == 0 {
		fmt.Fprintln(f)
		fmt.Fprintln(f, "No items found that need replenishment.")
		fmt.Fprintln(f, "All items have an opening balance at or above the minimum level.")
		return
	}

	fmt.Fprintln(f)
	fmt.Fprintf(f, "ITEMS NEEDING REPLENISHMENT (OPN. BAL < MIN LVL)\n")
	fmt.Fprintf(f, "Total items: %d\n", len(r.Items))
	fmt.Fprintln(f)

	table := tablewriter.NewWriter(f)
	table.SetHeader(Header)
	table.SetRowLine(true)

	for _, item := range r.Items {
		table.Append(item.record())
	}

	table.Render()
}
