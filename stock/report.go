// Package stock identifies the items in an inventory worksheet that need
// replenishment i.e. the rows where the opening balance has dropped below the
// minimum stock level.
package stock

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Header is the report column order, for both the terminal table and the
// exported CSV.
var Header = []string{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location"}

// Item is a single stock line needing replenishment. The opening balance and
// minimum level are filter criteria only and are not part of the report.
type Item struct {
	Sno           string
	UID           string
	Bush          string
	Group         string
	LastIORaised  string
	Category      string
	StockLocation string
}

type Report struct {
	Items []Item
}

// MakeReport locates the worksheet header row, maps the columns and returns
// the report of items where 'OPN. BAL' is less than 'MIN LVL'. Rows with
// unparseable balance or minimum level values are skipped, as are empty rows.
func MakeReport(data *sheets.ValueRange) (*Report, error) {
	if len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	ix, header, err := findHeaderRow(data.Values)
	if err != nil {
		return nil, err
	}

	index, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	items := []Item{}
	for _, row := range data.Values[ix+1:] {
		if empty(row) {
			continue
		}

		balance, ok := safeFloat(cell(row, index["opnbal"]))
		if !ok {
			continue
		}

		minimum, ok := safeFloat(cell(row, index["minlvl"]))
		if !ok {
			continue
		}

		if balance < minimum {
			items = append(items, Item{
				Sno:           clean(cell(row, index["sno"])),
				UID:           clean(cell(row, index["uid"])),
				Bush:          clean(cell(row, index["bush"])),
				Group:         clean(cell(row, index["group"])),
				LastIORaised:  clean(cell(row, index["lastioraised"])),
				Category:      clean(cell(row, index["category"])),
				StockLocation: clean(cell(row, index["stocklocation"])),
			})
		}
	}

	return &Report{
		Items: items,
	}, nil
}

func (item Item) record() []string {
	return []string{
		item.Sno,
		item.UID,
		item.Bush,
		item.Group,
		item.LastIORaised,
		item.Category,
		item.StockLocation,
	}
}

func empty(row []any) bool {
	for _, v := range row {
		if clean(v) != "" {
			return false
		}
	}

	return true
}
