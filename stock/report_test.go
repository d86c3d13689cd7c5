package stock

import (
	"reflect"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestMakeReport(t *testing.T) {
	expected := Report{
		Items: []Item{
			{
				Sno:           "1",
				UID:           "WIDGET-001",
				Bush:          "B12",
				Group:         "ELEC",
				LastIORaised:  "2026-07-01",
				Category:      "Electrical",
				StockLocation: "Aisle 4",
			},
			{
				Sno:           "4",
				UID:           "GASKET-110",
				Bush:          "B07",
				Group:         "MECH",
				LastIORaised:  "2026-05-20",
				Category:      "Mechanical",
				StockLocation: "Aisle 9",
			},
		},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"HEXA WAREHOUSE STOCK"},
			{},
			{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Min Lvl", "Opn. Bal"},
			{"1", "WIDGET-001", "B12", "ELEC", "2026-07-01", "Electrical", "Aisle 4", "10", "4"},
			{"2", "WIDGET-002", "B12", "ELEC", "2026-06-15", "Electrical", "Aisle 4", "5", "12"},
			{"3", "SPROCKET-07", "B03", "MECH", "2026-04-02", "Mechanical", "Aisle 9", "8", "n/a"},
			{"4", "GASKET-110", "B07", "MECH", "2026-05-20", "Mechanical", "Aisle 9", "2,000", "1,500"},
			{"", "", "", "", "", "", "", "", ""},
		},
	}

	report, err := MakeReport(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeReport (%v)", err)
	}

	if report == nil {
		t.Fatalf("MakeReport returned %v", report)
	}

	if !reflect.DeepEqual(*report, expected) {
		t.Errorf("Incorrect report\n   expected: %v\n   got:      %v\n", expected, *report)
	}
}

func TestMakeReportWithOutOfOrderColumns(t *testing.T) {
	expected := Report{
		Items: []Item{
			{
				Sno:           "1",
				UID:           "WIDGET-001",
				Bush:          "B12",
				Group:         "ELEC",
				LastIORaised:  "2026-07-01",
				Category:      "Electrical",
				StockLocation: "Aisle 4",
			},
		},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Opn. Bal", "Min Lvl", "Stock Location", "Category", "Last I.O Raised", "Group", "Bush", "UID", "Sno."},
			{"4", "10", "Aisle 4", "Electrical", "2026-07-01", "ELEC", "B12", "WIDGET-001", "1"},
			{"12", "5", "Aisle 4", "Electrical", "2026-06-15", "ELEC", "B12", "WIDGET-002", "2"},
		},
	}

	report, err := MakeReport(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeReport (%v)", err)
	}

	if !reflect.DeepEqual(*report, expected) {
		t.Errorf("Incorrect report\n   expected: %v\n   got:      %v\n", expected, *report)
	}
}

func TestMakeReportWithNumericCells(t *testing.T) {
	expected := Report{
		Items: []Item{
			{
				Sno:           "1",
				UID:           "WIDGET-001",
				Bush:          "B12",
				Group:         "ELEC",
				LastIORaised:  "2026-07-01",
				Category:      "Electrical",
				StockLocation: "Aisle 4",
			},
		},
	}

	data := sheets.ValueRange{
		Values: [][]any{
			{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Min Lvl", "Opn. Bal"},
			{1.0, "WIDGET-001", "B12", "ELEC", "2026-07-01", "Electrical", "Aisle 4", 10.0, 4.0},
			{2.0, "WIDGET-002", "B12", "ELEC", "2026-06-15", "Electrical", "Aisle 4", 5.0, 12.5},
		},
	}

	report, err := MakeReport(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeReport (%v)", err)
	}

	if !reflect.DeepEqual(*report, expected) {
		t.Errorf("Incorrect report\n   expected: %v\n   got:      %v\n", expected, *report)
	}
}

func TestMakeReportWithNoReplenishmentItems(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Min Lvl", "Opn. Bal"},
			{"1", "WIDGET-001", "B12", "ELEC", "2026-07-01", "Electrical", "Aisle 4", "10", "10"},
			{"2", "WIDGET-002", "B12", "ELEC", "2026-06-15", "Electrical", "Aisle 4", "5", "12"},
		},
	}

	report, err := MakeReport(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeReport (%v)", err)
	}

	if len(report.Items) != 0 {
		t.Errorf("Expected empty report, got %v items", len(report.Items))
	}
}

func TestMakeReportWithEmptySheet(t *testing.T) {
	data := sheets.ValueRange{}

	if _, err := MakeReport(&data); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestMakeReportWithoutHeaderRow(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"HEXA WAREHOUSE STOCK"},
			{"a", "b", "c"},
		},
	}

	if _, err := MakeReport(&data); err == nil {
		t.Fatalf("Expected error return for missing header row, got %v", err)
	}
}

func TestMakeReportWithMissingColumn(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Opn. Bal"},
			{"1", "WIDGET-001", "B12", "ELEC", "2026-07-01", "Electrical", "Aisle 4", "4"},
		},
	}

	if _, err := MakeReport(&data); err == nil {
		t.Fatalf("Expected error return for missing 'min lvl' column, got %v", err)
	}
}

func TestMakeReportWithShortRows(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			{"Sno.", "UID", "Bush", "Group", "Last I.O Raised", "Category", "Stock Location", "Min Lvl", "Opn. Bal"},
			{"1", "WIDGET-001"},
			{"2", "WIDGET-002", "B12", "ELEC", "2026-06-15", "Electrical", "Aisle 4", "5", "1"},
		},
	}

	report, err := MakeReport(&data)
	if err != nil {
		t.Fatalf("Unexpected error returned from MakeReport (%v)", err)
	}

	if len(report.Items) != 1 || report.Items[0].UID != "WIDGET-002" {
		t.Errorf("Incorrect report for sheet with short rows\n   got: %v\n", report.Items)
	}
}
