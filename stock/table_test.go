package stock

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	report := Report{
		Items: []Item{
			{"1", "WIDGET-001", "B12", "ELEC", "2026-07-01", "Electrical", "Aisle 4"},
		},
	}

	var f strings.Builder

	report.Render(&f)

	for _, v := range []string{"ITEMS NEEDING REPLENISHMENT", "Total items: 1", "WIDGET-001", "Aisle 4"} {
		if !strings.Contains(f.String(), v) {
			t.Errorf("Rendered table missing '%s'\n   got:\n%s\n", v, f.String())
		}
	}
}

func TestRenderWithEmptyReport(t *testing.T) {
	report := Report{
		Items: []Item{},
	}

	var f strings.Builder

	report.Render(&f)

	if !strings.Contains(f.String(), "No items found that need replenishment.") {
		t.Errorf("Incorrect banner for empty report\n   got:\n%s\n", f.String())
	}

	if strings.Contains(f.String(), "ITEMS NEEDING REPLENISHMENT") {
		t.Errorf("Empty report rendered a table\n   got:\n%s\n", f.String())
	}
}
