package table

import (
	"strconv"
	"testing"

	"travelconsole/internal/domain"
)

func TestNewViewDefaults(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{10, 25, 50}})
	s := v.State()
	if s.Page != 1 || s.RowsPerPage != 10 || s.Search != "" || s.SortColumn != "" || s.SortDirection != Asc {
		t.Fatalf("unexpected default state: %+v", s)
	}
	if got := len(v.Result().Rows); got != 5 {
		t.Fatalf("visible rows %d", got)
	}
}

func TestToggleSortBusCount(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{10, 25, 50}})

	if !v.ToggleSort("busCount") {
		t.Fatalf("busCount should be sortable")
	}
	want := []string{"Highway Express", "Mountain Movers", "City Express", "Global Tours", "Royal Travels"}
	if got := names(v.Result().Rows); !equalStrings(got, want) {
		t.Fatalf("ascending: got %v want %v", got, want)
	}

	v.ToggleSort("busCount")
	want = []string{"Royal Travels", "Global Tours", "City Express", "Mountain Movers", "Highway Express"}
	if got := names(v.Result().Rows); !equalStrings(got, want) {
		t.Fatalf("descending: got %v want %v", got, want)
	}
	if v.State().SortDirection != Desc {
		t.Fatalf("direction %s", v.State().SortDirection)
	}
}

func TestToggleSortTwiceRestoresDirection(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{})
	v.ToggleSort("name")
	first := v.State().SortDirection
	v.ToggleSort("name")
	v.ToggleSort("name")
	if v.State().SortDirection != first {
		t.Fatalf("direction %s want %s", v.State().SortDirection, first)
	}
	v.ToggleSort("status")
	if v.State().SortColumn != "status" || v.State().SortDirection != Asc {
		t.Fatalf("new column should sort ascending: %+v", v.State())
	}
}

func TestToggleSortRefusesUnsortableColumn(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{})
	if v.ToggleSort("actions") {
		t.Fatalf("actions column should not sort")
	}
	if v.State().SortColumn != "" {
		t.Fatalf("state changed: %+v", v.State())
	}
}

func TestSearchResetsPageOnShrink(t *testing.T) {
	records := make([]operator, 0, 50)
	for i := range 50 {
		name := "Fleet " + strconv.Itoa(i)
		if i < 3 {
			name = "Coastal " + strconv.Itoa(i)
		}
		records = append(records, operator{ID: strconv.Itoa(i), Name: name})
	}
	v := NewView(operatorSchema(), records, Options{RowsPerPageOptions: []int{10, 25, 50}})
	v.SetPage(5)
	if v.State().Page != 5 {
		t.Fatalf("page %d", v.State().Page)
	}

	v.SetSearchTerm("coastal")
	if v.State().Page != 1 {
		t.Fatalf("page %d after search", v.State().Page)
	}
	rows := v.Result().Rows
	if len(rows) == 0 || len(rows) > 3 {
		t.Fatalf("visible rows %d", len(rows))
	}
}

func TestSetPageClamps(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{2}})
	v.SetPage(99)
	if v.State().Page != 3 {
		t.Fatalf("page %d want 3", v.State().Page)
	}
	v.SetPage(-4)
	if v.State().Page != 1 {
		t.Fatalf("page %d want 1", v.State().Page)
	}
	v.SetSearchTerm("nothing matches this")
	v.SetPage(2)
	if v.State().Page != 1 {
		t.Fatalf("empty result must stay on page 1, got %d", v.State().Page)
	}
}

func TestSetRowsPerPage(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{2, 4}})
	v.SetPage(3)
	if err := v.SetRowsPerPage(4); err != nil {
		t.Fatalf("SetRowsPerPage: %v", err)
	}
	if v.State().Page != 1 || v.State().RowsPerPage != 4 {
		t.Fatalf("state %+v", v.State())
	}
	err := v.SetRowsPerPage(7)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetRecordsClampsPage(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{2}})
	v.SetPage(3)
	v.SetRecords(busOperators()[:2])
	if v.State().Page != 1 {
		t.Fatalf("page %d", v.State().Page)
	}
}

func TestRestore(t *testing.T) {
	v := NewView(operatorSchema(), busOperators(), Options{RowsPerPageOptions: []int{2, 10}})
	err := v.Restore(State{Page: 9, RowsPerPage: 2, Search: "express", SortColumn: "name", SortDirection: Desc})
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if v.State().Page != 1 {
		t.Fatalf("page %d", v.State().Page)
	}
	if got := names(v.Result().Rows); !equalStrings(got, []string{"Highway Express", "City Express"}) {
		t.Fatalf("rows %v", got)
	}
	if err := v.Restore(State{Page: 1, RowsPerPage: 3}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := v.Restore(State{Page: 1, SortColumn: "actions"}); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if v.State().SortColumn != "" || v.State().RowsPerPage != 2 {
		t.Fatalf("state %+v", v.State())
	}
}

func TestNewSheetSkipsActionColumn(t *testing.T) {
	sheet := NewSheet("bus-operators", "Bus Operators", operatorSchema().Columns, busOperators()[:1])
	if len(sheet.Headers) != 3 {
		t.Fatalf("headers %v", sheet.Headers)
	}
	if sheet.Rows[0][0] != "Global Tours" || sheet.Rows[0][2] != "12" {
		t.Fatalf("row %v", sheet.Rows[0])
	}
}
