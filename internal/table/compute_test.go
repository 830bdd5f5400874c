package table

import (
	"iter"
	"strconv"
	"testing"
)

type operator struct {
	ID       string
	Name     string
	Status   string
	BusCount int
	Note     *string
}

func (o operator) fields() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		_ = yield("id", o.ID) &&
			yield("name", o.Name) &&
			yield("status", o.Status) &&
			yield("busCount", o.BusCount) &&
			yield("note", o.Note)
	}
}

func operatorSchema() Schema[operator] {
	return Schema[operator]{
		ID:     func(o operator) string { return o.ID },
		Fields: operator.fields,
		Columns: []Column[operator]{
			{Key: "name", Header: "Name", Cell: func(o operator) string { return o.Name }, Sortable: true},
			{Key: "status", Header: "Status", Cell: func(o operator) string { return o.Status }, Sortable: true},
			{Key: "busCount", Header: "Buses", Cell: func(o operator) string { return strconv.Itoa(o.BusCount) }, Sortable: true},
			{Key: "actions", Header: "Actions"},
		},
	}
}

func busOperators() []operator {
	return []operator{
		{ID: "1", Name: "Global Tours", Status: "approved", BusCount: 12},
		{ID: "2", Name: "City Express", Status: "pending", BusCount: 8},
		{ID: "3", Name: "Royal Travels", Status: "submitted", BusCount: 15},
		{ID: "4", Name: "Highway Express", Status: "rejected", BusCount: 0},
		{ID: "5", Name: "Mountain Movers", Status: "approved", BusCount: 7},
	}
}

func names(rows []operator) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterEmptyTermKeepsOrder(t *testing.T) {
	records := busOperators()
	got := Filter(records, operatorSchema(), "")
	if !equalStrings(names(got), names(records)) {
		t.Fatalf("empty search reordered rows: %v", names(got))
	}
}

func TestFilterCaseInsensitive(t *testing.T) {
	records := []operator{
		{ID: "1", Name: "Mumbai Line"},
		{ID: "2", Name: "Pune Line"},
	}
	for _, term := range []string{"mumbai", "MUM", "bai li"} {
		got := Filter(records, operatorSchema(), term)
		if len(got) != 1 || got[0].ID != "1" {
			t.Errorf("term %q: got %v", term, names(got))
		}
	}
}

func TestFilterSearchesFieldsOutsideColumns(t *testing.T) {
	got := Filter(busOperators(), operatorSchema(), "5")
	// "15" bus count and id "5"
	if !equalStrings(names(got), []string{"Royal Travels", "Mountain Movers"}) {
		t.Fatalf("got %v", names(got))
	}
}

func TestFilterSkipsNilFields(t *testing.T) {
	note := "night service"
	records := []operator{
		{ID: "a", Name: "Alpha", Note: nil},
		{ID: "b", Name: "Beta", Note: &note},
	}
	if got := Filter(records, operatorSchema(), "nil"); len(got) != 0 {
		t.Fatalf("nil field matched: %v", names(got))
	}
	if got := Filter(records, operatorSchema(), "<nil>"); len(got) != 0 {
		t.Fatalf("nil field matched: %v", names(got))
	}
	if got := Filter(records, operatorSchema(), "alpha"); len(got) != 1 {
		t.Fatalf("record with nil field should still match on other fields, got %v", names(got))
	}
	if got := Filter(records, operatorSchema(), "night"); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("got %v", names(got))
	}
}

func TestSortNullsLastBothDirections(t *testing.T) {
	five, one := "5", "1"
	records := []operator{
		{ID: "five", Note: &five},
		{ID: "null"},
		{ID: "one", Note: &one},
	}
	for _, dir := range []Direction{Asc, Desc} {
		rows := append([]operator(nil), records...)
		Sort(rows, operatorSchema(), "note", dir)
		if rows[len(rows)-1].ID != "null" {
			t.Errorf("%s: null record not last: %v", dir, rows)
		}
	}
	rows := append([]operator(nil), records...)
	Sort(rows, operatorSchema(), "note", Asc)
	if rows[0].ID != "one" || rows[1].ID != "five" {
		t.Fatalf("ascending order wrong: %v", rows)
	}
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	rows := busOperators()
	Sort(rows, operatorSchema(), "duration", Asc)
	if !equalStrings(names(rows), names(busOperators())) {
		t.Fatalf("unknown key reordered rows: %v", names(rows))
	}
}

func TestSortTiesKeepOriginalOrder(t *testing.T) {
	rows := busOperators()
	Sort(rows, operatorSchema(), "status", Asc)
	want := []string{"Global Tours", "Mountain Movers", "City Express", "Highway Express", "Royal Travels"}
	if !equalStrings(names(rows), want) {
		t.Fatalf("got %v want %v", names(rows), want)
	}
}

func TestPaginationInvariant(t *testing.T) {
	records := make([]operator, 0, 23)
	for i := range 23 {
		records = append(records, operator{ID: strconv.Itoa(i), Name: "op"})
	}
	for _, r := range []int{1, 5, 10, 23, 50} {
		wantPages := (23 + r - 1) / r
		for page := 1; page <= wantPages; page++ {
			res := ComputeVisibleRows(records, operatorSchema(), State{Page: page, RowsPerPage: r, SortDirection: Asc})
			if res.PageCount != wantPages {
				t.Fatalf("rows=%d: page count %d want %d", r, res.PageCount, wantPages)
			}
			wantLen := max(0, min(r, 23-(page-1)*r))
			if len(res.Rows) != wantLen {
				t.Fatalf("rows=%d page=%d: len %d want %d", r, page, len(res.Rows), wantLen)
			}
		}
	}
}

func TestEmptyResultPageCount(t *testing.T) {
	res := ComputeVisibleRows(busOperators(), operatorSchema(), State{Page: 1, RowsPerPage: 10, Search: "zzz"})
	if res.PageCount != 0 || res.DisplayPageCount() != 1 {
		t.Fatalf("page count %d display %d", res.PageCount, res.DisplayPageCount())
	}
	if res.ShowingFrom() != 0 || res.ShowingTo() != 0 {
		t.Fatalf("showing %d-%d", res.ShowingFrom(), res.ShowingTo())
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	records := busOperators()
	_ = ComputeVisibleRows(records, operatorSchema(), State{Page: 1, RowsPerPage: 10, SortColumn: "busCount", SortDirection: Desc})
	if !equalStrings(names(records), names(busOperators())) {
		t.Fatalf("input reordered: %v", names(records))
	}
}

func TestCompareLooseCoercion(t *testing.T) {
	cases := []struct {
		a, b any
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{int64(3), 3.0, 0},
		{"b", "a", 1},
		{"10", 9, 1},
		{"abc", 1, -1},
		{1, "abc", -1},
		{true, false, 1},
		{nil, nil, 0},
		{nil, 0, 1},
		{0, nil, -1},
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b, Asc); got != c.want {
			t.Errorf("Compare(%v, %v) = %d want %d", c.a, c.b, got, c.want)
		}
	}
	if got := Compare(nil, 1, Desc); got != 1 {
		t.Errorf("nil must stay last when descending, got %d", got)
	}
}

func TestStringify(t *testing.T) {
	cases := map[string]any{
		"12":    12,
		"12.5":  12.5,
		"true":  true,
		"a,b":   []string{"a", "b"},
		"plain": "plain",
	}
	for want, v := range cases {
		got, ok := Stringify(v)
		if !ok || got != want {
			t.Errorf("Stringify(%v) = %q, %v", v, got, ok)
		}
	}
	var missing *string
	if _, ok := Stringify(missing); ok {
		t.Errorf("nil pointer should not stringify")
	}
}
