package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travelconsole/internal/domain"
	"travelconsole/internal/domain/models"
	"travelconsole/internal/repositories"
	"travelconsole/internal/table"
)

func newCatalog() *Catalog {
	return New(repositories.NewMemoryStore(), nil)
}

func TestCatalogListsEveryTable(t *testing.T) {
	want := []string{
		"bus-operators", "bus-bookings", "hotel-managers", "hotel-bookings",
		"taxi-drivers", "taxi-bookings", "bike-riders", "bike-bookings",
		"customers", "customer-bookings", "users", "coupons", "commissions",
		"wallet-transactions", "wallet-rules", "notifications",
	}
	infos := newCatalog().Infos()
	if len(infos) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(infos))
	}
	for i, info := range infos {
		if info.Slug != want[i] {
			t.Errorf("table %d: got %q want %q", i, info.Slug, want[i])
		}
		if !info.Options.AllowCSVExport || !info.Options.AllowPDFExport {
			t.Errorf("%s: exports not allowed", info.Slug)
		}
		last := info.Columns[len(info.Columns)-1]
		if last.Key != "actions" || last.Sortable {
			t.Errorf("%s: last column %+v", info.Slug, last)
		}
	}
}

func TestUnknownTableSuggestsClosest(t *testing.T) {
	_, err := newCatalog().Table("bus-operater")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	var nf domain.NotFoundError
	if !asNotFound(err, &nf) || nf.Err == nil || !strings.Contains(nf.Err.Error(), "bus-operators") {
		t.Fatalf("expected suggestion, got %v", err)
	}
	if s := newCatalog().Suggest("zzzzzzzzzzzzzzzzzzzzzz"); s != "" {
		t.Fatalf("unexpected suggestion %q", s)
	}
}

func TestQueryBusOperatorsByBusCount(t *testing.T) {
	tbl, err := newCatalog().Table("bus-operators")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	page, err := tbl.Query(context.Background(), table.State{Page: 1, RowsPerPage: 10, SortColumn: "busCount", SortDirection: table.Asc})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{"Highway Express", "Deluxe Travels", "Mountain Movers", "City Express", "Global Tours", "Royal Travels"}
	if len(page.Rows) != len(want) {
		t.Fatalf("rows %d", len(page.Rows))
	}
	for i, row := range page.Rows {
		op := row.Record.(models.BusOperator)
		if op.Name != want[i] {
			t.Fatalf("row %d: got %q want %q", i, op.Name, want[i])
		}
	}
	first := page.Rows[0]
	if first.Detail != "/bus-management/operators/4" {
		t.Fatalf("detail %q", first.Detail)
	}
	if first.Cells[3] != "Rejected" || first.Cells[4] != "0" {
		t.Fatalf("cells %v", first.Cells)
	}
}

func TestQueryRejectsUnofferedRows(t *testing.T) {
	tbl, _ := newCatalog().Table("users")
	_, err := tbl.Query(context.Background(), table.State{Page: 1, RowsPerPage: 7})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCustomRowsPerPageOptions(t *testing.T) {
	c := New(repositories.NewMemoryStore(), []int{2, 4})
	tbl, _ := c.Table("bus-operators")
	page, err := tbl.Query(context.Background(), table.State{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if page.State.RowsPerPage != 2 || len(page.Rows) != 2 || page.PageCount != 3 {
		t.Fatalf("page %+v", page)
	}
	if page.ShowingFrom != 1 || page.ShowingTo != 2 || page.TotalMatched != 6 {
		t.Fatalf("showing %d-%d of %d", page.ShowingFrom, page.ShowingTo, page.TotalMatched)
	}
}

func TestSheetExportsFullMatchedSet(t *testing.T) {
	c := New(repositories.NewMemoryStore(), []int{2})
	tbl, _ := c.Table("coupons")
	sheet, err := tbl.Sheet(context.Background(), table.State{Page: 1, Search: "services"})
	if err != nil {
		t.Fatalf("sheet: %v", err)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("expected both All Services coupons, got %d", len(sheet.Rows))
	}
	if len(sheet.Headers) != 6 || sheet.Headers[3] != "Discount" {
		t.Fatalf("headers %v", sheet.Headers)
	}
	if sheet.Rows[0][3] != "20%" || sheet.Rows[0][4] != "2023-10-01 to 2023-12-31" {
		t.Fatalf("row %v", sheet.Rows[0])
	}
}

func TestSessionControlOperations(t *testing.T) {
	tbl, _ := newCatalog().Table("commissions")
	s, err := tbl.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.ToggleSort("actions") {
		t.Fatalf("actions should not be sortable")
	}
	s.ToggleSort("commissionValue")
	s.ToggleSort("commissionValue")
	page := s.Page()
	if page.Rows[0].Cells[2] != "₹100" {
		t.Fatalf("expected fixed 100 first, got %v", page.Rows[0].Cells)
	}
	if page.Rows[0].Cells[4] != "Ongoing" {
		t.Fatalf("open ended rule should read Ongoing, got %q", page.Rows[0].Cells[4])
	}
	s.SetSearchTerm("taxi")
	if got := s.Page().TotalMatched; got != 1 {
		t.Fatalf("matched %d", got)
	}
	if err := s.SetRowsPerPage(25); err != nil {
		t.Fatalf("rows: %v", err)
	}
	if s.State().Page != 1 || s.State().RowsPerPage != 25 {
		t.Fatalf("state %+v", s.State())
	}
}

func TestCustomerBookingDetails(t *testing.T) {
	tbl, _ := newCatalog().Table("customer-bookings")
	page, err := tbl.Query(context.Background(), table.State{Page: 1, Search: "luxe"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(page.Rows) != 1 {
		t.Fatalf("rows %d", len(page.Rows))
	}
	row := page.Rows[0]
	if row.Cells[1] != "Hotel" || row.Cells[3] != "Luxe Grand Hotel" || row.Detail != "/hotel-management/bookings/HTL001" {
		t.Fatalf("row %+v", row)
	}
}

func TestLookup(t *testing.T) {
	tbl, _ := newCatalog().Table("notifications")
	rec, err := tbl.Lookup(context.Background(), "4")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec.(models.Notification).Title != "Diwali Special Offer" {
		t.Fatalf("record %+v", rec)
	}
	if _, err := tbl.Lookup(context.Background(), "404"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func asNotFound(err error, target *domain.NotFoundError) bool {
	return errors.As(err, target)
}

func TestRestrictExports(t *testing.T) {
	c := newCatalog()
	c.RestrictExports(nil)
	if o := c.Infos()[0].Options; !o.AllowCSVExport || !o.AllowPDFExport {
		t.Fatalf("empty list should change nothing: %+v", o)
	}
	c.RestrictExports([]string{"csv"})
	for _, info := range c.Infos() {
		if !info.Options.AllowCSVExport || info.Options.AllowPDFExport {
			t.Fatalf("%s: options %+v", info.Slug, info.Options)
		}
	}
	tbl, err := c.Table("coupons")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	p, err := tbl.Query(context.Background(), table.State{Page: 1})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if p.Table.Options.AllowPDFExport {
		t.Fatalf("page info still offers pdf")
	}
}
