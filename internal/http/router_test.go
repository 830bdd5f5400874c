package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "travelconsole/internal/config"
	"travelconsole/internal/repositories"

	"github.com/gin-gonic/gin"
)

func testConfig() intconfig.Config {
	return intconfig.Config{
		CORS:   intconfig.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Data:   intconfig.DataConfig{Source: intconfig.SourceMemory},
		Table:  intconfig.TableConfig{RowsPerPageOptions: []int{10, 25, 50}},
		Export: intconfig.ExportConfig{PDFOrientation: "L", Formats: []string{"csv", "pdf"}},
	}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return routerWith(t, testConfig())
}

func routerWith(t *testing.T, cfg intconfig.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(cfg, repositories.NewMemoryStore())
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

type errorBody struct {
	Code      string            `json:"code"`
	Error     string            `json:"error"`
	RequestID string            `json:"request_id"`
	Details   map[string]string `json:"details"`
}

func TestHealthSetsRequestID(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "trace-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "trace-1" {
		t.Fatalf("request id %q", got)
	}
}

func TestTablePageSortedDescending(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/bus-operators?sort=busCount&dir=desc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var page struct {
		Rows []struct {
			ID     string   `json:"id"`
			Cells  []string `json:"cells"`
			Detail string   `json:"detail"`
		} `json:"rows"`
		TotalMatched     int `json:"totalMatched"`
		DisplayPageCount int `json:"displayPageCount"`
		State            struct {
			SortColumn    string `json:"sortColumn"`
			SortDirection string `json:"sortDirection"`
			RowsPerPage   int    `json:"rowsPerPage"`
		} `json:"state"`
	}
	decode(t, w, &page)
	if page.TotalMatched != 6 || len(page.Rows) != 6 {
		t.Fatalf("matched %d rows %d", page.TotalMatched, len(page.Rows))
	}
	if page.Rows[0].Cells[0] != "Royal Travels" || page.Rows[5].Cells[0] != "Highway Express" {
		t.Fatalf("order %v ... %v", page.Rows[0].Cells, page.Rows[5].Cells)
	}
	if page.Rows[0].Detail != "/bus-management/operators/3" {
		t.Fatalf("detail %q", page.Rows[0].Detail)
	}
	if page.State.SortColumn != "busCount" || page.State.SortDirection != "desc" || page.State.RowsPerPage != 10 {
		t.Fatalf("state %+v", page.State)
	}
}

func TestTablePageSearchAndPaging(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/bus-operators?q=EXPRESS&page=4", "")
	var page struct {
		Page         int `json:"page"`
		TotalMatched int `json:"totalMatched"`
		ShowingFrom  int `json:"showingFrom"`
		ShowingTo    int `json:"showingTo"`
	}
	decode(t, w, &page)
	if page.Page != 1 || page.TotalMatched != 2 || page.ShowingFrom != 1 || page.ShowingTo != 2 {
		t.Fatalf("page %+v", page)
	}
}

func TestTablePageRejectsBadState(t *testing.T) {
	r := testRouter(t)
	for _, target := range []string{
		"/api/tables/bus-operators?rows=7",
		"/api/tables/bus-operators?page=x",
	} {
		w := do(r, http.MethodGet, target, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d", target, w.Code)
		}
	}
}

func TestUnknownTableSuggestsSlug(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/bus-operator", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
	var body errorBody
	decode(t, w, &body)
	if body.Code != "not_found" || !strings.Contains(body.Details["hint"], "bus-operators") {
		t.Fatalf("body %+v", body)
	}
	if body.RequestID == "" {
		t.Fatalf("missing request_id")
	}
}

func TestTableRow(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/customers/rows/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/tables/customers/rows/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestExportCSV(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/bus-operators/export/csv?q=travels&rows=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "bus-operators_") || !strings.HasSuffix(cd, `.csv"`) {
		t.Fatalf("disposition %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	if lines[0] != "Name,Mobile,Email,Status,Buses" {
		t.Fatalf("header %q", lines[0])
	}
	// Royal Travels and Deluxe Travels
	if len(lines) != 3 {
		t.Fatalf("lines %v", lines)
	}
}

func TestExportPDFAndUnknownFormat(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/tables/wallet-transactions/export/pdf", "")
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("status %d", w.Code)
	}
	w = do(r, http.MethodGet, "/api/tables/wallet-transactions/export/xls", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
}

func TestExportDisabledFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Export.Formats = []string{"csv"}
	r := routerWith(t, cfg)
	w := do(r, http.MethodGet, "/api/tables/coupons/export/pdf", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("status %d", w.Code)
	}
	var body errorBody
	decode(t, w, &body)
	if body.Code != "export_disabled" {
		t.Fatalf("code %q", body.Code)
	}
	if w := do(r, http.MethodGet, "/api/tables/coupons/export/csv", ""); w.Code != http.StatusOK {
		t.Fatalf("csv status %d", w.Code)
	}
}

func TestFormSubmission(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodPost, "/api/forms/operator", `{"name":"A","mobile":"123","email":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d", w.Code)
	}
	var body errorBody
	decode(t, w, &body)
	if body.Details["email"] != "Valid email is required" {
		t.Fatalf("details %v", body.Details)
	}

	valid := `{"name":"Global Tours","mobile":"+91 9876543210","email":"info@globaltours.com",
		"address":"12 MG Road","identityCard":"ID-1","businessLicense":"BL-1","bankName":"SBI",
		"accountNumber":"1234567","accountHolderName":"Global Tours"}`
	w = do(r, http.MethodPost, "/api/forms/operator", valid)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var ok struct {
		Message string `json:"message"`
	}
	decode(t, w, &ok)
	if ok.Message != "Bus operator added successfully" {
		t.Fatalf("message %q", ok.Message)
	}

	w = do(r, http.MethodPut, "/api/forms/operator/1", valid)
	decode(t, w, &ok)
	if w.Code != http.StatusOK || ok.Message != "Bus operator updated successfully" {
		t.Fatalf("status %d message %q", w.Code, ok.Message)
	}

	if w := do(r, http.MethodPost, "/api/forms/vehicle", valid); w.Code != http.StatusNotFound {
		t.Fatalf("unknown form status %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/forms/operator", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("empty body status %d", w.Code)
	}
}

func TestCommissionEndpoints(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodPost, "/api/commissions/3/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var res struct {
		Message string `json:"message"`
		Data    struct {
			IsActive bool `json:"isActive"`
		} `json:"data"`
	}
	decode(t, w, &res)
	if res.Message != "Commission rule activated successfully" || !res.Data.IsActive {
		t.Fatalf("toggle %+v", res)
	}

	w = do(r, http.MethodPost, "/api/commissions",
		`{"serviceType":"bike_booking","commissionType":"percentage","commissionValue":7.5,"startDate":"2023-11-01","isActive":true}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/tables/commissions?q=bike", "")
	var page struct {
		TotalMatched int `json:"totalMatched"`
	}
	decode(t, w, &page)
	if page.TotalMatched == 0 {
		t.Fatalf("created rule not visible in table")
	}

	w = do(r, http.MethodPut, "/api/commissions/42",
		`{"serviceType":"bike_booking","commissionType":"fixed","commissionValue":20,"startDate":"2023-11-01"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestDashboard(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/dashboard", "")
	var d struct {
		TotalBookings int `json:"totalBookings"`
		Customers     int `json:"customers"`
	}
	decode(t, w, &d)
	if w.Code != http.StatusOK || d.TotalBookings != 20 || d.Customers != 5 {
		t.Fatalf("status %d dashboard %+v", w.Code, d)
	}
}

func TestConsolePages(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/console", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Bus Operators") {
		t.Fatalf("index status %d", w.Code)
	}
	w = do(r, http.MethodGet, "/console/bus-operators?sort=name", "")
	if w.Code != http.StatusOK {
		t.Fatalf("table status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Showing 1 to 6 of 6 entries") {
		t.Fatalf("missing showing line")
	}
}

func TestCORSAndNoRoute(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/tables", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("allow origin %q", got)
	}

	w = do(r, http.MethodGet, "/api/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestRoutesListing(t *testing.T) {
	r := testRouter(t)
	w := do(r, http.MethodGet, "/api/routes", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/api/tables/:table/export/:format") {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}
