package repositories

import (
	"context"
	"errors"
	"testing"

	"travelconsole/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLSourceAdaptiveColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bus_operators").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bus_operators"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("bus_operators").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name").AddRow("status").AddRow("bus_count"))
	mock.ExpectQuery("'' AS `mobile`.+FROM `bus_operators` ORDER BY `id`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "mobile", "email", "status", "bus_count"}).
			AddRow("1", "Global Tours", "", "", "approved", 12).
			AddRow("4", "Highway Express", "", "", "rejected", 0))

	store := NewSQLStore(db)
	ops, err := store.BusOperators.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ops))
	}
	if ops[0].Name != "Global Tours" || ops[0].BusCount != 12 || ops[1].Status != "rejected" {
		t.Fatalf("decoded rows wrong: %+v", ops)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLSourceMissingTableListsEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("coupons").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	coupons, err := NewSQLStore(db).Coupons.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(coupons) != 0 {
		t.Fatalf("expected empty list, got %d", len(coupons))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLSourceNullableColumnsStayNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("commission_rules", "id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("commission_rules").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("commission_rules"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("commission_rules").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
			AddRow("id").AddRow("service_type").AddRow("commission_type").AddRow("commission_value").
			AddRow("start_date").AddRow("end_date").AddRow("is_active"))
	mock.ExpectQuery("FROM `commission_rules` WHERE `id` = \\?").WithArgs("2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "service_type", "commission_type", "commission_value", "start_date", "end_date", "is_active"}).
			AddRow("2", "Hotel Booking", "Fixed", 100, "2023-10-05", nil, true))

	rule, err := NewSQLStore(db).Commissions.Get(context.Background(), "2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rule.EndDate != nil {
		t.Fatalf("expected nil end date, got %q", *rule.EndDate)
	}
	if !rule.IsActive || rule.CommissionValue != 100 {
		t.Fatalf("decoded rule wrong: %+v", rule)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLSourceGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("users", "id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id"))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("users"))
	mock.ExpectQuery("information_schema\\.columns").WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("id").AddRow("name"))
	mock.ExpectQuery("FROM `users` WHERE `id` = \\?").WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "status", "last_login"}))

	_, err = NewSQLStore(db).Users.Get(context.Background(), "42")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSQLSourceGetWithoutIDColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.columns").WithArgs("wallet_rules", "id").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))

	_, err = NewSQLStore(db).WalletRules.Get(context.Background(), "1")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("row query issued without an id column: %v", err)
	}
}

func TestSQLSourceListSurfacesLookupErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema\\.tables").WithArgs("bus_operators").
		WillReturnError(errors.New("dial tcp: connection refused"))

	ops, err := NewSQLStore(db).BusOperators.List(context.Background())
	if err == nil {
		t.Fatalf("outage read as an empty table: %v", ops)
	}
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
