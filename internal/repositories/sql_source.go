package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "travelconsole/internal/config"
	intdb "travelconsole/internal/db"
	"travelconsole/internal/domain"
)

// ColumnKind decides how a column is selected and scanned.
type ColumnKind int

const (
	Text ColumnKind = iota
	Number
	Flag
	// NullableText keeps NULL so the record field stays nil.
	NullableText
)

// SQLColumn maps one table column onto a record field.
type SQLColumn struct {
	Name string
	Kind ColumnKind
}

// SQLRow is one scanned row keyed by column name. Missing columns read as zero values.
type SQLRow map[string]any

func (r SQLRow) Str(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r SQLRow) Num(name string) float64 {
	f, _ := r[name].(float64)
	return f
}

func (r SQLRow) Int(name string) int {
	return int(r.Num(name))
}

func (r SQLRow) Int64(name string) int64 {
	return int64(r.Num(name))
}

func (r SQLRow) Bool(name string) bool {
	b, _ := r[name].(bool)
	return b
}

// OptStr returns nil for NULL or missing columns.
func (r SQLRow) OptStr(name string) *string {
	s, ok := r[name].(string)
	if !ok {
		return nil
	}
	return &s
}

// SQLSource reads a table through database/sql. Columns absent from the live schema
// are selected as literals so older databases still list.
type SQLSource[R any] struct {
	DB       *sql.DB
	Table    string
	Resource string
	Columns  []SQLColumn
	// Filter is an optional extra WHERE clause with its args.
	Filter     string
	FilterArgs []any
	Decode     func(SQLRow) R
}

func (s SQLSource[R]) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s SQLSource[R]) sel(present map[string]bool) string {
	parts := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		col := "`" + c.Name + "`"
		if !present[strings.ToLower(c.Name)] {
			switch c.Kind {
			case Number:
				parts = append(parts, "0 AS "+col)
			case Flag:
				parts = append(parts, "0 AS "+col)
			case NullableText:
				parts = append(parts, "NULL AS "+col)
			default:
				parts = append(parts, "'' AS "+col)
			}
			continue
		}
		switch c.Kind {
		case Number, Flag:
			parts = append(parts, "COALESCE("+col+",0)")
		case NullableText:
			parts = append(parts, col)
		default:
			parts = append(parts, "COALESCE("+col+",'')")
		}
	}
	return strings.Join(parts, ", ")
}

func (s SQLSource[R]) dest() ([]any, func() SQLRow) {
	holders := make([]any, len(s.Columns))
	for i, c := range s.Columns {
		switch c.Kind {
		case Number:
			holders[i] = new(sql.NullFloat64)
		case Flag:
			holders[i] = new(sql.NullBool)
		default:
			holders[i] = new(sql.NullString)
		}
	}
	build := func() SQLRow {
		row := make(SQLRow, len(s.Columns))
		for i, c := range s.Columns {
			switch h := holders[i].(type) {
			case *sql.NullFloat64:
				row[c.Name] = h.Float64
			case *sql.NullBool:
				row[c.Name] = h.Bool
			case *sql.NullString:
				if h.Valid {
					row[c.Name] = strings.TrimSpace(h.String)
				} else if c.Kind != NullableText {
					row[c.Name] = ""
				}
			}
		}
		return row
	}
	return holders, build
}

func (s SQLSource[R]) query(ctx context.Context, where string, args ...any) ([]R, error) {
	db := s.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}
	found, err := intdb.HasTable(ctx, db, s.Table)
	if err != nil {
		return nil, domain.InternalError{Msg: "data source unavailable", Err: err}
	}
	if !found {
		return []R{}, nil
	}
	present, err := intdb.TableColumns(ctx, db, s.Table)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", s.Table, err)
	}

	var clauses []string
	var all []any
	if s.Filter != "" {
		clauses = append(clauses, s.Filter)
		all = append(all, s.FilterArgs...)
	}
	if where != "" {
		clauses = append(clauses, where)
		all = append(all, args...)
	}
	q := "SELECT " + s.sel(present) + " FROM `" + s.Table + "`"
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	if present["id"] {
		q += " ORDER BY `id`"
	}

	rows, err := db.QueryContext(ctx, q, all...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Table, err)
	}
	defer rows.Close()

	out := []R{}
	for rows.Next() {
		holders, build := s.dest()
		if err := rows.Scan(holders...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.Table, err)
		}
		out = append(out, s.Decode(build()))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Table, err)
	}
	return out, nil
}

// List returns every row, or an empty list when the table does not exist yet.
func (s SQLSource[R]) List(ctx context.Context) ([]R, error) {
	return s.query(ctx, "")
}

// Get looks up one row by its `id` column. Tables without one have no addressable rows.
func (s SQLSource[R]) Get(ctx context.Context, id string) (R, error) {
	var zero R
	db := s.db()
	if db == nil {
		return zero, domain.InternalError{Msg: "database not connected"}
	}
	hasID, err := intdb.HasColumn(ctx, db, s.Table, "id")
	if err != nil {
		return zero, domain.InternalError{Msg: "data source unavailable", Err: err}
	}
	if !hasID {
		return zero, domain.NotFoundError{Resource: s.Resource, Err: fmt.Errorf("%s has no id column", s.Table)}
	}
	rows, err := s.query(ctx, "`id` = ?", id)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, domain.NotFoundError{Resource: s.Resource}
	}
	return rows[0], nil
}
