package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// QueryRower is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier is a QueryRower that can also return row sets.
type Querier interface {
	QueryRower
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// HasTable reports whether table exists in the current schema. Only an empty
// lookup means "missing"; connection errors are returned.
func HasTable(ctx context.Context, q QueryRower, table string) (bool, error) {
	return exists(ctx, q, "table "+table, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table)
}

// HasColumn reports whether table has column in the current schema.
func HasColumn(ctx context.Context, q QueryRower, table, column string) (bool, error) {
	return exists(ctx, q, "column "+table+"."+column, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1
	`, table, column)
}

func exists(ctx context.Context, q QueryRower, what, query string, args ...any) (bool, error) {
	var name sql.NullString
	err := q.QueryRowContext(ctx, query, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup %s: %w", what, err)
	}
	return name.Valid && name.String != "", nil
}

// TableColumns returns the lower-cased column names of table in one round trip.
func TableColumns(ctx context.Context, q Querier, table string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
	`, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if name.Valid {
			out[strings.ToLower(strings.TrimSpace(name.String))] = true
		}
	}
	return out, rows.Err()
}
