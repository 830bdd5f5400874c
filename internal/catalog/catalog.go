// Package catalog binds every console table to its record source and column layout.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"travelconsole/internal/domain"
	"travelconsole/internal/repositories"
	"travelconsole/internal/table"

	"github.com/agnivade/levenshtein"
)

// ColumnInfo is the record-free description of a column.
type ColumnInfo struct {
	Key      string `json:"key"`
	Header   string `json:"header"`
	Sortable bool   `json:"sortable"`
}

// Info describes one table.
type Info struct {
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	Service string        `json:"service"`
	Options table.Options `json:"options"`
	Columns []ColumnInfo  `json:"columns"`
}

// Row is a visible record with its rendered cells.
type Row struct {
	ID     string   `json:"id"`
	Record any      `json:"record"`
	Cells  []string `json:"cells"`
	Detail string   `json:"detail,omitempty"`
}

// Page is one computed page of a table.
type Page struct {
	Table            Info        `json:"table"`
	Rows             []Row       `json:"rows"`
	Page             int         `json:"page"`
	PageCount        int         `json:"pageCount"`
	DisplayPageCount int         `json:"displayPageCount"`
	TotalMatched     int         `json:"totalMatched"`
	ShowingFrom      int         `json:"showingFrom"`
	ShowingTo        int         `json:"showingTo"`
	State            table.State `json:"state"`
}

// Session is a mounted table that keeps its own state between operations.
type Session interface {
	SetSearchTerm(term string)
	ToggleSort(key string) bool
	SetPage(n int)
	SetRowsPerPage(n int) error
	State() table.State
	Page() Page
}

// Table is a console table with its record type erased.
type Table interface {
	Info() Info
	// Open mounts the table over a fresh snapshot of its records.
	Open(ctx context.Context) (Session, error)
	// Query restores state and computes the page it selects.
	Query(ctx context.Context, state table.State) (Page, error)
	// Sheet renders every record matching state, for export.
	Sheet(ctx context.Context, state table.State) (table.Sheet, error)
	Lookup(ctx context.Context, id string) (any, error)
}

// Catalog is the ordered set of tables the console serves.
type Catalog struct {
	tables []Table
	bySlug map[string]Table
}

// New builds the catalog over store. rowsPerPage replaces the default page sizes.
func New(store *repositories.Store, rowsPerPage []int) *Catalog {
	c := &Catalog{bySlug: map[string]Table{}}
	for _, t := range buildTables(store, rowsPerPage) {
		c.tables = append(c.tables, t)
		c.bySlug[t.Info().Slug] = t
	}
	return c
}

// RestrictExports turns off, on every table, the export formats missing from
// formats. An empty list changes nothing.
func (c *Catalog) RestrictExports(formats []string) {
	if len(formats) == 0 {
		return
	}
	csv := slices.Contains(formats, "csv")
	pdf := slices.Contains(formats, "pdf")
	for _, t := range c.tables {
		if r, ok := t.(exportRestricter); ok {
			r.restrictExports(csv, pdf)
		}
	}
}

type exportRestricter interface {
	restrictExports(csv, pdf bool)
}

// Tables lists the tables in navigation order.
func (c *Catalog) Tables() []Table {
	return c.tables
}

// Infos lists every table description in navigation order.
func (c *Catalog) Infos() []Info {
	out := make([]Info, 0, len(c.tables))
	for _, t := range c.tables {
		out = append(out, t.Info())
	}
	return out
}

// Table returns the table registered under slug. Unknown slugs yield a
// NotFoundError that suggests the closest known slug.
func (c *Catalog) Table(slug string) (Table, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if t, ok := c.bySlug[slug]; ok {
		return t, nil
	}
	err := domain.NotFoundError{Resource: "table " + slug}
	if s := c.Suggest(slug); s != "" {
		err.Err = fmt.Errorf("did you mean %q?", s)
	}
	return nil, err
}

// Suggest returns the closest slug within a small edit distance, or "".
func (c *Catalog) Suggest(name string) string {
	best, bestDist := "", 0
	for _, t := range c.tables {
		slug := t.Info().Slug
		d := levenshtein.ComputeDistance(name, slug)
		if best == "" || d < bestDist {
			best, bestDist = slug, d
		}
	}
	if best == "" || bestDist > max(3, len(name)/3) {
		return ""
	}
	return best
}
