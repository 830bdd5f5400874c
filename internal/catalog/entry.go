package catalog

import (
	"context"

	"travelconsole/internal/repositories"
	"travelconsole/internal/table"
)

type entry[R any] struct {
	info   Info
	schema table.Schema[R]
	opts   table.Options
	source repositories.Source[R]
	detail func(R) string
}

func newEntry[R any](slug, title, service string, schema table.Schema[R], opts table.Options,
	source repositories.Source[R], detail func(R) string) *entry[R] {
	opts = opts.Normalize()
	cols := make([]ColumnInfo, 0, len(schema.Columns))
	for _, c := range schema.Columns {
		cols = append(cols, ColumnInfo{Key: c.Key, Header: c.Header, Sortable: c.Sortable})
	}
	return &entry[R]{
		info: Info{
			Slug:    slug,
			Title:   title,
			Service: service,
			Options: opts,
			Columns: cols,
		},
		schema: schema,
		opts:   opts,
		source: source,
		detail: detail,
	}
}

func (e *entry[R]) Info() Info { return e.info }

func (e *entry[R]) restrictExports(csv, pdf bool) {
	e.opts.AllowCSVExport = e.opts.AllowCSVExport && csv
	e.opts.AllowPDFExport = e.opts.AllowPDFExport && pdf
	e.info.Options = e.opts
}

func (e *entry[R]) mount(ctx context.Context) (*table.View[R], error) {
	records, err := e.source.List(ctx)
	if err != nil {
		return nil, err
	}
	return table.NewView(e.schema, records, e.opts), nil
}

func (e *entry[R]) Open(ctx context.Context) (Session, error) {
	v, err := e.mount(ctx)
	if err != nil {
		return nil, err
	}
	return &session[R]{entry: e, view: v}, nil
}

func (e *entry[R]) Query(ctx context.Context, state table.State) (Page, error) {
	v, err := e.mount(ctx)
	if err != nil {
		return Page{}, err
	}
	if err := v.Restore(state); err != nil {
		return Page{}, err
	}
	return e.page(v), nil
}

func (e *entry[R]) Sheet(ctx context.Context, state table.State) (table.Sheet, error) {
	v, err := e.mount(ctx)
	if err != nil {
		return table.Sheet{}, err
	}
	if err := v.Restore(state); err != nil {
		return table.Sheet{}, err
	}
	return table.NewSheet(e.info.Slug, e.info.Title, e.schema.Columns, v.Matched()), nil
}

func (e *entry[R]) Lookup(ctx context.Context, id string) (any, error) {
	return e.source.Get(ctx, id)
}

func (e *entry[R]) page(v *table.View[R]) Page {
	res := v.Result()
	rows := make([]Row, 0, len(res.Rows))
	for _, r := range res.Rows {
		cells := make([]string, 0, len(e.schema.Columns))
		for _, c := range e.schema.Columns {
			if c.Cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, c.Cell(r))
		}
		row := Row{ID: e.schema.ID(r), Record: r, Cells: cells}
		if e.detail != nil {
			row.Detail = e.detail(r)
		}
		rows = append(rows, row)
	}
	return Page{
		Table:            e.info,
		Rows:             rows,
		Page:             res.Page,
		PageCount:        res.PageCount,
		DisplayPageCount: res.DisplayPageCount(),
		TotalMatched:     res.TotalMatched,
		ShowingFrom:      res.ShowingFrom(),
		ShowingTo:        res.ShowingTo(),
		State:            v.State(),
	}
}

type session[R any] struct {
	entry *entry[R]
	view  *table.View[R]
}

func (s *session[R]) SetSearchTerm(term string)  { s.view.SetSearchTerm(term) }
func (s *session[R]) ToggleSort(key string) bool { return s.view.ToggleSort(key) }
func (s *session[R]) SetPage(n int)              { s.view.SetPage(n) }
func (s *session[R]) SetRowsPerPage(n int) error { return s.view.SetRowsPerPage(n) }
func (s *session[R]) State() table.State         { return s.view.State() }
func (s *session[R]) Page() Page                 { return s.entry.page(s.view) }
