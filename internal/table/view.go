package table

import (
	"fmt"

	"travelconsole/internal/domain"
)

// View owns the state of one mounted table and re-derives its visible rows after
// every control operation. A View is not safe for concurrent use.
type View[R any] struct {
	schema  Schema[R]
	options Options
	records []R
	state   State

	matched []R
	result  Result[R]
}

// NewView mounts a table over records with default state.
func NewView[R any](schema Schema[R], records []R, opts Options) *View[R] {
	opts = opts.Normalize()
	v := &View[R]{
		schema:  schema,
		options: opts,
		records: records,
		state:   NewState(opts),
	}
	v.refresh()
	return v
}

func (v *View[R]) refresh() {
	v.matched = Matched(v.records, v.schema, v.state)
	v.state.Page = ClampPage(v.state.Page, PageCount(len(v.matched), v.state.RowsPerPage))
	v.result = Paginate(v.matched, v.state)
}

// State returns a copy of the current state.
func (v *View[R]) State() State { return v.state }

// Options returns the normalized options the view was mounted with.
func (v *View[R]) Options() Options { return v.options }

// Schema returns the schema the view renders.
func (v *View[R]) Schema() Schema[R] { return v.schema }

// Result returns the currently visible page.
func (v *View[R]) Result() Result[R] { return v.result }

// Matched returns every record matching the current search, in display order.
func (v *View[R]) Matched() []R { return v.matched }

// SetSearchTerm filters by term and returns to the first page.
func (v *View[R]) SetSearchTerm(term string) {
	v.state = v.state.WithSearch(term)
	v.refresh()
}

// ToggleSort sorts by key, flipping the direction when key is already active.
// It refuses columns declared as not sortable.
func (v *View[R]) ToggleSort(key string) bool {
	if c, ok := v.schema.Column(key); ok && !c.Sortable {
		return false
	}
	v.state = v.state.WithSortToggled(key)
	v.refresh()
	return true
}

// SetPage moves to page n, clamped to the available pages.
func (v *View[R]) SetPage(n int) {
	v.state = v.state.WithPage(n, v.result.PageCount)
	v.refresh()
}

// SetRowsPerPage changes the page size to one of the offered options.
func (v *View[R]) SetRowsPerPage(n int) error {
	if !v.options.Offers(n) {
		return domain.ValidationError{
			Field: "rows",
			Msg:   fmt.Sprintf("rows per page must be one of %v", v.options.RowsPerPageOptions),
		}
	}
	v.state = v.state.WithRowsPerPage(n)
	v.refresh()
	return nil
}

// SetRecords swaps the underlying collection, keeping the state and clamping the page.
func (v *View[R]) SetRecords(records []R) {
	v.records = records
	v.refresh()
}

// Restore applies a whole state at once, as received from a URL. Page sizes that are
// not offered are rejected; the page is clamped and unsortable sort keys are dropped.
func (v *View[R]) Restore(s State) error {
	if s.RowsPerPage == 0 {
		s.RowsPerPage = v.options.RowsPerPageOptions[0]
	}
	if !v.options.Offers(s.RowsPerPage) {
		return domain.ValidationError{
			Field: "rows",
			Msg:   fmt.Sprintf("rows per page must be one of %v", v.options.RowsPerPageOptions),
		}
	}
	if s.SortDirection != Desc {
		s.SortDirection = Asc
	}
	if c, ok := v.schema.Column(s.SortColumn); ok && !c.Sortable {
		s.SortColumn = ""
		s.SortDirection = Asc
	}
	v.state = s
	v.refresh()
	return nil
}
