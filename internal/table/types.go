package table

import (
	"iter"
	"slices"
)

// Direction is the sort direction of a view.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps free text onto a direction; anything but "desc" is ascending.
func ParseDirection(s string) Direction {
	if s == string(Desc) {
		return Desc
	}
	return Asc
}

// Column describes how one column of a table is displayed.
// Cell is the only place a column reads a record; a nil Cell renders an empty cell.
type Column[R any] struct {
	Key      string
	Header   string
	Cell     func(R) string
	Sortable bool
}

// Schema binds a row type to the accessors the controller needs.
type Schema[R any] struct {
	Columns []Column[R]
	// ID extracts the stable row key.
	ID func(R) string
	// Fields yields every own field of a record, in declaration order.
	Fields func(R) iter.Seq2[string, any]
}

// Column returns the column registered under key.
func (s Schema[R]) Column(key string) (Column[R], bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Value returns the raw value stored under key, or nil when the record has no such field.
func (s Schema[R]) Value(r R, key string) any {
	if s.Fields == nil {
		return nil
	}
	for k, v := range s.Fields(r) {
		if k == key {
			return v
		}
	}
	return nil
}

// Options are the per-table settings a rendering adapter exposes.
type Options struct {
	RowsPerPageOptions []int  `json:"rowsPerPageOptions"`
	SearchPlaceholder  string `json:"searchPlaceholder"`
	AllowCSVExport     bool   `json:"allowCSVExport"`
	AllowPDFExport     bool   `json:"allowPDFExport"`
}

// DefaultRowsPerPageOptions is used when a table does not declare its own.
var DefaultRowsPerPageOptions = []int{10, 25, 50}

// Normalize fills empty options with defaults and drops non-positive page sizes.
func (o Options) Normalize() Options {
	sizes := make([]int, 0, len(o.RowsPerPageOptions))
	for _, n := range o.RowsPerPageOptions {
		if n > 0 && !slices.Contains(sizes, n) {
			sizes = append(sizes, n)
		}
	}
	if len(sizes) == 0 {
		sizes = slices.Clone(DefaultRowsPerPageOptions)
	}
	o.RowsPerPageOptions = sizes
	if o.SearchPlaceholder == "" {
		o.SearchPlaceholder = "Search..."
	}
	return o
}

// Offers reports whether n is one of the offered page sizes.
func (o Options) Offers(n int) bool {
	return slices.Contains(o.RowsPerPageOptions, n)
}

// State is the mutable part of a view. The zero value is not valid; use NewState.
type State struct {
	Page          int       `json:"page"`
	RowsPerPage   int       `json:"rowsPerPage"`
	Search        string    `json:"search"`
	SortColumn    string    `json:"sortColumn,omitempty"`
	SortDirection Direction `json:"sortDirection"`
}

// NewState returns the state a freshly mounted table starts with.
func NewState(opts Options) State {
	opts = opts.Normalize()
	return State{
		Page:          1,
		RowsPerPage:   opts.RowsPerPageOptions[0],
		SortDirection: Asc,
	}
}

// WithSearch sets the search term and returns to the first page.
func (s State) WithSearch(term string) State {
	s.Search = term
	s.Page = 1
	return s
}

// WithSortToggled flips the direction when key is already the sort column,
// otherwise sorts ascending by key.
func (s State) WithSortToggled(key string) State {
	if s.SortColumn == key {
		if s.SortDirection == Asc {
			s.SortDirection = Desc
		} else {
			s.SortDirection = Asc
		}
		return s
	}
	s.SortColumn = key
	s.SortDirection = Asc
	return s
}

// WithPage moves to page n, clamped to [1, max(1, pageCount)].
func (s State) WithPage(n, pageCount int) State {
	s.Page = ClampPage(n, pageCount)
	return s
}

// WithRowsPerPage changes the page size and returns to the first page.
func (s State) WithRowsPerPage(n int) State {
	s.RowsPerPage = n
	s.Page = 1
	return s
}

// ClampPage keeps n within [1, max(1, pageCount)].
func ClampPage(n, pageCount int) int {
	last := max(1, pageCount)
	if n < 1 {
		return 1
	}
	if n > last {
		return last
	}
	return n
}

// Result is the visible slice of a table plus pagination metadata.
type Result[R any] struct {
	Rows         []R
	Page         int
	PageCount    int
	TotalMatched int
	RowsPerPage  int
	// StartIndex is the zero-based offset of Rows[0] within the matched set.
	StartIndex int
}

// DisplayPageCount is the page count shown to users: never below one.
func (r Result[R]) DisplayPageCount() int {
	return max(1, r.PageCount)
}

// ShowingFrom is the one-based position of the first visible row, or 0 when nothing is visible.
func (r Result[R]) ShowingFrom() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.StartIndex + 1
}

// ShowingTo is the one-based position of the last visible row.
func (r Result[R]) ShowingTo() int {
	return min(r.StartIndex+r.RowsPerPage, r.TotalMatched)
}
