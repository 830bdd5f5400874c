package table

import (
	"slices"
	"strings"
)

// Filter keeps the records where at least one field, not only the displayed ones,
// contains term case-insensitively. An empty term keeps everything in order.
func Filter[R any](records []R, schema Schema[R], term string) []R {
	if term == "" {
		return slices.Clone(records)
	}
	needle := strings.ToLower(term)
	out := make([]R, 0, len(records))
	for _, r := range records {
		if matches(schema, r, needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches[R any](schema Schema[R], r R, needle string) bool {
	if schema.Fields == nil {
		return false
	}
	for _, v := range schema.Fields(r) {
		s, ok := Stringify(v)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// Sort orders records in place by the raw value under key. Ties keep their
// original relative order.
func Sort[R any](records []R, schema Schema[R], key string, dir Direction) {
	if key == "" {
		return
	}
	slices.SortStableFunc(records, func(a, b R) int {
		return Compare(schema.Value(a, key), schema.Value(b, key), dir)
	})
}

// Matched runs the filter and sort steps and returns the full matched set.
func Matched[R any](records []R, schema Schema[R], state State) []R {
	out := Filter(records, schema, state.Search)
	Sort(out, schema, state.SortColumn, state.SortDirection)
	return out
}

// PageCount is ceil(total / rowsPerPage); zero when nothing matched.
func PageCount(total, rowsPerPage int) int {
	if rowsPerPage <= 0 || total <= 0 {
		return 0
	}
	return (total + rowsPerPage - 1) / rowsPerPage
}

// Paginate cuts the visible page out of an already filtered and sorted set.
// The page in state is used as is; callers clamp it first.
func Paginate[R any](matched []R, state State) Result[R] {
	rows := state.RowsPerPage
	if rows <= 0 {
		rows = DefaultRowsPerPageOptions[0]
	}
	page := max(1, state.Page)
	start := (page - 1) * rows
	end := min(start+rows, len(matched))
	visible := []R{}
	if start < len(matched) {
		visible = matched[start:end]
	}
	return Result[R]{
		Rows:         visible,
		Page:         page,
		PageCount:    PageCount(len(matched), rows),
		TotalMatched: len(matched),
		RowsPerPage:  rows,
		StartIndex:   start,
	}
}

// ComputeVisibleRows filters, sorts and paginates records for one state.
// It does not modify records.
func ComputeVisibleRows[R any](records []R, schema Schema[R], state State) Result[R] {
	return Paginate(Matched(records, schema, state), state)
}
