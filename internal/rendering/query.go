package rendering

import (
	"net/url"
	"strconv"
	"strings"

	"travelconsole/internal/domain"
	"travelconsole/internal/table"

	"github.com/google/safehtml"
)

// Query parameter names carrying table state.
const (
	ParamSearch = "q"
	ParamSort   = "sort"
	ParamDir    = "dir"
	ParamPage   = "page"
	ParamRows   = "rows"
)

// StateFromQuery reads table state from URL parameters. Missing parameters keep
// their defaults; page and rows must be integers when present.
func StateFromQuery(q url.Values) (table.State, error) {
	s := table.State{
		Page:          1,
		Search:        q.Get(ParamSearch),
		SortColumn:    strings.TrimSpace(q.Get(ParamSort)),
		SortDirection: table.ParseDirection(strings.ToLower(strings.TrimSpace(q.Get(ParamDir)))),
	}
	if raw := strings.TrimSpace(q.Get(ParamPage)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return table.State{}, domain.ValidationError{Field: ParamPage, Msg: "must be a number", Err: err}
		}
		s.Page = n
	}
	if raw := strings.TrimSpace(q.Get(ParamRows)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return table.State{}, domain.ValidationError{Field: ParamRows, Msg: "must be a number", Err: err}
		}
		s.RowsPerPage = n
	}
	return s, nil
}

// Values encodes s as URL parameters. Defaults are left out.
func Values(s table.State) url.Values {
	q := url.Values{}
	if s.Search != "" {
		q.Set(ParamSearch, s.Search)
	}
	if s.SortColumn != "" {
		q.Set(ParamSort, s.SortColumn)
		q.Set(ParamDir, string(s.SortDirection))
	}
	if s.Page > 1 {
		q.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.RowsPerPage > 0 {
		q.Set(ParamRows, strconv.Itoa(s.RowsPerPage))
	}
	return q
}

// StateURL links path with s encoded in its query string.
func StateURL(path string, s table.State) safehtml.URL {
	u := url.URL{Path: path, RawQuery: Values(s).Encode()}
	return safehtml.URLSanitized(u.String())
}
