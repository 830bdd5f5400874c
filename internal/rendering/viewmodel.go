package rendering

import (
	"fmt"
	"net/url"
	"path"

	"travelconsole/internal/catalog"
	"travelconsole/internal/table"

	"github.com/google/safehtml"
)

// NavItem links to one table of the console.
type NavItem struct {
	Title   string
	Service string
	URL     safehtml.URL
	Active  bool
}

// Header is a column header; sortable headers carry the toggle link.
type Header struct {
	Label     string
	Sortable  bool
	URL       safehtml.URL
	Indicator string
}

// Cell is one rendered cell. Action cells link to the record.
type Cell struct {
	Text    string
	Link    safehtml.URL
	HasLink bool
}

type RowView struct {
	Cells []Cell
}

type PageLink struct {
	URL     safehtml.URL
	Enabled bool
}

type RowsOption struct {
	Label    string
	Value    int
	URL      safehtml.URL
	Selected bool
}

type ExportLink struct {
	Label   string
	URL     safehtml.URL
	Enabled bool
}

// TableView is everything table.html needs to draw one page.
type TableView struct {
	Title        string
	Slug         string
	Nav          []NavItem
	Placeholder  string
	Search       string
	SearchAction safehtml.URL
	// SortKey, SortDir and RowsPerPage survive a new search.
	SortKey      string
	SortDir      string
	RowsPerPage  int
	Headers      []Header
	Rows         []RowView
	Empty        bool
	Showing      string
	PageLabel    string
	Prev         PageLink
	Next         PageLink
	RowsOptions  []RowsOption
	Exports      []ExportLink
}

// LandingView lists the console tables.
type LandingView struct {
	Title string
	Nav   []NavItem
}

func nav(base string, infos []catalog.Info, active string) []NavItem {
	out := make([]NavItem, 0, len(infos))
	for _, info := range infos {
		out = append(out, NavItem{
			Title:   info.Title,
			Service: info.Service,
			URL:     safehtml.URLSanitized(path.Join(base, info.Slug)),
			Active:  info.Slug == active,
		})
	}
	return out
}

// NewLandingView builds the index of tables mounted under base.
func NewLandingView(base string, infos []catalog.Info) LandingView {
	return LandingView{Title: "SwiftTravel Admin Console", Nav: nav(base, infos, "")}
}

// NewTableView builds the view model of p. Every link applies one control
// operation to the current state; base is the console prefix and apiBase
// the prefix of the table API.
func NewTableView(base, apiBase string, p catalog.Page, infos []catalog.Info) TableView {
	info := p.Table
	state := p.State
	self := path.Join(base, info.Slug)

	vm := TableView{
		Title:        info.Title,
		Slug:         info.Slug,
		Nav:          nav(base, infos, info.Slug),
		Placeholder:  info.Options.SearchPlaceholder,
		Search:       state.Search,
		SearchAction: safehtml.URLSanitized(self),
		SortKey:      state.SortColumn,
		RowsPerPage:  state.RowsPerPage,
		Empty:        len(p.Rows) == 0,
		Showing:      fmt.Sprintf("Showing %d to %d of %d entries", p.ShowingFrom, p.ShowingTo, p.TotalMatched),
		PageLabel:    fmt.Sprintf("Page %d of %d", p.Page, p.DisplayPageCount),
		Prev: PageLink{
			URL:     StateURL(self, state.WithPage(p.Page-1, p.PageCount)),
			Enabled: p.Page > 1,
		},
		Next: PageLink{
			URL:     StateURL(self, state.WithPage(p.Page+1, p.PageCount)),
			Enabled: p.Page < p.PageCount,
		},
	}

	if state.SortColumn != "" {
		vm.SortDir = string(state.SortDirection)
	}

	for _, c := range info.Columns {
		h := Header{Label: c.Header, Sortable: c.Sortable}
		if c.Sortable {
			h.URL = StateURL(self, state.WithSortToggled(c.Key))
			h.Indicator = "↕"
			if state.SortColumn == c.Key {
				h.Indicator = "▲"
				if state.SortDirection == table.Desc {
					h.Indicator = "▼"
				}
			}
		}
		vm.Headers = append(vm.Headers, h)
	}

	for _, row := range p.Rows {
		rv := RowView{Cells: make([]Cell, 0, len(row.Cells))}
		for i, text := range row.Cells {
			cell := Cell{Text: text}
			if i < len(info.Columns) && info.Columns[i].Key == "actions" {
				cell.Text = "View"
				cell.Link = safehtml.URLSanitized(path.Join(apiBase, info.Slug, "rows", url.PathEscape(row.ID)))
				cell.HasLink = true
			}
			rv.Cells = append(rv.Cells, cell)
		}
		vm.Rows = append(vm.Rows, rv)
	}

	for _, n := range info.Options.RowsPerPageOptions {
		vm.RowsOptions = append(vm.RowsOptions, RowsOption{
			Label:    fmt.Sprintf("%d rows", n),
			Value:    n,
			URL:      StateURL(self, state.WithRowsPerPage(n)),
			Selected: n == state.RowsPerPage,
		})
	}

	exportState := state.WithPage(1, p.PageCount)
	vm.Exports = []ExportLink{
		{Label: "Export CSV", URL: StateURL(path.Join(apiBase, info.Slug, "export", "csv"), exportState), Enabled: info.Options.AllowCSVExport},
		{Label: "Export PDF", URL: StateURL(path.Join(apiBase, info.Slug, "export", "pdf"), exportState), Enabled: info.Options.AllowPDFExport},
	}
	return vm
}
