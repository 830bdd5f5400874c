// Package tui is a terminal front-end for the console tables.
package tui

import (
	"context"
	"fmt"
	"strings"

	"travelconsole/internal/catalog"

	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxColumnWidth = 28

// Model drives one table session at a time. Tab switches tables.
type Model struct {
	tables  []catalog.Table
	current int
	session catalog.Session
	page    catalog.Page

	grid      btable.Model
	search    textinput.Model
	searching bool

	err      error
	quitting bool
	width    int
	height   int
}

// OpenedMsg carries a freshly mounted session.
type OpenedMsg struct {
	Index   int
	Session catalog.Session
	Err     error
}

// New opens the table named slug, or the first table when slug is empty.
func New(ctx context.Context, c *catalog.Catalog, slug string) (*Model, error) {
	tables := c.Tables()
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tables to show")
	}
	index := 0
	if slug != "" {
		t, err := c.Table(slug)
		if err != nil {
			return nil, err
		}
		for i, candidate := range tables {
			if candidate == t {
				index = i
			}
		}
	}
	session, err := tables[index].Open(ctx)
	if err != nil {
		return nil, err
	}

	in := textinput.New()
	in.Prompt = "/ "
	in.CharLimit = 64

	m := &Model{
		tables: tables,
		search: in,
		grid: btable.New(
			btable.WithFocused(true),
			btable.WithHeight(12),
			btable.WithStyles(gridStyles()),
		),
	}
	m.mount(index, session)
	return m, nil
}

func openCmd(index int, t catalog.Table) tea.Cmd {
	return func() tea.Msg {
		s, err := t.Open(context.Background())
		return OpenedMsg{Index: index, Session: s, Err: err}
	}
}

func (m *Model) mount(index int, s catalog.Session) {
	m.current = index
	m.session = s
	m.search.Placeholder = m.tables[index].Info().Options.SearchPlaceholder
	m.search.SetValue(s.State().Search)
	m.refresh()
}

// refresh re-reads the visible page and rebuilds the grid.
func (m *Model) refresh() {
	m.page = m.session.Page()
	info := m.page.Table

	keep := make([]int, 0, len(info.Columns))
	widths := make([]int, 0, len(info.Columns))
	for i, c := range info.Columns {
		if c.Key == "actions" {
			continue
		}
		keep = append(keep, i)
		widths = append(widths, lipgloss.Width(c.Header)+2)
	}

	rows := make([]btable.Row, 0, len(m.page.Rows))
	for _, r := range m.page.Rows {
		row := make(btable.Row, 0, len(keep))
		for j, i := range keep {
			cell := r.Cells[i]
			widths[j] = min(maxColumnWidth, max(widths[j], lipgloss.Width(cell)))
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	cols := make([]btable.Column, 0, len(keep))
	for j, i := range keep {
		cols = append(cols, btable.Column{Title: m.header(i), Width: widths[j]})
	}

	// rows first: the grid re-renders on SetColumns
	m.grid.SetRows(nil)
	m.grid.SetColumns(cols)
	m.grid.SetRows(rows)
	m.grid.SetCursor(0)
}

func (m *Model) header(i int) string {
	c := m.page.Table.Columns[i]
	state := m.page.State
	if !c.Sortable || state.SortColumn != c.Key {
		return c.Header
	}
	if state.SortDirection == "desc" {
		return c.Header + " ▼"
	}
	return c.Header + " ▲"
}

// sortKey returns the key of the nth (1-based) sortable column.
func (m *Model) sortKey(n int) (string, bool) {
	for _, c := range m.page.Table.Columns {
		if !c.Sortable {
			continue
		}
		n--
		if n == 0 {
			return c.Key, true
		}
	}
	return "", false
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyMsg(msg)

	case OpenedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.mount(msg.Index, msg.Session)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.grid.SetHeight(max(5, msg.Height-10))
		return m, nil
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.grid.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.session.State().Search {
		m.session.SetSearchTerm(m.search.Value())
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.searching = true
		m.grid.Blur()
		return m, m.search.Focus()

	case "left", "h":
		m.session.SetPage(m.page.Page - 1)
		m.refresh()
		return m, nil

	case "right", "l":
		m.session.SetPage(m.page.Page + 1)
		m.refresh()
		return m, nil

	case "r":
		m.err = m.session.SetRowsPerPage(m.nextRowsPerPage())
		m.refresh()
		return m, nil

	case "tab":
		next := (m.current + 1) % len(m.tables)
		return m, openCmd(next, m.tables[next])

	case "shift+tab":
		prev := (m.current - 1 + len(m.tables)) % len(m.tables)
		return m, openCmd(prev, m.tables[prev])
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if k, ok := m.sortKey(int(key[0] - '0')); ok {
			m.session.ToggleSort(k)
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m *Model) nextRowsPerPage() int {
	opts := m.page.Table.Options.RowsPerPageOptions
	current := m.page.State.RowsPerPage
	for i, n := range opts {
		if n == current {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(titleStyle.Render("SwiftTravel · " + m.page.Table.Title))
	b.WriteString("\n")
	tabs := make([]string, 0, len(m.tables))
	for i, t := range m.tables {
		style := tabStyle
		if i == m.current {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.Info().Slug))
	}
	b.WriteString(lipgloss.NewStyle().Width(max(40, m.width)).Render(strings.Join(tabs, " ")))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	b.WriteString(gridStyle.Render(m.grid.View()))
	b.WriteString("\n")
	if len(m.page.Rows) == 0 {
		b.WriteString(footerStyle.Render("No results found."))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(fmt.Sprintf("Showing %d to %d of %d entries   Page %d of %d   %d rows",
		m.page.ShowingFrom, m.page.ShowingTo, m.page.TotalMatched,
		m.page.Page, m.page.DisplayPageCount, m.page.State.RowsPerPage)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("/ search · 1-9 sort · ←/→ page · r rows · tab table · q quit"))
	return b.String()
}
