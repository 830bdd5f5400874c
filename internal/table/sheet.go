package table

// Sheet is a rendered grid of cell text, the input of the export formats.
type Sheet struct {
	Name    string
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSheet renders rows through the columns that have a cell renderer.
// Cell-less columns (row actions) are left out.
func NewSheet[R any](name, title string, columns []Column[R], rows []R) Sheet {
	cols := make([]Column[R], 0, len(columns))
	for _, c := range columns {
		if c.Cell != nil {
			cols = append(cols, c)
		}
	}
	sheet := Sheet{
		Name:    name,
		Title:   title,
		Headers: make([]string, 0, len(cols)),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, c := range cols {
		sheet.Headers = append(sheet.Headers, c.Header)
	}
	for _, r := range rows {
		line := make([]string, 0, len(cols))
		for _, c := range cols {
			line = append(line, c.Cell(r))
		}
		sheet.Rows = append(sheet.Rows, line)
	}
	return sheet
}
