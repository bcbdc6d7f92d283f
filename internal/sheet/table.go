package sheet

// Grid is a raw rectangular-ish read of a file: rows of cells, no
// header promotion, nothing skipped. Write-back uses it to carry the
// rows that sit above the header.
type Grid struct {
	Rows [][]Cell
}

// Column is one named column of a table. Cells are keyed by row
// position; a position in the extent with no entry is a missing cell.
type Column struct {
	Header string

	rows  []int // the owning table's row extent, ascending
	cells map[int]Cell
}

// Rows returns the row positions the column spans, ascending. The
// slice is shared with the owning table and must not be mutated.
func (c *Column) Rows() []int { return c.rows }

// Len is the number of row positions the column spans, counting
// missing cells.
func (c *Column) Len() int { return len(c.rows) }

// Cell returns the cell at a row position. ok is false when the cell
// is missing.
func (c *Column) Cell(row int) (Cell, bool) {
	cell, ok := c.cells[row]
	return cell, ok
}

// Set stores a cell at a row position.
func (c *Column) Set(row int, cell Cell) {
	c.cells[row] = cell
}

// Table is an ordered set of named columns sharing one row extent.
// Row positions are assigned once, when the table is read; downstream
// filtering may leave gaps but never renumbers.
type Table struct {
	rows    []int
	columns []*Column
}

// NewTable builds an empty table over the given row positions.
func NewTable(rows []int) *Table {
	return &Table{rows: rows}
}

// Rows returns the table's row extent, ascending.
func (t *Table) Rows() []int { return t.rows }

// HasRow reports whether a row position is part of the extent.
func (t *Table) HasRow(row int) bool {
	for _, r := range t.rows {
		if r == row {
			return true
		}
	}
	return false
}

// Columns returns the columns in file order.
func (t *Table) Columns() []*Column { return t.columns }

// Column returns the first column with the given header.
func (t *Table) Column(header string) (*Column, bool) {
	for _, c := range t.columns {
		if c.Header == header {
			return c, true
		}
	}
	return nil, false
}

// AddColumn appends a column holding the given cells. Duplicate
// headers are allowed and kept distinct; lookup by name finds the
// first.
func (t *Table) AddColumn(header string, cells map[int]Cell) *Column {
	if cells == nil {
		cells = make(map[int]Cell)
	}
	col := &Column{Header: header, rows: t.rows, cells: cells}
	t.columns = append(t.columns, col)
	return col
}

// Upsert returns the column with the given header, appending it first
// if absent. A new column starts with an empty-string cell at every
// row position, so freshly created result columns hold data (empty),
// not holes.
func (t *Table) Upsert(header string) *Column {
	if col, ok := t.Column(header); ok {
		return col
	}
	cells := make(map[int]Cell, len(t.rows))
	for _, row := range t.rows {
		cells[row] = Cell{}
	}
	return t.AddColumn(header, cells)
}
