package sheet

import (
	"fmt"
)

// Write persists the table back to path: first the prefix rows
// verbatim (the physical rows that sat above the header when the file
// was read), then the header row, then the data rows in ascending row
// position. Missing cells are written as empty. The whole file is
// rewritten on every call.
func Write(t *Table, path string, headerShift int, prefix *Grid) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}

	var pre [][]Cell
	if prefix != nil {
		pre = prefix.Rows
	}
	if len(pre) != headerShift {
		return fmt.Errorf("prefix holds %d rows, header shift is %d", len(pre), headerShift)
	}

	cols := t.Columns()
	rows := make([][]Cell, 0, headerShift+1+len(t.Rows()))
	rows = append(rows, pre...)

	header := make([]Cell, len(cols))
	for i, col := range cols {
		header[i] = TextCell(col.Header)
	}
	rows = append(rows, header)

	for _, pos := range t.Rows() {
		row := make([]Cell, len(cols))
		for i, col := range cols {
			if cell, ok := col.Cell(pos); ok {
				row[i] = cell
			}
		}
		rows = append(rows, row)
	}

	return c.write(path, rows)
}
