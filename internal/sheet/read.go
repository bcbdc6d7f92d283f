package sheet

import (
	"fmt"
)

// ReadRaw parses the whole file as a grid of cells: no header
// promotion, every physical row kept. The format is chosen by the
// path's suffix.
func ReadRaw(path string) (*Grid, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}
	if err := checkFileSize(path); err != nil {
		return nil, err
	}
	return c.read(path)
}

// Read parses the file and promotes the row at headerShift (0-based)
// to column headers. Rows above the header are dropped here and
// preserved by Write; rows below it become data rows. Blank data rows
// are skipped before row positions are assigned, so positions come
// out contiguous at read time.
func Read(path string, headerShift int) (*Table, error) {
	g, err := ReadRaw(path)
	if err != nil {
		return nil, err
	}
	return tableFromGrid(g, headerShift)
}

func tableFromGrid(g *Grid, headerShift int) (*Table, error) {
	if headerShift < 0 {
		return nil, fmt.Errorf("header shift %d is negative", headerShift)
	}
	if headerShift >= len(g.Rows) {
		return nil, fmt.Errorf("header shift %d: file has only %d rows", headerShift, len(g.Rows))
	}

	header := g.Rows[headerShift]
	width := len(header)

	// The header row's width defines the table width: longer data
	// rows are truncated, shorter ones leave missing cells.
	var data [][]Cell
	for _, row := range g.Rows[headerShift+1:] {
		if rowIsBlank(row) {
			continue
		}
		data = append(data, row)
	}

	rows := make([]int, len(data))
	for i := range data {
		rows[i] = i
	}

	t := NewTable(rows)
	for c := 0; c < width; c++ {
		cells := make(map[int]Cell, len(data))
		for pos, row := range data {
			if c < len(row) {
				cells[pos] = row[c]
			}
		}
		t.AddColumn(header[c].String(), cells)
	}
	return t, nil
}
