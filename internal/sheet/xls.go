package sheet

import (
	"fmt"

	"github.com/extrame/xls"
)

func init() {
	registerCodec(".xls", xlsCodec{})
}

// xlsCodec reads legacy BIFF workbooks. Writing them is not
// supported; callers get a descriptive error instead of a corrupt
// file.
type xlsCodec struct{}

func (xlsCodec) read(path string) (*Grid, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open legacy workbook %s: %w", path, err)
	}

	ws := wb.GetSheet(0)
	if ws == nil {
		return nil, fmt.Errorf("legacy workbook %s has no sheets", path)
	}

	rows := make([][]Cell, 0, int(ws.MaxRow)+1)
	for r := 0; r <= int(ws.MaxRow); r++ {
		row := ws.Row(r)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]Cell, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = parseCell(row.Col(c))
		}
		rows = append(rows, cells)
	}
	return &Grid{Rows: rows}, nil
}

func (xlsCodec) write(path string, rows [][]Cell) error {
	return fmt.Errorf("writing legacy .xls workbooks is not supported, save %s as .xlsx instead", path)
}
