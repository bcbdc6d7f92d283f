package sheet

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

func init() {
	registerCodec(".xlsx", xlsxCodec{})
}

type xlsxCodec struct{}

func (xlsxCodec) read(path string) (*Grid, error) {
	f, err := excelize.OpenFile(path, openOptions()...)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	// Raw stored values, not number-format renderings.
	records, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}

	rows := make([][]Cell, len(records))
	for i, rec := range records {
		row := make([]Cell, len(rec))
		for j, v := range rec {
			row[j] = parseCell(v)
		}
		rows[i] = row
	}
	return &Grid{Rows: rows}, nil
}

func (xlsxCodec) write(path string, rows [][]Cell) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sheet1"
	for i, row := range rows {
		for j, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference (%d,%d): %w", j, i, err)
			}
			if err := setCell(f, sheetName, ref, cell); err != nil {
				return fmt.Errorf("set cell %s: %w", ref, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// setCell writes a numeric cell as a number only when that loses
// nothing; any other lexical form is stored as text so the file keeps
// exactly what the table holds.
func setCell(f *excelize.File, sheet, ref string, cell Cell) error {
	if cell.Kind == Number && cell.Text == strconv.FormatFloat(cell.Number, 'f', -1, 64) {
		return f.SetCellValue(sheet, ref, cell.Number)
	}
	return f.SetCellStr(sheet, ref, cell.Text)
}
