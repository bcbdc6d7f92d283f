package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
)

func init() {
	registerCodec(".csv", csvCodec{})
}

type csvCodec struct{}

func (csvCodec) read(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(newTextReader(f))
	r.FieldsPerRecord = -1 // ragged records allowed
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", path, err)
	}

	rows := make([][]Cell, len(records))
	for i, rec := range records {
		row := make([]Cell, len(rec))
		for j, field := range rec {
			row[j] = parseCell(field)
		}
		rows[i] = row
	}
	return &Grid{Rows: rows}, nil
}

func (csvCodec) write(path string, rows [][]Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	w := csv.NewWriter(f)
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, cell := range row {
			rec[j] = cell.String()
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write csv %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush csv %s: %w", path, err)
	}
	return f.Close()
}
