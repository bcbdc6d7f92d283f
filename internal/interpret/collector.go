package interpret

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/JonMunkholm/rosterscan/internal/sheet"
)

// Collector writes per-row results back into the analyzed file. It is
// bound to the winning header offset and to the raw rows that sat
// above the header, which are preserved verbatim on every persist.
type Collector struct {
	path   string
	shift  int
	prefix *sheet.Grid
	table  *sheet.Table
}

func newCollector(path string, shift int, prefix *sheet.Grid, table *sheet.Table) *Collector {
	return &Collector{path: path, shift: shift, prefix: prefix, table: table}
}

// Path returns the file the collector persists to.
func (c *Collector) Path() string { return c.path }

// SetResults stores the named values on one row and persists the
// whole file. Columns are applied in sorted name order; a column the
// table does not have yet is created first, filled with empty strings
// for every row, then assigned.
func (c *Collector) SetResults(row int, values map[string]string) error {
	if !c.table.HasRow(row) {
		return fmt.Errorf("row %d is not in table %s", row, c.path)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		col := c.table.Upsert(name)
		col.Set(row, sheet.TextCell(values[name]))
	}

	if err := sheet.Write(c.table, c.path, c.shift, c.prefix); err != nil {
		return fmt.Errorf("persist results: %w", err)
	}
	slog.Debug("results persisted", "file", c.path, "row", row, "columns", names)
	return nil
}

// SetPersonResults is SetResults keyed by a person's row.
func (c *Collector) SetPersonResults(p Person, values map[string]string) error {
	return c.SetResults(p.Row, values)
}

// Value reads a cell back from the result table. ok is false when the
// column is unknown or the cell holds no data.
func (c *Collector) Value(row int, column string) (string, bool) {
	col, found := c.table.Column(column)
	if !found {
		return "", false
	}
	cell, present := col.Cell(row)
	if !present || cell.IsEmpty() {
		return "", false
	}
	return cell.String(), true
}
