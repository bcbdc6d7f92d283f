package interpret

import (
	"github.com/JonMunkholm/rosterscan/internal/diag"
	"github.com/JonMunkholm/rosterscan/internal/sheet"
)

// ColumnAnalysis pairs one column with its arbitration outcome.
// Outcomes are carried, not thrown: assembly decides later which
// failures matter.
type ColumnAnalysis struct {
	Column  *sheet.Column
	Outcome diag.Result[*Classified]
}

// AnalyzeColumns classifies every column of the table, in file order.
func AnalyzeColumns(t *sheet.Table) []ColumnAnalysis {
	cols := t.Columns()
	out := make([]ColumnAnalysis, len(cols))
	for i, col := range cols {
		out[i] = ColumnAnalysis{Column: col, Outcome: ClassifyColumn(col)}
	}
	return out
}
