package sheet

import (
	"strconv"
	"strings"
)

// Kind discriminates what a cell holds. The zero value is Empty.
type Kind int

const (
	// Empty is a cell that exists but holds no data (empty string).
	// A cell absent from its column altogether is "missing"; missing
	// and empty both count as no data, but only empty round-trips as
	// a written cell.
	Empty Kind = iota
	// Text holds an arbitrary string.
	Text
	// Number holds a numeric value plus the exact source text, so
	// write-back never reformats what the file contained.
	Number
)

// Cell is one value in a column. Text carries the lexical form for
// both Text and Number kinds.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// TextCell builds a cell from literal text. Empty text yields an
// Empty cell.
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: Text, Text: s}
}

// NumberCell builds a numeric cell, keeping the given lexical form.
func NumberCell(text string, value float64) Cell {
	return Cell{Kind: Number, Text: text, Number: value}
}

// parseCell converts raw field text into a cell, sniffing plain
// numeric literals so typed consumers see them as numbers. The
// original text is kept verbatim either way.
func parseCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	if t := strings.TrimSpace(s); t != "" && numericShape(t) {
		if v, err := strconv.ParseFloat(t, 64); err == nil {
			return Cell{Kind: Number, Text: s, Number: v}
		}
	}
	return Cell{Kind: Text, Text: s}
}

// numericShape filters out the exotic forms ParseFloat would accept
// ("Inf", "NaN", hex floats, underscores) before sniffing.
func numericShape(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		default:
			return false
		}
	}
	return true
}

// String returns the cell's lexical form; empty cells render as "".
func (c Cell) String() string {
	if c.Kind == Empty {
		return ""
	}
	return c.Text
}

// IsEmpty reports whether the cell holds no data.
func (c Cell) IsEmpty() bool { return c.Kind == Empty }

// rowIsBlank reports whether every cell in the row is empty.
func rowIsBlank(row []Cell) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
