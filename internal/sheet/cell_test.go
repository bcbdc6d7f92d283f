package sheet

import "testing"

func TestParseCell(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKind   Kind
		wantText   string
		wantNumber float64
	}{
		{
			name:     "empty string is empty cell",
			input:    "",
			wantKind: Empty,
		},
		{
			name:     "plain word is text",
			input:    "Svensson",
			wantKind: Text,
			wantText: "Svensson",
		},
		{
			name:       "integer is number",
			input:      "42",
			wantKind:   Number,
			wantText:   "42",
			wantNumber: 42,
		},
		{
			name:       "leading zeros keep lexical form",
			input:      "0046",
			wantKind:   Number,
			wantText:   "0046",
			wantNumber: 46,
		},
		{
			name:       "decimal is number",
			input:      "3.5",
			wantKind:   Number,
			wantText:   "3.5",
			wantNumber: 3.5,
		},
		{
			name:       "scientific notation is number",
			input:      "1e3",
			wantKind:   Number,
			wantText:   "1e3",
			wantNumber: 1000,
		},
		{
			name:       "signed value is number",
			input:      "+5",
			wantKind:   Number,
			wantText:   "+5",
			wantNumber: 5,
		},
		{
			name:       "surrounding spaces kept verbatim",
			input:      " 42 ",
			wantKind:   Number,
			wantText:   " 42 ",
			wantNumber: 42,
		},
		{
			name:     "lone minus is text",
			input:    "-",
			wantKind: Text,
			wantText: "-",
		},
		{
			name:     "identifier with separator is text",
			input:    "19900101-1234",
			wantKind: Text,
			wantText: "19900101-1234",
		},
		{
			name:     "NaN is text",
			input:    "NaN",
			wantKind: Text,
			wantText: "NaN",
		},
		{
			name:     "Inf is text",
			input:    "Inf",
			wantKind: Text,
			wantText: "Inf",
		},
		{
			name:     "hex float is text",
			input:    "0x1p4",
			wantKind: Text,
			wantText: "0x1p4",
		},
		{
			name:     "underscored digits are text",
			input:    "1_000",
			wantKind: Text,
			wantText: "1_000",
		},
		{
			name:     "comma decimal is text",
			input:    "1,5",
			wantKind: Text,
			wantText: "1,5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseCell(tt.input)
			if got.Kind != tt.wantKind {
				t.Errorf("parseCell(%q) kind = %v, want %v", tt.input, got.Kind, tt.wantKind)
			}
			if got.Text != tt.wantText {
				t.Errorf("parseCell(%q) text = %q, want %q", tt.input, got.Text, tt.wantText)
			}
			if got.Number != tt.wantNumber {
				t.Errorf("parseCell(%q) number = %v, want %v", tt.input, got.Number, tt.wantNumber)
			}
		})
	}
}

func TestTextCell(t *testing.T) {
	if got := TextCell(""); !got.IsEmpty() {
		t.Errorf("TextCell(\"\") = %+v, want empty cell", got)
	}
	got := TextCell("hello")
	if got.Kind != Text || got.Text != "hello" {
		t.Errorf("TextCell(\"hello\") = %+v, want text cell", got)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "empty renders blank", cell: Cell{}, want: ""},
		{name: "text renders itself", cell: TextCell("abc"), want: "abc"},
		{name: "number renders lexical form", cell: NumberCell("0046", 46), want: "0046"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
