package main

import (
	"errors"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "unknown format maps correctly",
			err:         errors.New(`unknown format: ".txt"`),
			wantCode:    "FILE001",
			wantMessage: "The file type is not a supported spreadsheet format",
		},
		{
			name:        "missing file maps correctly",
			err:         errors.New("open roster.csv: no such file or directory"),
			wantCode:    "FILE002",
			wantMessage: "The file does not exist",
		},
		{
			name:        "size limit maps correctly",
			err:         errors.New("roster.csv: file size 200000000 exceeds limit 104857600"),
			wantCode:    "FILE003",
			wantMessage: "The file is larger than the configured size limit",
		},
		{
			name:        "xls write refusal maps correctly",
			err:         errors.New("writing legacy .xls workbooks is not supported, save roster.xls as .xlsx instead"),
			wantCode:    "FILE004",
			wantMessage: "Legacy .xls files can be read but not written",
		},
		{
			name:        "ambiguity maps correctly",
			err:         errors.New(`ambiguous interpretation of file "roster.csv": header row shifts 0 and 1 all yield a valid person list`),
			wantCode:    "SCAN002",
			wantMessage: "More than one header position yields a readable roster",
		},
		{
			name: "nested missing role wins over the aggregate headline",
			err: errors.New(`no consistent interpretation of file "roster.csv"
  header row shift 0
    missing required role "identifier"`),
			wantCode:    "SCAN003",
			wantMessage: "A required column could not be found",
		},
		{
			name:        "aggregate headline maps when no cause is recognized",
			err:         errors.New(`no consistent interpretation of file "roster.csv"`),
			wantCode:    "SCAN001",
			wantMessage: "No header position yields a readable roster",
		},
		{
			name:        "unknown row maps correctly",
			err:         errors.New("row 99 is not in table roster.csv"),
			wantCode:    "WRITE001",
			wantMessage: "The row does not exist in the analyzed file",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "RUN001",
			wantMessage: "Analysis timed out",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("UNKNOWN FORMAT: .TXT"),
			wantCode:    "FILE001",
			wantMessage: "The file type is not a supported spreadsheet format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if got.Message != tt.wantMessage {
				t.Errorf("MapError() message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	err := errors.New(`unknown format: ".txt"`)
	result := FormatUserError(err)

	expected := "The file type is not a supported spreadsheet format (Code: FILE001). Use a .csv, .xlsx, .xls or .odf file"
	if result != expected {
		t.Errorf("FormatUserError() = %q, want %q", result, expected)
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  errors.New("unknown format"),
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseValues(t *testing.T) {
	values, err := parseValues([]string{"Grade=PASS", "Reported=2026-01-12", "Note=a=b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values["Grade"] != "PASS" {
		t.Errorf("Grade = %q, want PASS", values["Grade"])
	}
	// Only the first = splits, so values may contain equals signs.
	if values["Note"] != "a=b" {
		t.Errorf("Note = %q, want a=b", values["Note"])
	}

	if _, err := parseValues([]string{"nonsense"}); err == nil {
		t.Error("pair without = should fail")
	}
	if _, err := parseValues([]string{"=x"}); err == nil {
		t.Error("empty column name should fail")
	}
	if _, err := parseValues(nil); err == nil {
		t.Error("no pairs should fail")
	}
}
