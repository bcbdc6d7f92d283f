package sheet

import (
	"errors"
	"strings"
	"testing"
)

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "csv", path: "roster.csv"},
		{name: "xlsx", path: "roster.xlsx"},
		{name: "legacy xls", path: "roster.xls"},
		{name: "open document", path: "roster.odf"},
		{name: "suffix is case-insensitive", path: "ROSTER.CSV"},
		{name: "unknown suffix", path: "roster.txt", wantErr: true},
		{name: "no suffix", path: "roster", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codecFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("codecFor(%q) = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Errorf("codecFor(%q) = %v, want codec", tt.path, err)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	got := strings.Join(Formats(), " ")
	want := ".csv .odf .xls .xlsx"
	if got != want {
		t.Errorf("Formats() = %q, want %q", got, want)
	}
}

func TestXLSWriteRefused(t *testing.T) {
	tbl := NewTable([]int{0})
	tbl.AddColumn("Efternamn", map[int]Cell{0: TextCell("Svensson")})

	err := Write(tbl, t.TempDir()+"/out.xls", 0, nil)
	if err == nil {
		t.Fatal("writing .xls should fail")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("error = %q, want write refusal", err)
	}
}
