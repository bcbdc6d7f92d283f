package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestCSVReadWithShift(t *testing.T) {
	path := writeFixture(t, "roster.csv",
		"Roster export,,\n"+
			"Generated 2024-05-01,,\n"+
			"Efternamn,Förnamn,Personnummer\n"+
			"Svensson,Anna,900101-1234\n"+
			"Löf,Bo,910202-5678\n")

	tbl, err := Read(path, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	col, ok := tbl.Column("Efternamn")
	if !ok {
		t.Fatal("column Efternamn not found")
	}
	if got := col.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	cell, _ := col.Cell(1)
	if cell.String() != "Löf" {
		t.Errorf("row 1 = %q, want %q", cell.String(), "Löf")
	}
}

func TestCSVWriteKeepsPrefixRows(t *testing.T) {
	path := writeFixture(t, "roster.csv",
		"Roster export,,\n"+
			"Efternamn,Förnamn,Personnummer\n"+
			"Svensson,Anna,900101-1234\n")

	raw, err := ReadRaw(path)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	tbl, err := Read(path, 1)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	col := tbl.Upsert("Status")
	col.Set(0, TextCell("ok"))

	prefix := &Grid{Rows: raw.Rows[:1]}
	if err := Write(tbl, path, 1, prefix); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "Roster export,,\n" +
		"Efternamn,Förnamn,Personnummer,Status\n" +
		"Svensson,Anna,900101-1234,ok\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}

	// A second read sees the new column where the old ones were.
	again, err := Read(path, 1)
	if err != nil {
		t.Fatalf("re-read: %v", err)
	}
	status, ok := again.Column("Status")
	if !ok {
		t.Fatal("column Status not found after write")
	}
	if cell, _ := status.Cell(0); cell.String() != "ok" {
		t.Errorf("Status row 0 = %q, want %q", cell.String(), "ok")
	}
}

func TestCSVNumericLexicalFormSurvives(t *testing.T) {
	path := writeFixture(t, "roster.csv",
		"Kod,Namn\n"+
			"0046,Svensson\n"+
			"1e3,Löf\n")

	tbl, err := Read(path, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := Write(tbl, path, 0, nil); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "Kod,Namn\n0046,Svensson\n1e3,Löf\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestCSVReadSanitizesEncoding(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Namn\nL")...)
	raw = append(raw, 0xF6) // latin-1 ö, invalid as UTF-8
	raw = append(raw, []byte("f\n")...)

	path := filepath.Join(t.TempDir(), "roster.csv")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := Read(path, 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	col, ok := tbl.Column("Namn")
	if !ok {
		t.Fatal("BOM should not stick to the first header")
	}
	cell, _ := col.Cell(0)
	if got, want := cell.String(), "L�f"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
}

func TestCSVRaggedRows(t *testing.T) {
	path := writeFixture(t, "roster.csv",
		"A,B,C\n"+
			"1,2\n"+
			"4,5,6,7\n")

	tbl, err := Read(path, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := tbl.Column("C")
	if _, ok := c.Cell(0); ok {
		t.Error("short row should leave C missing at row 0")
	}
	if cell, ok := c.Cell(1); !ok || cell.String() != "6" {
		t.Errorf("C row 1 = %q, %v, want 6", cell.String(), ok)
	}
	if got := len(tbl.Columns()); got != 3 {
		t.Errorf("columns = %d, want 3", got)
	}
}

func TestReadUnknownFormat(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "roster.txt"), 0)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestWritePrefixMismatch(t *testing.T) {
	tbl := NewTable([]int{0})
	tbl.AddColumn("A", map[int]Cell{0: TextCell("x")})

	prefix := &Grid{Rows: [][]Cell{{TextCell("noise")}}}
	err := Write(tbl, filepath.Join(t.TempDir(), "out.csv"), 2, prefix)
	if err == nil {
		t.Fatal("mismatched prefix should fail")
	}
	if !strings.Contains(err.Error(), "prefix holds 1 rows, header shift is 2") {
		t.Errorf("error = %q, want prefix mismatch", err)
	}
}
