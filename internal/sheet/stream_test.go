package sheet

import (
	"bytes"
	"io"
	"testing"
)

func TestTextReaderStripsBOM(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "leading BOM dropped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Efternamn,Förnamn")...),
			want:  "Efternamn,Förnamn",
		},
		{
			name:  "no BOM passes through",
			input: []byte("Efternamn,Förnamn"),
			want:  "Efternamn,Förnamn",
		},
		{
			name:  "only BOM yields empty stream",
			input: []byte{0xEF, 0xBB, 0xBF},
			want:  "",
		},
		{
			name:  "BOM mid-stream is kept",
			input: append([]byte("a,"), []byte{0xEF, 0xBB, 0xBF, 'b'}...),
			want:  "a,\uFEFFb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(newTextReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestTextReaderReplacesInvalidBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "stray continuation byte",
			input: []byte{'h', 'e', 0x80, 'l', 'o'},
			want:  "he�lo",
		},
		{
			name:  "truncated multibyte sequence",
			input: []byte{0xC3},
			want:  "�",
		},
		{
			name:  "latin1 umlaut",
			input: []byte{'L', 0xF6, 'f'},
			want:  "L�f",
		},
		{
			name:  "valid multibyte untouched",
			input: []byte("Löf"),
			want:  "Löf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := io.ReadAll(newTextReader(bytes.NewReader(tt.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestTextReaderSmallBuffer(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Löf,Åberg")...)
	r := newTextReader(bytes.NewReader(input))

	// One byte at a time forces multibyte runes to straddle reads.
	var out []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if string(out) != "Löf,Åberg" {
		t.Errorf("got %q, want %q", string(out), "Löf,Åberg")
	}
}
