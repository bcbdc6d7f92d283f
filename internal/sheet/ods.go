package sheet

import (
	"archive/zip"
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func init() {
	registerCodec(".odf", odsCodec{})
}

// odsCodec handles OpenDocument spreadsheet containers: a zip with a
// mimetype entry, a manifest, and the sheet data in content.xml. Only
// the first sheet is read, matching the other workbook codecs.
type odsCodec struct{}

const odsMime = "application/vnd.oasis.opendocument.spreadsheet"

const odsManifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.spreadsheet"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

// maxODSRepeat caps expansion of repeated rows and cells. Office
// suites pad the sheet grid with huge repeat counts on the trailing
// filler row and cell.
var maxODSRepeat = 4096

// ----------------------------------------------------------------------------
// Reading
// ----------------------------------------------------------------------------

func (odsCodec) read(path string) (*Grid, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	defer zr.Close()

	var content *zip.File
	for _, zf := range zr.File {
		if zf.Name == "content.xml" {
			content = zf
			break
		}
	}
	if content == nil {
		return nil, fmt.Errorf("document %s has no content.xml", path)
	}
	if Hardened() && content.UncompressedSize64 > uint64(MaxArchiveEntrySize) {
		return nil, fmt.Errorf("document %s: content.xml exceeds size limit", path)
	}

	rc, err := content.Open()
	if err != nil {
		return nil, fmt.Errorf("open content.xml: %w", err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if Hardened() {
		// The declared uncompressed size is untrusted; cap the bytes
		// actually decompressed as well.
		r = io.LimitReader(rc, MaxArchiveEntrySize)
	}

	g, err := decodeODSContent(r)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}
	return g, nil
}

func decodeODSContent(r io.Reader) (*Grid, error) {
	dec := xml.NewDecoder(r)

	var (
		rows       [][]Cell
		row        []Cell
		rowRepeat  int
		depth      int
		tableSeen  int
		inTable    bool
		inCell     bool
		cellRepeat int
		valueType  string
		valueAttr  string
		sawPara    bool
		text       strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse content.xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			depth++
			if Hardened() && depth > MaxXMLDepth {
				return nil, fmt.Errorf("content.xml nesting exceeds %d levels", MaxXMLDepth)
			}
			switch el.Name.Local {
			case "table":
				tableSeen++
				inTable = tableSeen == 1
			case "table-row":
				if !inTable {
					continue
				}
				row = nil
				rowRepeat = repeatCount(el, "number-rows-repeated")
			case "table-cell", "covered-table-cell":
				if !inTable {
					continue
				}
				inCell = true
				sawPara = false
				text.Reset()
				cellRepeat = repeatCount(el, "number-columns-repeated")
				valueType = attrLocal(el, "value-type")
				valueAttr = attrLocal(el, "value")
			case "p":
				if inCell {
					if sawPara {
						text.WriteByte('\n')
					}
					sawPara = true
				}
			}

		case xml.CharData:
			if !inCell || !sawPara {
				continue
			}
			if Hardened() && text.Len()+len(el) > MaxCellText {
				return nil, fmt.Errorf("cell text exceeds %d bytes", MaxCellText)
			}
			text.Write(el)

		case xml.EndElement:
			depth--
			switch el.Name.Local {
			case "table":
				inTable = false
			case "table-cell", "covered-table-cell":
				if !inCell {
					continue
				}
				inCell = false
				cell := odsCell(valueType, valueAttr, text.String())
				for i := 0; i < cellRepeat; i++ {
					row = append(row, cell)
				}
			case "table-row":
				if !inTable {
					continue
				}
				kept := trimTrailingEmpty(row)
				for i := 0; i < rowRepeat; i++ {
					rows = append(rows, append([]Cell(nil), kept...))
				}
				row = nil
			}
		}
	}

	for len(rows) > 0 && rowIsBlank(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return &Grid{Rows: rows}, nil
}

// odsCell maps a decoded cell onto the table model: float cells keep
// the canonical office:value as their lexical form, everything else is
// the display text.
func odsCell(valueType, valueAttr, text string) Cell {
	if valueType == "float" && valueAttr != "" {
		if v, err := strconv.ParseFloat(valueAttr, 64); err == nil {
			return NumberCell(valueAttr, v)
		}
	}
	return TextCell(text)
}

func repeatCount(el xml.StartElement, name string) int {
	v := attrLocal(el, name)
	if v == "" {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	if n > maxODSRepeat {
		n = maxODSRepeat
	}
	return n
}

func attrLocal(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func trimTrailingEmpty(row []Cell) []Cell {
	for len(row) > 0 && row[len(row)-1].IsEmpty() {
		row = row[:len(row)-1]
	}
	return row
}

// ----------------------------------------------------------------------------
// Writing
// ----------------------------------------------------------------------------

func (odsCodec) write(path string, rows [][]Cell) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	zw := zip.NewWriter(f)
	if err := writeODSParts(zw, rows); err != nil {
		zw.Close()
		f.Close()
		return fmt.Errorf("write document %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finish document %s: %w", path, err)
	}
	return f.Close()
}

func writeODSParts(zw *zip.Writer, rows [][]Cell) error {
	// The mimetype entry comes first and is stored uncompressed, per
	// ODF packaging rules.
	mt, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return err
	}
	if _, err := mt.Write([]byte(odsMime)); err != nil {
		return err
	}

	mf, err := zw.Create("META-INF/manifest.xml")
	if err != nil {
		return err
	}
	if _, err := mf.Write([]byte(odsManifest)); err != nil {
		return err
	}

	cw, err := zw.Create("content.xml")
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(cw)
	if err := writeODSContent(bw, rows); err != nil {
		return err
	}
	return bw.Flush()
}

func writeODSContent(w *bufio.Writer, rows [][]Cell) error {
	w.WriteString(xml.Header)
	w.WriteString(`<office:document-content` +
		` xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
		` xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"` +
		` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
		` office:version="1.2">`)
	w.WriteString(`<office:body><office:spreadsheet><table:table table:name="Sheet1">`)

	for _, row := range rows {
		w.WriteString(`<table:table-row>`)
		for _, cell := range row {
			if err := writeODSCell(w, cell); err != nil {
				return err
			}
		}
		w.WriteString(`</table:table-row>`)
	}

	w.WriteString(`</table:table></office:spreadsheet></office:body></office:document-content>`)
	return nil
}

func writeODSCell(w *bufio.Writer, cell Cell) error {
	if cell.IsEmpty() {
		_, err := w.WriteString(`<table:table-cell/>`)
		return err
	}

	// A numeric cell is written typed only when its lexical form
	// survives the office:value attribute unchanged.
	if cell.Kind == Number {
		if _, err := strconv.ParseFloat(cell.Text, 64); err == nil {
			w.WriteString(`<table:table-cell office:value-type="float" office:value="`)
			if err := xml.EscapeText(w, []byte(cell.Text)); err != nil {
				return err
			}
			w.WriteString(`"><text:p>`)
			if err := xml.EscapeText(w, []byte(cell.Text)); err != nil {
				return err
			}
			_, err := w.WriteString(`</text:p></table:table-cell>`)
			return err
		}
	}

	w.WriteString(`<table:table-cell office:value-type="string"><text:p>`)
	if err := xml.EscapeText(w, []byte(cell.Text)); err != nil {
		return err
	}
	_, err := w.WriteString(`</text:p></table:table-cell>`)
	return err
}
