package sheet

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/xuri/excelize/v2"
)

// Parse limits installed by Harden. Package variables so operators can
// retune them before Harden is called.
var (
	// MaxInputFileSize caps the on-disk size of any file a codec will
	// open. Zero means unlimited.
	MaxInputFileSize int64

	// MaxArchiveEntrySize caps the uncompressed size of any single
	// entry pulled out of a zip-based workbook (.xlsx, .odf).
	MaxArchiveEntrySize int64 = 1 << 30

	// MaxXMLPartSize caps the uncompressed size of XML parts inside
	// .xlsx archives.
	MaxXMLPartSize int64 = 16 << 20

	// MaxXMLDepth caps element nesting while decoding .odf content.
	MaxXMLDepth = 256

	// MaxCellText caps the text accumulated for one .odf cell.
	MaxCellText = 1 << 20
)

var hardened atomic.Bool

// Harden arms the parse limits above for every subsequent read and
// write. Untrusted spreadsheets are decompressed archives full of XML,
// and without limits a small file can expand into an enormous parse.
// Call it once at startup, before the first file is opened; extra
// calls are no-ops. Until it is called, parsing runs with the
// libraries' own defaults.
func Harden() {
	hardened.Store(true)
}

// Hardened reports whether Harden has been called.
func Hardened() bool {
	return hardened.Load()
}

// openOptions yields the excelize options implied by the current
// hardening state.
func openOptions() []excelize.Options {
	if !hardened.Load() {
		return nil
	}
	return []excelize.Options{{
		UnzipSizeLimit:    MaxArchiveEntrySize,
		UnzipXMLSizeLimit: MaxXMLPartSize,
	}}
}

// checkFileSize enforces MaxInputFileSize before a codec opens path.
func checkFileSize(path string) error {
	if !hardened.Load() || MaxInputFileSize <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > MaxInputFileSize {
		return fmt.Errorf("%s: file size %d exceeds limit %d", path, info.Size(), MaxInputFileSize)
	}
	return nil
}
