package sheet

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned when a path's suffix maps to no codec.
var ErrUnknownFormat = errors.New("unknown format")

// codec reads and writes one file format. Formats are selected purely
// by filename suffix.
type codec interface {
	read(path string) (*Grid, error)
	write(path string, rows [][]Cell) error
}

var (
	codecsMu sync.RWMutex
	codecs   = make(map[string]codec)
)

// registerCodec wires a suffix to a codec. Called from init; panics on
// duplicate registration.
func registerCodec(ext string, c codec) {
	codecsMu.Lock()
	defer codecsMu.Unlock()

	if _, dup := codecs[ext]; dup {
		panic(fmt.Sprintf("sheet: codec already registered for %q", ext))
	}
	codecs[ext] = c
}

// codecFor resolves the codec for a path by its lower-cased suffix.
func codecFor(path string) (codec, error) {
	ext := strings.ToLower(filepath.Ext(path))

	codecsMu.RLock()
	c, ok := codecs[ext]
	codecsMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return c, nil
}

// Formats lists the registered suffixes, for help text.
func Formats() []string {
	codecsMu.RLock()
	defer codecsMu.RUnlock()

	out := make([]string, 0, len(codecs))
	for ext := range codecs {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
