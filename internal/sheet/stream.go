package sheet

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// newTextReader wraps r so text parsing sees clean UTF-8: a leading
// byte-order mark is dropped and invalid byte sequences are replaced
// with U+FFFD instead of poisoning downstream field values.
func newTextReader(r io.Reader) io.Reader {
	return &utf8Cleaner{br: bufio.NewReader(&bomStripper{br: bufio.NewReader(r)})}
}

// bomStripper removes a UTF-8 BOM from the head of the stream, if
// present. Excel exports routinely carry one.
type bomStripper struct {
	br      *bufio.Reader
	checked bool
}

func (s *bomStripper) Read(p []byte) (int, error) {
	if !s.checked {
		s.checked = true
		if head, _ := s.br.Peek(3); len(head) == 3 &&
			head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
			if _, err := s.br.Discard(3); err != nil {
				return 0, err
			}
		}
	}
	return s.br.Read(p)
}

// utf8Cleaner re-encodes the stream rune by rune, substituting the
// replacement character for invalid sequences. Runes that straddle a
// Read boundary are carried over to the next call.
type utf8Cleaner struct {
	br    *bufio.Reader
	carry [utf8.UTFMax]byte
	cn    int
}

func (c *utf8Cleaner) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if c.cn > 0 {
			m := copy(p[n:], c.carry[:c.cn])
			copy(c.carry[:], c.carry[m:c.cn])
			c.cn -= m
			n += m
			continue
		}

		r, _, err := c.br.ReadRune()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}

		// bufio yields RuneError with size 1 for each invalid byte,
		// which re-encodes below as U+FFFD.
		size := utf8.EncodeRune(c.carry[:], r)
		m := copy(p[n:], c.carry[:size])
		if m < size {
			copy(c.carry[:], c.carry[m:size])
			c.cn = size - m
		}
		n += m
	}
	return n, nil
}
