package proto

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var charsetAliases = map[string]*charmap.Charmap{
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"cp866":        charmap.CodePage866,
	"cp1251":       charmap.Windows1251,
	"cp1252":       charmap.Windows1252,
	"windows-1251": charmap.Windows1251,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
}

// Charset returns the decoder for a legacy single-byte charset name. An
// empty name or "utf-8" selects no decoding.
func Charset(name string) (*encoding.Decoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	if cm, ok := charsetAliases[name]; ok {
		return cm.NewDecoder(), nil
	}
	for _, enc := range charmap.All {
		cm, ok := enc.(*charmap.Charmap)
		if ok && strings.EqualFold(cm.String(), name) {
			return cm.NewDecoder(), nil
		}
	}
	return nil, fmt.Errorf("proto: unknown charset %q", name)
}

// Reader reads commands from a driver stream, one per line.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader reads from r, decoding it from charset first when one is named.
func NewReader(r io.Reader, charset string) (*Reader, error) {
	dec, err := Charset(charset)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}
	return &Reader{sc: bufio.NewScanner(r)}, nil
}

// Next returns the next command. Blank lines and lines starting with # are
// skipped. A malformed line yields an error naming the line; reading may
// continue after it. The stream end yields io.EOF.
func (r *Reader) Next() (Command, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := ParseLine(r.sc.Text())
		if err != nil {
			return Command{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return cmd, nil
	}
	if err := r.sc.Err(); err != nil {
		return Command{}, fmt.Errorf("proto: read: %w", err)
	}
	return Command{}, io.EOF
}
