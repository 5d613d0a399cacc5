package parsers

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned when a charset name cannot be resolved.
var ErrUnknownCharset = errors.New("unknown charset")

// LIFParser decodes LIF race files into lines.
type LIFParser struct {
	charset string
	enc     encoding.Encoding
}

// NewLIFParser creates a parser for the named charset ("" or "utf-8" for UTF-8,
// any WHATWG label such as "windows-1252" otherwise).
func NewLIFParser(charset string) (*LIFParser, error) {
	enc, err := LookupCharset(charset)
	if err != nil {
		return nil, err
	}
	return &LIFParser{charset: charset, enc: enc}, nil
}

// Parse decodes data and splits it into lines.
// A byte order mark overrides the configured charset.
func (p *LIFParser) Parse(data []byte) (*ParsedFile, error) {
	decoder := unicode.BOMOverride(p.enc.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s content: %w", p.Charset(), err)
	}

	return &ParsedFile{Lines: SplitLines(string(decoded))}, nil
}

// Charset returns the configured charset label.
func (p *LIFParser) Charset() string {
	if p.charset == "" {
		return "utf-8"
	}
	return p.charset
}

// LookupCharset resolves a charset label.
func LookupCharset(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// SplitLines splits text on \n, \r\n and \r. A trailing line break does not
// produce an extra empty line; blank lines in the middle are kept.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
