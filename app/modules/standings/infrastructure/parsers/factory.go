package parsers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// LIFExtension is the suffix of race result files.
const LIFExtension = ".lif"

// ErrUnsupportedFileType is returned for files no parser understands.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ParsedFile is the decoded line content of one result file.
type ParsedFile struct {
	Lines []string
}

// Parser defines the interface for result file parsers
type Parser interface {
	Parse(data []byte) (*ParsedFile, error)
}

// ParserFactory defines the interface for creating parsers
type ParserFactory interface {
	GetParser(filename string) (Parser, error)
}

// Factory creates the appropriate parser based on file extension
type Factory struct {
	charset string
}

// NewFactory creates a parser factory decoding files with the named charset.
// An empty charset means UTF-8.
func NewFactory(charset string) *Factory {
	return &Factory{charset: charset}
}

// GetParser returns the appropriate parser for the given filename
func (f *Factory) GetParser(filename string) (Parser, error) {
	ext := filepath.Ext(filename)

	switch ext {
	case LIFExtension:
		return NewLIFParser(f.charset)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
}

// IsLIFFile reports whether name carries the .lif suffix.
// The suffix match is case-sensitive.
func IsLIFFile(name string) bool {
	return strings.HasSuffix(name, LIFExtension)
}
