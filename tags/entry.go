package tags

import (
	"strings"
)

// HeaderPrefix marks pseudo-tag lines carrying file metadata rather than symbols.
const HeaderPrefix = "!_TAG_"

// Entry represents a single tag line: a symbol, the file defining it,
// and a locator (line number or search pattern).
type Entry struct {
	Symbol  string
	File    string
	Locator string
}

// ParseEntry parses a tab-separated tag line. It returns false for header
// lines and for malformed lines that carry no file field (bare identifiers
// some extractors emit on parse errors).
func ParseEntry(line string) (*Entry, bool) {
	if line == "" || IsHeaderLine(line) {
		return nil, false
	}
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 2 {
		return nil, false
	}
	entry := &Entry{
		Symbol: parts[0],
		File:   parts[1],
	}
	if len(parts) > 2 {
		entry.Locator = parts[2]
	}
	if entry.Symbol == "" || entry.File == "" {
		return nil, false
	}
	return entry, true
}

// Line renders the entry back into its tab-separated wire form.
func (e *Entry) Line() string {
	builder := &strings.Builder{}
	builder.WriteString(e.Symbol)
	builder.WriteString("\t")
	builder.WriteString(e.File)
	if e.Locator != "" {
		builder.WriteString("\t")
		builder.WriteString(e.Locator)
	}
	return builder.String()
}

// IsHeaderLine reports whether a line is a pseudo-tag header marker.
func IsHeaderLine(line string) bool {
	return strings.HasPrefix(line, HeaderPrefix)
}
