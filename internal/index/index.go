// Package index parses the pdfsets.index catalog of known PDF sets.
package index

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Entry is one catalog line: numeric set ID, set name, and data size.
type Entry struct {
	ID       int
	Name     string
	DataSize int
}

// ParseError represents an error during pdfsets.index parsing.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pdfsets.index:%d: %s", e.Line, e.Message)
}

// File is a parsed catalog.
type File struct {
	Entries []Entry

	byName map[string]Entry
}

// Parse parses pdfsets.index content from a string.
//
// The format is one whitespace-separated record per line: id, name, datasize.
// Blank lines and lines starting with # are skipped.
func Parse(content string) (*File, error) {
	f := &File{byName: make(map[string]Entry)}

	for lineNum, line := range strings.Split(content, "\n") {
		lineNum++ // 1-indexed for error messages

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, &ParseError{Line: lineNum, Message: fmt.Sprintf("expected 3 fields, got %d", len(fields))}
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: lineNum, Message: fmt.Sprintf("invalid set id %q", fields[0])}
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, &ParseError{Line: lineNum, Message: fmt.Sprintf("invalid data size %q", fields[2])}
		}

		entry := Entry{ID: id, Name: fields[1], DataSize: size}
		f.Entries = append(f.Entries, entry)
		f.byName[entry.Name] = entry
	}

	return f, nil
}

// ParseFile parses pdfsets.index from a filesystem path.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pdfsets.index: %w", err)
	}
	return Parse(string(content))
}

// Lookup returns the entry for a set name.
func (f *File) Lookup(name string) (Entry, bool) {
	e, ok := f.byName[name]
	return e, ok
}

// Has reports whether the catalog knows a set name.
func (f *File) Has(name string) bool {
	_, ok := f.byName[name]
	return ok
}
