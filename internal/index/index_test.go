package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	content := `# PDF set catalog
10800 CT14lo 1
13000 CT14nlo 1

13100 CT14nnlo 2
`

	f, err := Parse(content)
	require.NoError(t, err)
	require.Len(t, f.Entries, 3)

	assert.Equal(t, Entry{ID: 10800, Name: "CT14lo", DataSize: 1}, f.Entries[0])
	assert.Equal(t, Entry{ID: 13100, Name: "CT14nnlo", DataSize: 2}, f.Entries[2])

	e, ok := f.Lookup("CT14nlo")
	assert.True(t, ok)
	assert.Equal(t, 13000, e.ID)

	assert.True(t, f.Has("CT14lo"))
	assert.False(t, f.Has("NNPDF31_nnlo"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"too few fields", "10800 CT14lo", "expected 3 fields, got 2"},
		{"bad id", "abc CT14lo 1", `invalid set id "abc"`},
		{"bad size", "10800 CT14lo x", `invalid data size "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "pdfsets.index:1:")
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseErrorLineNumber(t *testing.T) {
	_, err := Parse("10800 CT14lo 1\nbroken line here and more\n")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
}

func TestParseFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-index-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "pdfsets.index")
	require.NoError(t, os.WriteFile(path, []byte("10800 CT14lo 1\n"), 0644))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Entries, 1)

	_, err = ParseFile(filepath.Join(tmpDir, "missing"))
	assert.Error(t, err)
}
