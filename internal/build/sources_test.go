package build

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfforge/pdfforge/internal/datadir"
)

func TestSourcesScan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-sources-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	for _, name := range []string{"GridPDF.cc", "AlphaS.cc", "Factories.cc", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("//"), 0644))
	}
	// Subdirectories are not descended into
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "sub", "Hidden.cc"), []byte("//"), 0644))

	files, err := Sources(tmpDir, SourceExt)
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(tmpDir, "AlphaS.cc"), files[0])
	assert.Equal(t, filepath.Join(tmpDir, "Factories.cc"), files[1])
	assert.Equal(t, filepath.Join(tmpDir, "GridPDF.cc"), files[2])

	// Two successive runs return the identical set
	again, err := Sources(tmpDir, SourceExt)
	require.NoError(t, err)
	assert.Equal(t, files, again)
}

func TestManifestSources(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-sources-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	for _, name := range []string{"GridPDF.cc", "AlphaS.cc"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("//"), 0644))
	}

	// Manifest order is preserved exactly
	files, err := ManifestSources(tmpDir, []string{"GridPDF.cc", "AlphaS.cc"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "GridPDF.cc"),
		filepath.Join(tmpDir, "AlphaS.cc"),
	}, files)

	_, err = ManifestSources(tmpDir, []string{"GridPDF.cc", "Gone.cc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gone.cc")
}

func TestReadManifest(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-sources-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "sources.list")
	content := "# library sources\nGridPDF.cc\n\nAlphaS.cc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	names, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GridPDF.cc", "AlphaS.cc"}, names)
}

func TestDataPrefixDefine(t *testing.T) {
	root := datadir.Root{Path: "/opt/pdfforge/data"}
	assert.Equal(t, `LHAPDF_DATA_PREFIX="/opt/pdfforge/data"`, DataPrefixDefine(root))
}

func TestResolveOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/src", DefaultLibName), resolveOutputPath("/src", ""))
	assert.Equal(t, filepath.Join("/src", "out.a"), resolveOutputPath("/src", "out.a"))
	assert.Equal(t, "/elsewhere/out.a", resolveOutputPath("/src", "/elsewhere/out.a"))
}
