package datadir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfforge/pdfforge/forgeerr"
)

// writeTemplates populates a template directory with both bootstrap files.
func writeTemplates(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfName), []byte("Verbosity: 1\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexName), []byte("10000 CT14lo 1\n"), 0644))
}

func TestEnsureSetDirInstallsBootstrap(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-bootstrap-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	templateDir := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(templateDir, 0755))
	writeTemplates(t, templateDir)

	root := Root{Path: filepath.Join(tmpDir, "data")}
	require.NoError(t, os.MkdirAll(root.Path, 0755))

	setDir, err := EnsureSetDir(root, templateDir)
	require.NoError(t, err)

	assert.Equal(t, root.SetDir(), setDir)
	assert.FileExists(t, filepath.Join(setDir, ConfName))
	assert.FileExists(t, filepath.Join(setDir, IndexName))

	content, err := os.ReadFile(filepath.Join(setDir, ConfName))
	require.NoError(t, err)
	assert.Equal(t, "Verbosity: 1\n", string(content))
}

func TestEnsureSetDirIdempotent(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-bootstrap-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	templateDir := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(templateDir, 0755))
	writeTemplates(t, templateDir)

	root := Root{Path: filepath.Join(tmpDir, "data")}
	require.NoError(t, os.MkdirAll(root.Path, 0755))

	setDir, err := EnsureSetDir(root, templateDir)
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(setDir, IndexName))
	require.NoError(t, err)

	_, err = EnsureSetDir(root, templateDir)
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(setDir, IndexName))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsureSetDirNeverOverwrites(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-bootstrap-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	templateDir := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(templateDir, 0755))
	writeTemplates(t, templateDir)

	root := Root{Path: filepath.Join(tmpDir, "data")}
	setDir := root.SetDir()
	require.NoError(t, os.MkdirAll(setDir, 0755))

	// Pre-existing file with operator-edited content
	custom := []byte("Verbosity: 9\nInterpolator: linear\n")
	require.NoError(t, os.WriteFile(filepath.Join(setDir, ConfName), custom, 0644))

	_, err = EnsureSetDir(root, templateDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(setDir, ConfName))
	require.NoError(t, err)
	assert.Equal(t, custom, content)

	// The absent file was still installed
	assert.FileExists(t, filepath.Join(setDir, IndexName))
}

func TestEnsureSetDirRendersDefaultConf(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-bootstrap-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// Template dir ships the index but no lhapdf.conf
	templateDir := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(templateDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(templateDir, IndexName), []byte("10000 CT14lo 1\n"), 0644))

	root := Root{Path: filepath.Join(tmpDir, "data")}
	require.NoError(t, os.MkdirAll(root.Path, 0755))

	setDir, err := EnsureSetDir(root, templateDir)
	require.NoError(t, err)

	conf, err := LoadConf(filepath.Join(setDir, ConfName))
	require.NoError(t, err)
	assert.Equal(t, DefaultConf(), conf)
}

func TestEnsureSetDirMissingIndexTemplate(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pdfforge-bootstrap-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// Empty template dir: the conf is rendered, but a missing catalog
	// template means the distribution is broken
	templateDir := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(templateDir, 0755))

	root := Root{Path: filepath.Join(tmpDir, "data")}
	require.NoError(t, os.MkdirAll(root.Path, 0755))

	_, err = EnsureSetDir(root, templateDir)
	require.Error(t, err)
	assert.True(t, forgeerr.IsKind(err, forgeerr.KindPackagingDefect))
}
