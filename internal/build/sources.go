package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfforge/pdfforge/internal/datadir"
)

// SourceExt is the extension of compilable native sources.
const SourceExt = ".cc"

// DataPrefixMacro is the preprocessor symbol that embeds the resolved data
// root into the compiled library.
const DataPrefixMacro = "LHAPDF_DATA_PREFIX"

// Sources scans srcDir non-recursively for files ending in ext.
// os.ReadDir returns entries sorted by name, so two runs over the same
// directory agree on both membership and order.
func Sources(srcDir, ext string) ([]string, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", srcDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ext) {
			files = append(files, filepath.Join(srcDir, entry.Name()))
		}
	}

	return files, nil
}

// ManifestSources returns the listed files in manifest order, verifying that
// each exists under srcDir. The manifest variant trades directory I/O for
// explicitness: no surprise file silently enters the build.
func ManifestSources(srcDir string, names []string) ([]string, error) {
	var files []string
	for _, name := range names {
		path := filepath.Join(srcDir, name)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("manifest entry %s: %w", name, err)
		}
		files = append(files, path)
	}
	return files, nil
}

// ReadManifest loads a source manifest: one filename per line, # comments
// and blank lines skipped.
func ReadManifest(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var names []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// DataPrefixDefine builds the define that binds the resolved data root into
// every translation unit, so all units agree on the embedded path.
func DataPrefixDefine(root datadir.Root) string {
	return fmt.Sprintf(`%s="%s"`, DataPrefixMacro, root.Path)
}
