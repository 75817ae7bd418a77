package datadir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfforge/pdfforge/forgeerr"
)

// Root is a resolved data root: an absolute path to a directory that exists
// on disk. The path string is usable both for child joins and for embedding
// into the compile-time data-prefix define.
type Root struct {
	Path string
}

// Join returns a child path under the root.
func (r Root) Join(elem ...string) string {
	return filepath.Join(append([]string{r.Path}, elem...)...)
}

// SetDir returns the path of the fixed-name set directory under the root.
func (r Root) SetDir() string {
	return r.Join(SetDirName)
}

func (r Root) String() string {
	return r.Path
}

// Resolve produces the data root.
//
// A non-empty override must name an existing directory; it is never created.
// With no override, the configured default root is created along with its
// parents. The returned root is absolute and exists.
func Resolve(override string, config *Config) (Root, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if override != "" {
		f, err := os.Open(override)
		if err != nil {
			return Root{}, forgeerr.InvalidDataDir(override, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return Root{}, forgeerr.InvalidDataDir(override, err)
		}
		if !info.IsDir() {
			return Root{}, forgeerr.InvalidDataDir(override, fmt.Errorf("not a directory"))
		}

		abs, err := filepath.Abs(override)
		if err != nil {
			return Root{}, forgeerr.InvalidDataDir(override, err)
		}
		return Root{Path: abs}, nil
	}

	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return Root{}, forgeerr.DefaultDirUnavailable(config.DataDir, err)
	}

	abs, err := filepath.Abs(config.DataDir)
	if err != nil {
		return Root{}, forgeerr.DefaultDirUnavailable(config.DataDir, err)
	}
	return Root{Path: abs}, nil
}
