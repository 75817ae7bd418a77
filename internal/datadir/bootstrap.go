package datadir

import (
	"os"
	"path/filepath"

	"github.com/pdfforge/pdfforge/forgeerr"
)

// EnsureSetDir creates root/LHAPDF if missing and installs any absent
// bootstrap file from templateDir. Present files are never touched, so two
// successive runs leave the directory byte-identical.
//
// A missing lhapdf.conf template is recoverable: the stock configuration is
// rendered instead. A failed copy of anything else is a packaging defect:
// the templates ship with the tool and their absence means the distribution
// itself is broken, not that the operator misconfigured anything.
func EnsureSetDir(root Root, templateDir string) (string, error) {
	setDir := root.SetDir()

	if err := os.MkdirAll(setDir, 0755); err != nil {
		return "", forgeerr.SetDirUnavailable(setDir, err)
	}

	for _, name := range BootstrapFiles {
		dest := filepath.Join(setDir, name)

		_, err := os.Stat(dest)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return "", forgeerr.BootstrapProbe(dest, err)
		}

		content, err := bootstrapContent(templateDir, name)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return "", forgeerr.PackagingDefect(dest, err)
		}
	}

	return setDir, nil
}

// bootstrapContent reads one bootstrap file from the template directory,
// falling back to the rendered default configuration when the lhapdf.conf
// template is absent.
func bootstrapContent(templateDir, name string) ([]byte, error) {
	src := filepath.Join(templateDir, name)

	content, err := os.ReadFile(src)
	if os.IsNotExist(err) && name == ConfName {
		return DefaultConf().Marshal()
	}
	if err != nil {
		return nil, forgeerr.PackagingDefect(src, err)
	}
	return content, nil
}
