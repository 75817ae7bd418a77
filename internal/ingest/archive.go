package ingest

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfforge/pdfforge/forgeerr"
)

// extractTar unpacks every entry into destDir, preserving the entry's
// relative layout. Recorded mode bits are not trusted: files are written
// 0644 and directories 0755. Entries that would land outside destDir, and
// link entries, reject the whole archive.
func extractTar(tr *tar.Reader, destDir string) error {
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := securePath(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("creating directory for %s: %w", target, err)
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("creating %s: %w", target, err)
			}
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", target, err)
			}
		case tar.TypeSymlink, tar.TypeLink:
			// A link target is a second path the archive controls.
			return forgeerr.UnsafeArchiveEntry(hdr.Name)
		default:
			// Devices, FIFOs etc. have no place in a data archive; skip.
		}
	}
}

// securePath resolves an archive entry name under destDir, rejecting
// absolute names and names that escape the destination.
func securePath(destDir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", forgeerr.UnsafeArchiveEntry(name)
	}

	target := filepath.Join(destDir, filepath.FromSlash(name))

	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", forgeerr.UnsafeArchiveEntry(name)
	}

	return target, nil
}
