package ingest

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfforge/pdfforge/forgeerr"
)

var errTooLarge = errors.New("response body exceeds size cap")

// fetchArchive downloads and unpacks one set archive from the base URL.
// The archive's tree becomes destDir/name.
func (in *Installer) fetchArchive(name, destDir string) error {
	url := in.URLFor(name)
	in.Log.Debug().Str("set", name).Str("url", url).Msg("downloading archive")

	resp, err := in.client().Get(url)
	if err != nil {
		return forgeerr.FetchFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return forgeerr.FetchFailed(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	return in.extractStream(resp.Body, name, destDir, url)
}

// extractStream decompresses and unpacks a gzip tar stream into destDir/name,
// preserving the archive's relative layout under that directory. The stream
// is read through a byte ceiling enforced during streaming, so peak memory
// stays bounded regardless of archive size. Extraction goes through a staging
// directory beside the target: a stream that fails mid-way leaves nothing
// behind in destDir, and sibling files (the bootstrap files live next to the
// set trees) are never touched.
func (in *Installer) extractStream(r io.Reader, name, destDir, src string) error {
	staging, err := os.MkdirTemp(destDir, ".ingest-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	// MkdirTemp creates 0700; the set directory this becomes should be 0755
	if err := os.Chmod(staging, 0755); err != nil {
		return fmt.Errorf("preparing staging directory: %w", err)
	}

	capped := &cappedReader{r: r, remaining: in.maxBytes()}

	gz, err := gzip.NewReader(capped)
	if err != nil {
		return classifyStreamError(err, src)
	}
	defer gz.Close()

	if err := extractTar(tar.NewReader(gz), staging); err != nil {
		if forgeerr.KindOf(err) == forgeerr.KindUnsafeArchiveEntry {
			return err
		}
		return classifyStreamError(err, src)
	}

	return installTree(staging, filepath.Join(destDir, name))
}

// classifyStreamError maps a read failure to the transport/format taxonomy.
// Filesystem errors pass through untouched.
func classifyStreamError(err error, src string) error {
	switch {
	case errors.Is(err, errTooLarge):
		return forgeerr.ResponseTooLarge(src, err)
	case errors.Is(err, gzip.ErrHeader), errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, tar.ErrHeader), errors.Is(err, io.ErrUnexpectedEOF):
		return forgeerr.DecompressionFailed(src, err)
	}
	return err
}

// installTree renames the staged tree into its final location, replacing any
// previous install of the same set. Re-installing is a plain overwrite.
func installTree(staging, target string) error {
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	if err := os.Rename(staging, target); err != nil {
		return fmt.Errorf("installing %s: %w", target, err)
	}
	return nil
}

// cappedReader fails once more than remaining bytes have been read.
// Overshoot within one Read is tolerated; the point is bounding growth,
// not byte-exact accounting.
type cappedReader struct {
	r         io.Reader
	remaining int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining < 0 {
		return 0, errTooLarge
	}

	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	if c.remaining < 0 {
		return n, errTooLarge
	}
	return n, err
}
