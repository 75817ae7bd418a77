package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/pdfforge/pdfforge/forgeerr"
)

// fetchMirror provisions a set from a git mirror repository instead of the
// archive server. The mirror's tree becomes destDir/name.
func (in *Installer) fetchMirror(name, gitURL, destDir string) error {
	in.Log.Debug().Str("set", name).Str("mirror", gitURL).Msg("cloning mirror")

	tempDir, err := os.MkdirTemp("", "pdfforge-mirror-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	opts := &git.CloneOptions{URL: gitURL}
	// Shallow clone for efficiency; the file transport used for local
	// mirror paths does not serve shallow fetches.
	if strings.Contains(gitURL, "://") || strings.HasPrefix(gitURL, "git@") {
		opts.Depth = 1
	}

	_, err = git.PlainClone(tempDir, false, opts)
	if err != nil {
		return forgeerr.FetchFailed(gitURL, err)
	}

	target := filepath.Join(destDir, name)
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	return copyTree(tempDir, target)
}

// copyTree copies the data files of a cloned mirror into the set directory,
// skipping VCS metadata and hidden files. Modes are not carried over.
func copyTree(srcDir, destDir string) error {
	return filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != srcDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, relPath)

		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(destPath, content, 0644)
	})
}
