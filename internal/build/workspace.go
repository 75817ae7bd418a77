package build

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Workspace is the per-source-tree object directory for library builds.
// Keeping objects out of the source tree means a build never dirties the
// checkout being compiled.
type Workspace struct {
	// Config is the build configuration.
	Config *Config

	// SourceDir is the absolute path to the native source directory.
	SourceDir string

	// Hash is the unique identifier for this workspace (based on SourceDir).
	Hash string

	// Dir is the absolute path to the workspace directory.
	Dir string

	// ObjDir is where compiled object files are placed.
	ObjDir string
}

// NewWorkspace creates a workspace for the given source directory.
func NewWorkspace(config *Config, sourceDir string) (*Workspace, error) {
	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolving source path: %w", err)
	}

	hash := computeHash(absSourceDir)
	workspaceDir := filepath.Join(config.BuildDir, hash)

	return &Workspace{
		Config:    config,
		SourceDir: absSourceDir,
		Hash:      hash,
		Dir:       workspaceDir,
		ObjDir:    filepath.Join(workspaceDir, "obj"),
	}, nil
}

// computeHash computes a short hash from the source path.
// Uses SHA256 truncated to 12 hex characters.
func computeHash(sourceDir string) string {
	// Normalize path separators for consistent hashing across platforms
	normalized := strings.ReplaceAll(sourceDir, "\\", "/")
	normalized = strings.ToLower(normalized) // Case-insensitive for Windows

	h := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(h[:])[:12]
}

// Ensure creates the workspace directory structure.
func (w *Workspace) Ensure() error {
	dirs := []string{
		w.Dir,
		w.ObjDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating workspace dir %s: %w", dir, err)
		}
	}

	// Write a marker file with source info (for debugging/cleanup)
	markerPath := filepath.Join(w.Dir, ".pdfforge-workspace")
	markerContent := fmt.Sprintf("source=%s\ncreated=%s\n",
		w.SourceDir,
		time.Now().Format(time.RFC3339))

	if err := os.WriteFile(markerPath, []byte(markerContent), 0644); err != nil {
		return fmt.Errorf("writing workspace marker: %w", err)
	}

	return nil
}

// ObjPath returns the object file path for a source file.
func (w *Workspace) ObjPath(srcFile string) string {
	base := filepath.Base(srcFile)
	ext := filepath.Ext(base)
	return filepath.Join(w.ObjDir, strings.TrimSuffix(base, ext)+".o")
}

// ObjFiles returns all .o files in the object directory.
func (w *Workspace) ObjFiles() ([]string, error) {
	entries, err := os.ReadDir(w.ObjDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".o") {
			files = append(files, filepath.Join(w.ObjDir, entry.Name()))
		}
	}

	return files, nil
}

// Clean removes the workspace directory.
func (w *Workspace) Clean() error {
	return os.RemoveAll(w.Dir)
}

// Exists returns true if the workspace directory exists.
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.Dir)
	return err == nil && info.IsDir()
}

// FindWorkspaceBySource finds an existing workspace for a source path.
func FindWorkspaceBySource(config *Config, sourceDir string) (*Workspace, error) {
	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, err
	}

	hash := computeHash(absSourceDir)
	workspaceDir := filepath.Join(config.BuildDir, hash)

	if info, err := os.Stat(workspaceDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("workspace not found for source: %s", sourceDir)
	}

	return &Workspace{
		Config:    config,
		SourceDir: absSourceDir,
		Hash:      hash,
		Dir:       workspaceDir,
		ObjDir:    filepath.Join(workspaceDir, "obj"),
	}, nil
}

// CleanAllWorkspaces removes all object workspaces.
func CleanAllWorkspaces(config *Config) error {
	return os.RemoveAll(config.BuildDir)
}

// CleanStaleWorkspaces removes workspaces older than the given duration.
func CleanStaleWorkspaces(config *Config, maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(config.BuildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cleaned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		workspaceDir := filepath.Join(config.BuildDir, entry.Name())
		markerPath := filepath.Join(workspaceDir, ".pdfforge-workspace")

		info, err := os.Stat(markerPath)
		if err != nil {
			// No marker file, remove workspace
			os.RemoveAll(workspaceDir)
			cleaned++
			continue
		}

		if time.Since(info.ModTime()) > maxAge {
			os.RemoveAll(workspaceDir)
			cleaned++
		}
	}

	return cleaned, nil
}

// ListWorkspaces returns all existing workspaces with their source paths.
func ListWorkspaces(config *Config) (map[string]string, error) {
	entries, err := os.ReadDir(config.BuildDir)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}

	result := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		workspaceDir := filepath.Join(config.BuildDir, entry.Name())
		markerPath := filepath.Join(workspaceDir, ".pdfforge-workspace")

		content, err := os.ReadFile(markerPath)
		if err != nil {
			continue
		}

		// Parse source path from marker
		for _, line := range strings.Split(string(content), "\n") {
			if strings.HasPrefix(line, "source=") {
				result[entry.Name()] = strings.TrimPrefix(line, "source=")
				break
			}
		}
	}

	return result, nil
}
