// Package datadir resolves and provisions the PDF data directory.
package datadir

import (
	"os"
	"path/filepath"
)

// SetDirName is the fixed-name subdirectory of the data root that holds the
// bootstrap files and the extracted PDF sets.
const SetDirName = "LHAPDF"

// ConfName and IndexName are the two bootstrap files that must exist in the
// set directory before the compiled library can run.
const (
	ConfName  = "lhapdf.conf"
	IndexName = "pdfsets.index"
)

// BootstrapFiles lists the files installed from the template root when absent.
var BootstrapFiles = []string{ConfName, IndexName}

// Config holds configuration for data directory resolution.
type Config struct {
	// DataDir is the default data root, used when the operator supplies no
	// override. Defaults to ~/.pdfforge/data
	DataDir string

	// TemplateDir is where the bundled bootstrap templates live.
	// Defaults to templates/ next to the executable.
	TemplateDir string
}

// DefaultConfig returns the default data directory configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:     defaultDataDir(),
		TemplateDir: defaultTemplateDir(),
	}
}

// defaultDataDir returns the default data root.
// Uses PDFFORGE_DATA environment variable if set, otherwise ~/.pdfforge/data
func defaultDataDir() string {
	if dir := os.Getenv("PDFFORGE_DATA"); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory
		return filepath.Join(".", ".pdfforge", "data")
	}

	return filepath.Join(homeDir, ".pdfforge", "data")
}

// defaultTemplateDir returns the default bootstrap template directory.
// Uses PDFFORGE_TEMPLATES environment variable if set, otherwise templates/
// next to the executable.
func defaultTemplateDir() string {
	if dir := os.Getenv("PDFFORGE_TEMPLATES"); dir != "" {
		return dir
	}

	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}

	return filepath.Join(filepath.Dir(exe), "templates")
}
