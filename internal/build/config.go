// Package build compiles the native library against a resolved data root.
package build

import (
	"os"
	"path/filepath"
)

// Config holds configuration for the build system.
type Config struct {
	// ForgeHome is the root directory for pdfforge state.
	// Defaults to ~/.pdfforge
	ForgeHome string

	// BuildDir is where object workspaces are created.
	// Defaults to ForgeHome/build
	BuildDir string
}

// DefaultConfig returns the default build configuration.
func DefaultConfig() *Config {
	forgeHome := defaultForgeHome()
	return &Config{
		ForgeHome: forgeHome,
		BuildDir:  filepath.Join(forgeHome, "build"),
	}
}

// defaultForgeHome returns the default pdfforge home directory.
// Uses PDFFORGE_HOME environment variable if set, otherwise ~/.pdfforge
func defaultForgeHome() string {
	if dir := os.Getenv("PDFFORGE_HOME"); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fall back to current directory
		return filepath.Join(".", ".pdfforge")
	}

	return filepath.Join(homeDir, ".pdfforge")
}

// EnsureDirs creates all necessary directories.
func (c *Config) EnsureDirs() error {
	dirs := []string{
		c.ForgeHome,
		c.BuildDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
