package build

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLibName is the static library produced by a build.
const DefaultLibName = "libLHAPDF.a"

// Compiler drives the external C++ toolchain: each source is compiled with
// the data-prefix define into the object workspace, then the objects are
// archived into a static library.
type Compiler struct {
	config    *Config
	workspace *Workspace

	// CXX and AR name the toolchain binaries. Default g++ and ar.
	CXX string
	AR  string

	// Flags are passed to every compile invocation.
	Flags []string

	// IncludeDirs are added as -I options.
	IncludeDirs []string

	// Log receives per-unit progress.
	Log zerolog.Logger
}

// NewCompiler creates a compiler for the given source directory.
func NewCompiler(sourceDir string, log zerolog.Logger) (*Compiler, error) {
	config := DefaultConfig()

	// Ensure all directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating directories: %w", err)
	}

	workspace, err := NewWorkspace(config, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	return &Compiler{
		config:    config,
		workspace: workspace,
		CXX:       "g++",
		AR:        "ar",
		Flags:     []string{"-O2", "-fPIC", "-std=c++11"},
		Log:       log,
	}, nil
}

// Build compiles sources with the define and archives the objects into a
// static library. If outputPath is empty the library lands in the source
// directory under DefaultLibName; a relative path is taken relative to the
// source directory.
func (c *Compiler) Build(sources []string, define, outputPath string) (string, error) {
	if len(sources) == 0 {
		return "", fmt.Errorf("no source files to compile in %s", c.workspace.SourceDir)
	}

	if err := c.workspace.Ensure(); err != nil {
		return "", fmt.Errorf("ensuring workspace: %w", err)
	}

	outputPath = resolveOutputPath(c.workspace.SourceDir, outputPath)

	var objects []string
	for _, src := range sources {
		obj := c.workspace.ObjPath(src)
		if err := c.compileOne(src, obj, define); err != nil {
			return "", fmt.Errorf("compiling %s: %w", src, err)
		}
		objects = append(objects, obj)
	}

	if err := c.archive(objects, outputPath); err != nil {
		return "", fmt.Errorf("archiving %s: %w", outputPath, err)
	}

	return outputPath, nil
}

// resolveOutputPath resolves where the static library is written.
func resolveOutputPath(sourceDir, outputPath string) string {
	if outputPath == "" {
		return filepath.Join(sourceDir, DefaultLibName)
	}
	if !filepath.IsAbs(outputPath) {
		return filepath.Join(sourceDir, outputPath)
	}
	return outputPath
}

// compileOne compiles a single translation unit.
func (c *Compiler) compileOne(src, obj, define string) error {
	args := append([]string{}, c.Flags...)
	for _, dir := range c.IncludeDirs {
		args = append(args, "-I"+dir)
	}
	args = append(args, "-D"+define, "-c", src, "-o", obj)

	c.Log.Debug().Str("src", src).Str("obj", obj).Msg("compiling")

	cmd := exec.Command(c.CXX, args...)
	cmd.Dir = c.workspace.SourceDir
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// archive bundles the objects into a static library.
func (c *Compiler) archive(objects []string, outputPath string) error {
	args := append([]string{"rcs", outputPath}, objects...)

	c.Log.Debug().Str("out", outputPath).Int("objects", len(objects)).Msg("archiving")

	cmd := exec.Command(c.AR, args...)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// InstallHeaders copies the public headers (*.h) under hdrDir into destDir,
// preserving the relative layout.
func (c *Compiler) InstallHeaders(hdrDir, destDir string) error {
	return filepath.Walk(hdrDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".h") {
			return nil
		}

		relPath, err := filepath.Rel(hdrDir, path)
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

// Workspace returns the compiler's workspace.
func (c *Compiler) Workspace() *Workspace {
	return c.workspace
}

// Config returns the compiler's config.
func (c *Compiler) Config() *Config {
	return c.config
}
