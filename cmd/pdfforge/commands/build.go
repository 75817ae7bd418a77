package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/build"
	"github.com/pdfforge/pdfforge/internal/ingest"
)

var (
	buildDataDir   string
	buildTemplates string
	buildOutput    string
	buildManifest  string
	buildWithSets  []string
	buildHeaders   string
)

var buildCmd = &cobra.Command{
	Use:   "build [srcdir]",
	Short: "Compile the static library with the data path baked in",
	Long: `Build provisions the data directory, then compiles the native
sources into a static library. The resolved data root is passed to every
translation unit as a preprocessor define, so the compiled library can
locate PDF sets at its own runtime without further configuration.

The library builds before any set is downloaded; missing data is a runtime
concern of the compiled library, not of this tool.

Examples:
  pdfforge build                          # Compile ./*.cc
  pdfforge build ./src                    # Compile a specific directory
  pdfforge build -o out/libLHAPDF.a       # Custom output path
  pdfforge build --manifest sources.list  # Static source manifest
  pdfforge build --with-sets CT14lo       # Ingest a set first`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildDataDir, "data-dir", "d", "", "Absolute path of an existing data directory")
	buildCmd.Flags().StringVar(&buildTemplates, "templates", "", "Bootstrap template directory")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output library path")
	buildCmd.Flags().StringVar(&buildManifest, "manifest", "", "Source manifest file (one filename per line)")
	buildCmd.Flags().StringArrayVar(&buildWithSets, "with-sets", nil, "Sets to install before building (repeatable)")
	buildCmd.Flags().StringVar(&buildHeaders, "install-headers", "", "Directory to install public headers into")
}

func runBuild(cmd *cobra.Command, args []string) {
	log := newLogger()

	srcDir := "."
	if len(args) > 0 {
		srcDir = args[0]
	}
	absSrcDir, err := filepath.Abs(srcDir)
	if err != nil {
		fail(err)
	}

	setDir, root := provisionSetDir(buildDataDir, buildTemplates)

	if len(buildWithSets) > 0 {
		installer := ingest.NewInstaller(log)
		if _, err := installer.Install(buildWithSets, setDir); err != nil {
			fail(err)
		}
	}

	var sources []string
	if buildManifest != "" {
		names, err := build.ReadManifest(buildManifest)
		if err != nil {
			fail(err)
		}
		sources, err = build.ManifestSources(absSrcDir, names)
		if err != nil {
			fail(err)
		}
	} else {
		sources, err = build.Sources(absSrcDir, build.SourceExt)
		if err != nil {
			fail(err)
		}
	}

	compiler, err := build.NewCompiler(absSrcDir, log)
	if err != nil {
		fail(err)
	}

	define := build.DataPrefixDefine(root)
	outputPath, err := compiler.Build(sources, define, buildOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
		os.Exit(1)
	}

	if buildHeaders != "" {
		if err := compiler.InstallHeaders(absSrcDir, buildHeaders); err != nil {
			fail(err)
		}
	}

	fmt.Printf("Built: %s\n", outputPath)
}
