// Package commands provides the CLI commands for the pdfforge tool.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/datadir"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pdfforge",
	Short: "PDF data directory provisioning and library build tool",
	Long: `pdfforge provisions the LHAPDF data directory, installs PDF set
archives, and compiles the LHAPDF static library with the resolved data
path baked in.

Usage:
  pdfforge provision            Resolve the data root and install bootstrap files
  pdfforge install [set...]     Download and unpack PDF sets
  pdfforge build [srcdir]       Compile the static library
  pdfforge list                 Show known and installed sets`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// provisionSetDir resolves the data root and ensures the set directory with
// its bootstrap files. Shared by every command that touches the data layout.
func provisionSetDir(override, templates string) (string, datadir.Root) {
	config := datadir.DefaultConfig()
	if templates != "" {
		config.TemplateDir = templates
	}

	root, err := datadir.Resolve(override, config)
	if err != nil {
		fail(err)
	}

	setDir, err := datadir.EnsureSetDir(root, config.TemplateDir)
	if err != nil {
		fail(err)
	}

	return setDir, root
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
