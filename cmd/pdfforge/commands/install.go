package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/datadir"
	"github.com/pdfforge/pdfforge/internal/index"
	"github.com/pdfforge/pdfforge/internal/ingest"
)

var (
	installDataDir   string
	installTemplates string
	installBaseURL   string
	installMirrors   []string
)

var installCmd = &cobra.Command{
	Use:   "install [set...]",
	Short: "Download and unpack PDF sets into the data directory",
	Long: `Install provisions the data directory, then downloads each named
set archive from the archive server and unpacks it into the set directory.
With no arguments the built-in default list is installed.

Sets mapped with --mirror are cloned from a git repository instead of the
archive server. A failure aborts the whole run; rerunning is safe because
installation overwrites cleanly.

Examples:
  pdfforge install                            # Default sets
  pdfforge install CT14nnlo NNPDF31_nnlo      # Named sets
  pdfforge install --base-url https://mirror.example/sets/ CT14lo
  pdfforge install --mirror CT14lo=https://git.example/ct14lo.git CT14lo`,
	Run: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installDataDir, "data-dir", "d", "", "Absolute path of an existing data directory")
	installCmd.Flags().StringVar(&installTemplates, "templates", "", "Bootstrap template directory")
	installCmd.Flags().StringVar(&installBaseURL, "base-url", "", "Archive server URL prefix")
	installCmd.Flags().StringArrayVar(&installMirrors, "mirror", nil, "Git mirror for a set, as name=url (repeatable)")
}

func runInstall(cmd *cobra.Command, args []string) {
	log := newLogger()

	setDir, _ := provisionSetDir(installDataDir, installTemplates)

	names := args
	if len(names) == 0 {
		names = ingest.DefaultSets
	}

	// The catalog is advisory: warn about unknown names, the server may
	// still carry them.
	if idx, err := index.ParseFile(filepath.Join(setDir, datadir.IndexName)); err == nil {
		for _, name := range names {
			if !idx.Has(name) {
				log.Warn().Str("set", name).Msg("set not listed in pdfsets.index")
			}
		}
	}

	installer := ingest.NewInstaller(log)
	if installBaseURL != "" {
		installer.BaseURL = installBaseURL
	}
	if len(installMirrors) > 0 {
		installer.Mirrors = make(map[string]string)
		for _, m := range installMirrors {
			name, url, ok := strings.Cut(m, "=")
			if !ok {
				fail(fmt.Errorf("invalid --mirror %q, want name=url", m))
			}
			installer.Mirrors[name] = url
		}
	}

	results, err := installer.Install(names, setDir)
	for _, r := range results {
		fmt.Printf("Installed: %s -> %s\n", r.Name, r.Dest)
	}
	if err != nil {
		fail(err)
	}
}
