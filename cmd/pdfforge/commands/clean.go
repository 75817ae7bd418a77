package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/build"
)

var (
	cleanAll   bool
	cleanStale bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [srcdir]",
	Short: "Clean object workspaces",
	Long: `Clean removes object workspaces left by previous builds.

By default, only cleans the workspace for the given (or current) source
directory. PDF data directories are never touched.

Options:
  --all     Remove all object workspaces
  --stale   Remove workspaces older than 7 days

Examples:
  pdfforge clean              # Clean current source dir's workspace
  pdfforge clean --all        # Clean all workspaces
  pdfforge clean --stale      # Clean stale workspaces`,
	Args: cobra.MaximumNArgs(1),
	Run:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanAll, "all", false, "Clean all workspaces")
	cleanCmd.Flags().BoolVar(&cleanStale, "stale", false, "Clean workspaces older than 7 days")
}

func runClean(cmd *cobra.Command, args []string) {
	config := build.DefaultConfig()

	if cleanAll {
		fmt.Println("Cleaning all object workspaces...")
		if err := build.CleanAllWorkspaces(config); err != nil {
			fail(err)
		}
		fmt.Println("Done.")
		return
	}

	if cleanStale {
		fmt.Println("Cleaning stale workspaces...")
		count, err := build.CleanStaleWorkspaces(config, 7*24*time.Hour)
		if err != nil {
			fail(err)
		}
		fmt.Printf("Removed %d workspace(s).\n", count)
		return
	}

	srcDir := "."
	if len(args) > 0 {
		srcDir = args[0]
	}
	absSrcDir, err := filepath.Abs(srcDir)
	if err != nil {
		fail(err)
	}

	ws, err := build.FindWorkspaceBySource(config, absSrcDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No workspace for %s\n", absSrcDir)
		return
	}

	objs, err := ws.ObjFiles()
	if err != nil {
		fail(err)
	}
	if err := ws.Clean(); err != nil {
		fail(err)
	}
	fmt.Printf("Cleaned workspace for %s (%d object file(s))\n", absSrcDir, len(objs))
}
