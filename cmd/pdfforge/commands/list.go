package commands

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/datadir"
	"github.com/pdfforge/pdfforge/internal/index"
)

var listDataDir string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show known and installed PDF sets",
	Long: `List prints the sets from the installed pdfsets.index catalog and
whether each one is present on disk.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDataDir, "data-dir", "d", "", "Absolute path of an existing data directory")
}

func runList(cmd *cobra.Command, args []string) {
	setDir, _ := provisionSetDir(listDataDir, "")

	idx, err := index.ParseFile(filepath.Join(setDir, datadir.IndexName))
	if err != nil {
		fail(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Data Size", "Installed"})

	for _, e := range idx.Entries {
		installed := "no"
		if info, err := os.Stat(filepath.Join(setDir, e.Name)); err == nil && info.IsDir() {
			installed = "yes"
		}
		table.Append([]string{strconv.Itoa(e.ID), e.Name, strconv.Itoa(e.DataSize), installed})
	}

	table.Render()
}
