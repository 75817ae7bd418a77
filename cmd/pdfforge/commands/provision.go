package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdfforge/pdfforge/internal/datadir"
)

var (
	provisionDataDir   string
	provisionTemplates string
	provisionShowConf  bool
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Resolve the data root and install bootstrap files",
	Long: `Provision resolves the data root directory and makes sure the
LHAPDF set directory exists with both bootstrap files in place.

With --data-dir the given directory is used as-is and must already exist.
Without it, the default root (~/.pdfforge/data, or PDFFORGE_DATA) is
created if missing. Bootstrap files already present are never overwritten.

Examples:
  pdfforge provision                       # Default data root
  pdfforge provision -d /opt/pdf/data      # Existing explicit root
  pdfforge provision --show-conf           # Print the effective lhapdf.conf`,
	Args: cobra.NoArgs,
	Run:  runProvision,
}

func init() {
	provisionCmd.Flags().StringVarP(&provisionDataDir, "data-dir", "d", "", "Absolute path of an existing data directory")
	provisionCmd.Flags().StringVar(&provisionTemplates, "templates", "", "Bootstrap template directory")
	provisionCmd.Flags().BoolVar(&provisionShowConf, "show-conf", false, "Print the effective lhapdf.conf")
}

func runProvision(cmd *cobra.Command, args []string) {
	setDir, root := provisionSetDir(provisionDataDir, provisionTemplates)

	fmt.Printf("Data root: %s\n", root.Path)
	fmt.Printf("Set directory: %s\n", setDir)

	if provisionShowConf {
		conf, err := datadir.LoadConf(filepath.Join(setDir, datadir.ConfName))
		if err != nil {
			fail(err)
		}
		out, err := conf.Marshal()
		if err != nil {
			fail(err)
		}
		fmt.Print(string(out))
	}
}
