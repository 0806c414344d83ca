package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxport/maxcensus/internal/domain"
	m "github.com/maxport/maxcensus/internal/model"
)

// patchesCmd represents the patches command.
var patchesCmd = newPatchesCmd()

func newPatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patches <directory>",
		Short: "Census object usage across patch files",
		Long:  patchesLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return census.AnalyzePatches(domain.PatchArgs{
				Input:  m.Path(args[0]),
				Output: m.Path(viper.GetString(outputFlagName)),
				Tables: loadTables(),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(patchesCmd)
}
