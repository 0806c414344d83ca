package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxport/maxcensus/internal/domain"
	m "github.com/maxport/maxcensus/internal/model"
)

// oscCmd represents the osc command.
var oscCmd = newOSCCmd()

func newOSCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "osc <directory>",
		Short: "Map the OSC address namespace from command dumps",
		Long:  oscLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return census.AnalyzeOSC(domain.OSCArgs{
				Input:  m.Path(args[0]),
				Output: m.Path(viper.GetString(outputFlagName)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(oscCmd)
}
