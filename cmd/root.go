// Package cmd provides the root command and CLI setup for maxcensus.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maxport/maxcensus/internal/adapter"
	"github.com/maxport/maxcensus/internal/controller"
	"github.com/maxport/maxcensus/internal/domain"
)

var fsAdapter adapter.PatchFS
var reportStore adapter.ReportStore
var ui controller.UI
var census domain.Workflow

// outputDirFlag is a root-level flag shared by both census pipelines.
var outputDirFlag string

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalPatchFS()
	reportStore = adapter.NewLocalReportStore()
	census = domain.NewWorkflow(fsAdapter, reportStore, ui)
}

const rootLongDescription = `Maxcensus inventories Max/MSP patching projects to support a manual port
to SuperCollider. It extracts an object-usage census from patch files and
an address-namespace taxonomy from OSC command dumps, writing JSON and
Markdown artifacts to the output directory.`

const patchesLongDescription = `Recursively scan a directory for patch files (*.maxpat), harvest every
object (including objects inside nested subpatchers), and write the census
artifacts: summary.json, detailed_objects.json and mapping_analysis.md.`

const oscLongDescription = `Scan a directory (non-recursive) for OSC command dumps (*.txt), build the
address-namespace hierarchy and write osc_namespace.md.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxcensus",
		Short: "Census tooling for porting Max patches to SuperCollider",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for census artifacts",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
