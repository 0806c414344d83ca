package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	m "github.com/maxport/maxcensus/internal/model"
)

// configFileLayout mirrors the config file so the emitted YAML keeps a
// stable section order, with the classification tables spelled out for
// manual editing.
type configFileLayout struct {
	Version  int            `yaml:"version"`
	Output   string         `yaml:"output"`
	Classify m.Tables       `yaml:"classify"`
	Log      logFileSection `yaml:"log"`
}

type logFileSection struct {
	Filename   string `yaml:"filename"`
	Level      int    `yaml:"level"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default maxcensus.yaml configuration file",
		Long: `Create a maxcensus.yaml in the current working directory populated with the
current CLI defaults, including the classification tables, so it can be
edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if _, err := os.Stat(targetPath); err == nil {
				return fmt.Errorf("config file %s already exists", targetPath)
			}

			layout := configFileLayout{
				Version:  currentConfigVersion,
				Output:   viper.GetString(outputFlagName),
				Classify: loadTables(),
				Log: logFileSection{
					Filename:   viper.GetString(logFilenameKey),
					Level:      viper.GetInt(logLevelKey),
					MaxSize:    viper.GetInt(logMaxSizeKey),
					MaxBackups: viper.GetInt(logMaxBackupsKey),
					MaxAge:     viper.GetInt(logMaxAgeKey),
					Compress:   viper.GetBool(logCompressKey),
				},
			}

			data, err := yaml.Marshal(layout)
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			if err := os.WriteFile(targetPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
