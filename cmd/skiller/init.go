package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/logger"
	"github.com/skillerhq/skiller/pkg/presenter"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up skiller configuration",
	Long:  `Write a default configuration file with sensible agent directories.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		override, _ := cmd.Flags().GetBool("override")

		home, err := os.UserHomeDir()
		if err != nil {
			presenter.Error(err, "Failed to determine home directory")
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".skiller")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			presenter.Error(err, "Failed to create config directory")
			logger.G(ctx).WithError(err).WithField("config_dir", configDir).Error("Config directory creation failed")
			os.Exit(1)
		}

		configFile := filepath.Join(configDir, "config.yaml")
		if !override {
			if _, err := os.Stat(configFile); err == nil {
				presenter.Warning(fmt.Sprintf("Configuration file already exists at %s", configFile))
				presenter.Info("To overwrite, use the --override flag or remove the file and run 'skiller init' again")
				return
			}
		}

		content, err := yaml.Marshal(config.Default())
		if err != nil {
			presenter.Error(err, "Failed to render default configuration")
			os.Exit(1)
		}
		if err := os.WriteFile(configFile, content, 0o644); err != nil {
			presenter.Error(err, "Failed to write configuration file")
			os.Exit(1)
		}

		presenter.Success(fmt.Sprintf("Wrote default configuration to %s", configFile))
	},
}

func init() {
	initCmd.Flags().Bool("override", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}
