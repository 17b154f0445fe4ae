package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/skillerhq/skiller/pkg/config"
	"github.com/skillerhq/skiller/pkg/logger"
	"github.com/skillerhq/skiller/pkg/presenter"
	"github.com/skillerhq/skiller/pkg/prompt"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLER")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skiller")
	viper.AddConfigPath(".")

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-essential output")

	rootCmd.Flags().String("dd", "", "Discovery: look for known agent dirs in DIR (default: current directory) and list potential skills")
	rootCmd.Flags().Lookup("dd").NoOptDefVal = "."
	rootCmd.Flags().Bool("list", false, "List all installed skills across configured locations")
	rootCmd.Flags().Bool("install", false, "Install a discovered skill")
	rootCmd.Flags().Bool("interactive", false, "Run the interactive flow regardless of other flags")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

var rootCmd = &cobra.Command{
	Use:   "skiller",
	Short: "Discover, list, and install skills for AI agents",
	Long: `Skiller discovers skill bundles (directories with a SKILL.md manifest),
lists the skills installed in configured agent locations, and installs
skills into per-agent user and project directories.

Run without arguments to enter the interactive flow.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, using the default", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := mustLoadConfig()

		interactive, _ := cmd.Flags().GetBool("interactive")
		list, _ := cmd.Flags().GetBool("list")
		install, _ := cmd.Flags().GetBool("install")

		switch {
		case interactive:
			runInteractive(ctx, cfg, prompt.New())
		case list:
			runList(ctx, cfg)
		case install:
			runInstall(ctx, cfg, prompt.New())
		case cmd.Flags().Changed("dd"):
			runDiscover(ctx, cfg, discoveryDir(cmd, args))
		default:
			runInteractive(ctx, cfg, prompt.New())
		}
	},
}

// discoveryDir resolves the directory for the discovery scan. `--dd` takes
// its value inline (`--dd=DIR`) or defaults to the current directory, so a
// space-separated `--dd DIR` leaves DIR as a positional argument; when one
// is present it wins over the flag value.
func discoveryDir(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	dir, _ := cmd.Flags().GetString("dd")
	return dir
}

// mustLoadConfig loads the configuration or exits with code 1. Nothing can
// run without it.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		presenter.Error(err, "Failed to load configuration")
		os.Exit(1)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
