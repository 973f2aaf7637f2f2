// Package cmd implements the tasklist command line: the TUI launcher and
// scriptable subcommands that drive the same session commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/tasklist/internal/cmd/config"
	appconfig "github.com/Iron-Ham/tasklist/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "A terminal task list",
	Long: `Tasklist keeps a list of tasks with optional due dates.

Run without arguments to open the interactive list. The subcommands change
the same list from scripts and other terminals.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tasklist/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	config.Register(rootCmd)
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	appconfig.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(appconfig.ConfigDir())
		viper.AddConfigPath("$HOME/.config/tasklist")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TASKLIST")
	// Replace dots with underscores for nested keys in env vars
	// e.g., TASKLIST_STORAGE_BACKEND for storage.backend
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
