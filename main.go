// package main is the entry point for the wisdom-miner tool
package main

import (
	"log/slog"
	"os"

	configcmd "github.com/alan/wisdom-miner/cmd/config"
	"github.com/alan/wisdom-miner/cmd/mine"
	versioncmd "github.com/alan/wisdom-miner/cmd/version"
	"github.com/alan/wisdom-miner/internal/config"
	"github.com/alan/wisdom-miner/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var logLevel string
	var logFormat string
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "wisdom-miner",
		Short: "A CLI tool that distills a GitHub user's review comments into a wisdom report",
		Long: `wisdom-miner mines the issues and pull requests a user commented on in a
GitHub repository, scores the comments by reactions, explanatory language and
length, and renders them as a categorized Markdown document.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			slog.SetDefault(logging.NewLogger(os.Stderr, logging.ParseLevel(logLevel), logFormat))
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "wisdom-miner.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress and status output")

	// Create commands with access to the global config file
	rootCmd.AddCommand(mine.NewMineCmd(&configFile, &quiet, config.LoadConfigOrDefault))
	rootCmd.AddCommand(configcmd.NewConfigCmd(&configFile, config.LoadConfig, config.SaveConfig))
	rootCmd.AddCommand(versioncmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
