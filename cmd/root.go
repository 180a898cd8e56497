package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/blockhint/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "blockhint",
	Short: "Debugging hints for block-based programs",
	Long: "blockhint classifies the outcome of a Blockly program and explains the likely mistake " +
		"in six short sections: where it is, what data is involved, and how to fix it.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (env overrides still apply)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the file named by --config, if any, then the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
