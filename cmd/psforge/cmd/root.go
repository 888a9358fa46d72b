//file: cmd/psforge/cmd/root.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"psforge/config"
	"psforge/internal/logger"
)

// globalFlags builds the persistent flag set shared by every subcommand.
func globalFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("global", pflag.ContinueOnError)
	flags.String("config", "", "Path to a config file (default: ./psforge.yaml, ~/.config/psforge/psforge.yaml)")
	flags.String("log-level", "", "Override the configured log level (debug, info, warn, error)")
	return flags
}

// AddCommands adds the global flags and all subcommands to the root command.
func AddCommands(root *cobra.Command) {
	root.PersistentFlags().AddFlagSet(globalFlags())
	root.AddCommand(newCmd)
	root.AddCommand(checkCmd)
	root.AddCommand(templateCmd)
}

// loadConfigAndLogger resolves configuration and builds the logger every
// subcommand starts from.
func loadConfigAndLogger(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
