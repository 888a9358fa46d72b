//file: cmd/psforge/main.go
package main

import (
	"os"

	"github.com/spf13/cobra"

	"psforge/cmd/psforge/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "psforge",
	Short: "Generate PowerShell advanced function scaffolds",
	Long: `psforge builds complete PowerShell advanced function skeletons from a
declarative parameter spec. Parameters come from YAML/JSON spec files,
repeatable flags or an interactive builder; finished scaffolds go to stdout,
a file, your editor or a NATS subject.`,
	// If a subcommand is not provided, default to showing help.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	// Add all subcommands from the cmd package
	cmd.AddCommands(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, so we just need to exit
		os.Exit(1)
	}
}
