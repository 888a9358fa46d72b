//file: cmd/psforge/cmd/check.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"psforge/internal/checker"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Validate parameter spec files",
	Long: `The check command runs spec files through the same loading and normalization
the generator uses, without generating anything. Directories are walked
recursively for .yaml, .yml and .json files. The exit status is non-zero when
any file fails, which makes check suitable for CI pipelines.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, log, err := loadConfigAndLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		summary, err := checker.New(log).CheckPaths(args)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if err := summary.ReportJSON(cmd.OutOrStdout()); err != nil {
				return err
			}
		} else {
			summary.Report(cmd.OutOrStdout())
		}

		if summary.HasFailures() {
			return fmt.Errorf("spec check failed")
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Emit a machine-readable JSON summary")
}
