//file: cmd/psforge/cmd/template.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"psforge/internal/scaffold"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print the scaffold template",
	Long: `The template command prints the built-in scaffold template so it can be saved
and customized, then passed back with 'psforge new --template'. Templates use
Go text/template syntax; sprig functions are available.

With --template it prints that file instead, so the active override can be
inspected the same way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string
		if templatePath, _ := cmd.Flags().GetString("template"); templatePath != "" {
			data, err := os.ReadFile(templatePath)
			if err != nil {
				return fmt.Errorf("failed to read template %s: %w", templatePath, err)
			}
			content = string(data)
		} else {
			var err error
			content, err = scaffold.DefaultTemplate()
			if err != nil {
				return err
			}
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		}

		if _, err := os.Stat(output); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				return fmt.Errorf("file '%s' already exists (use --force to overwrite)", output)
			}
		}
		if err := os.WriteFile(output, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write template: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Template written to %s\n", output)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringP("template", "t", "", "Print this template file instead of the built-in one")
	templateCmd.Flags().StringP("output", "o", "", "Write the template to a file instead of stdout")
	templateCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
