//file: cmd/psforge/cmd/new.go
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"psforge/internal/cli"
	"psforge/internal/identity"
	"psforge/internal/logger"
	"psforge/internal/scaffold"
	"psforge/internal/sink"
)

var newCmd = &cobra.Command{
	Use:   "new [command-name]",
	Short: "Generate a PowerShell advanced function scaffold",
	Long: `The new command generates a complete advanced function skeleton: comment-based
help, a Param block built from your parameter spec, and Begin/Process/End
lifecycle blocks with verbose tracing.

Parameters come from a spec file (--spec), repeatable --param flags, or the
interactive builder (--interactive). The scaffold goes to stdout unless
--output, --editor or --publish selects another destination.
` + cli.SpecHelp,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfigAndLogger(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		prompter := cli.NewPrompter()
		builder := cli.NewSpecBuilder(prompter, os.Stderr)
		interactive, _ := cmd.Flags().GetBool("interactive")

		var name string
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			if !interactive {
				return fmt.Errorf("a command name is required (pass it as an argument or use --interactive)")
			}
			name, err = builder.AskCommandName()
			if err != nil {
				return fmt.Errorf("interactive build failed: %w", err)
			}
		} else if !cli.IsValidCommandName(name) {
			log.Warn("command name does not follow the Verb-Noun convention", "name", name)
		}

		params, err := resolveParameters(cmd, builder, log)
		if err != nil {
			return err
		}

		beginCode, err := readSnippet(cmd, "begin-file")
		if err != nil {
			return err
		}
		processCode, err := readSnippet(cmd, "process-file")
		if err != nil {
			return err
		}
		endCode, err := readSnippet(cmd, "end-file")
		if err != nil {
			return err
		}

		// The configured author wins; otherwise the OS user is stamped in.
		var provider identity.Provider = identity.EnvProvider{}
		if cfg.Scaffold.Author != "" {
			provider = identity.Static(cfg.Scaffold.Author)
		}

		opts := scaffold.Options{
			MinimumVersion: cfg.Scaffold.MinimumVersion,
			Version:        cfg.Scaffold.Version,
		}

		var gen *scaffold.Generator
		if templatePath, _ := cmd.Flags().GetString("template"); templatePath != "" {
			gen, err = scaffold.NewGeneratorFromFile(templatePath, provider, opts)
		} else {
			gen, err = scaffold.NewGenerator(provider, opts)
		}
		if err != nil {
			return err
		}

		synopsis, _ := cmd.Flags().GetString("synopsis")
		description, _ := cmd.Flags().GetString("description")
		shouldProcess, _ := cmd.Flags().GetBool("should-process")

		content, err := gen.Generate(scaffold.Request{
			Name:                  name,
			Parameters:            params,
			SupportsShouldProcess: shouldProcess,
			Synopsis:              synopsis,
			Description:           description,
			BeginCode:             beginCode,
			ProcessCode:           processCode,
			EndCode:               endCode,
		})
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		useEditor, _ := cmd.Flags().GetBool("editor")
		publish, _ := cmd.Flags().GetBool("publish")

		destinations := 0
		if outputPath != "" {
			destinations++
		}
		if useEditor {
			destinations++
		}
		if publish {
			destinations++
		}
		if destinations > 1 {
			return fmt.Errorf("--output, --editor and --publish are mutually exclusive")
		}

		var dest sink.Sink
		closer := func() {}
		switch {
		case outputPath != "":
			fileSink := sink.NewFileSink(outputPath)
			target := fileSink.Target(name)
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				if info, err := os.Stat(target); err == nil && !info.IsDir() {
					overwrite, err := prompter.Confirm(fmt.Sprintf("File '%s' already exists. Overwrite?", target))
					if err != nil {
						return err
					}
					if !overwrite {
						fmt.Fprintln(os.Stderr, "Cancelled.")
						return nil
					}
				}
			}
			outputPath = target
			dest = fileSink
		case useEditor:
			editorSink := sink.NewEditorSink(cfg.Editor.Command, log)
			if editorSink.Available() {
				dest = editorSink
			} else {
				log.Warn("no editor available, writing to stdout instead")
				dest = sink.NewWriterSink(cmd.OutOrStdout())
			}
		case publish:
			natsSink, err := sink.NewNATSSink(&cfg.NATS, log)
			if err != nil {
				return err
			}
			dest = natsSink
			closer = func() {
				if err := natsSink.Close(); err != nil {
					log.Error("failed to close NATS sink", "error", err)
				}
			}
		default:
			dest = sink.NewWriterSink(cmd.OutOrStdout())
		}
		defer closer()

		if err := dest.Deliver(cmd.Context(), sink.Artifact{Name: name, Content: content}); err != nil {
			return fmt.Errorf("failed to deliver scaffold: %w", err)
		}

		log.Debug("scaffold delivered", "command", name, "sink", dest.Name())
		if outputPath != "" {
			fmt.Fprintf(os.Stderr, "%s✓ Scaffold for '%s' written to %s%s\n", cli.ColorGreen, name, outputPath, cli.ColorReset)
		}
		return nil
	},
}

func init() {
	newCmd.Flags().StringP("spec", "s", "", "Path to a YAML or JSON parameter spec file")
	newCmd.Flags().StringArrayP("param", "p", nil, "Add a parameter as Name=Type (repeatable, order kept)")
	newCmd.Flags().BoolP("interactive", "i", false, "Build the parameter list interactively")
	newCmd.Flags().String("synopsis", "", "Synopsis line for the comment-based help")
	newCmd.Flags().String("description", "", "Description for the comment-based help")
	newCmd.Flags().Bool("should-process", false, "Support -WhatIf and -Confirm via SupportsShouldProcess")
	newCmd.Flags().String("begin-file", "", "File with code to splice into the Begin block")
	newCmd.Flags().String("process-file", "", "File with code to splice into the Process block")
	newCmd.Flags().String("end-file", "", "File with code to splice into the End block")
	newCmd.Flags().StringP("output", "o", "", "Write the scaffold to a file instead of stdout")
	newCmd.Flags().Bool("force", false, "Overwrite an existing output file without asking")
	newCmd.Flags().Bool("editor", false, "Open the scaffold in your editor")
	newCmd.Flags().Bool("publish", false, "Publish the scaffold to the configured NATS subject")
	newCmd.Flags().StringP("template", "t", "", "Use a custom scaffold template file")
}

// resolveParameters collects the parameter spec from exactly one source.
func resolveParameters(cmd *cobra.Command, builder *cli.SpecBuilder, log *logger.Logger) (any, error) {
	specPath, _ := cmd.Flags().GetString("spec")
	paramFlags, _ := cmd.Flags().GetStringArray("param")
	interactive, _ := cmd.Flags().GetBool("interactive")

	sources := 0
	if specPath != "" {
		sources++
	}
	if len(paramFlags) > 0 {
		sources++
	}
	if interactive {
		sources++
	}
	if sources > 1 {
		return nil, fmt.Errorf("use only one of --spec, --param or --interactive")
	}

	switch {
	case specPath != "":
		spec, err := scaffold.NewSpecLoader(log).LoadFromFile(specPath)
		if err != nil {
			return nil, err
		}
		return spec, nil
	case len(paramFlags) > 0:
		spec := scaffold.NewOrderedSpec()
		for _, raw := range paramFlags {
			parts := strings.SplitN(raw, "=", 2)
			if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
				return nil, fmt.Errorf("invalid --param %q (expected Name=Type)", raw)
			}
			spec.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		}
		return spec, nil
	case interactive:
		return builder.BuildParameters()
	default:
		return nil, nil
	}
}

// readSnippet loads an optional snippet file flag, empty when unset.
func readSnippet(cmd *cobra.Command, flag string) (string, error) {
	path, _ := cmd.Flags().GetString(flag)
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s: %w", flag, err)
	}
	return string(data), nil
}
