//file: internal/cli/builder.go
package cli

import (
	"fmt"
	"io"
	"strconv"

	"psforge/internal/scaffold"
)

// parameterTypes are the descriptors offered by the interactive picker. The
// last entry switches to free-form input.
var parameterTypes = []string{
	"string",
	"string[]",
	"int",
	"switch",
	"boolean",
	"datetime",
	"object",
	"custom...",
}

// SpecBuilder interactively assembles the parameter spec for a scaffold.
type SpecBuilder struct {
	prompter Prompter
	out      io.Writer
}

// NewSpecBuilder creates a new interactive spec builder. Progress banners
// are written to out.
func NewSpecBuilder(p Prompter, out io.Writer) *SpecBuilder {
	return &SpecBuilder{prompter: p, out: out}
}

// AskCommandName prompts for the command name, steering toward the
// Verb-Noun convention without enforcing it.
func (sb *SpecBuilder) AskCommandName() (string, error) {
	for {
		name, err := sb.prompter.Ask("Command name (e.g. 'Set-MyScript'):")
		if err != nil {
			return "", err
		}
		if name == "" {
			fmt.Fprintln(sb.out, "A command name is required.")
			continue
		}
		if !IsValidCommandName(name) {
			fmt.Fprintf(sb.out, "%s'%s' does not follow the Verb-Noun convention.%s\n", ColorYellow, name, ColorReset)
			keep, err := sb.prompter.Confirm(fmt.Sprintf("Use '%s' anyway?", name))
			if err != nil {
				return "", err
			}
			if !keep {
				continue
			}
		}
		return name, nil
	}
}

// BuildParameters walks the user through the parameter list and returns the
// entries in prompt order. Plain answers map onto the same entry shapes a
// spec file uses: a bare type descriptor, or a sequence of type, mandatory,
// fromPipeline, fromPipelineByPropertyName and an optional position.
func (sb *SpecBuilder) BuildParameters() (*scaffold.OrderedSpec, error) {
	fmt.Fprintf(sb.out, "\n%s--- Defining Parameters ---%s\n", ColorGreen, ColorReset)
	fmt.Fprintln(sb.out, "Parameters appear in the scaffold in the order you enter them.")
	fmt.Fprintln(sb.out, "Press Enter on an empty name to finish.")

	spec := scaffold.NewOrderedSpec()
	for {
		name, err := sb.getParameterName()
		if err != nil {
			return nil, err
		}
		if name == "" {
			break
		}

		typeDesc, err := sb.getParameterType()
		if err != nil {
			return nil, err
		}

		withAttrs, err := sb.prompter.Confirm("Add binding attributes (mandatory/pipeline/position)?")
		if err != nil {
			return nil, err
		}
		if !withAttrs {
			spec.Add(name, typeDesc)
			fmt.Fprintf(sb.out, "%s✓ Added %s (%s)%s\n", ColorGreen, name, typeDesc, ColorReset)
			continue
		}

		mandatory, err := sb.prompter.Confirm("Mandatory?")
		if err != nil {
			return nil, err
		}
		fromPipeline, err := sb.prompter.Confirm("Accept pipeline input by value?")
		if err != nil {
			return nil, err
		}
		byPropertyName, err := sb.prompter.Confirm("Accept pipeline input by property name?")
		if err != nil {
			return nil, err
		}

		entry := []any{typeDesc, mandatory, fromPipeline, byPropertyName}

		position, hasPosition, err := sb.getPosition()
		if err != nil {
			return nil, err
		}
		if hasPosition {
			entry = append(entry, position)
		}

		spec.Add(name, entry)
		fmt.Fprintf(sb.out, "%s✓ Added %s (%s)%s\n", ColorGreen, name, typeDesc, ColorReset)
	}

	return spec, nil
}

// getParameterName prompts until a valid name or an empty finisher.
func (sb *SpecBuilder) getParameterName() (string, error) {
	for {
		name, err := sb.prompter.Ask("Parameter name (press Enter to finish):")
		if err != nil {
			return "", err
		}
		if name == "" {
			return "", nil
		}
		if !IsValidParameterName(name) {
			fmt.Fprintln(sb.out, "Parameter names use letters, digits and underscore. Please try again.")
			continue
		}
		return name, nil
	}
}

// getParameterType offers the common descriptors plus free-form input.
func (sb *SpecBuilder) getParameterType() (string, error) {
	choice, err := sb.prompter.Select("Select parameter type:", parameterTypes)
	if err != nil {
		return "", err
	}
	if choice < len(parameterTypes)-1 {
		return parameterTypes[choice], nil
	}

	for {
		custom, err := sb.prompter.Ask("Type descriptor (e.g. 'System.IO.FileInfo'):")
		if err != nil {
			return "", err
		}
		if custom != "" {
			return custom, nil
		}
		fmt.Fprintln(sb.out, "A type descriptor is required. Please try again.")
	}
}

// getPosition prompts for an optional positional index.
func (sb *SpecBuilder) getPosition() (int, bool, error) {
	for {
		input, err := sb.prompter.Ask("Positional index (press Enter for named only):")
		if err != nil {
			return 0, false, err
		}
		if input == "" {
			return 0, false, nil
		}
		position, err := strconv.Atoi(input)
		if err != nil || position < 0 {
			fmt.Fprintln(sb.out, "Position must be a non-negative integer. Please try again.")
			continue
		}
		return position, true, nil
	}
}
