//file: internal/cli/validator.go
package cli

import "regexp"

var (
	commandNameRe   = regexp.MustCompile(`^[A-Za-z]+-[A-Za-z][A-Za-z0-9]*$`)
	parameterNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// IsValidCommandName checks whether a name follows the Verb-Noun convention.
func IsValidCommandName(name string) bool {
	return commandNameRe.MatchString(name)
}

// IsValidParameterName checks whether a name is usable as a PowerShell
// variable name.
func IsValidParameterName(name string) bool {
	return parameterNameRe.MatchString(name)
}

// SpecHelp provides a formatted string describing the parameter spec format.
const SpecHelp = `
--- Spec Format Help ---
A spec file maps parameter names to a type descriptor or a sequence:

  Name: string                         # scalar entry, no binding attributes
  Path: [string, true]                 # type, mandatory
  Size: [int, false, false, true]      # + fromPipeline, fromPipelineByPropertyName
  Id: [int, true, false, false, 0]     # + positional index
  Tags: ["string[]", false]            # bracketed types need quotes in YAML

Sequence positions: type, mandatory, fromPipeline,
fromPipelineByPropertyName, position. Only the elements present in the
sequence appear in the generated Parameter attribute.

Both YAML (.yaml/.yml) and JSON (.json) specs are accepted; parameters
keep their file order.
------------------------`
