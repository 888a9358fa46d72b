//file: internal/scaffold/render.go

package scaffold

import (
	"fmt"
	"strings"
)

// renderDeclarations produces the body of the Param () construct: one
// [Parameter(...)] annotation plus a typed declaration per record, entries
// joined with comma+newline and no trailing separator.
func renderDeclarations(params []Parameter) string {
	entries := make([]string, 0, len(params))
	for _, p := range params {
		entries = append(entries, fmt.Sprintf("[Parameter(%s)]\n[%s]$%s", attributeList(p), p.Type, p.Name))
	}
	return strings.Join(entries, ",\n")
}

// attributeList renders the present attributes in the fixed order Position,
// Mandatory, ValueFromPipeline, ValueFromPipelineByPropertyName. Absent
// attributes are skipped entirely; present ones render their value even
// when it is false.
func attributeList(p Parameter) string {
	var attrs []string
	if p.Position != nil {
		attrs = append(attrs, fmt.Sprintf("Position=%d", *p.Position))
	}
	if p.Mandatory != nil {
		attrs = append(attrs, "Mandatory="+boolLiteral(*p.Mandatory))
	}
	if p.ValueFromPipeline != nil {
		attrs = append(attrs, "ValueFromPipeline="+boolLiteral(*p.ValueFromPipeline))
	}
	if p.ValueFromPipelineByPropertyName != nil {
		attrs = append(attrs, "ValueFromPipelineByPropertyName="+boolLiteral(*p.ValueFromPipelineByPropertyName))
	}
	return strings.Join(attrs, ",")
}

// renderParameterHelp produces the .PARAMETER stubs for the comment-based
// help block, blank-line separated, in the same order as the declarations.
func renderParameterHelp(params []Parameter) string {
	stubs := make([]string, 0, len(params))
	for _, p := range params {
		stubs = append(stubs, ".PARAMETER "+p.Name)
	}
	return strings.Join(stubs, "\n\n")
}

// boolLiteral renders b the way the generated source spells booleans.
func boolLiteral(b bool) string {
	if b {
		return "$True"
	}
	return "$False"
}
