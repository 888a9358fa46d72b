//file: internal/scaffold/types.go

// Package scaffold renders PowerShell advanced-function skeletons from a
// declarative parameter description.
package scaffold

// Request describes one advanced function to generate.
//
// Parameters accepts either a plain map[string]any (rendered in sorted key
// order so repeated runs stay byte-identical) or an *OrderedSpec built in
// declaration order. Each value is a type descriptor string such as
// "string[]" or "switch", or a sequence of up to five elements:
//
//	[type, mandatory, valueFromPipeline, valueFromPipelineByPropertyName, position]
//
// Trailing elements may be omitted; an attribute is rendered only when its
// slot exists in the sequence, so a supplied false still renders as $False.
type Request struct {
	Name                  string
	Parameters            any
	SupportsShouldProcess bool
	Synopsis              string
	Description           string
	BeginCode             string
	ProcessCode           string
	EndCode               string
}

// Parameter is one normalized parameter declaration. Pointer fields
// distinguish "explicitly false/zero" from "not supplied": nil attributes
// are left out of the rendered [Parameter()] annotation entirely.
type Parameter struct {
	Name                            string
	Type                            string
	Position                        *int
	Mandatory                       *bool
	ValueFromPipeline               *bool
	ValueFromPipelineByPropertyName *bool
}

// SpecEntry is one named entry of an OrderedSpec.
type SpecEntry struct {
	Name  string
	Value any
}

// OrderedSpec is a parameter spec mapping that preserves insertion order,
// for callers that care which declaration comes first.
type OrderedSpec struct {
	entries []SpecEntry
}

// NewOrderedSpec returns an empty ordered spec mapping.
func NewOrderedSpec() *OrderedSpec {
	return &OrderedSpec{}
}

// Add appends one entry and returns the spec for chaining. A repeated name
// replaces the earlier value in place, keeping its original position.
func (s *OrderedSpec) Add(name string, value any) *OrderedSpec {
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Value = value
			return s
		}
	}
	s.entries = append(s.entries, SpecEntry{Name: name, Value: value})
	return s
}

// Len reports the number of entries.
func (s *OrderedSpec) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns the entries in insertion order.
func (s *OrderedSpec) Entries() []SpecEntry {
	if s == nil {
		return nil
	}
	return s.entries
}
