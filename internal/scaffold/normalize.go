//file: internal/scaffold/normalize.go

package scaffold

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// A spec sequence is [type, mandatory, valueFromPipeline,
// valueFromPipelineByPropertyName, position].
const maxSpecElements = 5

// NormalizeParameters interprets the Parameters field of a Request into
// declaration-ordered Parameter records. nil means no parameters. A plain
// map is walked in sorted key order; an *OrderedSpec keeps insertion order.
// Either way the same order feeds both the declaration block and the help
// stubs.
func NormalizeParameters(input any) ([]Parameter, error) {
	switch spec := input.(type) {
	case nil:
		return nil, nil
	case *OrderedSpec:
		params := make([]Parameter, 0, spec.Len())
		for _, entry := range spec.Entries() {
			p, err := normalizeEntry(entry.Name, entry.Value)
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return params, nil
	case map[string]any:
		names := make([]string, 0, len(spec))
		for name := range spec {
			names = append(names, name)
		}
		sort.Strings(names)

		params := make([]Parameter, 0, len(names))
		for _, name := range names {
			p, err := normalizeEntry(name, spec[name])
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return params, nil
	case map[string]string:
		names := make([]string, 0, len(spec))
		for name := range spec {
			names = append(names, name)
		}
		sort.Strings(names)

		params := make([]Parameter, 0, len(names))
		for _, name := range names {
			p, err := normalizeEntry(name, spec[name])
			if err != nil {
				return nil, err
			}
			params = append(params, p)
		}
		return params, nil
	default:
		return nil, &InvalidInputTypeError{Type: fmt.Sprintf("%T", input)}
	}
}

// normalizeEntry converts one (name, value) pair into a Parameter record.
func normalizeEntry(name string, value any) (Parameter, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Parameter{}, &InvalidSpecError{Param: name, Reason: "parameter name cannot be empty"}
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return Parameter{}, &InvalidSpecError{Param: trimmed, Reason: "type descriptor cannot be empty"}
		}
		return Parameter{Name: trimmed, Type: v}, nil
	case []any:
		return normalizeSequence(trimmed, v)
	default:
		return Parameter{}, &InvalidSpecError{
			Param:  trimmed,
			Reason: fmt.Sprintf("value must be a type descriptor string or a sequence, got %T", value),
		}
	}
}

// normalizeSequence maps sequence slots onto attributes. Presence is
// positional: a slot that exists always renders, even when its value is
// false, and a missing slot never does.
func normalizeSequence(name string, seq []any) (Parameter, error) {
	if len(seq) == 0 {
		return Parameter{}, &InvalidSpecError{Param: name, Reason: "type descriptor is required"}
	}
	if len(seq) > maxSpecElements {
		return Parameter{}, &InvalidSpecError{
			Param:  name,
			Reason: fmt.Sprintf("spec has %d elements, at most %d allowed", len(seq), maxSpecElements),
		}
	}

	typeDesc, ok := seq[0].(string)
	if !ok || strings.TrimSpace(typeDesc) == "" {
		return Parameter{}, &InvalidSpecError{Param: name, Reason: "type descriptor must be a non-empty string"}
	}

	p := Parameter{Name: name, Type: typeDesc}

	if len(seq) > 1 {
		b, err := coerceBool(seq[1])
		if err != nil {
			return Parameter{}, &InvalidSpecError{Param: name, Reason: fmt.Sprintf("mandatory: %v", err)}
		}
		p.Mandatory = &b
	}
	if len(seq) > 2 {
		b, err := coerceBool(seq[2])
		if err != nil {
			return Parameter{}, &InvalidSpecError{Param: name, Reason: fmt.Sprintf("valueFromPipeline: %v", err)}
		}
		p.ValueFromPipeline = &b
	}
	if len(seq) > 3 {
		b, err := coerceBool(seq[3])
		if err != nil {
			return Parameter{}, &InvalidSpecError{Param: name, Reason: fmt.Sprintf("valueFromPipelineByPropertyName: %v", err)}
		}
		p.ValueFromPipelineByPropertyName = &b
	}
	if len(seq) > 4 {
		n, err := coerceInt(seq[4])
		if err != nil {
			return Parameter{}, &InvalidSpecError{Param: name, Reason: fmt.Sprintf("position: %v", err)}
		}
		p.Position = &n
	}

	return p, nil
}

// coerceBool accepts the loose value forms spec files produce: native
// booleans, the strings ParseBool understands, and numbers (non-zero is
// true).
func coerceBool(v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, fmt.Errorf("cannot interpret %q as a boolean", val)
		}
		return b, nil
	case int:
		return val != 0, nil
	case int64:
		return val != 0, nil
	case float64:
		return val != 0, nil
	case nil:
		return false, fmt.Errorf("explicit null is not a boolean")
	default:
		return false, fmt.Errorf("cannot interpret %T as a boolean", v)
	}
}

// coerceInt accepts native integers, integral floats (JSON numbers decode
// as float64), and numeric strings.
func coerceInt(v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		if val != math.Trunc(val) {
			return 0, fmt.Errorf("%v is not an integer", val)
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("cannot interpret %q as an integer", val)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("explicit null is not an integer")
	default:
		return 0, fmt.Errorf("cannot interpret %T as an integer", v)
	}
}
