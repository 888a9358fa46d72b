//file: internal/scaffold/loader.go

package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"psforge/internal/logger"
)

// SpecLoader reads parameter spec mappings from YAML or JSON files. Both
// parsers keep the file's declaration order, which becomes the declaration
// order of the generated function.
type SpecLoader struct {
	logger *logger.Logger
}

// NewSpecLoader creates a new spec loader
func NewSpecLoader(log *logger.Logger) *SpecLoader {
	return &SpecLoader{logger: log}
}

// LoadFromFile parses one spec file, dispatching on extension.
func (l *SpecLoader) LoadFromFile(path string) (*OrderedSpec, error) {
	l.logger.Debug("loading parameter spec", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return l.parseYAML(data)
	case ".json":
		return l.parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported spec file extension %q (use .yaml, .yml or .json)", ext)
	}
}

// parseYAML decodes through yaml.Node so mapping order survives; decoding
// straight into map[string]any would shuffle it.
func (l *SpecLoader) parseYAML(data []byte) (*OrderedSpec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// An empty file is an empty spec
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return NewOrderedSpec(), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return NewOrderedSpec(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &InvalidInputTypeError{Type: yamlKindName(root.Kind)}
	}

	spec := NewOrderedSpec()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode := root.Content[i]
		valNode := root.Content[i+1]

		var value any
		if err := valNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode value for %q: %w", keyNode.Value, err)
		}
		spec.Add(keyNode.Value, value)
	}

	l.logger.Debug("parsed YAML spec", "parameters", spec.Len())
	return spec, nil
}

// parseJSON walks the object with a streaming decoder so member order
// survives; Unmarshal into a map would shuffle it.
func (l *SpecLoader) parseJSON(data []byte) (*OrderedSpec, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &InvalidInputTypeError{Type: jsonTokenName(tok)}
	}

	spec := NewOrderedSpec()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected JSON key token %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode value for %q: %w", key, err)
		}
		spec.Add(key, value)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	l.logger.Debug("parsed JSON spec", "parameters", spec.Len())
	return spec, nil
}

func yamlKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "a YAML sequence"
	case yaml.ScalarNode:
		return "a YAML scalar"
	case yaml.AliasNode:
		return "a YAML alias"
	default:
		return fmt.Sprintf("YAML node kind %d", kind)
	}
}

func jsonTokenName(tok any) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "a JSON array"
		}
		return fmt.Sprintf("JSON delimiter %q", v.String())
	case string:
		return "a JSON string"
	case float64:
		return "a JSON number"
	case bool:
		return "a JSON boolean"
	case nil:
		return "JSON null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
