// SPDX-License-Identifier: Apache-2.0

package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads definitions from a YAML document.  Two forms are supported:
//   - Mapping form: `name: oid` pairs, registered in document order.
//   - Sequence form: a list of mappings with "name" and "oid" keys.
//
// An empty document has no definitions.
func ParseYAML(src []byte) ([]Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return parseYAMLMapping(root)
	case yaml.SequenceNode:
		return parseYAMLSequence(root)
	}

	return nil, fmt.Errorf("%w: line %d: expected a mapping or a sequence", ErrBadDocument, root.Line)
}

func parseYAMLMapping(root *yaml.Node) ([]Definition, error) {
	defs := make([]Definition, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: expected name: oid", ErrBadDocument, key.Line)
		}

		defs = append(defs, Definition{Name: key.Value, Value: value.Value, Line: key.Line})
	}

	return defs, nil
}

func parseYAMLSequence(root *yaml.Node) ([]Definition, error) {
	defs := make([]Definition, 0, len(root.Content))

	for _, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: expected a mapping with name and oid", ErrBadDocument, item.Line)
		}

		d := Definition{Line: item.Line}
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], item.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: %s must be a scalar", ErrBadDocument, value.Line, key.Value)
			}

			// scalars are taken verbatim, so 1.2 stays "1.2" rather than a float
			switch key.Value {
			case "name":
				d.Name = value.Value
			case "oid":
				d.Value = value.Value
			default:
				return nil, fmt.Errorf("%w: line %d: unknown key %q", ErrBadDocument, key.Line, key.Value)
			}
		}

		if d.Name == "" || d.Value == "" {
			return nil, fmt.Errorf("%w: line %d: name and oid are required", ErrBadDocument, item.Line)
		}

		defs = append(defs, d)
	}

	return defs, nil
}
