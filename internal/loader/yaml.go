package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

const maxYAMLDepth = 512

// yamlToJSON re-encodes a YAML document as JSON. It walks the node tree rather
// than decoding into maps so mapping keys keep their declaration order.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 {
		return nil, errors.New("document is empty")
	}

	var buf bytes.Buffer
	if err := writeNode(&buf, &root, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(buf *bytes.Buffer, node *yaml.Node, depth int) error {
	if depth > maxYAMLDepth {
		return errors.New("yaml nesting is too deep")
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeNode(buf, node.Content[0], depth+1)
	case yaml.AliasNode:
		if node.Alias == nil {
			return fmt.Errorf("line %d: unresolved alias", node.Line)
		}
		return writeNode(buf, node.Alias, depth+1)
	case yaml.MappingNode:
		pairs, err := mappingPairs(node, depth)
		if err != nil {
			return err
		}
		buf.WriteByte('{')
		for i, pair := range pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, pair.key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeNode(buf, pair.value, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeNode(buf, child, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if err := writeJSON(buf, value); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		return nil
	default:
		return fmt.Errorf("line %d: unsupported yaml node", node.Line)
	}
}

type mappingPair struct {
	key   string
	value *yaml.Node
}

// mappingPairs resolves the members of a mapping in declaration order,
// splicing in merge keys (<<). Explicit keys win over merged ones, and earlier
// merge sources win over later ones.
func mappingPairs(node *yaml.Node, depth int) ([]mappingPair, error) {
	if depth > maxYAMLDepth {
		return nil, errors.New("yaml nesting is too deep")
	}

	explicit := make(map[string]struct{})
	for i := 0; i+1 < len(node.Content); i += 2 {
		if isMergeKey(node.Content[i]) {
			continue
		}
		key, err := mappingKey(node.Content[i])
		if err != nil {
			return nil, err
		}
		explicit[key] = struct{}{}
	}

	var pairs []mappingPair
	index := make(map[string]int)
	add := func(key string, value *yaml.Node) {
		if i, ok := index[key]; ok {
			pairs[i].value = value
			return
		}
		index[key] = len(pairs)
		pairs = append(pairs, mappingPair{key: key, value: value})
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, value := node.Content[i], node.Content[i+1]
		if !isMergeKey(keyNode) {
			key, err := mappingKey(keyNode)
			if err != nil {
				return nil, err
			}
			add(key, value)
			continue
		}

		sources, err := mergeSources(value)
		if err != nil {
			return nil, err
		}
		for _, source := range sources {
			merged, err := mappingPairs(source, depth+1)
			if err != nil {
				return nil, err
			}
			for _, pair := range merged {
				if _, ok := explicit[pair.key]; ok {
					continue
				}
				if _, ok := index[pair.key]; ok {
					continue
				}
				add(pair.key, pair.value)
			}
		}
	}
	return pairs, nil
}

func isMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// mergeSources returns the mappings referenced by a merge value: one mapping
// or a sequence of them, either possibly given as aliases.
func mergeSources(value *yaml.Node) ([]*yaml.Node, error) {
	value = resolveAlias(value)
	switch value.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{value}, nil
	case yaml.SequenceNode:
		sources := make([]*yaml.Node, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: merge sequence items must be mappings", item.Line)
			}
			sources = append(sources, item)
		}
		return sources, nil
	default:
		return nil, fmt.Errorf("line %d: merge value must be a mapping", value.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func mappingKey(node *yaml.Node) (string, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: mapping keys must be scalars", node.Line)
	}
	return node.Value, nil
}

func writeJSON(buf *bytes.Buffer, value any) error {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(out.Bytes(), []byte("\n")))
	return nil
}
