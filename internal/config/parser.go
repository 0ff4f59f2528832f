package config

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"devcli/internal/logger"
)

// ErrInvalidCatalog is returned when the task file is not a category -> subcommand -> shell tree.
var ErrInvalidCatalog = errors.New("invalid task catalog")

// Parse decodes a task catalog. JSON and YAML are both accepted since JSON is a
// subset of YAML. The document is walked as a yaml.Node so that categories and
// subcommands keep the order they were written in.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(unescapeJSONSlashes(data), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping of categories", ErrInvalidCatalog, root.Line)
	}

	cat := &Catalog{}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i].Value, root.Content[i+1]
		if seen[name] {
			logger.Debug("[DEBUG] Duplicate category %q ignored\n", name)
			continue
		}
		seen[name] = true

		category, err := parseCategory(name, body)
		if err != nil {
			return nil, err
		}
		cat.Categories = append(cat.Categories, category)
	}

	logger.Debug("[DEBUG] Parsed catalog with %d categories\n", len(cat.Categories))
	return cat, nil
}

func parseCategory(name string, node *yaml.Node) (Category, error) {
	if node.Kind != yaml.MappingNode {
		return Category{}, fmt.Errorf("%w: line %d: category %q must be a mapping of subcommands", ErrInvalidCatalog, node.Line, name)
	}

	category := Category{Name: name}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		subName, body := node.Content[i].Value, node.Content[i+1]
		if seen[subName] {
			logger.Debug("[DEBUG] Duplicate subcommand %s.%s ignored\n", name, subName)
			continue
		}
		seen[subName] = true

		if body.Kind != yaml.MappingNode {
			return Category{}, fmt.Errorf("%w: line %d: %s.%s must be a mapping of shell variants", ErrInvalidCatalog, body.Line, name, subName)
		}

		// yaml.v3 rejects duplicate keys when decoding into a map; walk the
		// pairs so the first occurrence wins like everywhere else.
		sub := Subcommand{Name: subName, Variants: make(map[string]Variant)}
		for j := 0; j+1 < len(body.Content); j += 2 {
			shellKey := body.Content[j].Value
			if _, dup := sub.Variants[shellKey]; dup {
				continue
			}
			var v Variant
			if err := firstKeys(body.Content[j+1]).Decode(&v); err != nil {
				return Category{}, fmt.Errorf("%w: %s.%s (%s): %v", ErrInvalidCatalog, name, subName, shellKey, err)
			}
			sub.Variants[shellKey] = v
		}
		category.Subcommands = append(category.Subcommands, sub)
	}
	return category, nil
}

// firstKeys returns a copy of node in which every mapping keeps only the first
// occurrence of each key. yaml.v3 rejects duplicates when decoding into structs.
func firstKeys(node *yaml.Node) *yaml.Node {
	switch node.Kind {
	case yaml.MappingNode:
		out := *node
		out.Content = make([]*yaml.Node, 0, len(node.Content))
		seen := make(map[string]bool)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if seen[key] {
				logger.Debug("[DEBUG] Duplicate key %q on line %d ignored\n", key, node.Content[i].Line)
				continue
			}
			seen[key] = true
			out.Content = append(out.Content, node.Content[i], firstKeys(node.Content[i+1]))
		}
		return &out
	case yaml.SequenceNode:
		out := *node
		out.Content = make([]*yaml.Node, len(node.Content))
		for i, item := range node.Content {
			out.Content[i] = firstKeys(item)
		}
		return &out
	}
	return node
}

// unescapeJSONSlashes rewrites the JSON escape \/ inside double-quoted strings
// to a plain slash, which yaml.v3 does not accept. Documents that do not start
// with '{' or '[' are left alone so YAML plain scalars keep their backslashes.
func unescapeJSONSlashes(data []byte) []byte {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') || !bytes.Contains(data, []byte(`\/`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case !inString:
			inString = c == '"'
		case c == '\\' && i+1 < len(data):
			i++
			if data[i] == '/' {
				out = append(out, '/')
				continue
			}
			out = append(out, c)
			c = data[i]
		case c == '"':
			inString = false
		}
		out = append(out, c)
	}
	return out
}
