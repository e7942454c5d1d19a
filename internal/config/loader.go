package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the parser used for a settings file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the parser from the file extension. Unknown
// extensions are read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// LoadResult is the outcome of a successful load. Problems lists the
// entries that were left out of Table.
type LoadResult struct {
	Table    Table
	Problems []*EntryError
	File     string
}

// Load reads the settings file at path.
//
// A missing file, a document that does not parse, or a top level that is
// not a mapping is returned as an error. Malformed entries are not errors:
// they are skipped and reported in LoadResult.Problems.
func Load(path string) (*LoadResult, error) {
	canon, err := canonicalPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(canon)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read: %w", canon, err)
	}

	var entries []rawEntry
	switch FormatForPath(canon) {
	case FormatYAML:
		entries, err = decodeYAML(canon, data)
	case FormatTOML:
		entries, err = decodeTOML(canon, data)
	default:
		entries, err = decodeJSON(canon, data)
	}
	if err != nil {
		return nil, err
	}

	res := &LoadResult{
		Table: make(Table, len(entries)),
		File:  canon,
	}
	for _, entry := range entries {
		setting, problems, ok := entry.build()
		if !ok {
			res.Problems = append(res.Problems, problems...)
			continue
		}
		res.Table[entry.Name] = setting
	}
	return res, nil
}

func decodeYAML(file string, data []byte) ([]rawEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SyntaxError{Source: Source{File: file}, Err: err}
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	node = resolveAlias(node)

	switch {
	case node.Kind == 0:
		// Empty input.
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null":
		return nil, nil
	case node.Kind != yaml.MappingNode:
		return nil, &SyntaxError{
			Source: Source{File: file, Line: node.Line, Column: node.Column},
			Err:    fmt.Errorf("top level must be a mapping of process names to window settings, got %s", describeNode(node)),
		}
	}

	set := newEntrySet()
	for i := 0; i+1 < len(node.Content); i += 2 {
		set.put(yamlEntry(file, node.Content[i], node.Content[i+1]))
	}
	return set.list(), nil
}

func yamlEntry(file string, keyNode, valNode *yaml.Node) rawEntry {
	entry := rawEntry{
		Name:   keyNode.Value,
		Source: Source{File: file, Line: keyNode.Line, Column: keyNode.Column},
	}

	valNode = resolveAlias(valNode)
	if valNode.Kind != yaml.MappingNode {
		entry.Invalid = fmt.Errorf("%w: got %s", ErrNotObject, describeNode(valNode))
		return entry
	}

	entry.Fields = make(map[string]rawField, len(valNode.Content)/2)
	for i := 0; i+1 < len(valNode.Content); i += 2 {
		k := valNode.Content[i]
		v := resolveAlias(valNode.Content[i+1])
		field := rawField{Source: Source{File: file, Line: v.Line, Column: v.Column}}
		field.Value, field.Err = yamlInt(v)
		entry.Fields[k.Value] = field
	}
	return entry
}

func yamlInt(node *yaml.Node) (*int, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return nil, fmt.Errorf("%w: got %s", ErrNotInteger, describeNode(node))
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInteger, err)
	}
	return &n, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func describeNode(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "an object"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return "null"
		case "!!str":
			return fmt.Sprintf("string %q", node.Value)
		default:
			return fmt.Sprintf("%s %s", strings.TrimPrefix(node.ShortTag(), "!!"), node.Value)
		}
	default:
		return "an unsupported value"
	}
}

func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Best-effort; still use abs.
		return abs, nil
	}
	return real, nil
}
