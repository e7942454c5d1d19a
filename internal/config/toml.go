package config

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// decodeTOML reads a document where every top-level table is an entry:
//
//	[firefox]
//	Width = 1280
//	Height = 800
//	X = 0
//	Y = 0
//	Repeat = 1
//
// TOML does not allow duplicate keys, so there is no last-write-wins case
// here. Positions are not available for individual values.
func decodeTOML(file string, data []byte) ([]rawEntry, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, &SyntaxError{Source: Source{File: file}, Err: err}
	}

	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	src := Source{File: file}
	set := newEntrySet()
	for _, name := range names {
		entry := rawEntry{Name: name, Source: src}
		obj, ok := doc[name].(map[string]any)
		if !ok {
			entry.Invalid = fmt.Errorf("%w: got %T", ErrNotObject, doc[name])
			set.put(entry)
			continue
		}
		entry.Fields = make(map[string]rawField, len(obj))
		for key, val := range obj {
			field := rawField{Source: src}
			field.Value, field.Err = tomlInt(val)
			entry.Fields[key] = field
		}
		set.put(entry)
	}
	return set.list(), nil
}

func tomlInt(v any) (*int, error) {
	n, ok := v.(int64)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotInteger, v)
	}
	i := int(n)
	if int64(i) != n {
		return nil, fmt.Errorf("%w: %d overflows int", ErrNotInteger, n)
	}
	return &i, nil
}
