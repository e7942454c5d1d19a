package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeJSON walks the document token by token so that duplicate keys keep
// the last value and positions can be reported for every entry and field.
func decodeJSON(file string, data []byte) ([]rawEntry, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	syntaxErr := func(err error) error {
		return &SyntaxError{Source: sourceAt(file, data, jsonErrorOffset(dec, err)), Err: err}
	}

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, syntaxErr(err)
	}

	set := newEntrySet()
	switch tok {
	case nil:
		// A bare null is an empty document.
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, syntaxErr(err)
			}
			name, _ := keyTok.(string)
			entry, err := jsonEntry(file, data, dec, name)
			if err != nil {
				return nil, syntaxErr(err)
			}
			set.put(entry)
		}
		if _, err := dec.Token(); err != nil {
			return nil, syntaxErr(err)
		}
	default:
		return nil, &SyntaxError{
			Source: sourceAt(file, data, dec.InputOffset()),
			Err:    fmt.Errorf("top level must be a mapping of process names to window settings, got %s", describeJSON(tok)),
		}
	}

	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, syntaxErr(err)
	}
	return set.list(), nil
}

func jsonEntry(file string, data []byte, dec *json.Decoder, name string) (rawEntry, error) {
	entry := rawEntry{Name: name, Source: sourceAt(file, data, dec.InputOffset())}

	tok, err := dec.Token()
	if err != nil {
		return entry, err
	}
	if tok != json.Delim('{') {
		entry.Invalid = fmt.Errorf("%w: got %s", ErrNotObject, describeJSON(tok))
		return entry, skipJSONValue(dec, tok)
	}

	entry.Fields = make(map[string]rawField)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return entry, err
		}
		key, _ := keyTok.(string)
		field := rawField{Source: sourceAt(file, data, dec.InputOffset())}

		valTok, err := dec.Token()
		if err != nil {
			return entry, err
		}
		field.Value, field.Err = jsonInt(valTok)
		if err := skipJSONValue(dec, valTok); err != nil {
			return entry, err
		}
		entry.Fields[key] = field
	}
	_, err = dec.Token() // closing '}'
	return entry, err
}

func jsonInt(tok json.Token) (*int, error) {
	num, ok := tok.(json.Number)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotInteger, describeJSON(tok))
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return nil, fmt.Errorf("%w: got number %s", ErrNotInteger, num)
	}
	return &n, nil
}

// skipJSONValue consumes the rest of a value whose first token was tok.
func skipJSONValue(dec *json.Decoder, tok json.Token) error {
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	for depth := 1; depth > 0; {
		t, err := dec.Token()
		if err != nil {
			return err
		}
		switch t {
		case json.Delim('{'), json.Delim('['):
			depth++
		case json.Delim('}'), json.Delim(']'):
			depth--
		}
	}
	return nil
}

func describeJSON(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		if v == '[' {
			return "a list"
		}
		return "an object"
	case string:
		return fmt.Sprintf("string %q", v)
	case json.Number:
		return "number " + v.String()
	case bool:
		return fmt.Sprintf("bool %t", v)
	default:
		return fmt.Sprintf("%T", tok)
	}
}

func jsonErrorOffset(dec *json.Decoder, err error) int64 {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		return syn.Offset
	}
	return dec.InputOffset()
}

// sourceAt converts a byte offset into a 1-based line and column.
func sourceAt(file string, data []byte, offset int64) Source {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	col := int(offset) - (bytes.LastIndexByte(prefix, '\n') + 1) + 1
	return Source{File: file, Line: line, Column: col}
}
