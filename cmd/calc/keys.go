package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calc"
)

// splitKeys splits a key stream into symbols. Each rune is one symbol, except
// that {Name} is the single named key Name. Whitespace separates nothing and
// is dropped.
func splitKeys(stream string) ([]string, error) {
	var keys []string
	for i := 0; i < len(stream); {
		r, sz := utf8.DecodeRuneInString(stream[i:])
		switch {
		case unicode.IsSpace(r):
			i += sz
		case r == '{':
			k := strings.IndexByte(stream[i:], '}')
			if k < 0 {
				return nil, fmt.Errorf("unterminated key name at byte %d of %q", i, stream)
			}
			name := stream[i+1 : i+k]
			if name == "" {
				return nil, fmt.Errorf("empty key name at byte %d of %q", i, stream)
			}
			keys = append(keys, name)
			i += k + 1
		default:
			keys = append(keys, stream[i:i+sz])
			i += sz
		}
	}
	return keys, nil
}

// keymap is the format of the -keys file, e.g.
//
//	keys:
//	  c: clear
//	  Delete: backspace
//	  Enter: none
type keymap struct {
	Keys map[string]calc.Action `yaml:"keys"`
}

func loadKeys(name string) (map[string]calc.Action, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	keys, err := parseKeys(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return keys, nil
}

func parseKeys(b []byte) (map[string]calc.Action, error) {
	var m keymap
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m.Keys, nil
}
