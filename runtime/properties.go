package runtime

import (
	"strings"

	"github.com/jkorab/camel/camelerr"
)

// Properties is a read-only configuration source used to resolve
// {{placeholder}} references.
type Properties interface {
	Lookup(key string) (string, bool)
}

// MapProperties is a Properties backed by a plain map.
type MapProperties map[string]string

func (m MapProperties) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// resolvePlaceholders replaces every {{key}} in s. A reference to a key the
// source cannot resolve is an error; a string without references is returned
// unchanged and never consults the source.
func resolvePlaceholders(s string, props Properties) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}
	var b strings.Builder
	rest := s
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		key := rest[start+2 : start+end]
		b.WriteString(rest[:start])
		if props == nil {
			return "", &camelerr.PlaceholderError{Key: key}
		}
		value, ok := props.Lookup(key)
		if !ok {
			return "", &camelerr.PlaceholderError{Key: key}
		}
		b.WriteString(value)
		rest = rest[start+end+2:]
	}
}
