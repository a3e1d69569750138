package catalog

import "strings"

// PropertyKind distinguishes options that live in the URI path from options
// that live in the query string.
type PropertyKind string

const (
	KindPath      PropertyKind = "path"
	KindParameter PropertyKind = "parameter"
)

// PropertySchema describes a single endpoint option of a component scheme.
type PropertySchema struct {
	Name        string       `json:"name"`
	Kind        PropertyKind `json:"kind"`
	Default     string       `json:"defaultValue,omitempty"`
	Description string       `json:"description,omitempty"`
	Required    bool         `json:"required,omitempty"`
	Secret      bool         `json:"secret,omitempty"`
}

// ComponentSchema describes one endpoint scheme known to the catalog: its
// implementation type, the syntax of its URI path, and its option properties.
// A schema registered with only Scheme and ImplType is valid; such schemes
// accept arbitrary query options and an opaque path.
type ComponentSchema struct {
	Scheme      string           `json:"scheme"`
	ImplType    string           `json:"implType"`
	Description string           `json:"description,omitempty"`
	Syntax      string           `json:"syntax,omitempty"`
	Properties  []PropertySchema `json:"properties,omitempty"`
}

// Property looks up a property schema by name.
func (s ComponentSchema) Property(name string) (PropertySchema, bool) {
	for _, p := range s.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertySchema{}, false
}

// PathTokens returns the ordered property names referenced by the Syntax
// template. The syntax form is "scheme:tokenA" or "scheme:tokenA/tokenB",
// where each token names a path-kind property.
func (s ComponentSchema) PathTokens() []string {
	syntax := s.Syntax
	if syntax == "" {
		return nil
	}
	if i := strings.Index(syntax, ":"); i >= 0 {
		syntax = syntax[i+1:]
	}
	if syntax == "" {
		return nil
	}
	tokens := strings.FieldsFunc(syntax, func(r rune) bool {
		return r == '/' || r == ':'
	})
	return tokens
}
