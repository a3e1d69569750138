package runtime

import (
	"encoding/json"

	"github.com/jkorab/camel/camelerr"
	"github.com/jkorab/camel/catalog"
)

// ExplainedOption is one option in an endpoint explanation. Value and
// Description are omitted from the JSON when unset.
type ExplainedOption struct {
	Name        string  `json:"name"`
	Value       *string `json:"value,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Explanation is the JSON document returned by ExplainEndpoint. Options is an
// array rather than an object so option order survives decoding.
type Explanation struct {
	URI     string            `json:"uri"`
	Options []ExplainedOption `json:"options"`
}

// ExplainEndpoint resolves the effective option set of an endpoint URI
// against the catalog and returns it as a JSON document. Options follow
// schema property order, with options unknown to the schema appended in
// order of appearance. With allOptions false only options explicitly set on
// the URI are included; with allOptions true every schema property is
// included, carrying its default value when the URI does not set it.
func (cx *Context) ExplainEndpoint(uri string, allOptions bool) (string, error) {
	scheme, _, _, err := catalog.SplitURI(uri)
	if err != nil {
		return "", err
	}
	schema, ok := cx.catalog.Lookup(scheme)
	if !ok {
		return "", &camelerr.UnknownSchemeError{Scheme: scheme}
	}
	explicit, err := cx.catalog.EndpointProperties(uri)
	if err != nil {
		return "", err
	}

	doc := Explanation{URI: uri}
	inSchema := make(map[string]bool, len(schema.Properties))
	for _, prop := range schema.Properties {
		inSchema[prop.Name] = true
		opt := ExplainedOption{Name: prop.Name}
		if prop.Description != "" {
			opt.Description = ptr(prop.Description)
		}
		if v, ok := explicit.Get(prop.Name); ok {
			opt.Value = ptr(v)
		} else if !allOptions {
			continue
		} else if prop.Default != "" {
			opt.Value = ptr(prop.Default)
		}
		doc.Options = append(doc.Options, opt)
	}
	explicit.Each(func(name, value string) {
		if inSchema[name] {
			return
		}
		doc.Options = append(doc.Options, ExplainedOption{Name: name, Value: ptr(value)})
	})

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func ptr(s string) *string {
	return &s
}
