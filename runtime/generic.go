package runtime

import (
	"fmt"

	"github.com/jkorab/camel/catalog"
	"github.com/jkorab/camel/verify"
)

// GenericComponent serves any scheme registered in the catalog. Its endpoints
// are passive handles carrying their URI and resolved options; actual message
// routing is outside this toolkit's scope.
type GenericComponent struct {
	catalog catalog.Catalog
	scheme  string
}

// NewGenericComponent creates a catalog-backed component for one scheme.
func NewGenericComponent(cat catalog.Catalog, scheme string) *GenericComponent {
	return &GenericComponent{catalog: cat, scheme: scheme}
}

// Scheme returns the scheme this component serves.
func (c *GenericComponent) Scheme() string {
	return c.scheme
}

// CreateEndpoint builds a passive endpoint handle. The resolved option set is
// the path-derived properties followed by the query parameters.
func (c *GenericComponent) CreateEndpoint(uri, remaining string, params *catalog.Options) (Endpoint, error) {
	options := catalog.NewOptions()
	if remaining != "" {
		derived, err := c.catalog.EndpointProperties(c.scheme + ":" + remaining)
		if err != nil {
			return nil, err
		}
		derived.Each(options.Set)
	}
	params.Each(options.Set)
	return &GenericEndpoint{uri: uri, options: options}, nil
}

// Verifier returns a schema-based parameter verifier: it checks that required
// properties are present and that every parameter is known to the schema.
func (c *GenericComponent) Verifier() verify.Verifier {
	return verify.VerifierFunc(func(scope verify.Scope, params map[string]any) verify.Result {
		schema, ok := c.catalog.Lookup(c.scheme)
		if !ok {
			return verify.NewResult(verify.StatusError, scope).
				Error(verify.NewError("unknown-scheme").
					Description(fmt.Sprintf("scheme %q is not registered in the catalog", c.scheme)).
					Build()).
				Build()
		}
		if scope == verify.ScopeNone {
			return verify.NewResult(verify.StatusOK, scope).Build()
		}

		var errs []verify.Error
		for _, prop := range schema.Properties {
			if !prop.Required {
				continue
			}
			if v, ok := params[prop.Name]; !ok || v == nil || v == "" {
				errs = append(errs, verify.NewError("missing-parameter").
					Description(fmt.Sprintf("%s is required", prop.Name)).
					Param(prop.Name).
					Build())
			}
		}
		if len(schema.Properties) > 0 {
			for name := range params {
				if _, ok := schema.Property(name); !ok {
					errs = append(errs, verify.NewError("unknown-parameter").
						Description(fmt.Sprintf("%s is not a known option of scheme %s", name, c.scheme)).
						Param(name).
						Build())
				}
			}
		}
		status := verify.StatusOK
		if len(errs) > 0 {
			status = verify.StatusError
		}
		result := verify.NewResult(status, scope)
		for _, e := range errs {
			result.Error(e)
		}
		return result.Build()
	})
}

// GenericEndpoint is a passive endpoint handle.
type GenericEndpoint struct {
	uri     string
	options *catalog.Options
}

// URI returns the endpoint's original URI.
func (e *GenericEndpoint) URI() string {
	return e.uri
}

// Options returns the endpoint's resolved option set.
func (e *GenericEndpoint) Options() *catalog.Options {
	return e.options
}
