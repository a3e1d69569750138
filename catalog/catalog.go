// Package catalog provides the scheme registry behind endpoint URI handling:
// it maps scheme names to component schemas and implements the two directions
// of URI templating — assembling a URI from an option set and deriving the
// option set implied by a URI.
package catalog

import (
	"sort"
	"sync"
)

// Catalog is the narrow interface the rest of the toolkit depends on. A
// catalog instance is passed explicitly to whatever needs one; there is no
// process-wide catalog.
type Catalog interface {
	// RegisterScheme adds or replaces a scheme. Registering with only
	// Scheme and ImplType set is allowed.
	RegisterScheme(schema ComponentSchema)

	// Lookup returns the schema for a scheme and whether it is registered.
	Lookup(scheme string) (ComponentSchema, bool)

	// SchemeNames returns all registered scheme names, sorted.
	SchemeNames() []string

	// AsEndpointURI assembles a full endpoint URI for the scheme from the
	// given option set. Path-kind options fill the syntax template, the
	// rest become query parameters in option-set order.
	AsEndpointURI(scheme string, opts *Options) (string, error)

	// EndpointProperties parses an endpoint URI and returns the options it
	// implies: path-derived properties first, then query parameters, in
	// order of appearance.
	EndpointProperties(uri string) (*Options, error)
}

type defaultCatalog struct {
	mu      sync.RWMutex
	schemes map[string]ComponentSchema
}

// New returns an empty catalog.
func New() Catalog {
	return &defaultCatalog{schemes: make(map[string]ComponentSchema)}
}

// Default returns a catalog pre-loaded with the built-in component schemas.
func Default() Catalog {
	c := &defaultCatalog{schemes: make(map[string]ComponentSchema)}
	for _, s := range builtinSchemas {
		c.RegisterScheme(s)
	}
	return c
}

func (c *defaultCatalog) RegisterScheme(schema ComponentSchema) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schemes[schema.Scheme] = schema
}

func (c *defaultCatalog) Lookup(scheme string) (ComponentSchema, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.schemes[scheme]
	return s, ok
}

func (c *defaultCatalog) SchemeNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.schemes))
	for name := range c.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
