// Package runtime provides a minimal container for components and endpoints:
// a named Context that resolves endpoint URIs through an explicit catalog,
// tracks registered endpoints, and drives the two-state component lifecycle.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jkorab/camel/camelerr"
	"github.com/jkorab/camel/catalog"
)

// Endpoint is a resolved endpoint handle.
type Endpoint interface {
	URI() string
}

// Component creates endpoints for one scheme. CreateEndpoint receives the
// full original URI, the path remainder, and the query parameters in order
// of appearance.
type Component interface {
	CreateEndpoint(uri, remaining string, params *catalog.Options) (Endpoint, error)
}

// Startable is implemented by components with a start/stop lifecycle. The
// context calls Start once before the component serves endpoint creations and
// Stop once on shutdown.
type Startable interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// EndpointInfo describes one registered endpoint.
type EndpointInfo struct {
	ID  string `json:"id"`
	URI string `json:"uri"`
}

type endpointEntry struct {
	id  string
	uri string
	ep  Endpoint
}

// Context is one named container. The catalog and property source are passed
// in explicitly so contexts stay independently testable.
type Context struct {
	name    string
	catalog catalog.Catalog
	props   Properties
	logger  *slog.Logger

	mu         sync.RWMutex
	components map[string]Component
	endpoints  []endpointEntry
	byURI      map[string]int
	started    bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithCatalog sets the catalog the context resolves schemes against.
// If not set, catalog.Default() is used.
func WithCatalog(c catalog.Catalog) ContextOption {
	return func(cx *Context) {
		cx.catalog = c
	}
}

// WithProperties sets the property source for {{placeholder}} resolution.
func WithProperties(p Properties) ContextOption {
	return func(cx *Context) {
		cx.props = p
	}
}

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) ContextOption {
	return func(cx *Context) {
		cx.logger = l
	}
}

// NewContext creates a named container.
func NewContext(name string, opts ...ContextOption) *Context {
	cx := &Context{
		name:       name,
		components: make(map[string]Component),
		byURI:      make(map[string]int),
	}
	for _, o := range opts {
		o(cx)
	}
	if cx.catalog == nil {
		cx.catalog = catalog.Default()
	}
	if cx.logger == nil {
		cx.logger = slog.Default()
	}
	return cx
}

// Name returns the context name.
func (cx *Context) Name() string {
	return cx.name
}

// Catalog returns the context's catalog.
func (cx *Context) Catalog() catalog.Catalog {
	return cx.catalog
}

// Logger returns the context's logger.
func (cx *Context) Logger() *slog.Logger {
	return cx.logger
}

// AddComponent registers a component for a scheme, replacing any previous
// registration.
func (cx *Context) AddComponent(scheme string, comp Component) {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	cx.components[scheme] = comp
}

// Component returns the component registered for a scheme.
func (cx *Context) Component(scheme string) (Component, bool) {
	cx.mu.RLock()
	defer cx.mu.RUnlock()
	comp, ok := cx.components[scheme]
	return comp, ok
}

// ComponentFor returns the component serving a scheme, creating a generic
// catalog-backed component on first use when the scheme is known to the
// catalog but has no explicit registration.
func (cx *Context) ComponentFor(scheme string) (Component, bool) {
	if comp, ok := cx.Component(scheme); ok {
		return comp, true
	}
	if _, ok := cx.catalog.Lookup(scheme); !ok {
		return nil, false
	}
	comp := NewGenericComponent(cx.catalog, scheme)
	cx.AddComponent(scheme, comp)
	return comp, true
}

// GetEndpoint resolves an endpoint URI: it parses the URI, dispatches to the
// scheme's component, and registers the returned endpoint. Resolving the same
// URI again returns the registered endpoint.
func (cx *Context) GetEndpoint(uri string) (Endpoint, error) {
	cx.mu.RLock()
	if i, ok := cx.byURI[uri]; ok {
		ep := cx.endpoints[i].ep
		cx.mu.RUnlock()
		return ep, nil
	}
	cx.mu.RUnlock()

	scheme, remaining, rawQuery, err := catalog.SplitURI(uri)
	if err != nil {
		return nil, err
	}
	comp, ok := cx.ComponentFor(scheme)
	if !ok {
		return nil, &camelerr.UnknownSchemeError{Scheme: scheme}
	}
	params, err := catalog.ParseQuery(uri, rawQuery)
	if err != nil {
		return nil, err
	}

	ep, err := comp.CreateEndpoint(uri, remaining, params)
	if err != nil {
		return nil, fmt.Errorf("create endpoint %s: %w", uri, err)
	}

	cx.mu.Lock()
	defer cx.mu.Unlock()
	if i, ok := cx.byURI[uri]; ok {
		return cx.endpoints[i].ep, nil
	}
	cx.byURI[uri] = len(cx.endpoints)
	cx.endpoints = append(cx.endpoints, endpointEntry{id: uuid.NewString(), uri: uri, ep: ep})
	cx.logger.Debug("endpoint registered", "context", cx.name, "uri", uri)
	return ep, nil
}

// Endpoint returns a registered endpoint by its original URI.
func (cx *Context) Endpoint(uri string) (Endpoint, bool) {
	cx.mu.RLock()
	defer cx.mu.RUnlock()
	if i, ok := cx.byURI[uri]; ok {
		return cx.endpoints[i].ep, true
	}
	return nil, false
}

// Endpoints lists registered endpoints in registration order.
func (cx *Context) Endpoints() []EndpointInfo {
	cx.mu.RLock()
	defer cx.mu.RUnlock()
	out := make([]EndpointInfo, len(cx.endpoints))
	for i, e := range cx.endpoints {
		out[i] = EndpointInfo{ID: e.id, URI: e.uri}
	}
	return out
}

// Start starts every Startable component. Starting an already started
// context is a no-op.
func (cx *Context) Start(ctx context.Context) error {
	cx.mu.Lock()
	if cx.started {
		cx.mu.Unlock()
		return nil
	}
	cx.started = true
	comps := cx.startables()
	cx.mu.Unlock()

	for _, s := range comps {
		if err := s.Start(ctx); err != nil {
			return err
		}
	}
	cx.logger.Info("context started", "context", cx.name)
	return nil
}

// Stop stops every Startable component. Stopping a context that is not
// started is a no-op.
func (cx *Context) Stop(ctx context.Context) error {
	cx.mu.Lock()
	if !cx.started {
		cx.mu.Unlock()
		return nil
	}
	cx.started = false
	comps := cx.startables()
	cx.mu.Unlock()

	for _, s := range comps {
		if err := s.Stop(ctx); err != nil {
			return err
		}
	}
	cx.logger.Info("context stopped", "context", cx.name)
	return nil
}

// startables must be called with cx.mu held.
func (cx *Context) startables() []Startable {
	var out []Startable
	for _, comp := range cx.components {
		if s, ok := comp.(Startable); ok {
			out = append(out, s)
		}
	}
	return out
}

// ResolvePlaceholders replaces {{key}} references in s with values from the
// context's property source.
func (cx *Context) ResolvePlaceholders(s string) (string, error) {
	return resolvePlaceholders(s, cx.props)
}
