package runtime

import (
	"sync"

	"github.com/jkorab/camel/camelerr"
)

// Controller is the seam commands use to talk to running contexts. The
// in-process Registry implements it directly; the inspect HTTP client
// implements it against a remote instance.
type Controller interface {
	// Endpoints lists the endpoints registered in the named context.
	Endpoints(name string) ([]EndpointInfo, error)

	// ExplainEndpoint returns the JSON explanation of one endpoint in the
	// named context.
	ExplainEndpoint(name, uri string, allOptions bool) (string, error)
}

// Registry holds named contexts in registration order.
type Registry struct {
	mu       sync.RWMutex
	names    []string
	contexts map[string]*Context
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*Context)}
}

// Add registers a context under its name, replacing any previous entry.
func (r *Registry) Add(cx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contexts[cx.Name()]; !ok {
		r.names = append(r.names, cx.Name())
	}
	r.contexts[cx.Name()] = cx
}

// Context returns a context by name.
func (r *Registry) Context(name string) (*Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cx, ok := r.contexts[name]
	return cx, ok
}

// Names returns context names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Endpoints implements Controller.
func (r *Registry) Endpoints(name string) ([]EndpointInfo, error) {
	cx, ok := r.Context(name)
	if !ok {
		return nil, &camelerr.UnknownContextError{Name: name}
	}
	return cx.Endpoints(), nil
}

// ExplainEndpoint implements Controller.
func (r *Registry) ExplainEndpoint(name, uri string, allOptions bool) (string, error) {
	cx, ok := r.Context(name)
	if !ok {
		return "", &camelerr.UnknownContextError{Name: name}
	}
	return cx.ExplainEndpoint(uri, allOptions)
}
