package connector

import "github.com/jkorab/camel/runtime"

// Endpoint wraps the delegate endpoint a connector URI resolved to. It keeps
// the original connector URI and a back-reference to the owning component for
// introspection.
type Endpoint struct {
	uri       string
	connector *Component
	delegate  runtime.Endpoint
}

// URI returns the original connector URI, not the delegate's.
func (e *Endpoint) URI() string {
	return e.uri
}

// Connector returns the component that created this endpoint.
func (e *Endpoint) Connector() *Component {
	return e.connector
}

// Delegate returns the underlying endpoint.
func (e *Endpoint) Delegate() runtime.Endpoint {
	return e.delegate
}
