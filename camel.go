// Package camel assembles a catalog, a context, and a registry into a
// runnable container. It is the primary entry point for embedding the
// toolkit as a library.
package camel

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/jkorab/camel/catalog"
	"github.com/jkorab/camel/connector"
	"github.com/jkorab/camel/runtime"
)

// Container wraps one named context and the registry it is published in.
type Container struct {
	name     string
	catalog  catalog.Catalog
	props    runtime.Properties
	logger   *slog.Logger
	tracer   trace.Tracer
	registry *runtime.Registry
	rc       *runtime.Context
}

// Option configures a Container.
type Option func(*Container)

// WithName sets the context name. Defaults to "camel".
func WithName(name string) Option {
	return func(c *Container) {
		c.name = name
	}
}

// WithCatalog sets the catalog. Defaults to catalog.Default().
func WithCatalog(cat catalog.Catalog) Option {
	return func(c *Container) {
		c.catalog = cat
	}
}

// WithProperties sets the property source used for {{placeholder}}
// resolution.
func WithProperties(props runtime.Properties) Option {
	return func(c *Container) {
		c.props = props
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Container) {
		c.logger = l
	}
}

// WithTracer sets the tracer. Defaults to a noop tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Container) {
		c.tracer = t
	}
}

// New creates a container with one context published in a fresh registry.
func New(opts ...Option) *Container {
	c := &Container{name: "camel"}
	for _, o := range opts {
		o(c)
	}
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.tracer == nil {
		c.tracer = noop.NewTracerProvider().Tracer("camel")
	}
	c.rc = runtime.NewContext(c.name,
		runtime.WithCatalog(c.catalog),
		runtime.WithProperties(c.props),
		runtime.WithLogger(c.logger),
	)
	c.registry = runtime.NewRegistry()
	c.registry.Add(c.rc)
	return c
}

// Context returns the container's context.
func (c *Container) Context() *runtime.Context {
	return c.rc
}

// Registry returns the registry the context is published in.
func (c *Container) Registry() *runtime.Registry {
	return c.registry
}

// AddConnector loads a connector descriptor and mounts the connector in the
// container's context.
func (c *Container) AddConnector(descriptor []byte) (*connector.Component, error) {
	model, err := connector.ParseModel(descriptor)
	if err != nil {
		return nil, err
	}
	comp := connector.New(c.rc, model)
	c.logger.Info("connector mounted",
		"connector", model.ConnectorName(), "scheme", model.BaseScheme())
	return comp, nil
}

// Start starts the container's context.
func (c *Container) Start(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "container.start")
	defer span.End()
	return c.rc.Start(ctx)
}

// Stop stops the container's context.
func (c *Container) Stop(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "container.stop")
	defer span.End()
	return c.rc.Stop(ctx)
}
