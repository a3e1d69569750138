// Package connector lets a named, pre-configured specialization of an
// existing endpoint scheme act as a full component. A connector binds a fixed
// delegate scheme plus a default option set; resolving a connector URI merges
// defaults, caller parameters, and path-derived options into a delegate
// endpoint URI and wraps the endpoint the delegate resolves to.
package connector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/jkorab/camel/catalog"
	"github.com/jkorab/camel/runtime"
	"github.com/jkorab/camel/verify"
)

// Component is the connector adapter. It implements runtime.Component,
// runtime.Startable, and verify.Verifiable.
type Component struct {
	rc     *runtime.Context
	model  *Model
	logger *slog.Logger

	mu               sync.Mutex
	componentOptions *catalog.Options
}

// New creates a connector component from its descriptor, registers the
// connector's scheme in the context's catalog, and registers the component
// with the context so connector URIs resolve to it.
func New(rc *runtime.Context, model *Model) *Component {
	c := &Component{
		rc:               rc,
		model:            model,
		logger:           rc.Logger().With("connector", model.ConnectorName()),
		componentOptions: catalog.NewOptions(),
	}

	implType := model.JavaType()
	if implType == "" {
		implType = model.BaseJavaType()
	}
	rc.Catalog().RegisterScheme(catalog.ComponentSchema{
		Scheme:      model.ConnectorName(),
		ImplType:    implType,
		Description: model.Description(),
	})
	rc.AddComponent(model.ConnectorName(), c)
	return c
}

// Model returns the connector's descriptor.
func (c *Component) Model() *Model {
	return c.model
}

// ConnectorName returns the name the connector is addressed by.
func (c *Component) ConnectorName() string {
	return c.model.ConnectorName()
}

// CreateEndpoint merges the connector's defaults with the caller's parameters
// and the options implied by the path remainder, resolves the resulting
// delegate URI through the context, and wraps the delegate endpoint. The
// caller's parameter set is cleared on success: every parameter has been
// folded into the delegate URI, so none remain for later validation.
func (c *Component) CreateEndpoint(uri, remaining string, params *catalog.Options) (runtime.Endpoint, error) {
	options, err := c.buildEndpointOptions(remaining, params)
	if err != nil {
		return nil, err
	}
	params.Clear()

	scheme := c.model.BaseScheme()
	delegateURI, err := c.CreateEndpointURI(scheme, options)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("connector resolved", "uri", uri, "delegate", delegateURI)

	delegate, err := c.rc.GetEndpoint(delegateURI)
	if err != nil {
		return nil, err
	}
	return &Endpoint{uri: uri, connector: c, delegate: delegate}, nil
}

// CreateEndpointURI assembles an endpoint URI from the catalog's templating
// rules for the scheme.
func (c *Component) CreateEndpointURI(scheme string, options *catalog.Options) (string, error) {
	return c.rc.Catalog().AsEndpointURI(scheme, options)
}

// AddOption inserts or overwrites a single option in the given set.
func (c *Component) AddOption(options *catalog.Options, name, value string) {
	c.logger.Debug("adding option", "name", name, "value", value)
	options.Set(name, value)
}

// Start registers the delegate scheme in the catalog when it is absent and
// applies the descriptor's component-level defaults, resolving {{placeholder}}
// references against the context's property source first. Connectors without
// component-level defaults skip the second step entirely.
func (c *Component) Start(ctx context.Context) error {
	cat := c.rc.Catalog()
	scheme := c.model.BaseScheme()
	if _, ok := cat.Lookup(scheme); !ok {
		cat.RegisterScheme(catalog.ComponentSchema{Scheme: scheme, ImplType: c.model.BaseJavaType()})
	}

	for _, def := range c.model.DefaultComponentOptions() {
		if def.Value == "" {
			continue
		}
		value, err := c.rc.ResolvePlaceholders(def.Value)
		if err != nil {
			return fmt.Errorf("component option %s: %w", def.Name, err)
		}
		c.logger.Debug("using component option", "name", def.Name, "value", value)
		c.mu.Lock()
		c.componentOptions.Set(def.Name, value)
		c.mu.Unlock()
	}

	c.logger.Debug("connector started")
	return nil
}

// Stop stops the connector.
func (c *Component) Stop(ctx context.Context) error {
	c.logger.Debug("connector stopped")
	return nil
}

// ComponentOptions returns the component-level options applied at Start.
func (c *Component) ComponentOptions() *catalog.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := catalog.NewOptions()
	c.componentOptions.Each(out.Set)
	return out
}

// Verifier resolves the delegate component once and returns the matching
// verification capability. When the delegate supports verification, the
// returned verifier re-runs the connector's option merge and forwards; a
// merge failure is captured as a structured error result, never raised. When
// it does not, every call yields an UNSUPPORTED result naming both the
// connector and the delegate.
func (c *Component) Verifier() verify.Verifier {
	scheme := c.model.BaseScheme()
	delegate, ok := c.rc.ComponentFor(scheme)
	if ok {
		if v, verifiable := delegate.(verify.Verifiable); verifiable {
			return verify.VerifierFunc(func(scope verify.Scope, params map[string]any) verify.Result {
				options, err := c.buildVerifyOptions(params)
				if err != nil {
					// A syntax error while preparing the parameters stops
					// the validation step but still yields a result.
					return verify.NewResult(verify.StatusOK, scope).
						Error(verify.NewError("exception").CausedBy(err).Build()).
						Build()
				}
				return v.Verifier().Verify(scope, options)
			})
		}
	}
	return verify.VerifierFunc(func(scope verify.Scope, params map[string]any) verify.Result {
		return verify.NewResult(verify.StatusUnsupported, scope).
			Error(verify.NewError("unsupported").
				Attribute("connector.name", c.model.ConnectorName()).
				Attribute("component.name", scheme).
				Build()).
			Build()
	})
}

// buildEndpointOptions gathers all options for the delegate URI in the fixed
// merge order: component-level options, endpoint defaults, caller parameters,
// then options implied by the path remainder. Later sources override earlier
// ones for the same key.
func (c *Component) buildEndpointOptions(remaining string, params *catalog.Options) (*catalog.Options, error) {
	options := catalog.NewOptions()

	c.mu.Lock()
	c.componentOptions.Each(func(name, value string) {
		c.AddOption(options, name, value)
	})
	c.mu.Unlock()

	for _, def := range c.model.DefaultEndpointOptions() {
		c.AddOption(options, def.Name, def.Value)
	}

	params.Each(func(name, value string) {
		c.AddOption(options, name, value)
	})

	if remaining != "" {
		target := c.model.BaseScheme() + ":" + remaining
		extra, err := c.rc.Catalog().EndpointProperties(target)
		if err != nil {
			return nil, err
		}
		extra.Each(func(name, value string) {
			c.AddOption(options, name, value)
		})
	}

	return options, nil
}

// buildVerifyOptions converts a loosely-typed parameter map, runs the option
// merge, and checks that the merged set assembles into a valid delegate URI.
func (c *Component) buildVerifyOptions(params map[string]any) (map[string]any, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	converted := catalog.NewOptions()
	for _, name := range names {
		if params[name] == nil {
			converted.Set(name, "")
			continue
		}
		converted.Set(name, fmt.Sprintf("%v", params[name]))
	}

	options, err := c.buildEndpointOptions("", converted)
	if err != nil {
		return nil, err
	}
	if _, err := c.CreateEndpointURI(c.model.BaseScheme(), options); err != nil {
		return nil, err
	}

	out := make(map[string]any, options.Len())
	options.Each(func(name, value string) {
		out[name] = value
	})
	return out, nil
}
