package camel

import (
	"bytes"
	"context"
	"testing"

	"github.com/jkorab/camel/explain"
	"github.com/jkorab/camel/runtime"
)

const descriptor = `{
	"connectorName": "heartbeat",
	"baseScheme": "timer",
	"baseJavaType": "org.apache.camel.component.timer.TimerComponent",
	"endpointOptions": {
		"timerName": "heartbeat",
		"period": "5000"
	}
}`

func TestContainerEndToEnd(t *testing.T) {
	c := New(
		WithName("orders"),
		WithProperties(runtime.MapProperties{"env": "test"}),
	)

	if _, err := c.AddConnector([]byte(descriptor)); err != nil {
		t.Fatalf("AddConnector: %v", err)
	}

	ctx := context.Background()
	if err := c.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer func() {
		if err := c.Stop(ctx); err != nil {
			t.Errorf("Stop: %v", err)
		}
	}()

	if _, err := c.Context().GetEndpoint("heartbeat:?delay=100"); err != nil {
		t.Fatalf("GetEndpoint: %v", err)
	}

	// the registry serves the container's context under its name
	infos, err := c.Registry().Endpoints("orders")
	if err != nil {
		t.Fatalf("Endpoints: %v", err)
	}
	if len(infos) == 0 {
		t.Fatal("expected registered endpoints")
	}

	// the registry doubles as the explain controller
	var buf bytes.Buffer
	if err := explain.Run(c.Registry(), &buf, "orders", false, []string{"heartbeat"}); err != nil {
		t.Fatalf("explain.Run: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected explain output for the heartbeat endpoint")
	}
}

func TestContainerDefaults(t *testing.T) {
	c := New()
	if c.Context().Name() != "camel" {
		t.Errorf("unexpected default name: %q", c.Context().Name())
	}
	if _, ok := c.Registry().Context("camel"); !ok {
		t.Error("expected the context to be published in the registry")
	}
}

func TestAddConnectorBadDescriptor(t *testing.T) {
	c := New()
	if _, err := c.AddConnector([]byte(`{"connectorName":"x"}`)); err == nil {
		t.Fatal("expected error for incomplete descriptor")
	}
}
