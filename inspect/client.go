package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jkorab/camel/runtime"
)

// Client is a runtime.Controller backed by the inspect HTTP API of a serving
// instance.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client for the given address. A bare host:port is
// treated as http.
func NewClient(addr string) *Client {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return &Client{
		base: strings.TrimRight(addr, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Contexts lists the names of the contexts the instance serves.
func (c *Client) Contexts() ([]string, error) {
	body, err := c.get(c.base + "/contexts")
	if err != nil {
		return nil, err
	}
	var doc struct {
		Contexts []string `json:"contexts"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode contexts response: %w", err)
	}
	return doc.Contexts, nil
}

// Endpoints implements runtime.Controller.
func (c *Client) Endpoints(name string) ([]runtime.EndpointInfo, error) {
	body, err := c.get(fmt.Sprintf("%s/contexts/%s/endpoints", c.base, url.PathEscape(name)))
	if err != nil {
		return nil, err
	}
	var doc struct {
		Endpoints []runtime.EndpointInfo `json:"endpoints"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode endpoints response: %w", err)
	}
	return doc.Endpoints, nil
}

// ExplainEndpoint implements runtime.Controller.
func (c *Client) ExplainEndpoint(name, uri string, allOptions bool) (string, error) {
	q := url.Values{}
	q.Set("uri", uri)
	if allOptions {
		q.Set("allOptions", "true")
	}
	body, err := c.get(fmt.Sprintf("%s/contexts/%s/explain?%s", c.base, url.PathEscape(name), q.Encode()))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(u string) ([]byte, error) {
	resp, err := c.http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var doc struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &doc) == nil && doc.Error != "" {
			return nil, fmt.Errorf("%s: %s", resp.Status, doc.Error)
		}
		return nil, fmt.Errorf("%s: unexpected response", resp.Status)
	}
	return body, nil
}
