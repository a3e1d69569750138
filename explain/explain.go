// Package explain renders human-readable explanations of the endpoints
// registered in a running context.
package explain

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jkorab/camel/catalog"
	"github.com/jkorab/camel/runtime"
)

// Option is one explained endpoint option. A nil Value or Description means
// the explanation did not carry one.
type Option struct {
	Name        string  `json:"name"`
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

// ParseOptions decodes the option list from an endpoint explanation document.
func ParseOptions(data []byte) ([]Option, error) {
	var doc struct {
		Options []Option `json:"options"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse endpoint explanation: %w", err)
	}
	return doc.Options, nil
}

// Run explains the endpoints registered in the named context: it fetches
// them through the controller, filters by URI prefix when schemes are given,
// and writes one block per endpoint to w. A context with no endpoints
// produces no output. Fetch and explanation failures propagate to the caller.
//
// Filtering is a plain prefix match on the full URI, so a scheme filter "a"
// also retains URIs starting with "ab". That mirrors the historical behavior
// of the command.
func Run(ctrl runtime.Controller, w io.Writer, name string, allOptions bool, schemes []string) error {
	endpoints, err := ctrl.Endpoints(name)
	if err != nil {
		return err
	}
	if len(endpoints) == 0 {
		return nil
	}

	if len(schemes) > 0 {
		endpoints = filterByScheme(endpoints, schemes)
	}

	for _, ep := range endpoints {
		doc, err := ctrl.ExplainEndpoint(name, ep.URI, allOptions)
		if err != nil {
			return err
		}
		options, err := ParseOptions([]byte(doc))
		if err != nil {
			return err
		}

		header := "Uri:            " + catalog.SanitizeURI(ep.URI)
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, strings.Repeat("-", utf8.RuneCountInString(header)))

		for _, opt := range options {
			fmt.Fprintf(w, "Option:\t\t%s\n", opt.Name)
			if opt.Value != nil {
				fmt.Fprintf(w, "Value:\t\t%s\n", *opt.Value)
			}
			if opt.Description != nil {
				fmt.Fprintf(w, "Description:\t%s\n", *opt.Description)
			}
		}
		fmt.Fprintln(w)
	}
	return nil
}

// filterByScheme retains endpoints whose URI starts with one of the given
// prefixes, first match wins.
func filterByScheme(endpoints []runtime.EndpointInfo, schemes []string) []runtime.EndpointInfo {
	var out []runtime.EndpointInfo
	for _, ep := range endpoints {
		for _, scheme := range schemes {
			if strings.HasPrefix(ep.URI, scheme) {
				out = append(out, ep)
				break
			}
		}
	}
	return out
}
