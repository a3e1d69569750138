package catalog

import (
	"net/url"
	"strings"

	"github.com/jkorab/camel/camelerr"
)

// SplitURI breaks an endpoint URI of the form "scheme:remaining?query" into
// its three parts. A "scheme://remaining" form is accepted as well.
func SplitURI(uri string) (scheme, remaining, rawQuery string, err error) {
	i := strings.Index(uri, ":")
	if i <= 0 {
		return "", "", "", &camelerr.URISyntaxError{URI: uri, Reason: "missing scheme separator"}
	}
	scheme = uri[:i]
	rest := strings.TrimPrefix(uri[i+1:], "//")
	if j := strings.Index(rest, "?"); j >= 0 {
		return scheme, rest[:j], rest[j+1:], nil
	}
	return scheme, rest, "", nil
}

// ParseQuery decodes a raw query string into an ordered option set. Unlike
// net/url.Values, parameter order is preserved.
func ParseQuery(uri, rawQuery string) (*Options, error) {
	opts := NewOptions()
	if rawQuery == "" {
		return opts, nil
	}
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(name)
		if err != nil {
			return nil, &camelerr.URISyntaxError{URI: uri, Reason: "malformed query parameter " + pair, Err: err}
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, &camelerr.URISyntaxError{URI: uri, Reason: "malformed query parameter " + pair, Err: err}
		}
		opts.Set(name, value)
	}
	return opts, nil
}

func (c *defaultCatalog) AsEndpointURI(scheme string, opts *Options) (string, error) {
	schema, ok := c.Lookup(scheme)
	if !ok {
		return "", &camelerr.UnknownSchemeError{Scheme: scheme}
	}

	var encodeErr error
	opts.Each(func(name, value string) {
		if encodeErr == nil && !encodable(value) {
			encodeErr = &camelerr.URISyntaxError{
				URI:    scheme + ":",
				Reason: "option " + name + " has a value that cannot be encoded",
			}
		}
	})
	if encodeErr != nil {
		return "", encodeErr
	}

	tokens := schema.PathTokens()
	inPath := make(map[string]bool, len(tokens))
	var segments []string
	for _, token := range tokens {
		value, present := opts.Get(token)
		if !present || value == "" {
			if prop, ok := schema.Property(token); ok && prop.Required {
				return "", &camelerr.URISyntaxError{
					URI:    scheme + ":",
					Reason: "missing required path option " + token,
				}
			}
			// optional trailing path segments are dropped
			break
		}
		inPath[token] = true
		segments = append(segments, url.PathEscape(value))
	}

	uri := scheme + ":" + strings.Join(segments, "/")

	var query []string
	opts.Each(func(name, value string) {
		if inPath[name] {
			return
		}
		query = append(query, url.QueryEscape(name)+"="+url.QueryEscape(value))
	})
	if len(query) > 0 {
		uri += "?" + strings.Join(query, "&")
	}
	return uri, nil
}

func (c *defaultCatalog) EndpointProperties(uri string) (*Options, error) {
	scheme, remaining, rawQuery, err := SplitURI(uri)
	if err != nil {
		return nil, err
	}
	schema, ok := c.Lookup(scheme)
	if !ok {
		return nil, &camelerr.UnknownSchemeError{Scheme: scheme}
	}

	opts := NewOptions()
	if tokens := schema.PathTokens(); remaining != "" && len(tokens) > 0 {
		values := strings.SplitN(remaining, "/", len(tokens))
		for i, raw := range values {
			if raw == "" {
				continue
			}
			value, err := url.PathUnescape(raw)
			if err != nil {
				return nil, &camelerr.URISyntaxError{URI: uri, Reason: "malformed path segment " + raw, Err: err}
			}
			opts.Set(tokens[i], value)
		}
	}

	params, err := ParseQuery(uri, rawQuery)
	if err != nil {
		return nil, err
	}
	params.Each(opts.Set)
	return opts, nil
}

// encodable reports whether a value can appear in an endpoint URI. Control
// characters have no valid encoding in the catalog's URI form.
func encodable(value string) bool {
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

var secretParams = map[string]bool{
	"password":      true,
	"passphrase":    true,
	"secretkey":     true,
	"accesskey":     true,
	"accesstoken":   true,
	"clientsecret":  true,
	"authorization": true,
}

// SanitizeURI masks the values of credential-bearing query parameters so the
// URI can be printed. The rest of the URI is returned untouched.
func SanitizeURI(uri string) string {
	base, rawQuery, found := strings.Cut(uri, "?")
	if !found || rawQuery == "" {
		return uri
	}
	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		name, _, hasValue := strings.Cut(pair, "=")
		if hasValue && secretParams[strings.ToLower(name)] {
			pairs[i] = name + "=xxxxxx"
		}
	}
	return base + "?" + strings.Join(pairs, "&")
}
