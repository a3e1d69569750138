package connector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Pair is one default option from a connector descriptor. Descriptor order is
// preserved because merge semantics depend on it.
type Pair struct {
	Name  string
	Value string
}

// Model is the immutable descriptor of a connector, decoded once from its
// bundled JSON resource.
type Model struct {
	connectorName    string
	description      string
	javaType         string
	baseScheme       string
	baseJavaType     string
	componentOptions []Pair
	endpointOptions  []Pair
	raw              string
}

type modelJSON struct {
	ConnectorName string `json:"connectorName"`
	Description   string `json:"description"`
	JavaType      string `json:"javaType"`
	BaseScheme    string `json:"baseScheme"`
	BaseJavaType  string `json:"baseJavaType"`
}

// ParseModel decodes a connector descriptor.
func ParseModel(data []byte) (*Model, error) {
	var m modelJSON
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse connector descriptor: %w", err)
	}
	if m.ConnectorName == "" {
		return nil, fmt.Errorf("parse connector descriptor: connectorName is required")
	}
	if m.BaseScheme == "" {
		return nil, fmt.Errorf("parse connector descriptor: baseScheme is required")
	}
	if m.BaseJavaType == "" {
		return nil, fmt.Errorf("parse connector descriptor: baseJavaType is required")
	}
	componentOptions, err := orderedOptions(data, "componentOptions")
	if err != nil {
		return nil, fmt.Errorf("parse connector descriptor: %w", err)
	}
	endpointOptions, err := orderedOptions(data, "endpointOptions")
	if err != nil {
		return nil, fmt.Errorf("parse connector descriptor: %w", err)
	}
	return &Model{
		connectorName:    m.ConnectorName,
		description:      m.Description,
		javaType:         m.JavaType,
		baseScheme:       m.BaseScheme,
		baseJavaType:     m.BaseJavaType,
		componentOptions: componentOptions,
		endpointOptions:  endpointOptions,
		raw:              string(data),
	}, nil
}

// LoadModel decodes a connector descriptor from r.
func LoadModel(r io.Reader) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read connector descriptor: %w", err)
	}
	return ParseModel(data)
}

// LoadModelFile decodes a connector descriptor from a file.
func LoadModelFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read connector descriptor %q: %w", path, err)
	}
	return ParseModel(data)
}

// ConnectorName returns the name the connector is addressed by.
func (m *Model) ConnectorName() string { return m.connectorName }

// Description returns the human-readable connector description.
func (m *Model) Description() string { return m.description }

// JavaType returns the connector's own implementation type, when declared.
func (m *Model) JavaType() string { return m.javaType }

// BaseScheme returns the delegate scheme the connector specializes.
func (m *Model) BaseScheme() string { return m.baseScheme }

// BaseJavaType returns the delegate's implementation type.
func (m *Model) BaseJavaType() string { return m.baseJavaType }

// DefaultComponentOptions returns the component-level defaults in descriptor order.
func (m *Model) DefaultComponentOptions() []Pair { return m.componentOptions }

// DefaultEndpointOptions returns the endpoint-level defaults in descriptor order.
func (m *Model) DefaultEndpointOptions() []Pair { return m.endpointOptions }

// JSON returns the raw descriptor document.
func (m *Model) JSON() string { return m.raw }

// orderedOptions extracts a flat string-valued object field from the raw
// descriptor, preserving key order. encoding/json maps would lose it.
func orderedOptions(data []byte, field string) ([]Pair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		if key != field {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, fmt.Errorf("%s must be an object", field)
		}
		var pairs []Pair
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := nameTok.(string)
			valTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			var value string
			switch v := valTok.(type) {
			case string:
				value = v
			case json.Number:
				value = v.String()
			case bool:
				value = strconv.FormatBool(v)
			case nil:
				value = ""
			default:
				return nil, fmt.Errorf("%s.%s must be a scalar value", field, name)
			}
			pairs = append(pairs, Pair{Name: name, Value: value})
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return pairs, nil
	}
	return nil, nil
}

// skipValue consumes one JSON value, including nested objects and arrays.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); ok && (d == '{' || d == '[') {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
	return nil
}
