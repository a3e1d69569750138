package camelerr

import "fmt"

// URISyntaxError indicates that an endpoint URI could not be assembled or
// parsed: a malformed scheme, a missing required path value, or an option
// value that cannot be encoded.
type URISyntaxError struct {
	URI    string
	Reason string
	Err    error
}

func (e *URISyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid endpoint uri %q: %s: %v", e.URI, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid endpoint uri %q: %s", e.URI, e.Reason)
}

func (e *URISyntaxError) Unwrap() error {
	return e.Err
}

// UnknownSchemeError indicates a scheme that is not registered in the catalog.
type UnknownSchemeError struct {
	Scheme string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown scheme %q: not registered in the catalog", e.Scheme)
}

// UnknownContextError indicates a context name with no registered context.
type UnknownContextError struct {
	Name string
}

func (e *UnknownContextError) Error() string {
	return fmt.Sprintf("unknown context %q", e.Name)
}

// PlaceholderError indicates a {{key}} reference with no matching property.
type PlaceholderError struct {
	Key string
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("cannot resolve property placeholder {{%s}}", e.Key)
}
