// Package verify defines the component verification contract: a capability
// that validates a proposed option set against a component's requirements
// without creating a live endpoint. Verification always produces a Result,
// never an error.
package verify

// Scope selects how deep a verification should go.
type Scope string

const (
	// ScopeNone performs no checks.
	ScopeNone Scope = "none"
	// ScopeParameters checks option names and values against the schema.
	ScopeParameters Scope = "parameters"
	// ScopeConnectivity additionally checks that the target is reachable.
	ScopeConnectivity Scope = "connectivity"
)

// Status is the overall outcome of a verification.
type Status string

const (
	StatusOK          Status = "OK"
	StatusError       Status = "ERROR"
	StatusUnsupported Status = "UNSUPPORTED"
)

// Error is a single structured verification failure.
type Error struct {
	Code        string
	Description string
	Params      []string
	Attributes  map[string]any
	Cause       error
}

// Result is the outcome of a verification run.
type Result struct {
	Status Status
	Scope  Scope
	Errors []Error
}

// Verifier validates a loosely-typed parameter map at the given scope.
// Implementations must return a Result for any input; they never panic and
// never signal failure through a Go error.
type Verifier interface {
	Verify(scope Scope, params map[string]any) Result
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(scope Scope, params map[string]any) Result

func (f VerifierFunc) Verify(scope Scope, params map[string]any) Result {
	return f(scope, params)
}

// Verifiable is the capability interface components implement when they
// support verification. Callers check for it with a type assertion, resolved
// once when the component is looked up.
type Verifiable interface {
	Verifier() Verifier
}
