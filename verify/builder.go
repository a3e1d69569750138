package verify

// ResultBuilder accumulates a verification Result.
type ResultBuilder struct {
	result Result
}

// NewResult starts a Result with the given status and scope.
func NewResult(status Status, scope Scope) *ResultBuilder {
	return &ResultBuilder{result: Result{Status: status, Scope: scope}}
}

// Error appends a structured error to the result.
func (b *ResultBuilder) Error(e Error) *ResultBuilder {
	b.result.Errors = append(b.result.Errors, e)
	return b
}

// Build returns the accumulated result.
func (b *ResultBuilder) Build() Result {
	return b.result
}

// ErrorBuilder accumulates a single verification Error.
type ErrorBuilder struct {
	err Error
}

// NewError starts an Error with the given code.
func NewError(code string) *ErrorBuilder {
	return &ErrorBuilder{err: Error{Code: code}}
}

// Description sets the human-readable description.
func (b *ErrorBuilder) Description(d string) *ErrorBuilder {
	b.err.Description = d
	return b
}

// Param records a parameter name the error refers to.
func (b *ErrorBuilder) Param(name string) *ErrorBuilder {
	b.err.Params = append(b.err.Params, name)
	return b
}

// Attribute attaches a diagnostic attribute.
func (b *ErrorBuilder) Attribute(key string, value any) *ErrorBuilder {
	if b.err.Attributes == nil {
		b.err.Attributes = make(map[string]any)
	}
	b.err.Attributes[key] = value
	return b
}

// CausedBy records the wrapped cause and, when no description is set yet,
// uses the cause's message as the description.
func (b *ErrorBuilder) CausedBy(err error) *ErrorBuilder {
	b.err.Cause = err
	if b.err.Description == "" && err != nil {
		b.err.Description = err.Error()
	}
	return b
}

// Build returns the accumulated error.
func (b *ErrorBuilder) Build() Error {
	return b.err
}
