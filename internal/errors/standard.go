// Package errors provides standardized error messaging for mutengine's
// programmer-error class: conditions the dispatcher guarantees will never
// occur given its own preconditions, so surfacing them as a panic with a
// structured diagnostic is preferable to a silent wrong answer.
package errors

import (
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors.
type ErrorCategory string

const (
	CategoryMutation ErrorCategory = "MUTATION"
	CategoryBounds   ErrorCategory = "BOUNDS"
	CategoryConfig   ErrorCategory = "CONFIG"
	CategorySystem   ErrorCategory = "SYSTEM"
)

// StandardError provides a consistent error format.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError creates a new standardized error.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// InvalidLength reports getLen being called with max == 0, a programming
// error: the dispatcher never computes a zero-length bound.
func InvalidLength(max uint64) *StandardError {
	return NewStandardError(CategoryMutation, "INVALID_LENGTH",
		fmt.Sprintf("getLen called with max=%d", max),
		map[string]interface{}{"max": max})
}

// UnknownWidth reports an AddSub width outside {1,2,4,8}.
func UnknownWidth(width int) *StandardError {
	return NewStandardError(CategoryMutation, "UNKNOWN_WIDTH",
		fmt.Sprintf("unknown AddSub operand width: %d", width),
		map[string]interface{}{"width": width})
}

// PrecondViolated reports an offset/length precondition an operator
// requires but the dispatcher failed to establish before calling it.
func PrecondViolated(operation string, off, size uint64) *StandardError {
	return NewStandardError(CategoryBounds, "PRECOND_VIOLATED",
		fmt.Sprintf("%s called with off=%d >= size=%d", operation, off, size),
		map[string]interface{}{"operation": operation, "off": off, "size": size})
}

// IncompatibleSchema reports a config file whose schema_version falls
// outside the engine's supported constraint.
func IncompatibleSchema(version, constraint string) *StandardError {
	return NewStandardError(CategoryConfig, "INCOMPATIBLE_SCHEMA",
		fmt.Sprintf("config schema_version %q does not satisfy %q", version, constraint),
		map[string]interface{}{"version": version, "constraint": constraint})
}
