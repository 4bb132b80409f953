package scene

import (
	"fmt"
	"strings"
)

// ValidationError describes malformed or out-of-range input supplied to an
// entity constructor or detected during compilation. It is always raised at
// the point the offending value is seen, never deferred.
type ValidationError struct {
	// The parameter or field that failed validation.
	Param string

	// A human readable description of the violation.
	Reason string

	// For enumerated options, the set of allowed values.
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("%s: %s; allowed values: %s", e.Param, e.Reason, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Param, e.Reason)
}

// Create a validation error for a parameter.
func NewValidationError(param, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

// Create a validation error for an enumerated option.
func NewOptionError(param, got string, allowed []string) *ValidationError {
	return &ValidationError{
		Param:   param,
		Reason:  fmt.Sprintf("unsupported value %q", got),
		Allowed: allowed,
	}
}
