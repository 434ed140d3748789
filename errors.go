package inputfsm

import "fmt"

// ErrorCode represents specific error conditions in the input state machine
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Value failed validation
	ErrCodeValidation
	// Value could not be parsed as a number
	ErrCodeNotANumber
	// Action payload was malformed for its type
	ErrCodeInvalidAction
	// Controller configuration is invalid
	ErrCodeInvalidConfiguration
)

// ValidationError is the typed payload carried by Invalidate actions. The
// machine treats it as opaque data; embedding widgets read it off
// State.Err to render feedback.
type ValidationError struct {
	Code   ErrorCode
	Field  string
	Value  *string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error [%s]: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("validation error: %s", e.Reason)
}

// NewValidationError creates a validation error for the given field
func NewValidationError(field string, value *string, reason string) *ValidationError {
	return &ValidationError{
		Code:   ErrCodeValidation,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// NewNotANumberError creates a validation error for a value that could not
// be parsed as a number
func NewNotANumberError(value *string) *ValidationError {
	display := "(absent)"
	if value != nil {
		display = fmt.Sprintf("'%s'", *value)
	}
	return &ValidationError{
		Code:   ErrCodeNotANumber,
		Value:  value,
		Reason: fmt.Sprintf("value %s is not a number", display),
	}
}

// ActionError represents a malformed dispatch
type ActionError struct {
	Code   ErrorCode
	Action ActionType
	Reason string
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action error [%s]: %s", e.Action, e.Reason)
}

// NewActionError creates an error for a malformed action payload
func NewActionError(action ActionType, reason string) *ActionError {
	return &ActionError{
		Code:   ErrCodeInvalidAction,
		Action: action,
		Reason: reason,
	}
}

// ConfigurationError represents controller configuration issues
type ConfigurationError struct {
	Code      ErrorCode
	Component string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Component, e.Reason)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component string, reason string) *ConfigurationError {
	return &ConfigurationError{
		Code:      ErrCodeInvalidConfiguration,
		Component: component,
		Reason:    reason,
	}
}
