package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// User input errors
	ErrCodeValidation    ErrorCode = "VALIDATION_FAILED"
	ErrCodeEntryNotFound ErrorCode = "ENTRY_NOT_FOUND"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"

	// Storage errors
	ErrCodePersistence ErrorCode = "PERSISTENCE_FAILED"

	// Git status errors
	ErrCodeProbe ErrorCode = "PROBE_FAILED"

	// Editor launch errors
	ErrCodeSpawn       ErrorCode = "SPAWN_FAILED"
	ErrCodeEditorUnset ErrorCode = "EDITOR_UNSET"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// GmuxError represents a structured error with context
type GmuxError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *GmuxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *GmuxError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *GmuxError) WithDetail(key string, value interface{}) *GmuxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *GmuxError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new GmuxError
func New(code ErrorCode, message string) *GmuxError {
	return &GmuxError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a GmuxError
func Wrap(err error, code ErrorCode, message string) *GmuxError {
	return &GmuxError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error carries a specific error code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetCode extracts the error code from an error, unwrapping as needed
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	gmuxErr, ok := err.(*GmuxError)
	if !ok {
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return gmuxErr.Code
}
