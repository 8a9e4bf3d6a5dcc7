package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Variable file errors
	ErrVarsLoad ErrorCode = "VARS_LOAD"

	// Package errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageInvalid  ErrorCode = "PACKAGE_INVALID"
	ErrPackageAccess   ErrorCode = "PACKAGE_ACCESS"

	// Template errors
	ErrTemplateSyntax ErrorCode = "TEMPLATE_SYNTAX"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Linker errors
	ErrTargetUnreachable ErrorCode = "TARGET_UNREACHABLE"
	ErrLinkerRun         ErrorCode = "LINKER_RUN"
)

// ManageError represents a structured error with code and details
type ManageError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ManageError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ManageError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ManageError) Is(target error) bool {
	var targetErr *ManageError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ManageError with the given code and message
func New(code ErrorCode, message string) *ManageError {
	return &ManageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ManageError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ManageError {
	return &ManageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ManageError
func Wrap(err error, code ErrorCode, message string) *ManageError {
	if err == nil {
		return nil
	}
	return &ManageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ManageError {
	if err == nil {
		return nil
	}
	return &ManageError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ManageError) WithDetail(key string, value interface{}) *ManageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ManageError) WithDetails(details map[string]interface{}) *ManageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var manageErr *ManageError
	if errors.As(err, &manageErr) {
		return manageErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ManageError
func GetErrorCode(err error) ErrorCode {
	var manageErr *ManageError
	if errors.As(err, &manageErr) {
		return manageErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ManageError
func GetErrorDetails(err error) map[string]interface{} {
	var manageErr *ManageError
	if errors.As(err, &manageErr) {
		return manageErr.Details
	}
	return nil
}
