// Package errors provides structured errors with codes, messages, and
// metadata for the questbloom game core.
//
// Engine and repository layers return these coded errors so callers can
// distinguish rule preconditions (insufficient funds, invalid transitions)
// from infrastructure faults, check with e.g. errors.IsInsufficientFunds(err).
package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidStateTransition creates an invalid state transition error
func InvalidStateTransition(message string) *Error {
	return New(CodeInvalidStateTransition, message)
}

// InvalidStateTransitionf creates an invalid state transition error with formatted message
func InvalidStateTransitionf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidStateTransition, format, args...)
}

// InsufficientFunds creates an insufficient funds error
func InsufficientFunds(message string) *Error {
	return New(CodeInsufficientFunds, message)
}

// InsufficientFundsf creates an insufficient funds error with formatted message
func InsufficientFundsf(format string, args ...interface{}) *Error {
	return Newf(CodeInsufficientFunds, format, args...)
}

// InsufficientMaterials creates an insufficient materials error
func InsufficientMaterials(message string) *Error {
	return New(CodeInsufficientMaterials, message)
}

// InsufficientMaterialsf creates an insufficient materials error with formatted message
func InsufficientMaterialsf(format string, args ...interface{}) *Error {
	return Newf(CodeInsufficientMaterials, format, args...)
}

// InsufficientQuantity creates an insufficient quantity error
func InsufficientQuantity(message string) *Error {
	return New(CodeInsufficientQuantity, message)
}

// InsufficientQuantityf creates an insufficient quantity error with formatted message
func InsufficientQuantityf(format string, args ...interface{}) *Error {
	return Newf(CodeInsufficientQuantity, format, args...)
}

// PersistenceFailure creates a persistence failure error
func PersistenceFailure(message string) *Error {
	return New(CodePersistenceFailure, message)
}

// WrapPersistence wraps an adapter I/O error as a persistence failure
func WrapPersistence(err error, message string) *Error {
	return WrapWithCode(err, CodePersistenceFailure, message)
}

// Helpers for extracting and checking codes

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInvalidStateTransition checks if an error is an invalid state transition error
func IsInvalidStateTransition(err error) bool {
	return GetCode(err) == CodeInvalidStateTransition
}

// IsInsufficientFunds checks if an error is an insufficient funds error
func IsInsufficientFunds(err error) bool {
	return GetCode(err) == CodeInsufficientFunds
}

// IsInsufficientMaterials checks if an error is an insufficient materials error
func IsInsufficientMaterials(err error) bool {
	return GetCode(err) == CodeInsufficientMaterials
}

// IsInsufficientQuantity checks if an error is an insufficient quantity error
func IsInsufficientQuantity(err error) bool {
	return GetCode(err) == CodeInsufficientQuantity
}

// IsPersistenceFailure checks if an error is a persistence failure error
func IsPersistenceFailure(err error) bool {
	return GetCode(err) == CodePersistenceFailure
}
