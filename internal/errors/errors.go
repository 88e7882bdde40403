package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

// BadReferenceError reports a caller-supplied foreign identifier (customerID,
// dfacID) that does not resolve to an active row. Distinct from NotFoundError:
// the caller named the reference, it was not the lookup target.
type BadReferenceError struct {
	Message string
}

func (e *BadReferenceError) Error() string {
	return e.Message
}

func NewBadReferenceError(message string) *BadReferenceError {
	return &BadReferenceError{Message: message}
}

func IsBadReferenceError(err error) (*BadReferenceError, bool) {
	if be, ok := err.(*BadReferenceError); ok {
		return be, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nf, ok := err.(*NotFoundError); ok {
		return nf, true
	}
	return nil, false
}

// ConflictError covers requests that are well-formed but collide with the
// current state of the target: mutating a terminal order, canceling twice,
// ordering outside the admission window.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	if ce, ok := err.(*ConflictError); ok {
		return ce, true
	}
	return nil, false
}

// IntegrityError reports stored data that violates an invariant the engine
// relies on, e.g. an order row with no order_meals line. Never swallowed.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return e.Message
}

func NewIntegrityError(message string) *IntegrityError {
	return &IntegrityError{Message: message}
}

func IsIntegrityError(err error) (*IntegrityError, bool) {
	if ie, ok := err.(*IntegrityError); ok {
		return ie, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}
