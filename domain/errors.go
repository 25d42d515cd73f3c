package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller does not own the resource it tries to mutate
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrUnauthorized will throw if the caller could not be authenticated
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrMissingParameter is returned by use cases when a required identifier is empty
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrTypeMismatch is returned when a present value has the wrong type or range
	ErrTypeMismatch = errors.New("value does not meet data type specification")
	// ErrMissingRequiredProperty is returned when an entity payload lacks a field
	ErrMissingRequiredProperty = errors.New("missing required property")

	// ErrPersistence marks an opaque storage failure
	ErrPersistence = errors.New("persistence failure")
)

// ValidationError is the construction result of a failed entity or parameter check.
// Err is one of ErrMissingParameter, ErrTypeMismatch or ErrMissingRequiredProperty.
type ValidationError struct {
	Entity string
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Entity, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing or soft-deleted resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError wraps a driver or store failure.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// IsValidationError checks if err was raised by an entity or parameter check
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingParameter) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrMissingRequiredProperty)
}
