package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error.
	ErrInternal = errors.New("internal error")
)

// Entity names the kinds of records the API exposes. The values are
// capitalized because they appear verbatim in client-facing messages.
type Entity string

// Entity kinds.
const (
	EntityArticle Entity = "Article"
	EntityComment Entity = "Comment"
	EntityTopic   Entity = "Topic"
	EntityUser    Entity = "User"
)

// NotFoundError provides details about a missing entity.
type NotFoundError struct {
	Entity Entity
	Key    string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// Message returns the stable client-facing text, e.g. "Article not found".
func (e *NotFoundError) Message() string {
	return string(e.Entity) + " not found"
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AlreadyExistsError provides details about a duplicate entity.
type AlreadyExistsError struct {
	Entity Entity
	Key    string
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Key)
}

// Message returns the stable client-facing text, e.g. "Topic already exists".
func (e *AlreadyExistsError) Message() string {
	return string(e.Entity) + " already exists"
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

// ValidationError represents a validation error for a specific field.
// The field detail stays server-side; clients see a uniform "Bad request".
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity Entity, key string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		Key:    key,
	}
}

// NewAlreadyExistsError creates a new AlreadyExistsError.
func NewAlreadyExistsError(entity Entity, key string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Entity: entity,
		Key:    key,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
