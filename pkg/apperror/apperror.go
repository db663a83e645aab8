// Package apperror defines the application error types shared by services and
// the HTTP layer. Handlers map an AppError to its HTTP status via StatusCode.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database
	DatabaseError
	// NotFoundError represents a resource not found error
	NotFoundError
	// ValidationError represents an input validation error
	ValidationError
	// BadRequestError represents a generic bad request
	BadRequestError
	// ConflictError represents a conflict, e.g. resource already exists
	ConflictError
	// InternalError represents a generic internal server error
	InternalError
)

// AppError carries an error category, a client-safe message and an optional
// underlying error for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type
func (e *AppError) StatusCode() int {
	switch e.Type {
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		return http.StatusConflict
	case DatabaseError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Type: NotFoundError, Message: message}
}

// NewResourceNotFound builds a not-found error naming the entity, the field
// looked up and the value that missed, e.g. "property not found with id: 42".
func NewResourceNotFound(resource, field string, value any) *AppError {
	return &AppError{
		Type:    NotFoundError,
		Message: fmt.Sprintf("%s not found with %s: %v", resource, field, value),
	}
}

func NewValidationError(message string, underlying error) *AppError {
	return &AppError{Type: ValidationError, Message: message, Err: underlying}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Type: BadRequestError, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Type: ConflictError, Message: message}
}

func NewDatabaseError(message string, underlying error) *AppError {
	return &AppError{Type: DatabaseError, Message: message, Err: underlying}
}

func NewInternalError(message string, underlying error) *AppError {
	return &AppError{Type: InternalError, Message: message, Err: underlying}
}

// As unwraps err into an *AppError if possible.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
