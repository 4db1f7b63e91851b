package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The catalog reports missing targets as absent
// results; the delivery layer turns those into these errors.
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"Place not found",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrAmenityNotFound = NewBaseError(
		http.StatusNotFound,
		"AMENITY_NOT_FOUND",
		"Amenity not found",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input data",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ValidationError reports a field whose value breaks one of its rules.
type ValidationError struct {
	Field  string
	Rule   string
	Reason string
}

// NewValidationError creates a validation error for field.
func NewValidationError(field, rule, reason string) *ValidationError {
	return &ValidationError{Field: field, Rule: rule, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return e.Reason
}

func (e *ValidationError) Details() string {
	return fmt.Sprintf("field=%s rule=%s", e.Field, e.Rule)
}

// ReferenceError reports a foreign id that does not resolve to a stored entity.
type ReferenceError struct {
	Entity string
	ID     string
}

// NewReferenceError creates a reference error for the entity type and id.
func NewReferenceError(entity, id string) *ReferenceError {
	return &ReferenceError{Entity: entity, ID: id}
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *ReferenceError) HTTPCode() int {
	return http.StatusNotFound
}

// ErrorCode differs per entity type so callers can tell which reference failed.
func (e *ReferenceError) ErrorCode() string {
	return strings.ToUpper(e.Entity) + "_REFERENCE_NOT_FOUND"
}

func (e *ReferenceError) Message() string {
	return fmt.Sprintf("Referenced %s not found", e.Entity)
}

func (e *ReferenceError) Details() string {
	return fmt.Sprintf("%s_id=%s", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
}

// NewConflictError creates a conflict error for entity.field = value.
func NewConflictError(entity, field, value string) *ConflictError {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

func (e *ConflictError) HTTPCode() int {
	return http.StatusConflict
}

func (e *ConflictError) ErrorCode() string {
	return strings.ToUpper(e.Entity+"_"+e.Field) + "_ALREADY_EXISTS"
}

func (e *ConflictError) Message() string {
	return fmt.Sprintf("%s already registered", e.Field)
}

func (e *ConflictError) Details() string {
	return e.Value
}

var (
	_ AppError = (*BaseError)(nil)
	_ AppError = (*ValidationError)(nil)
	_ AppError = (*ReferenceError)(nil)
	_ AppError = (*ConflictError)(nil)
)
