package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this internal id"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error caught before any store call
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRequestNotFound           = &NotFoundError{Entity: "request"}
	ErrFulfillmentRecordNotFound = &NotFoundError{Entity: "fulfillment record"}
	ErrAssetNotFound             = &NotFoundError{Entity: "asset"}
	ErrOperativeUnitNotFound     = &NotFoundError{Entity: "operative unit"}
	ErrCategoryNotFound          = &NotFoundError{Entity: "category"}
	ErrSettingNotFound           = &NotFoundError{Entity: "setting"}
)

// Already Exists Errors
var (
	ErrAssetExists         = &AlreadyExistsError{Entity: "asset", Context: "with this internal id"}
	ErrOperativeUnitExists = &AlreadyExistsError{Entity: "operative unit", Context: "with this name"}
	ErrCategoryExists      = &AlreadyExistsError{Entity: "category", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrNothingToAssign        = errors.New("no fulfillment items provided")
	ErrAssignmentExceedsTotal = errors.New("assignment exceeds the remaining quantity")
	ErrAvailabilityDateNeeded = errors.New("availability date is required for each owned assignment")
	ErrInvalidRentalDuration  = errors.New("rental duration must be a positive number of months")
	ErrRequestHasRecords      = errors.New("request still has fulfillment records")
)

// Authentication Errors
var (
	ErrInvalidPassword = &AuthenticationError{Message: "invalid password"}
	ErrInvalidToken    = &AuthenticationError{Message: "invalid token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError, a struct-tag
// validation failure from the services, or a business rule rejection
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &validationErr) ||
		errors.As(err, &fieldErrs) ||
		errors.Is(err, ErrNothingToAssign) ||
		errors.Is(err, ErrAssignmentExceedsTotal) ||
		errors.Is(err, ErrAvailabilityDateNeeded) ||
		errors.Is(err, ErrInvalidRentalDuration) ||
		errors.Is(err, ErrRequestHasRecords)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
