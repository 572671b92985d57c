package errors

import (
	"errors"
	"fmt"
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
	Context string // Additional context like "with this value"
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

// ValidationError represents a validation error. Field is the request field the
// message applies to; an empty Field marks a non-field error.
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

// FieldErrors carries several field validation failures at once
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation error: %d invalid field(s)", len(e))
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
	ErrMoodNotFound     = &NotFoundError{Entity: "mood"}
	ErrWorkloadNotFound = &NotFoundError{Entity: "workload"}
	ErrPulseLogNotFound = &NotFoundError{Entity: "pulse log"}
	ErrFeedbackNotFound = &NotFoundError{Entity: "feedback"}
	ErrEventLogNotFound = &NotFoundError{Entity: "event log"}
)

// Already Exists Errors
var (
	ErrUsernameExists = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrEmailExists    = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrWorkloadExists = &AlreadyExistsError{Entity: "workload", Context: "with this value"}
)

// Business Logic Errors
var (
	ErrLastAdmin     = &ValidationError{Field: "is_staff", Message: "cannot remove the last remaining admin"}
	ErrNotTeamMember = &ValidationError{Field: "team", Message: "You can only submit to teams you belong to"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "Invalid credentials"}
	ErrUserDisabled        = &AuthenticationError{Message: "User account is disabled"}
	ErrMissingToken        = &AuthenticationError{Message: "Authentication credentials were not provided"}
	ErrInvalidAccessToken  = &AuthenticationError{Message: "Invalid or expired token"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "Token is invalid or expired"}
	ErrAdminRequired       = &AuthorizationError{Message: "You do not have permission to perform this action"}
)

// Configuration Errors
var (
	ErrJWTSecretMissing = &ConfigurationError{Message: "JWT secret is required"}
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

// IsValidation checks if an error is a ValidationError or FieldErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var fieldErrs FieldErrors
	return errors.As(err, &validationErr) || errors.As(err, &fieldErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// Fields flattens a validation error into a field -> message map. Non-field
// messages are keyed by "non_field_errors".
func Fields(err error) map[string]string {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		out := make(map[string]string, len(fieldErrs))
		for k, v := range fieldErrs {
			out[k] = v
		}
		return out
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		field := validationErr.Field
		if field == "" {
			field = "non_field_errors"
		}
		return map[string]string{field: validationErr.Message}
	}
	return nil
}
