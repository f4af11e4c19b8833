package errors

import (
	"errors"
	"fmt"
	"time"
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
	Context string // Additional context like "with this call id"
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

// ValidationError represents a validation error
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

// ConflictError is returned when an operation is refused because of the
// current state of another record.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// RateLimitedError is returned while a login key is locked out.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	minutes := int(e.RetryAfter.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("too many failed login attempts, try again in %d minute(s)", minutes)
}

// ConnectionError wraps a failure to reach the database or the attempt store.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error during %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// InvalidTransitionError is returned when a lifecycle trigger is not legal
// from the entity's current state.
type InvalidTransitionError struct {
	Entity  string
	From    string
	Trigger string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s %s in state %s", e.Trigger, e.Entity, e.From)
}

// Entity Not Found Errors
var (
	ErrPartNotFound       = &NotFoundError{Entity: "part"}
	ErrEmployeeNotFound   = &NotFoundError{Entity: "employee"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrAdminNotFound      = &NotFoundError{Entity: "admin"}
)

// Already Exists Errors
var (
	ErrDuplicateCallID = &AlreadyExistsError{Entity: "part", Context: "with this call id"}
	ErrEmployeeExists  = &AlreadyExistsError{Entity: "employee", Context: "with this username"}
	ErrAdminExists     = &AlreadyExistsError{Entity: "admin", Context: "with this username"}
)

// Business Logic Errors
var (
	ErrEmployeeHasCustody     = &ConflictError{Message: "employee still holds parts in custody"}
	ErrAdminAlreadyConfigured = &ConflictError{Message: "an administrator account already exists"}
	ErrActiveAssignmentExists = &ConflictError{Message: "part already has an open assignment"}
	ErrEmployeeCodeTaken      = &ConflictError{Message: "employee code was allocated concurrently, please retry"}
	ErrLifecycleFieldInPatch  = &ValidationError{Field: "patch", Message: "lifecycle fields can only change through lifecycle operations"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrSessionMissing     = &AuthenticationError{Message: "no active session"}
	ErrSessionInvalid     = &AuthenticationError{Message: "session is invalid or expired"}
	ErrSessionRevoked     = &AuthenticationError{Message: "session was revoked, please sign in again"}
	ErrNotAssignmentOwner = &AuthorizationError{Message: "assignment belongs to another employee"}
	ErrNotPartHolder      = &AuthorizationError{Message: "part is not in your custody"}
	ErrRoleRequired       = &AuthorizationError{Message: "insufficient role for this operation"}
)

// Configuration Errors
var (
	ErrSessionSecretMissing = &ConfigurationError{Message: "SESSION_SECRET must be set in production"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsRateLimited checks if an error is a RateLimitedError and returns it
func IsRateLimited(err error) (*RateLimitedError, bool) {
	var rateErr *RateLimitedError
	if errors.As(err, &rateErr) {
		return rateErr, true
	}
	return nil, false
}

// IsConnection checks if an error is a ConnectionError
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
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

// NewConnectionError wraps err as a ConnectionError for op
func NewConnectionError(op string, err error) error {
	return &ConnectionError{Op: op, Err: err}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(entity, from, trigger string) error {
	return &InvalidTransitionError{Entity: entity, From: from, Trigger: trigger}
}

// NewDuplicateCallIDError reports the offending call id in the message
func NewDuplicateCallIDError(callID string) error {
	return &AlreadyExistsError{Entity: "part", Context: fmt.Sprintf("with call id %q", callID)}
}
