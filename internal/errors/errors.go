package errors

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
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

// EntryLockedError indicates another user currently holds the lock on an
// entry. The holder's identity is carried so the UI can show who has it.
type EntryLockedError struct {
	EntryID      uuid.UUID
	LockedBy     uuid.UUID
	LockedByName string
}

func (e *EntryLockedError) Error() string {
	if e.LockedByName != "" {
		return fmt.Sprintf("entry is locked by %s", e.LockedByName)
	}
	return "entry is locked by another user"
}

// Is enables errors.Is() comparison for EntryLockedError
func (e *EntryLockedError) Is(target error) bool {
	_, ok := target.(*EntryLockedError)
	return ok
}

// NotLockHolderError indicates the caller attempted to edit, complete, or
// unlock an entry without holding its lock
type NotLockHolderError struct {
	EntryID uuid.UUID
}

func (e *NotLockHolderError) Error() string {
	return "caller does not hold the lock on this entry"
}

// Is enables errors.Is() comparison for NotLockHolderError
func (e *NotLockHolderError) Is(target error) bool {
	_, ok := target.(*NotLockHolderError)
	return ok
}

// ValidationError represents a validation error with field-level detail
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

// AssignmentCompletedError indicates a write was attempted against an
// assignment that has already reached the completed state
type AssignmentCompletedError struct {
	TeamSheetID uuid.UUID
}

func (e *AssignmentCompletedError) Error() string {
	return "assignment is completed; only status and comments may change"
}

// Is enables errors.Is() comparison for AssignmentCompletedError
func (e *AssignmentCompletedError) Is(target error) bool {
	_, ok := target.(*AssignmentCompletedError)
	return ok
}

// PartialSubmissionError reports which entries failed to upsert during a
// sheet submission. The assignment status is never flipped when this is
// returned; already-saved drafts stay in storage.
type PartialSubmissionError struct {
	FailedEntryIDs []uuid.UUID
}

func (e *PartialSubmissionError) Error() string {
	return fmt.Sprintf("submission failed for %d entries; assignment left in progress", len(e.FailedEntryIDs))
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

// Entity Not Found Errors
var (
	ErrSheetNotFound      = &NotFoundError{Entity: "sheet"}
	ErrEntryNotFound      = &NotFoundError{Entity: "entry"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}
	ErrResponseNotFound   = &NotFoundError{Entity: "response"}
	ErrLockNotFound       = &NotFoundError{Entity: "lock"}
)

// Business Logic Errors
var (
	ErrSheetAlreadyAssigned    = errors.New("sheet is already assigned to this team")
	ErrAssignmentNotCompleted  = errors.New("assignment is not completed")
	ErrEntryNotInAssignedSheet = errors.New("entry does not belong to a sheet assigned to this team")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrReopenReasonRequired    = errors.New("reopen reason is required")
	ErrSheetHasNoEntries       = errors.New("sheet has no entries")
)

// Authentication Errors
var (
	ErrInvalidCredentials    = &AuthenticationError{Message: "invalid username or password"}
	ErrUserInactive          = &AuthenticationError{Message: "user account is inactive"}
	ErrAdminRequired         = &AuthorizationError{Message: "administrator privileges required"}
	ErrNotTeamMember         = &AuthorizationError{Message: "user is not a member of the target team"}
	ErrUserNotAssignedToTeam = &AuthorizationError{Message: "user is not assigned to any team"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsEntryLocked checks if an error is an EntryLockedError
func IsEntryLocked(err error) bool {
	var lockedErr *EntryLockedError
	return errors.As(err, &lockedErr)
}

// IsNotLockHolder checks if an error is a NotLockHolderError
func IsNotLockHolder(err error) bool {
	var holderErr *NotLockHolderError
	return errors.As(err, &holderErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAssignmentCompleted checks if an error is an AssignmentCompletedError
func IsAssignmentCompleted(err error) bool {
	var completedErr *AssignmentCompletedError
	return errors.As(err, &completedErr)
}

// IsPartialSubmission checks if an error is a PartialSubmissionError
func IsPartialSubmission(err error) bool {
	var partialErr *PartialSubmissionError
	return errors.As(err, &partialErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewEntryLockedError creates an EntryLockedError carrying the holder identity
func NewEntryLockedError(entryID, lockedBy uuid.UUID, lockedByName string) error {
	return &EntryLockedError{EntryID: entryID, LockedBy: lockedBy, LockedByName: lockedByName}
}

// NewNotLockHolderError creates a NotLockHolderError for an entry
func NewNotLockHolderError(entryID uuid.UUID) error {
	return &NotLockHolderError{EntryID: entryID}
}
