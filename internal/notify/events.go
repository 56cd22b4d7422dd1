package notify

import (
	"time"

	"github.com/google/uuid"
)

// EntryLockedEvent is emitted when a user acquires or refreshes a lock.
type EntryLockedEvent struct {
	EntryID   uuid.UUID
	SheetID   uuid.UUID
	TeamID    uuid.UUID
	LockedBy  uuid.UUID
	ExpiresAt time.Time
}

// EntryUnlockedEvent is emitted when a lock is released, explicitly or via
// the admin override path.
type EntryUnlockedEvent struct {
	EntryID    uuid.UUID
	ReleasedBy uuid.UUID
	Forced     bool
}

// ResponseSavedEvent is emitted on every draft save and narrow
// status/comments update.
type ResponseSavedEvent struct {
	ResponseID  uuid.UUID
	EntryID     uuid.UUID
	TeamSheetID uuid.UUID
	SavedBy     uuid.UUID
}

// EntryCompletedEvent is emitted when a team member completes one entry.
type EntryCompletedEvent struct {
	ResponseID  uuid.UUID
	EntryID     uuid.UUID
	TeamSheetID uuid.UUID
	CompletedBy uuid.UUID
}

// AssignmentStartedEvent is emitted on the assigned to in_progress
// transition.
type AssignmentStartedEvent struct {
	TeamSheetID uuid.UUID
	SheetID     uuid.UUID
	TeamID      uuid.UUID
	StartedBy   uuid.UUID
}

// AssignmentCompletedEvent is emitted when a team submits a whole sheet.
type AssignmentCompletedEvent struct {
	TeamSheetID  uuid.UUID
	SheetID      uuid.UUID
	TeamID       uuid.UUID
	CompletedBy  uuid.UUID
	EntriesCount int
}

// AssignmentReopenedEvent is emitted when an admin reopens a completed
// assignment for correction.
type AssignmentReopenedEvent struct {
	TeamSheetID uuid.UUID
	SheetID     uuid.UUID
	TeamID      uuid.UUID
	ReopenedBy  uuid.UUID
	Reason      string
}
