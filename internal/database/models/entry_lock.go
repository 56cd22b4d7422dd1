package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryLock is a transient, time-bounded editing claim on one source entry.
// The unique index on entry_id is the mutual-exclusion mechanism: of two
// concurrent acquisitions for the same entry, the storage layer lets exactly
// one insert succeed. Expired rows are treated as absent on every read.
type EntryLock struct {
	BaseModel
	EntryID   uuid.UUID `json:"entry_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	LockedBy  uuid.UUID `json:"locked_by" gorm:"type:uuid;not null" validate:"required"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	LockedAt  time.Time `json:"locked_at" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`

	// Relationships
	Entry  *SourceEntry `json:"entry,omitempty" gorm:"foreignKey:EntryID"`
	Holder *User        `json:"holder,omitempty" gorm:"foreignKey:LockedBy"`
}

// TableName returns the table name for EntryLock
func (EntryLock) TableName() string {
	return "entry_locks"
}

// Expired reports whether the lock has aged out relative to now
func (l *EntryLock) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
