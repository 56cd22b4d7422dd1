package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamSheet is the assignment of one sheet to one team. Rows are never
// deleted; reopening a completed assignment keeps the row as audit trail.
type TeamSheet struct {
	BaseModel
	SheetID uuid.UUID        `json:"sheet_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_sheets_sheet_team" validate:"required"`
	TeamID  uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_sheets_sheet_team" validate:"required"`
	Status  AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'assigned'" validate:"required"`

	AssignedAt   time.Time  `json:"assigned_at" gorm:"not null"`
	AssignedBy   uuid.UUID  `json:"assigned_by" gorm:"type:uuid;not null"`
	StartedAt    *time.Time `json:"started_at"`
	StartedBy    *uuid.UUID `json:"started_by" gorm:"type:uuid"`
	CompletedAt  *time.Time `json:"completed_at"`
	CompletedBy  *uuid.UUID `json:"completed_by" gorm:"type:uuid"`
	ReopenedAt   *time.Time `json:"reopened_at"`
	ReopenedBy   *uuid.UUID `json:"reopened_by" gorm:"type:uuid"`
	ReopenReason string     `json:"reopen_reason" gorm:"size:500"`

	// Relationships
	Sheet     *AdvisorySheet  `json:"sheet,omitempty" gorm:"foreignKey:SheetID"`
	Team      *Team           `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Responses []SheetResponse `json:"responses,omitempty" gorm:"foreignKey:TeamSheetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamSheet
func (TeamSheet) TableName() string {
	return "team_sheets"
}
