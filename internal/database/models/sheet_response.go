package models

import (
	"time"

	"github.com/google/uuid"
)

// ResponseFields is the remediation payload a team fills in per entry.
// It is a fixed set of named fields so the cascade logic stays a total,
// exhaustively testable function instead of operating on an open map.
type ResponseFields struct {
	CurrentStatus                string     `json:"current_status" gorm:"size:100"`
	Comments                     string     `json:"comments" gorm:"type:text"`
	DeployedInKE                 string     `json:"deployed_in_ke" gorm:"size:10"`
	Site                         string     `json:"site" gorm:"size:200"`
	VendorContacted              string     `json:"vendor_contacted" gorm:"size:10"`
	VendorContactDate            *time.Time `json:"vendor_contact_date"`
	CompensatoryControlsProvided string     `json:"compensatory_controls_provided" gorm:"size:10"`
	CompensatoryControlsDetails  string     `json:"compensatory_controls_details" gorm:"type:text"`
	EstimatedTime                string     `json:"estimated_time" gorm:"size:100"`
	Patching                     string     `json:"patching" gorm:"size:10"`
	PatchingEstReleaseDate       *time.Time `json:"patching_est_release_date"`
	ImplementationDate           *time.Time `json:"implementation_date"`
}

// SheetResponse is one team's working copy for one source entry. Exactly one
// row exists per (team_sheet_id, original_entry_id); saves upsert, never
// duplicate.
type SheetResponse struct {
	BaseModel
	TeamSheetID     uuid.UUID `json:"team_sheet_id" gorm:"type:uuid;not null;uniqueIndex:idx_sheet_responses_assignment_entry" validate:"required"`
	OriginalEntryID uuid.UUID `json:"original_entry_id" gorm:"type:uuid;not null;uniqueIndex:idx_sheet_responses_assignment_entry" validate:"required"`

	ResponseFields

	IsCompleted bool       `json:"is_completed" gorm:"not null;default:false"`
	SubmittedBy *uuid.UUID `json:"submitted_by" gorm:"type:uuid"`
	SubmittedAt *time.Time `json:"submitted_at"`

	// Relationships
	TeamSheet *TeamSheet `json:"team_sheet,omitempty" gorm:"foreignKey:TeamSheetID"`
}

// TableName returns the table name for SheetResponse
func (SheetResponse) TableName() string {
	return "sheet_responses"
}
