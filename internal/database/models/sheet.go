package models

import (
	"github.com/google/uuid"
)

// AdvisorySheet represents one uploaded batch of advisory rows for a month/year
type AdvisorySheet struct {
	BaseModel
	Title      string    `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Month      int       `json:"month" gorm:"not null" validate:"required,min=1,max=12"`
	Year       int       `json:"year" gorm:"not null" validate:"required,min=2020,max=2100"`
	UploadedBy uuid.UUID `json:"uploaded_by" gorm:"type:uuid;not null"`

	// Relationships
	Entries     []SourceEntry `json:"entries,omitempty" gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
	Assignments []TeamSheet   `json:"assignments,omitempty" gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AdvisorySheet
func (AdvisorySheet) TableName() string {
	return "sheets"
}
