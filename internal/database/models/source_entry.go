package models

import (
	"github.com/google/uuid"
)

// SourceEntry is one advisory row within a sheet. Rows are immutable once
// created; team edits only ever touch the per-team SheetResponse copies.
type SourceEntry struct {
	BaseModel
	SheetID     uuid.UUID `json:"sheet_id" gorm:"type:uuid;not null;index" validate:"required"`
	VendorName  string    `json:"vendor_name" gorm:"size:200;not null" validate:"required,max=200"`
	ProductName string    `json:"product_name" gorm:"size:200;not null" validate:"required,max=200"`
	CVE         string    `json:"cve" gorm:"size:100;index" validate:"max=100"`
	RiskLevel   RiskLevel `json:"risk_level" gorm:"type:varchar(20);not null" validate:"required"`
	SourceURL   string    `json:"source_url" gorm:"size:500" validate:"omitempty,url,max=500"`

	// Relationships
	Sheet *AdvisorySheet `json:"sheet,omitempty" gorm:"foreignKey:SheetID"`
}

// TableName returns the table name for SourceEntry
func (SourceEntry) TableName() string {
	return "source_entries"
}
