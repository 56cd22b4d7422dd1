package models

// Team represents an operational team (generation, distribution, transmission)
type Team struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	DisplayName string `json:"display_name" gorm:"size:200;not null" validate:"required,max=200"`
	Description string `json:"description" gorm:"size:500" validate:"max=500"`

	// Relationships
	Users      []User      `json:"users,omitempty" gorm:"foreignKey:TeamID"`
	TeamSheets []TeamSheet `json:"team_sheets,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
