package models

import (
	"github.com/google/uuid"
)

// User represents an account that can log in: an admin or a team member
type User struct {
	BaseModel
	Username     string     `json:"username" gorm:"size:100;not null;uniqueIndex" validate:"required,min=3,max=100"`
	Email        string     `json:"email" gorm:"size:200;not null;uniqueIndex" validate:"required,email,max=200"`
	FullName     string     `json:"full_name" gorm:"size:200" validate:"max=200"`
	PasswordHash string     `json:"-" gorm:"size:200;not null"`
	TeamID       *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null;default:false"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
