package service

import (
	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EntryLockServiceInterface defines the contract for entry lock operations
type EntryLockServiceInterface interface {
	LockEntry(entryID, userID uuid.UUID) (*LockResponse, error)
	UnlockEntry(entryID, userID uuid.UUID, isAdmin bool) error
	GetAvailableEntries(sheetID, teamID, userID uuid.UUID) ([]EntrySnapshot, error)
	ReleaseExpiredLocks() (int64, error)
}

// TeamResponseServiceInterface defines the contract for response operations
type TeamResponseServiceInterface interface {
	SaveDraft(responseID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error)
	SaveDraftByEntry(entryID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error)
	CompleteEntry(entryID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error)
	UpdateStatusAndComments(responseID, userID uuid.UUID, req *StatusCommentsRequest) (*EntryResponseResult, error)
}

// SubmissionServiceInterface defines the contract for assignment lifecycle operations
type SubmissionServiceInterface interface {
	Start(sheetID, userID uuid.UUID) (*AssignmentResponse, error)
	Submit(sheetID, userID uuid.UUID, responses map[uuid.UUID]models.ResponseFields) (*SubmissionResult, error)
	Reopen(sheetID, teamID, adminID uuid.UUID, reason string) (*AssignmentResponse, error)
	GetTeamAssignments(teamID uuid.UUID) ([]AssignmentResponse, error)
}

// SheetServiceInterface defines the contract for sheet catalog operations
type SheetServiceInterface interface {
	Create(adminID uuid.UUID, req *CreateSheetRequest) (*SheetDetailResponse, error)
	GetByID(id uuid.UUID) (*SheetDetailResponse, error)
	GetAll(page, pageSize int) (*SheetListResponse, error)
	Distribute(sheetID, adminID uuid.UUID, req *DistributeRequest) (*DistributeResult, error)
	GetAssignments(sheetID uuid.UUID) ([]models.TeamSheet, error)
}

// ProgressServiceInterface defines the contract for admin progress views
type ProgressServiceInterface interface {
	GetSheetProgress(sheetID uuid.UUID) (*SheetProgressResponse, error)
	GetTeamSnapshot(sheetID, teamID uuid.UUID) (*TeamSheetSnapshot, error)
}

// TeamServiceInterface defines the contract for team management
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*models.Team, error)
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*models.Team, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the contract for user management
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
	GetAll(page, pageSize int) ([]models.User, int64, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	ChangePassword(id uuid.UUID, newPassword string) error
	Delete(id uuid.UUID) error
}
