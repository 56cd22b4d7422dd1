package repository

import (
	"time"

	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetWithUsers(id uuid.UUID) (*models.Team, error)
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTeamID(teamID uuid.UUID) ([]models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// SheetRepositoryInterface defines the interface for sheet repository operations
type SheetRepositoryInterface interface {
	Create(sheet *models.AdvisorySheet) error
	GetByID(id uuid.UUID) (*models.AdvisorySheet, error)
	GetWithEntries(id uuid.UUID) (*models.AdvisorySheet, error)
	GetAll(limit, offset int) ([]models.AdvisorySheet, int64, error)
	GetEntryByID(entryID uuid.UUID) (*models.SourceEntry, error)
	GetEntriesBySheetID(sheetID uuid.UUID) ([]models.SourceEntry, error)
	CountEntries(sheetID uuid.UUID) (int64, error)
}

// TeamSheetRepositoryInterface defines the interface for assignment repository operations
type TeamSheetRepositoryInterface interface {
	Create(assignment *models.TeamSheet) error
	GetByID(id uuid.UUID) (*models.TeamSheet, error)
	GetBySheetAndTeam(sheetID, teamID uuid.UUID) (*models.TeamSheet, error)
	GetBySheetID(sheetID uuid.UUID) ([]models.TeamSheet, error)
	GetByTeamID(teamID uuid.UUID) ([]models.TeamSheet, error)
	MarkStarted(id, userID uuid.UUID, now time.Time) error
	MarkCompleted(tx *gorm.DB, id, userID uuid.UUID, now time.Time) error
	Reopen(id, adminID uuid.UUID, reason string, now time.Time) error
}

// SheetResponseRepositoryInterface defines the interface for response repository operations
type SheetResponseRepositoryInterface interface {
	Upsert(tx *gorm.DB, response *models.SheetResponse) error
	PreMaterialize(tx *gorm.DB, response *models.SheetResponse) error
	GetByID(id uuid.UUID) (*models.SheetResponse, error)
	GetByAssignmentAndEntry(teamSheetID, entryID uuid.UUID) (*models.SheetResponse, error)
	GetByAssignment(teamSheetID uuid.UUID) ([]models.SheetResponse, error)
	UpdateStatusAndComments(id uuid.UUID, currentStatus, comments string, now time.Time) error
	MarkAllCompleted(tx *gorm.DB, teamSheetID, userID uuid.UUID, now time.Time) error
	CountByAssignment(teamSheetID uuid.UUID) (total int64, completed int64, err error)
}

// EntryLockRepositoryInterface defines the interface for entry lock repository operations
type EntryLockRepositoryInterface interface {
	Acquire(lock *models.EntryLock) error
	GetActiveByEntry(entryID uuid.UUID, now time.Time) (*models.EntryLock, error)
	GetActiveBySheet(sheetID uuid.UUID, now time.Time) ([]models.EntryLock, error)
	Refresh(entryID, userID uuid.UUID, expiresAt time.Time) error
	Release(entryID, userID uuid.UUID) error
	ForceRelease(entryID uuid.UUID) error
	DeleteExpired(now time.Time) (int64, error)
}
