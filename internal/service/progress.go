package service

import (
	"errors"
	"fmt"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressService builds the admin aggregation view over a sheet: per-team
// completion counts plus a merged per-entry snapshot of responses and lock
// state. Read-only; it never mutates assignments or responses.
type ProgressService struct {
	sheetRepo     repository.SheetRepositoryInterface
	teamSheetRepo repository.TeamSheetRepositoryInterface
	responseRepo  repository.SheetResponseRepositoryInterface
	lockRepo      repository.EntryLockRepositoryInterface
}

// NewProgressService creates a new progress service
func NewProgressService(
	sheetRepo repository.SheetRepositoryInterface,
	teamSheetRepo repository.TeamSheetRepositoryInterface,
	responseRepo repository.SheetResponseRepositoryInterface,
	lockRepo repository.EntryLockRepositoryInterface,
) *ProgressService {
	return &ProgressService{
		sheetRepo:     sheetRepo,
		teamSheetRepo: teamSheetRepo,
		responseRepo:  responseRepo,
		lockRepo:      lockRepo,
	}
}

// TeamProgress summarizes one team's state on a sheet
type TeamProgress struct {
	TeamID           uuid.UUID               `json:"team_id"`
	TeamName         string                  `json:"team_name"`
	Status           models.AssignmentStatus `json:"status"`
	TotalEntries     int                     `json:"total_entries"`
	CompletedEntries int                     `json:"completed_entries"`
	LockedEntries    int                     `json:"locked_entries"`
	StartedAt        *time.Time              `json:"started_at,omitempty"`
	CompletedAt      *time.Time              `json:"completed_at,omitempty"`
	ReopenedAt       *time.Time              `json:"reopened_at,omitempty"`
}

// SheetProgressResponse is the admin progress view of a sheet
type SheetProgressResponse struct {
	SheetID uuid.UUID      `json:"sheet_id"`
	Title   string         `json:"title"`
	Teams   []TeamProgress `json:"teams"`
}

// TeamEntrySnapshot merges one entry with the team's response and lock state
type TeamEntrySnapshot struct {
	EntryID      uuid.UUID              `json:"entry_id"`
	VendorName   string                 `json:"vendor_name"`
	ProductName  string                 `json:"product_name"`
	CVE          string                 `json:"cve,omitempty"`
	RiskLevel    models.RiskLevel       `json:"risk_level"`
	SourceURL    string                 `json:"source_url,omitempty"`
	IsCompleted  bool                   `json:"is_completed"`
	IsLocked     bool                   `json:"is_locked"`
	LockedByName string                 `json:"locked_by_name,omitempty"`
	Response     *models.ResponseFields `json:"response,omitempty"`
	SubmittedBy  *uuid.UUID             `json:"submitted_by,omitempty"`
	SubmittedAt  *time.Time             `json:"submitted_at,omitempty"`
}

// TeamSheetSnapshot is the full merged view of one team's assignment
type TeamSheetSnapshot struct {
	SheetID uuid.UUID               `json:"sheet_id"`
	TeamID  uuid.UUID               `json:"team_id"`
	Status  models.AssignmentStatus `json:"status"`
	Entries []TeamEntrySnapshot     `json:"entries"`
}

// GetSheetProgress aggregates per-team completion counts for a sheet
func (s *ProgressService) GetSheetProgress(sheetID uuid.UUID) (*SheetProgressResponse, error) {
	sheet, err := s.sheetRepo.GetByID(sheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	assignments, err := s.teamSheetRepo.GetBySheetID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	total, err := s.sheetRepo.CountEntries(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	locks, err := s.lockRepo.GetActiveBySheet(sheetID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load locks: %w", err)
	}
	locksByTeam := make(map[uuid.UUID]int)
	for _, lock := range locks {
		locksByTeam[lock.TeamID]++
	}

	result := &SheetProgressResponse{
		SheetID: sheet.ID,
		Title:   sheet.Title,
		Teams:   make([]TeamProgress, 0, len(assignments)),
	}
	for i := range assignments {
		assignment := &assignments[i]
		_, completed, err := s.responseRepo.CountByAssignment(assignment.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count completed responses: %w", err)
		}
		progress := TeamProgress{
			TeamID:           assignment.TeamID,
			Status:           assignment.Status,
			TotalEntries:     int(total),
			CompletedEntries: int(completed),
			LockedEntries:    locksByTeam[assignment.TeamID],
			StartedAt:        assignment.StartedAt,
			CompletedAt:      assignment.CompletedAt,
			ReopenedAt:       assignment.ReopenedAt,
		}
		if assignment.Team != nil {
			progress.TeamName = assignment.Team.Name
		}
		result.Teams = append(result.Teams, progress)
	}
	return result, nil
}

// GetTeamSnapshot merges a team's responses and lock state over the
// sheet's entries into one admin-readable view
func (s *ProgressService) GetTeamSnapshot(sheetID, teamID uuid.UUID) (*TeamSheetSnapshot, error) {
	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(sheetID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	entries, err := s.sheetRepo.GetEntriesBySheetID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	responses, err := s.responseRepo.GetByAssignment(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	responsesByEntry := make(map[uuid.UUID]*models.SheetResponse, len(responses))
	for i := range responses {
		responsesByEntry[responses[i].OriginalEntryID] = &responses[i]
	}

	locks, err := s.lockRepo.GetActiveBySheet(sheetID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to load locks: %w", err)
	}
	locksByEntry := make(map[uuid.UUID]*models.EntryLock, len(locks))
	for i := range locks {
		locksByEntry[locks[i].EntryID] = &locks[i]
	}

	snapshot := &TeamSheetSnapshot{
		SheetID: sheetID,
		TeamID:  teamID,
		Status:  assignment.Status,
		Entries: make([]TeamEntrySnapshot, 0, len(entries)),
	}
	for i := range entries {
		entry := &entries[i]
		item := TeamEntrySnapshot{
			EntryID:     entry.ID,
			VendorName:  entry.VendorName,
			ProductName: entry.ProductName,
			CVE:         entry.CVE,
			RiskLevel:   entry.RiskLevel,
			SourceURL:   entry.SourceURL,
		}
		if response, ok := responsesByEntry[entry.ID]; ok {
			item.IsCompleted = response.IsCompleted
			fields := response.ResponseFields
			item.Response = &fields
			item.SubmittedBy = response.SubmittedBy
			item.SubmittedAt = response.SubmittedAt
		}
		if lock, ok := locksByEntry[entry.ID]; ok {
			item.IsLocked = true
			if lock.Holder != nil {
				item.LockedByName = lock.Holder.Username
			}
		}
		snapshot.Entries = append(snapshot.Entries, item)
	}
	return snapshot, nil
}
