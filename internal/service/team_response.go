package service

import (
	"errors"
	"fmt"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamResponseService turns form edits into durable per-team response
// records. Every save path runs the cascade first, so what lands in storage
// is always internally consistent no matter the save order.
//
// Policy: a draft save or completion by a caller who does not hold the
// entry's lock is rejected with NotLockHolderError, matching the explicit
// lock/unlock contract.
type TeamResponseService struct {
	responseRepo  repository.SheetResponseRepositoryInterface
	teamSheetRepo repository.TeamSheetRepositoryInterface
	sheetRepo     repository.SheetRepositoryInterface
	lockRepo      repository.EntryLockRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	publisher     notify.Publisher
	validator     *validator.Validate
}

// NewTeamResponseService creates a new team response service
func NewTeamResponseService(
	responseRepo repository.SheetResponseRepositoryInterface,
	teamSheetRepo repository.TeamSheetRepositoryInterface,
	sheetRepo repository.SheetRepositoryInterface,
	lockRepo repository.EntryLockRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	publisher notify.Publisher,
	validator *validator.Validate,
) *TeamResponseService {
	return &TeamResponseService{
		responseRepo:  responseRepo,
		teamSheetRepo: teamSheetRepo,
		sheetRepo:     sheetRepo,
		lockRepo:      lockRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		validator:     validator,
	}
}

// EntryResponseResult is the persisted, post-cascade response record
// returned to callers. Clients must use it rather than their submitted
// values, since the cascade may have corrected fields server-side.
type EntryResponseResult struct {
	ID              uuid.UUID  `json:"id"`
	TeamSheetID     uuid.UUID  `json:"team_sheet_id"`
	OriginalEntryID uuid.UUID  `json:"original_entry_id"`
	models.ResponseFields
	IsCompleted bool       `json:"is_completed"`
	SubmittedBy *uuid.UUID `json:"submitted_by,omitempty"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StatusCommentsRequest is the narrow post-completion update payload
type StatusCommentsRequest struct {
	CurrentStatus string `json:"current_status" validate:"required,max=100"`
	Comments      string `json:"comments"`
}

// SaveDraft upserts the payload of an existing response row after applying
// the cascade rules. The caller must hold the lock on the underlying entry.
func (s *TeamResponseService) SaveDraft(responseID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error) {
	response, err := s.responseRepo.GetByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to load response: %w", err)
	}
	return s.saveDraftRow(response.TeamSheetID, response.OriginalEntryID, userID, fields)
}

// SaveDraftByEntry upserts a draft keyed by entry, materializing the
// response row lazily when the team edits an entry for the first time.
func (s *TeamResponseService) SaveDraftByEntry(entryID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error) {
	assignment, err := s.assignmentForEntry(entryID, userID)
	if err != nil {
		return nil, err
	}
	return s.saveDraftRow(assignment.ID, entryID, userID, fields)
}

// CompleteEntry applies the cascade, validates the completion shape, marks
// the response completed, and releases the entry's lock. The claim ends
// with the work.
func (s *TeamResponseService) CompleteEntry(entryID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error) {
	assignment, err := s.assignmentForEntry(entryID, userID)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return nil, &apperrors.AssignmentCompletedError{TeamSheetID: assignment.ID}
	}
	if err := s.requireLockHolder(entryID, userID); err != nil {
		return nil, err
	}

	fields = ApplyCascade(fields)
	if err := ValidateForCompletion(fields); err != nil {
		return nil, err
	}

	now := time.Now()
	response := &models.SheetResponse{
		TeamSheetID:     assignment.ID,
		OriginalEntryID: entryID,
		ResponseFields:  fields,
		IsCompleted:     true,
		SubmittedBy:     &userID,
		SubmittedAt:     &now,
	}
	if err := s.responseRepo.Upsert(nil, response); err != nil {
		return nil, fmt.Errorf("failed to persist response: %w", err)
	}

	// Completion releases the claim so the next team member can move in.
	if err := s.lockRepo.ForceRelease(entryID); err != nil {
		return nil, fmt.Errorf("failed to release lock after completion: %w", err)
	}
	s.markStartedIfNeeded(assignment, userID, now)

	persisted, err := s.responseRepo.GetByAssignmentAndEntry(assignment.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read response: %w", err)
	}
	s.publisher.EntryCompleted(notify.EntryCompletedEvent{
		ResponseID: persisted.ID, EntryID: entryID, TeamSheetID: assignment.ID, CompletedBy: userID,
	})
	s.publisher.EntryUnlocked(notify.EntryUnlockedEvent{EntryID: entryID, ReleasedBy: userID, Forced: true})
	return toEntryResponseResult(persisted), nil
}

// UpdateStatusAndComments is the one write path that stays open after the
// assignment completes: operational status can legitimately change after a
// sheet is formally closed. Every other field is immutable by then.
func (s *TeamResponseService) UpdateStatusAndComments(responseID, userID uuid.UUID, req *StatusCommentsRequest) (*EntryResponseResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("current_status", "current status is required")
	}

	response, err := s.responseRepo.GetByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResponseNotFound
		}
		return nil, fmt.Errorf("failed to load response: %w", err)
	}

	assignment, err := s.teamSheetRepo.GetByID(response.TeamSheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if err := s.requireTeamMember(userID, assignment.TeamID); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.responseRepo.UpdateStatusAndComments(responseID, req.CurrentStatus, req.Comments, now); err != nil {
		return nil, fmt.Errorf("failed to update status and comments: %w", err)
	}

	persisted, err := s.responseRepo.GetByID(responseID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read response: %w", err)
	}
	s.publisher.ResponseSaved(notify.ResponseSavedEvent{
		ResponseID: responseID, EntryID: persisted.OriginalEntryID,
		TeamSheetID: persisted.TeamSheetID, SavedBy: userID,
	})
	return toEntryResponseResult(persisted), nil
}

// saveDraftRow runs the shared draft path: membership and lock checks,
// cascade, upsert preserving any completion stamps, implicit start.
func (s *TeamResponseService) saveDraftRow(teamSheetID, entryID, userID uuid.UUID, fields models.ResponseFields) (*EntryResponseResult, error) {
	assignment, err := s.teamSheetRepo.GetByID(teamSheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if err := s.requireTeamMember(userID, assignment.TeamID); err != nil {
		return nil, err
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return nil, &apperrors.AssignmentCompletedError{TeamSheetID: assignment.ID}
	}
	if err := s.requireLockHolder(entryID, userID); err != nil {
		return nil, err
	}

	fields = ApplyCascade(fields)

	// Drafts never flip completion state; carry existing stamps forward.
	response := &models.SheetResponse{
		TeamSheetID:     teamSheetID,
		OriginalEntryID: entryID,
		ResponseFields:  fields,
	}
	existing, err := s.responseRepo.GetByAssignmentAndEntry(teamSheetID, entryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load existing response: %w", err)
	}
	if existing != nil {
		response.IsCompleted = existing.IsCompleted
		response.SubmittedBy = existing.SubmittedBy
		response.SubmittedAt = existing.SubmittedAt
	}

	if err := s.responseRepo.Upsert(nil, response); err != nil {
		return nil, fmt.Errorf("failed to persist draft: %w", err)
	}
	s.markStartedIfNeeded(assignment, userID, time.Now())

	persisted, err := s.responseRepo.GetByAssignmentAndEntry(teamSheetID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read draft: %w", err)
	}
	s.publisher.ResponseSaved(notify.ResponseSavedEvent{
		ResponseID: persisted.ID, EntryID: entryID, TeamSheetID: teamSheetID, SavedBy: userID,
	})
	return toEntryResponseResult(persisted), nil
}

// assignmentForEntry resolves the assignment binding an entry's sheet to
// the caller's team
func (s *TeamResponseService) assignmentForEntry(entryID, userID uuid.UUID) (*models.TeamSheet, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.TeamID == nil {
		return nil, apperrors.ErrUserNotAssignedToTeam
	}

	entry, err := s.sheetRepo.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load entry: %w", err)
	}

	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(entry.SheetID, *user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEntryNotInAssignedSheet
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	return assignment, nil
}

func (s *TeamResponseService) requireTeamMember(userID, teamID uuid.UUID) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.TeamID == nil || *user.TeamID != teamID {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

func (s *TeamResponseService) requireLockHolder(entryID, userID uuid.UUID) error {
	lock, err := s.lockRepo.GetActiveByEntry(entryID, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotLockHolderError(entryID)
		}
		return fmt.Errorf("failed to check lock: %w", err)
	}
	if lock.LockedBy != userID {
		return apperrors.NewNotLockHolderError(entryID)
	}
	return nil
}

func (s *TeamResponseService) markStartedIfNeeded(assignment *models.TeamSheet, userID uuid.UUID, now time.Time) {
	if assignment.Status != models.AssignmentStatusAssigned {
		return
	}
	if err := s.teamSheetRepo.MarkStarted(assignment.ID, userID, now); err == nil {
		s.publisher.AssignmentStarted(notify.AssignmentStartedEvent{
			TeamSheetID: assignment.ID, SheetID: assignment.SheetID,
			TeamID: assignment.TeamID, StartedBy: userID,
		})
	}
}

func toEntryResponseResult(response *models.SheetResponse) *EntryResponseResult {
	return &EntryResponseResult{
		ID:              response.ID,
		TeamSheetID:     response.TeamSheetID,
		OriginalEntryID: response.OriginalEntryID,
		ResponseFields:  response.ResponseFields,
		IsCompleted:     response.IsCompleted,
		SubmittedBy:     response.SubmittedBy,
		SubmittedAt:     response.SubmittedAt,
		UpdatedAt:       response.UpdatedAt,
	}
}
