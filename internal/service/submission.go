package service

import (
	"errors"
	"fmt"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/notify"
	"advisory-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService coordinates the sheet-level submission: it rolls the
// individually saved entry responses into one assignment status flip.
//
// Submission is all-or-nothing at the assignment level. Entry upserts run
// first, outside the final transaction, so drafts that land stay persisted
// even when a later entry fails; the completed flip and the per-entry
// completion marks happen together in one transaction only after every
// upsert succeeded.
type SubmissionService struct {
	db            *gorm.DB
	teamSheetRepo repository.TeamSheetRepositoryInterface
	responseRepo  repository.SheetResponseRepositoryInterface
	sheetRepo     repository.SheetRepositoryInterface
	lockRepo      repository.EntryLockRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	publisher     notify.Publisher
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	db *gorm.DB,
	teamSheetRepo repository.TeamSheetRepositoryInterface,
	responseRepo repository.SheetResponseRepositoryInterface,
	sheetRepo repository.SheetRepositoryInterface,
	lockRepo repository.EntryLockRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	publisher notify.Publisher,
) *SubmissionService {
	return &SubmissionService{
		db:            db,
		teamSheetRepo: teamSheetRepo,
		responseRepo:  responseRepo,
		sheetRepo:     sheetRepo,
		lockRepo:      lockRepo,
		userRepo:      userRepo,
		publisher:     publisher,
	}
}

// SubmissionResult reports a successful sheet submission
type SubmissionResult struct {
	TeamSheetID      uuid.UUID `json:"team_sheet_id"`
	SheetID          uuid.UUID `json:"sheet_id"`
	TeamID           uuid.UUID `json:"team_id"`
	EntriesCompleted int       `json:"entries_completed"`
	CompletedAt      time.Time `json:"completed_at"`
}

// AssignmentResponse represents an assignment in API responses
type AssignmentResponse struct {
	ID           uuid.UUID               `json:"id"`
	SheetID      uuid.UUID               `json:"sheet_id"`
	TeamID       uuid.UUID               `json:"team_id"`
	Status       models.AssignmentStatus `json:"status"`
	AssignedAt   time.Time               `json:"assigned_at"`
	StartedAt    *time.Time              `json:"started_at,omitempty"`
	CompletedAt  *time.Time              `json:"completed_at,omitempty"`
	ReopenedAt   *time.Time              `json:"reopened_at,omitempty"`
	ReopenReason string                  `json:"reopen_reason,omitempty"`
}

// Start transitions the caller team's assignment from assigned to
// in_progress. Idempotent: starting an already started assignment is a
// no-op.
func (s *SubmissionService) Start(sheetID, userID uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.assignmentForUser(sheetID, userID)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return nil, &apperrors.AssignmentCompletedError{TeamSheetID: assignment.ID}
	}

	if assignment.Status == models.AssignmentStatusAssigned {
		now := time.Now()
		if err := s.teamSheetRepo.MarkStarted(assignment.ID, userID, now); err != nil {
			return nil, fmt.Errorf("failed to start assignment: %w", err)
		}
		s.publisher.AssignmentStarted(notify.AssignmentStartedEvent{
			TeamSheetID: assignment.ID, SheetID: assignment.SheetID,
			TeamID: assignment.TeamID, StartedBy: userID,
		})
	}

	persisted, err := s.teamSheetRepo.GetByID(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read assignment: %w", err)
	}
	return toAssignmentResponse(persisted), nil
}

// Submit completes the caller team's sheet. The request carries the field
// values the client currently holds per entry; entries absent from the
// request fall back to their saved drafts. Every entry of the sheet must be
// covered one way or the other.
//
// If any entry fails its upsert or completion validation, the assignment is
// NOT flipped: the caller gets a PartialSubmissionError naming the failed
// entries, and everything that upserted cleanly stays saved as a draft.
func (s *SubmissionService) Submit(sheetID, userID uuid.UUID, responses map[uuid.UUID]models.ResponseFields) (*SubmissionResult, error) {
	assignment, err := s.assignmentForUser(sheetID, userID)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return nil, &apperrors.AssignmentCompletedError{TeamSheetID: assignment.ID}
	}

	entries, err := s.sheetRepo.GetEntriesBySheetID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrSheetHasNoEntries
	}

	existing, err := s.responseRepo.GetByAssignment(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved responses: %w", err)
	}
	existingByEntry := make(map[uuid.UUID]*models.SheetResponse, len(existing))
	for i := range existing {
		existingByEntry[existing[i].OriginalEntryID] = &existing[i]
	}

	// Completeness: every entry needs either submitted values or a draft.
	for _, entry := range entries {
		if _, ok := responses[entry.ID]; ok {
			continue
		}
		if _, ok := existingByEntry[entry.ID]; !ok {
			return nil, apperrors.NewValidationError("responses",
				fmt.Sprintf("entry %s has neither submitted values nor a saved draft", entry.ID))
		}
	}

	// Phase 1: upsert per entry. Failures are collected, not fatal mid-loop,
	// so the client learns the full list in one round trip.
	var failed []uuid.UUID
	for _, entry := range entries {
		fields, ok := responses[entry.ID]
		prior := existingByEntry[entry.ID]
		if !ok {
			fields = prior.ResponseFields
		}
		fields = ApplyCascade(fields)
		if err := ValidateForCompletion(fields); err != nil {
			failed = append(failed, entry.ID)
			continue
		}

		row := &models.SheetResponse{
			TeamSheetID:     assignment.ID,
			OriginalEntryID: entry.ID,
			ResponseFields:  fields,
		}
		if prior != nil {
			row.IsCompleted = prior.IsCompleted
			row.SubmittedBy = prior.SubmittedBy
			row.SubmittedAt = prior.SubmittedAt
		}
		if err := s.responseRepo.Upsert(nil, row); err != nil {
			failed = append(failed, entry.ID)
		}
	}
	if len(failed) > 0 {
		return nil, &apperrors.PartialSubmissionError{FailedEntryIDs: failed}
	}

	// Phase 2: completion marks and the status flip land together or not
	// at all. No partial-completion state is ever observable.
	now := time.Now()
	if assignment.Status == models.AssignmentStatusAssigned {
		if err := s.teamSheetRepo.MarkStarted(assignment.ID, userID, now); err != nil {
			return nil, fmt.Errorf("failed to start assignment: %w", err)
		}
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.responseRepo.MarkAllCompleted(tx, assignment.ID, userID, now); err != nil {
			return err
		}
		return s.teamSheetRepo.MarkCompleted(tx, assignment.ID, userID, now)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete assignment: %w", err)
	}

	s.releaseTeamLocks(sheetID, assignment.TeamID)

	s.publisher.AssignmentCompleted(notify.AssignmentCompletedEvent{
		TeamSheetID: assignment.ID, SheetID: sheetID, TeamID: assignment.TeamID,
		CompletedBy: userID, EntriesCount: len(entries),
	})

	return &SubmissionResult{
		TeamSheetID:      assignment.ID,
		SheetID:          sheetID,
		TeamID:           assignment.TeamID,
		EntriesCompleted: len(entries),
		CompletedAt:      now,
	}, nil
}

// Reopen moves a completed assignment back to in_progress so the team can
// correct it. Admin-only; the reason string lands in the audit columns.
func (s *SubmissionService) Reopen(sheetID, teamID, adminID uuid.UUID, reason string) (*AssignmentResponse, error) {
	if reason == "" {
		return nil, apperrors.ErrReopenReasonRequired
	}

	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(sheetID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment.Status != models.AssignmentStatusCompleted {
		return nil, apperrors.ErrAssignmentNotCompleted
	}

	if err := s.teamSheetRepo.Reopen(assignment.ID, adminID, reason, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotCompleted
		}
		return nil, fmt.Errorf("failed to reopen assignment: %w", err)
	}

	s.publisher.AssignmentReopened(notify.AssignmentReopenedEvent{
		TeamSheetID: assignment.ID, SheetID: sheetID, TeamID: teamID,
		ReopenedBy: adminID, Reason: reason,
	})

	persisted, err := s.teamSheetRepo.GetByID(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read assignment: %w", err)
	}
	return toAssignmentResponse(persisted), nil
}

// GetTeamAssignments lists all assignments of a team, most recent first
func (s *SubmissionService) GetTeamAssignments(teamID uuid.UUID) ([]AssignmentResponse, error) {
	assignments, err := s.teamSheetRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	result := make([]AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *toAssignmentResponse(&assignments[i]))
	}
	return result, nil
}

func (s *SubmissionService) assignmentForUser(sheetID, userID uuid.UUID) (*models.TeamSheet, error) {
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

	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(sheetID, *user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	return assignment, nil
}

// releaseTeamLocks clears the submitting team's leftover claims on the
// sheet. Best effort: a stray lock ages out on its own anyway.
func (s *SubmissionService) releaseTeamLocks(sheetID, teamID uuid.UUID) {
	locks, err := s.lockRepo.GetActiveBySheet(sheetID, time.Now())
	if err != nil {
		return
	}
	for i := range locks {
		if locks[i].TeamID == teamID {
			_ = s.lockRepo.ForceRelease(locks[i].EntryID)
		}
	}
}

func toAssignmentResponse(assignment *models.TeamSheet) *AssignmentResponse {
	return &AssignmentResponse{
		ID:           assignment.ID,
		SheetID:      assignment.SheetID,
		TeamID:       assignment.TeamID,
		Status:       assignment.Status,
		AssignedAt:   assignment.AssignedAt,
		StartedAt:    assignment.StartedAt,
		CompletedAt:  assignment.CompletedAt,
		ReopenedAt:   assignment.ReopenedAt,
		ReopenReason: assignment.ReopenReason,
	}
}
