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

// EntryLockService serializes concurrent edit access to individual source
// entries. The entry_locks unique index is the actual arbiter; this service
// adds the team scoping, idempotent re-lock, and TTL handling around it.
type EntryLockService struct {
	lockRepo      repository.EntryLockRepositoryInterface
	sheetRepo     repository.SheetRepositoryInterface
	teamSheetRepo repository.TeamSheetRepositoryInterface
	responseRepo  repository.SheetResponseRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	publisher     notify.Publisher
	lockTTL       time.Duration
}

// NewEntryLockService creates a new entry lock service
func NewEntryLockService(
	lockRepo repository.EntryLockRepositoryInterface,
	sheetRepo repository.SheetRepositoryInterface,
	teamSheetRepo repository.TeamSheetRepositoryInterface,
	responseRepo repository.SheetResponseRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	publisher notify.Publisher,
	lockTTL time.Duration,
) *EntryLockService {
	return &EntryLockService{
		lockRepo:      lockRepo,
		sheetRepo:     sheetRepo,
		teamSheetRepo: teamSheetRepo,
		responseRepo:  responseRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		lockTTL:       lockTTL,
	}
}

// LockResponse represents an acquired lock in API responses
type LockResponse struct {
	EntryID   uuid.UUID `json:"entry_id"`
	LockedBy  uuid.UUID `json:"locked_by"`
	TeamID    uuid.UUID `json:"team_id"`
	LockedAt  time.Time `json:"locked_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EntrySnapshot is one row of the per-sheet projection: the source entry
// annotated with lock and response state. Reading it takes no locks.
type EntrySnapshot struct {
	EntryID      uuid.UUID              `json:"entry_id"`
	VendorName   string                 `json:"vendor_name"`
	ProductName  string                 `json:"product_name"`
	CVE          string                 `json:"cve"`
	RiskLevel    models.RiskLevel       `json:"risk_level"`
	SourceURL    string                 `json:"source_url"`
	IsLocked     bool                   `json:"is_locked"`
	IsLockedByMe bool                   `json:"is_locked_by_me"`
	LockedByName string                 `json:"locked_by_name,omitempty"`
	IsCompleted  bool                   `json:"is_completed"`
	ResponseID   *uuid.UUID             `json:"response_id,omitempty"`
	Response     *models.ResponseFields `json:"response,omitempty"`
}

// LockEntry acquires an exclusive, TTL-bounded claim on an entry for the
// calling user. Re-locking an entry you already hold refreshes the TTL and
// succeeds; an entry held by anybody else fails with EntryLockedError
// carrying the holder's identity.
func (s *EntryLockService) LockEntry(entryID, userID uuid.UUID) (*LockResponse, error) {
	user, entry, assignment, err := s.resolveEntryForUser(entryID, userID)
	if err != nil {
		return nil, err
	}
	if assignment.Status == models.AssignmentStatusCompleted {
		return nil, &apperrors.AssignmentCompletedError{TeamSheetID: assignment.ID}
	}

	now := time.Now()
	expiresAt := now.Add(s.lockTTL)

	existing, err := s.lockRepo.GetActiveByEntry(entryID, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing lock: %w", err)
	}
	if existing != nil {
		if existing.LockedBy == userID {
			if err := s.lockRepo.Refresh(entryID, userID, expiresAt); err != nil {
				return nil, fmt.Errorf("failed to refresh lock: %w", err)
			}
			existing.ExpiresAt = expiresAt
			s.publisher.EntryLocked(notify.EntryLockedEvent{
				EntryID: entryID, SheetID: entry.SheetID, TeamID: existing.TeamID,
				LockedBy: userID, ExpiresAt: expiresAt,
			})
			return toLockResponse(existing), nil
		}
		return nil, s.lockedByError(entryID, existing)
	}

	lock := &models.EntryLock{
		EntryID:   entryID,
		LockedBy:  userID,
		TeamID:    *user.TeamID,
		LockedAt:  now,
		ExpiresAt: expiresAt,
	}
	if err := s.lockRepo.Acquire(lock); err != nil {
		if errors.Is(err, repository.ErrLockHeld) {
			// Lost the race: somebody locked between our read and insert.
			holder, herr := s.lockRepo.GetActiveByEntry(entryID, now)
			if herr == nil && holder != nil {
				return nil, s.lockedByError(entryID, holder)
			}
			return nil, apperrors.NewEntryLockedError(entryID, uuid.Nil, "")
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	s.publisher.EntryLocked(notify.EntryLockedEvent{
		EntryID: entryID, SheetID: entry.SheetID, TeamID: lock.TeamID,
		LockedBy: userID, ExpiresAt: expiresAt,
	})
	return toLockResponse(lock), nil
}

// UnlockEntry releases a lock. Only the holder may unlock; an admin caller
// overrides and releases regardless of holder. Releasing keeps any saved
// draft intact.
func (s *EntryLockService) UnlockEntry(entryID, userID uuid.UUID, isAdmin bool) error {
	if _, err := s.sheetRepo.GetEntryByID(entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEntryNotFound
		}
		return fmt.Errorf("failed to load entry: %w", err)
	}

	if isAdmin {
		if err := s.lockRepo.ForceRelease(entryID); err != nil {
			return fmt.Errorf("failed to release lock: %w", err)
		}
		s.publisher.EntryUnlocked(notify.EntryUnlockedEvent{EntryID: entryID, ReleasedBy: userID, Forced: true})
		return nil
	}

	if err := s.lockRepo.Release(entryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotLockHolderError(entryID)
		}
		return fmt.Errorf("failed to release lock: %w", err)
	}
	s.publisher.EntryUnlocked(notify.EntryUnlockedEvent{EntryID: entryID, ReleasedBy: userID})
	return nil
}

// GetAvailableEntries returns every entry of the sheet annotated with lock
// and response state for the given team. Expired locks are treated as
// absent. No locks are taken. Response payloads belong to the target team,
// so the caller must be a member of it; admins may read any team's view.
func (s *EntryLockService) GetAvailableEntries(sheetID, teamID, userID uuid.UUID) ([]EntrySnapshot, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsAdmin && (user.TeamID == nil || *user.TeamID != teamID) {
		return nil, apperrors.ErrNotTeamMember
	}

	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(sheetID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	entries, err := s.sheetRepo.GetEntriesBySheetID(sheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	now := time.Now()
	locks, err := s.lockRepo.GetActiveBySheet(sheetID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load locks: %w", err)
	}
	locksByEntry := make(map[uuid.UUID]*models.EntryLock, len(locks))
	for i := range locks {
		locksByEntry[locks[i].EntryID] = &locks[i]
	}

	responses, err := s.responseRepo.GetByAssignment(assignment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	responsesByEntry := make(map[uuid.UUID]*models.SheetResponse, len(responses))
	for i := range responses {
		responsesByEntry[responses[i].OriginalEntryID] = &responses[i]
	}

	snapshots := make([]EntrySnapshot, 0, len(entries))
	for _, entry := range entries {
		snapshot := EntrySnapshot{
			EntryID:     entry.ID,
			VendorName:  entry.VendorName,
			ProductName: entry.ProductName,
			CVE:         entry.CVE,
			RiskLevel:   entry.RiskLevel,
			SourceURL:   entry.SourceURL,
		}
		if lock, ok := locksByEntry[entry.ID]; ok {
			if lock.LockedBy == userID {
				snapshot.IsLockedByMe = true
			} else {
				snapshot.IsLocked = true
			}
			if lock.Holder != nil {
				snapshot.LockedByName = lock.Holder.FullName
			}
		}
		if response, ok := responsesByEntry[entry.ID]; ok {
			snapshot.IsCompleted = response.IsCompleted
			id := response.ID
			snapshot.ResponseID = &id
			fields := response.ResponseFields
			snapshot.Response = &fields
		}
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, nil
}

// ReleaseExpiredLocks frees every lock row whose TTL has passed and returns
// how many were removed. Idempotent and safe alongside concurrent lock
// traffic: expired rows are already invisible to every reader.
func (s *EntryLockService) ReleaseExpiredLocks() (int64, error) {
	count, err := s.lockRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to release expired locks: %w", err)
	}
	return count, nil
}

// resolveEntryForUser loads the user, entry, and the assignment binding the
// entry's sheet to the user's team
func (s *EntryLockService) resolveEntryForUser(entryID, userID uuid.UUID) (*models.User, *models.SourceEntry, *models.TeamSheet, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.TeamID == nil {
		return nil, nil, nil, apperrors.ErrUserNotAssignedToTeam
	}

	entry, err := s.sheetRepo.GetEntryByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrEntryNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to load entry: %w", err)
	}

	assignment, err := s.teamSheetRepo.GetBySheetAndTeam(entry.SheetID, *user.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, apperrors.ErrEntryNotInAssignedSheet
		}
		return nil, nil, nil, fmt.Errorf("failed to load assignment: %w", err)
	}

	return user, entry, assignment, nil
}

func (s *EntryLockService) lockedByError(entryID uuid.UUID, lock *models.EntryLock) error {
	name := ""
	if lock.Holder != nil {
		name = lock.Holder.FullName
	}
	return apperrors.NewEntryLockedError(entryID, lock.LockedBy, name)
}

func toLockResponse(lock *models.EntryLock) *LockResponse {
	return &LockResponse{
		EntryID:   lock.EntryID,
		LockedBy:  lock.LockedBy,
		TeamID:    lock.TeamID,
		LockedAt:  lock.LockedAt,
		ExpiresAt: lock.ExpiresAt,
	}
}
