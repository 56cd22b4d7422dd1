package repository

import (
	"errors"
	"strings"
	"time"

	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrLockHeld is returned by Acquire when the unique index on entry_id
// rejects the insert: somebody else holds an active lock on the entry.
var ErrLockHeld = errors.New("entry lock is held")

// EntryLockRepository handles database operations for entry locks. The
// unique index on entry_id is the sole arbiter under concurrency: of two
// racing Acquire calls for the same entry exactly one insert lands.
// Expired rows are treated as absent everywhere, so correctness never
// depends on a cleanup job having run.
type EntryLockRepository struct {
	db *gorm.DB
}

// NewEntryLockRepository creates a new entry lock repository
func NewEntryLockRepository(db *gorm.DB) *EntryLockRepository {
	return &EntryLockRepository{db: db}
}

// Acquire inserts a lock row for the entry. An expired row for the same
// entry is cleared first inside the same transaction so it cannot block the
// insert. Returns ErrLockHeld on a unique violation.
func (r *EntryLockRepository) Acquire(lock *models.EntryLock) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ? AND expires_at <= ?", lock.EntryID, lock.LockedAt).
			Delete(&models.EntryLock{}).Error; err != nil {
			return err
		}
		if err := tx.Create(lock).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrLockHeld
			}
			return err
		}
		return nil
	})
}

// GetActiveByEntry retrieves the non-expired lock on an entry, if any
func (r *EntryLockRepository) GetActiveByEntry(entryID uuid.UUID, now time.Time) (*models.EntryLock, error) {
	var lock models.EntryLock
	err := r.db.Preload("Holder").First(&lock, "entry_id = ? AND expires_at > ?", entryID, now).Error
	if err != nil {
		return nil, err
	}
	return &lock, nil
}

// GetActiveBySheet retrieves all non-expired locks on entries of a sheet
func (r *EntryLockRepository) GetActiveBySheet(sheetID uuid.UUID, now time.Time) ([]models.EntryLock, error) {
	var locks []models.EntryLock
	err := r.db.Preload("Holder").
		Joins("JOIN source_entries ON source_entries.id = entry_locks.entry_id").
		Where("source_entries.sheet_id = ? AND entry_locks.expires_at > ?", sheetID, now).
		Find(&locks).Error
	return locks, err
}

// Refresh extends the expiry of a lock held by the given user
func (r *EntryLockRepository) Refresh(entryID, userID uuid.UUID, expiresAt time.Time) error {
	return r.db.Model(&models.EntryLock{}).
		Where("entry_id = ? AND locked_by = ?", entryID, userID).
		Update("expires_at", expiresAt).Error
}

// Release deletes the lock on an entry held by the given user. Returns
// gorm.ErrRecordNotFound when the user holds no lock on the entry.
func (r *EntryLockRepository) Release(entryID, userID uuid.UUID) error {
	result := r.db.Where("entry_id = ? AND locked_by = ?", entryID, userID).Delete(&models.EntryLock{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ForceRelease deletes any lock on an entry regardless of holder. Used by
// entry completion and the admin override path.
func (r *EntryLockRepository) ForceRelease(entryID uuid.UUID) error {
	return r.db.Where("entry_id = ?", entryID).Delete(&models.EntryLock{}).Error
}

// DeleteExpired frees all lock rows that have aged out. Safe to run
// concurrently with lock operations: it only touches rows every reader
// already treats as absent.
func (r *EntryLockRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at <= ?", now).Delete(&models.EntryLock{})
	return result.RowsAffected, result.Error
}

// isUniqueViolation reports whether the error is a Postgres unique-index
// violation (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
