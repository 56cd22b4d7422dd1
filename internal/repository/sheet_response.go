package repository

import (
	"time"

	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// responseUpsertColumns are the columns replaced when a save hits an
// existing (team_sheet_id, original_entry_id) row.
var responseUpsertColumns = []string{
	"current_status",
	"comments",
	"deployed_in_ke",
	"site",
	"vendor_contacted",
	"vendor_contact_date",
	"compensatory_controls_provided",
	"compensatory_controls_details",
	"estimated_time",
	"patching",
	"patching_est_release_date",
	"implementation_date",
	"is_completed",
	"submitted_by",
	"submitted_at",
	"updated_at",
}

// SheetResponseRepository handles database operations for per-team entry
// responses. The composite unique index guarantees upserts replace rather
// than duplicate.
type SheetResponseRepository struct {
	db *gorm.DB
}

// NewSheetResponseRepository creates a new sheet response repository
func NewSheetResponseRepository(db *gorm.DB) *SheetResponseRepository {
	return &SheetResponseRepository{db: db}
}

// Upsert inserts or replaces the response row for the assignment/entry pair.
// Pass a transaction handle to make the write part of a larger atomic batch;
// nil uses the repository's own connection.
func (r *SheetResponseRepository) Upsert(tx *gorm.DB, response *models.SheetResponse) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_sheet_id"}, {Name: "original_entry_id"}},
		DoUpdates: clause.AssignmentColumns(responseUpsertColumns),
	}).Create(response).Error
}

// PreMaterialize inserts a blank response row for the assignment/entry pair
// if none exists yet. Existing rows, including filled-in drafts, are left
// untouched, so re-distributing a sheet is safe.
func (r *SheetResponseRepository) PreMaterialize(tx *gorm.DB, response *models.SheetResponse) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_sheet_id"}, {Name: "original_entry_id"}},
		DoNothing: true,
	}).Create(response).Error
}

// GetByID retrieves a response by ID
func (r *SheetResponseRepository) GetByID(id uuid.UUID) (*models.SheetResponse, error) {
	var response models.SheetResponse
	err := r.db.First(&response, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByAssignmentAndEntry retrieves the response for one entry within one
// assignment, if it has been materialized
func (r *SheetResponseRepository) GetByAssignmentAndEntry(teamSheetID, entryID uuid.UUID) (*models.SheetResponse, error) {
	var response models.SheetResponse
	err := r.db.First(&response, "team_sheet_id = ? AND original_entry_id = ?", teamSheetID, entryID).Error
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByAssignment retrieves all responses of an assignment
func (r *SheetResponseRepository) GetByAssignment(teamSheetID uuid.UUID) ([]models.SheetResponse, error) {
	var responses []models.SheetResponse
	err := r.db.Where("team_sheet_id = ?", teamSheetID).Find(&responses).Error
	return responses, err
}

// UpdateStatusAndComments is the narrow post-completion write path: it
// touches only current_status and comments, nothing else.
func (r *SheetResponseRepository) UpdateStatusAndComments(id uuid.UUID, currentStatus, comments string, now time.Time) error {
	result := r.db.Model(&models.SheetResponse{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_status": currentStatus,
			"comments":       comments,
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllCompleted flips every not-yet-completed response of an assignment
// to completed with a submission stamp. Entries completed earlier keep
// their original stamps. Runs inside the caller's transaction.
func (r *SheetResponseRepository) MarkAllCompleted(tx *gorm.DB, teamSheetID, userID uuid.UUID, now time.Time) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&models.SheetResponse{}).
		Where("team_sheet_id = ? AND NOT is_completed", teamSheetID).
		Updates(map[string]interface{}{
			"is_completed": true,
			"submitted_by": userID,
			"submitted_at": now,
			"updated_at":   now,
		}).Error
}

// CountByAssignment returns total and completed response counts for an
// assignment
func (r *SheetResponseRepository) CountByAssignment(teamSheetID uuid.UUID) (total int64, completed int64, err error) {
	if err = r.db.Model(&models.SheetResponse{}).Where("team_sheet_id = ?", teamSheetID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.Model(&models.SheetResponse{}).Where("team_sheet_id = ? AND is_completed", teamSheetID).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
