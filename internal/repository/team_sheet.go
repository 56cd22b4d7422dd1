package repository

import (
	"time"

	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSheetRepository handles database operations for sheet assignments.
// Assignment rows are never deleted; reopening keeps them as audit trail.
type TeamSheetRepository struct {
	db *gorm.DB
}

// NewTeamSheetRepository creates a new team sheet repository
func NewTeamSheetRepository(db *gorm.DB) *TeamSheetRepository {
	return &TeamSheetRepository{db: db}
}

// Create creates a new assignment row
func (r *TeamSheetRepository) Create(assignment *models.TeamSheet) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *TeamSheetRepository) GetByID(id uuid.UUID) (*models.TeamSheet, error) {
	var assignment models.TeamSheet
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetBySheetAndTeam retrieves the single assignment for a (sheet, team) pair
func (r *TeamSheetRepository) GetBySheetAndTeam(sheetID, teamID uuid.UUID) (*models.TeamSheet, error) {
	var assignment models.TeamSheet
	err := r.db.First(&assignment, "sheet_id = ? AND team_id = ?", sheetID, teamID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetBySheetID retrieves all assignments of a sheet with team details
func (r *TeamSheetRepository) GetBySheetID(sheetID uuid.UUID) ([]models.TeamSheet, error) {
	var assignments []models.TeamSheet
	err := r.db.Preload("Team").Where("sheet_id = ?", sheetID).Order("assigned_at").Find(&assignments).Error
	return assignments, err
}

// GetByTeamID retrieves all assignments of a team with sheet details
func (r *TeamSheetRepository) GetByTeamID(teamID uuid.UUID) ([]models.TeamSheet, error) {
	var assignments []models.TeamSheet
	err := r.db.Preload("Sheet").Where("team_id = ?", teamID).Order("assigned_at DESC").Find(&assignments).Error
	return assignments, err
}

// MarkStarted transitions an assignment from assigned to in_progress. The
// WHERE clause keeps the transition idempotent under concurrent starts:
// only the first caller flips the row, later calls match zero rows.
func (r *TeamSheetRepository) MarkStarted(id, userID uuid.UUID, now time.Time) error {
	return r.db.Model(&models.TeamSheet{}).
		Where("id = ? AND status = ?", id, models.AssignmentStatusAssigned).
		Updates(map[string]interface{}{
			"status":     models.AssignmentStatusInProgress,
			"started_at": now,
			"started_by": userID,
		}).Error
}

// MarkCompleted flips an in_progress assignment to completed inside the
// caller's transaction
func (r *TeamSheetRepository) MarkCompleted(tx *gorm.DB, id, userID uuid.UUID, now time.Time) error {
	if tx == nil {
		tx = r.db
	}
	result := tx.Model(&models.TeamSheet{}).
		Where("id = ? AND status = ?", id, models.AssignmentStatusInProgress).
		Updates(map[string]interface{}{
			"status":       models.AssignmentStatusCompleted,
			"completed_at": now,
			"completed_by": userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reopen moves a completed assignment back to in_progress, clearing the
// completion stamp and recording who reopened it and why
func (r *TeamSheetRepository) Reopen(id, adminID uuid.UUID, reason string, now time.Time) error {
	result := r.db.Model(&models.TeamSheet{}).
		Where("id = ? AND status = ?", id, models.AssignmentStatusCompleted).
		Updates(map[string]interface{}{
			"status":        models.AssignmentStatusInProgress,
			"completed_at":  nil,
			"completed_by":  nil,
			"reopened_at":   now,
			"reopened_by":   adminID,
			"reopen_reason": reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
