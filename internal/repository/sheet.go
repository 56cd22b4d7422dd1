package repository

import (
	"advisory-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SheetRepository handles database operations for advisory sheets and their
// source entries. Source entries are written once, together with the sheet,
// and never mutated afterwards.
type SheetRepository struct {
	db *gorm.DB
}

// NewSheetRepository creates a new sheet repository
func NewSheetRepository(db *gorm.DB) *SheetRepository {
	return &SheetRepository{db: db}
}

// Create creates a sheet together with its entries in one transaction
func (r *SheetRepository) Create(sheet *models.AdvisorySheet) error {
	return r.db.Create(sheet).Error
}

// GetByID retrieves a sheet by ID
func (r *SheetRepository) GetByID(id uuid.UUID) (*models.AdvisorySheet, error) {
	var sheet models.AdvisorySheet
	err := r.db.First(&sheet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// GetWithEntries retrieves a sheet with its source entries
func (r *SheetRepository) GetWithEntries(id uuid.UUID) (*models.AdvisorySheet, error) {
	var sheet models.AdvisorySheet
	err := r.db.Preload("Entries").First(&sheet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sheet, nil
}

// GetAll retrieves all sheets with pagination, most recent first
func (r *SheetRepository) GetAll(limit, offset int) ([]models.AdvisorySheet, int64, error) {
	var sheets []models.AdvisorySheet
	var total int64

	if err := r.db.Model(&models.AdvisorySheet{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("year DESC, month DESC, created_at DESC").Limit(limit).Offset(offset).Find(&sheets).Error
	if err != nil {
		return nil, 0, err
	}

	return sheets, total, nil
}

// GetEntryByID retrieves one source entry by ID
func (r *SheetRepository) GetEntryByID(entryID uuid.UUID) (*models.SourceEntry, error) {
	var entry models.SourceEntry
	err := r.db.First(&entry, "id = ?", entryID).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetEntriesBySheetID retrieves all source entries of a sheet
func (r *SheetRepository) GetEntriesBySheetID(sheetID uuid.UUID) ([]models.SourceEntry, error) {
	var entries []models.SourceEntry
	err := r.db.Where("sheet_id = ?", sheetID).Order("created_at").Find(&entries).Error
	return entries, err
}

// CountEntries returns the number of source entries in a sheet
func (r *SheetRepository) CountEntries(sheetID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SourceEntry{}).Where("sheet_id = ?", sheetID).Count(&count).Error
	return count, err
}
