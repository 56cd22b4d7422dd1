package service

import (
	"errors"
	"fmt"
	"time"

	"advisory-portal-backend/internal/database/models"
	apperrors "advisory-portal-backend/internal/errors"
	"advisory-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SheetService owns the advisory sheet catalog and the distribution of
// sheets to teams. Entry rows are written once at sheet creation and stay
// immutable; all later edits happen in the per-team response copies.
type SheetService struct {
	sheetRepo     repository.SheetRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	teamSheetRepo repository.TeamSheetRepositoryInterface
	responseRepo  repository.SheetResponseRepositoryInterface
	validator     *validator.Validate
}

// NewSheetService creates a new sheet service
func NewSheetService(
	sheetRepo repository.SheetRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	teamSheetRepo repository.TeamSheetRepositoryInterface,
	responseRepo repository.SheetResponseRepositoryInterface,
	validator *validator.Validate,
) *SheetService {
	return &SheetService{
		sheetRepo:     sheetRepo,
		teamRepo:      teamRepo,
		teamSheetRepo: teamSheetRepo,
		responseRepo:  responseRepo,
		validator:     validator,
	}
}

// EntryInput is one advisory row in a sheet creation request
type EntryInput struct {
	VendorName  string           `json:"vendor_name" validate:"required,max=200"`
	ProductName string           `json:"product_name" validate:"required,max=200"`
	CVE         string           `json:"cve" validate:"max=100"`
	RiskLevel   models.RiskLevel `json:"risk_level" validate:"required,oneof=Low Medium High Critical"`
	SourceURL   string           `json:"source_url" validate:"omitempty,url,max=500"`
}

// CreateSheetRequest represents the request to create a sheet with entries
type CreateSheetRequest struct {
	Title   string       `json:"title" validate:"required,max=200"`
	Month   int          `json:"month" validate:"required,min=1,max=12"`
	Year    int          `json:"year" validate:"required,min=2020,max=2100"`
	Entries []EntryInput `json:"entries" validate:"required,min=1,dive"`
}

// DistributeRequest represents the request to assign a sheet to teams
type DistributeRequest struct {
	TeamIDs []uuid.UUID `json:"team_ids" validate:"required,min=1"`
}

// SheetResponse represents a sheet in API responses
type SheetResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	UploadedBy uuid.UUID `json:"uploaded_by"`
	EntryCount int       `json:"entry_count"`
	CreatedAt  string    `json:"created_at"`
}

// SheetDetailResponse is a sheet with its entries
type SheetDetailResponse struct {
	SheetResponse
	Entries []models.SourceEntry `json:"entries"`
}

// SheetListResponse represents a paginated list of sheets
type SheetListResponse struct {
	Sheets   []SheetResponse `json:"sheets"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// DistributeResult reports which teams received the sheet
type DistributeResult struct {
	SheetID     uuid.UUID   `json:"sheet_id"`
	Assigned    []uuid.UUID `json:"assigned_team_ids"`
	AlreadyHeld []uuid.UUID `json:"already_assigned_team_ids"`
}

// Create creates a sheet together with its immutable source entries
func (s *SheetService) Create(adminID uuid.UUID, req *CreateSheetRequest) (*SheetDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sheet := &models.AdvisorySheet{
		Title:      req.Title,
		Month:      req.Month,
		Year:       req.Year,
		UploadedBy: adminID,
	}
	for _, input := range req.Entries {
		sheet.Entries = append(sheet.Entries, models.SourceEntry{
			VendorName:  input.VendorName,
			ProductName: input.ProductName,
			CVE:         input.CVE,
			RiskLevel:   input.RiskLevel,
			SourceURL:   input.SourceURL,
		})
	}

	if err := s.sheetRepo.Create(sheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	return s.toDetailResponse(sheet), nil
}

// GetByID retrieves a sheet with its entries
func (s *SheetService) GetByID(id uuid.UUID) (*SheetDetailResponse, error) {
	sheet, err := s.sheetRepo.GetWithEntries(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return s.toDetailResponse(sheet), nil
}

// GetAll retrieves sheets with pagination
func (s *SheetService) GetAll(page, pageSize int) (*SheetListResponse, error) {
	offset := (page - 1) * pageSize
	sheets, total, err := s.sheetRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}

	result := &SheetListResponse{
		Sheets:   make([]SheetResponse, 0, len(sheets)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for i := range sheets {
		count, _ := s.sheetRepo.CountEntries(sheets[i].ID)
		result.Sheets = append(result.Sheets, *s.toResponse(&sheets[i], int(count)))
	}
	return result, nil
}

// Distribute assigns a sheet to the given teams and pre-materializes a
// blank response row per entry for each new assignment, so clients get
// stable response ids up front. Teams that already hold the sheet are
// reported back, not re-assigned.
func (s *SheetService) Distribute(sheetID, adminID uuid.UUID, req *DistributeRequest) (*DistributeResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sheet, err := s.sheetRepo.GetByID(sheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	entries, err := s.sheetRepo.GetEntriesBySheetID(sheet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrSheetHasNoEntries
	}

	result := &DistributeResult{SheetID: sheetID}
	now := time.Now()
	for _, teamID := range req.TeamIDs {
		if _, err := s.teamRepo.GetByID(teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}

		existing, err := s.teamSheetRepo.GetBySheetAndTeam(sheetID, teamID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing assignment: %w", err)
		}
		if existing != nil {
			result.AlreadyHeld = append(result.AlreadyHeld, teamID)
			continue
		}

		assignment := &models.TeamSheet{
			SheetID:    sheetID,
			TeamID:     teamID,
			Status:     models.AssignmentStatusAssigned,
			AssignedAt: now,
			AssignedBy: adminID,
		}
		if err := s.teamSheetRepo.Create(assignment); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}

		for _, entry := range entries {
			blank := &models.SheetResponse{
				TeamSheetID:     assignment.ID,
				OriginalEntryID: entry.ID,
			}
			if err := s.responseRepo.PreMaterialize(nil, blank); err != nil {
				return nil, fmt.Errorf("failed to materialize responses: %w", err)
			}
		}
		result.Assigned = append(result.Assigned, teamID)
	}
	return result, nil
}

// GetAssignments lists all assignments of a sheet with team details
func (s *SheetService) GetAssignments(sheetID uuid.UUID) ([]models.TeamSheet, error) {
	if _, err := s.sheetRepo.GetByID(sheetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return s.teamSheetRepo.GetBySheetID(sheetID)
}

func (s *SheetService) toResponse(sheet *models.AdvisorySheet, entryCount int) *SheetResponse {
	return &SheetResponse{
		ID:         sheet.ID,
		Title:      sheet.Title,
		Month:      sheet.Month,
		Year:       sheet.Year,
		UploadedBy: sheet.UploadedBy,
		EntryCount: entryCount,
		CreatedAt:  sheet.CreatedAt.Format(time.RFC3339),
	}
}

func (s *SheetService) toDetailResponse(sheet *models.AdvisorySheet) *SheetDetailResponse {
	return &SheetDetailResponse{
		SheetResponse: *s.toResponse(sheet, len(sheet.Entries)),
		Entries:       sheet.Entries,
	}
}
