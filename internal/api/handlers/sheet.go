package handlers

import (
	"net/http"
	"strconv"

	"advisory-portal-backend/internal/auth"
	"advisory-portal-backend/internal/database/models"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SheetHandler handles HTTP requests for sheet and assignment operations
type SheetHandler struct {
	sheetService      service.SheetServiceInterface
	submissionService service.SubmissionServiceInterface
}

// NewSheetHandler creates a new sheet handler
func NewSheetHandler(
	sheetService service.SheetServiceInterface,
	submissionService service.SubmissionServiceInterface,
) *SheetHandler {
	return &SheetHandler{
		sheetService:      sheetService,
		submissionService: submissionService,
	}
}

// SubmitRequest represents the body of a sheet submission
type SubmitRequest struct {
	Responses map[uuid.UUID]models.ResponseFields `json:"responses"`
}

// CreateSheet handles POST /sheets
// @Summary Create a sheet with entries
// @Description Creates an advisory sheet along with its immutable source entries. Admin only.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheet body service.CreateSheetRequest true "Sheet data with entries"
// @Success 201 {object} service.SheetDetailResponse "Created sheet"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets [post]
func (h *SheetHandler) CreateSheet(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sheet, err := h.sheetService.Create(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sheet)
}

// GetSheet handles GET /sheets/:sheetId
// @Summary Get sheet by ID
// @Description Get a sheet together with its source entries
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Success 200 {object} service.SheetDetailResponse "Sheet with entries"
// @Failure 400 {object} ErrorResponse "Invalid sheet ID"
// @Failure 404 {object} ErrorResponse "Sheet not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets/{sheetId} [get]
func (h *SheetHandler) GetSheet(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	sheet, err := h.sheetService.GetByID(sheetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheet)
}

// ListSheets handles GET /sheets
// @Summary List sheets
// @Description Get sheets with pagination
// @Tags sheets
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SheetListResponse "Paginated sheets"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets [get]
func (h *SheetHandler) ListSheets(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	sheets, err := h.sheetService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sheets)
}

// DistributeSheet handles POST /sheets/:sheetId/distribute
// @Summary Distribute a sheet to teams
// @Description Assigns a sheet to the given teams and materializes blank response rows. Teams that already hold the sheet are skipped. Admin only.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Param request body service.DistributeRequest true "Target team IDs"
// @Success 200 {object} service.DistributeResult "Distribution outcome per team"
// @Failure 400 {object} ErrorResponse "Invalid request or sheet has no entries"
// @Failure 404 {object} ErrorResponse "Sheet or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets/{sheetId}/distribute [post]
func (h *SheetHandler) DistributeSheet(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.DistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sheetService.Distribute(sheetID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// StartSheet handles POST /sheets/:sheetId/start
// @Summary Start working on an assigned sheet
// @Description Moves the caller team's assignment from assigned to in_progress. Idempotent for assignments already in progress.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Assignment state"
// @Failure 400 {object} ErrorResponse "Invalid sheet ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets/{sheetId}/start [post]
func (h *SheetHandler) StartSheet(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	assignment, err := h.submissionService.Start(sheetID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// SubmitSheet handles POST /sheets/:sheetId/submit
// @Summary Submit a sheet
// @Description Stores final values for all entries and flips the assignment to completed. If any entry fails, successful entries stay saved as drafts, the assignment remains in progress, and the failed entry ids are returned.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Param request body SubmitRequest true "Final field values keyed by entry ID"
// @Success 200 {object} service.SubmissionResult "Submission outcome"
// @Failure 400 {object} ErrorResponse "Invalid request or incomplete responses"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Failure 500 {object} map[string]interface{} "Submission failed for some entries"
// @Security BearerAuth
// @Router /sheets/{sheetId}/submit [post]
func (h *SheetHandler) SubmitSheet(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.submissionService.Submit(sheetID, userID, req.Responses)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSheetAssignments handles GET /sheets/:sheetId/assignments
// @Summary List a sheet's team assignments
// @Description Get all team assignments of a sheet. Admin only.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Success 200 {array} models.TeamSheet "Assignments with team details"
// @Failure 400 {object} ErrorResponse "Invalid sheet ID"
// @Failure 404 {object} ErrorResponse "Sheet not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /sheets/{sheetId}/assignments [get]
func (h *SheetHandler) GetSheetAssignments(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	assignments, err := h.sheetService.GetAssignments(sheetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetMyAssignments handles GET /assignments
// @Summary List the caller team's assignments
// @Description Get all sheet assignments for the caller's team
// @Tags sheets
// @Accept json
// @Produce json
// @Success 200 {array} service.AssignmentResponse "Team assignments"
// @Failure 400 {object} ErrorResponse "Caller has no team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /assignments [get]
func (h *SheetHandler) GetMyAssignments(c *gin.Context) {
	teamID, ok := auth.GetTeamID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is not assigned to a team"})
		return
	}

	assignments, err := h.submissionService.GetTeamAssignments(teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}
