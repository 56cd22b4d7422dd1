package handlers

import (
	"net/http"

	"advisory-portal-backend/internal/auth"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles administrative progress and reopen operations
type AdminHandler struct {
	progressService   service.ProgressServiceInterface
	submissionService service.SubmissionServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	progressService service.ProgressServiceInterface,
	submissionService service.SubmissionServiceInterface,
) *AdminHandler {
	return &AdminHandler{
		progressService:   progressService,
		submissionService: submissionService,
	}
}

// ReopenRequest represents the body of an assignment reopen request
type ReopenRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// GetSheetProgress handles GET /admin/sheets/:sheetId/progress
// @Summary Sheet progress across teams
// @Description Aggregates per-team completion counts, lock counts and assignment status for a sheet
// @Tags admin
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Success 200 {object} service.SheetProgressResponse "Per-team progress"
// @Failure 400 {object} ErrorResponse "Invalid sheet ID"
// @Failure 404 {object} ErrorResponse "Sheet not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/sheets/{sheetId}/progress [get]
func (h *AdminHandler) GetSheetProgress(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}

	progress, err := h.progressService.GetSheetProgress(sheetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// GetTeamProgress handles GET /admin/sheets/:sheetId/teams/:teamId/progress
// @Summary One team's merged sheet view
// @Description Merges the sheet's entries with the team's responses and live lock holders
// @Tags admin
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamSheetSnapshot "Merged entry snapshot"
// @Failure 400 {object} ErrorResponse "Invalid sheet or team ID"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/sheets/{sheetId}/teams/{teamId}/progress [get]
func (h *AdminHandler) GetTeamProgress(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	snapshot, err := h.progressService.GetTeamSnapshot(sheetID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ReopenAssignment handles PUT /admin/sheets/:sheetId/teams/:teamId/unlock
// @Summary Reopen a completed assignment
// @Description Moves a completed assignment back to in_progress so the team can edit again. Requires a reason, which is kept in the audit trail.
// @Tags admin
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Param teamId path string true "Team ID (UUID)"
// @Param request body ReopenRequest true "Reason for reopening"
// @Success 200 {object} service.AssignmentResponse "Reopened assignment"
// @Failure 400 {object} ErrorResponse "Invalid request or missing reason"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Failure 409 {object} ErrorResponse "Assignment is not completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/sheets/{sheetId}/teams/{teamId}/unlock [put]
func (h *AdminHandler) ReopenAssignment(c *gin.Context) {
	sheetID, err := uuid.Parse(c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sheet ID"})
		return
	}
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	adminID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req ReopenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.submissionService.Reopen(sheetID, teamID, adminID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}
