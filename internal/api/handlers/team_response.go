package handlers

import (
	"net/http"

	"advisory-portal-backend/internal/auth"
	"advisory-portal-backend/internal/database/models"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamResponseHandler handles HTTP requests for team response operations
type TeamResponseHandler struct {
	responseService service.TeamResponseServiceInterface
}

// NewTeamResponseHandler creates a new team response handler
func NewTeamResponseHandler(responseService service.TeamResponseServiceInterface) *TeamResponseHandler {
	return &TeamResponseHandler{
		responseService: responseService,
	}
}

// SaveDraft handles PUT /team-responses/:responseId/draft
// @Summary Save a draft response
// @Description Saves draft field values for a response. The caller must hold the entry lock. Dependent fields are nulled server-side; the returned body reflects the stored values.
// @Tags team-responses
// @Accept json
// @Produce json
// @Param responseId path string true "Response ID (UUID)"
// @Param response body models.ResponseFields true "Response field values"
// @Success 200 {object} service.EntryResponseResult "Stored response after server-side corrections"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller does not hold the entry lock"
// @Failure 404 {object} ErrorResponse "Response not found"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-responses/{responseId}/draft [put]
func (h *TeamResponseHandler) SaveDraft(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("responseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var fields models.ResponseFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.responseService.SaveDraft(responseID, userID, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SaveDraftByEntry handles PUT /entry-locking/:entryId/draft
// @Summary Save a draft response by entry
// @Description Saves draft field values addressed by entry id rather than response id, materializing the response row if needed
// @Tags entry-locking
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Param response body models.ResponseFields true "Response field values"
// @Success 200 {object} service.EntryResponseResult "Stored response after server-side corrections"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller does not hold the entry lock"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/{entryId}/draft [put]
func (h *TeamResponseHandler) SaveDraftByEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var fields models.ResponseFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.responseService.SaveDraftByEntry(entryID, userID, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompleteEntry handles PUT /entry-locking/:entryId/complete
// @Summary Complete an entry
// @Description Validates and stores the final response for an entry, marks it completed and releases the lock
// @Tags entry-locking
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Param response body models.ResponseFields true "Final response field values"
// @Success 200 {object} service.EntryResponseResult "Completed response"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 403 {object} ErrorResponse "Caller does not hold the entry lock"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Assignment already completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/{entryId}/complete [put]
func (h *TeamResponseHandler) CompleteEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var fields models.ResponseFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.responseService.CompleteEntry(entryID, userID, fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatusAndComments handles PUT /team-responses/:responseId/status-comments
// @Summary Update status and comments only
// @Description Narrow update of current status and comments. Stays open after the assignment is submitted; no entry lock required.
// @Tags team-responses
// @Accept json
// @Produce json
// @Param responseId path string true "Response ID (UUID)"
// @Param request body service.StatusCommentsRequest true "Status and comments"
// @Success 200 {object} service.EntryResponseResult "Updated response"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Caller is not a member of the assignment's team"
// @Failure 404 {object} ErrorResponse "Response not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team-responses/{responseId}/status-comments [put]
func (h *TeamResponseHandler) UpdateStatusAndComments(c *gin.Context) {
	responseID, err := uuid.Parse(c.Param("responseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response ID"})
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.StatusCommentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.responseService.UpdateStatusAndComments(responseID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
