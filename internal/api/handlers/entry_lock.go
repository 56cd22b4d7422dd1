package handlers

import (
	"net/http"

	"advisory-portal-backend/internal/auth"
	"advisory-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EntryLockHandler handles HTTP requests for entry lock operations
type EntryLockHandler struct {
	lockService service.EntryLockServiceInterface
}

// NewEntryLockHandler creates a new entry lock handler
func NewEntryLockHandler(lockService service.EntryLockServiceInterface) *EntryLockHandler {
	return &EntryLockHandler{
		lockService: lockService,
	}
}

// LockEntry handles POST /entry-locking/:entryId/lock
// @Summary Lock an entry for editing
// @Description Acquires an exclusive TTL lock on an entry. Re-locking an entry already held by the caller refreshes the TTL.
// @Tags entry-locking
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Success 200 {object} service.LockResponse "Lock acquired or refreshed"
// @Failure 400 {object} ErrorResponse "Invalid entry ID"
// @Failure 404 {object} ErrorResponse "Entry or assignment not found"
// @Failure 409 {object} map[string]interface{} "Entry is locked by another user or assignment is completed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/{entryId}/lock [post]
func (h *EntryLockHandler) LockEntry(c *gin.Context) {
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

	lock, err := h.lockService.LockEntry(entryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lock)
}

// UnlockEntry handles POST /entry-locking/:entryId/unlock
// @Summary Release an entry lock
// @Description Releases the caller's lock on an entry. Admins may force-release any lock.
// @Tags entry-locking
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID (UUID)"
// @Success 200 {object} map[string]string "Lock released"
// @Failure 400 {object} ErrorResponse "Invalid entry ID"
// @Failure 403 {object} ErrorResponse "Caller does not hold the lock"
// @Failure 404 {object} ErrorResponse "No active lock on the entry"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/{entryId}/unlock [post]
func (h *EntryLockHandler) UnlockEntry(c *gin.Context) {
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

	if err := h.lockService.UnlockEntry(entryID, userID, auth.IsAdmin(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lock released"})
}

// GetAvailableEntries handles GET /entry-locking/sheets/:sheetId/available
// @Summary List entries with lock and completion state
// @Description Returns all entries of a sheet merged with the caller team's responses and current lock holders
// @Tags entry-locking
// @Accept json
// @Produce json
// @Param sheetId path string true "Sheet ID (UUID)"
// @Param team_id query string false "Team ID (UUID), defaults to the caller's team"
// @Success 200 {array} service.EntrySnapshot "Entries with lock state"
// @Failure 400 {object} ErrorResponse "Invalid sheet or team ID"
// @Failure 404 {object} ErrorResponse "Sheet or assignment not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/sheets/{sheetId}/available [get]
func (h *EntryLockHandler) GetAvailableEntries(c *gin.Context) {
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

	teamID, hasTeam := auth.GetTeamID(c)
	if teamIDStr := c.Query("team_id"); teamIDStr != "" {
		teamID, err = uuid.Parse(teamIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return
		}
	} else if !hasTeam {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id is required for users without a team"})
		return
	}

	entries, err := h.lockService.GetAvailableEntries(sheetID, teamID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// ReleaseExpiredLocks handles POST /entry-locking/release-expired
// @Summary Release all expired locks
// @Description Deletes every lock whose TTL has elapsed. Admin only.
// @Tags entry-locking
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int64 "Number of locks released"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /entry-locking/release-expired [post]
func (h *EntryLockHandler) ReleaseExpiredLocks(c *gin.Context) {
	released, err := h.lockService.ReleaseExpiredLocks()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": released})
}
